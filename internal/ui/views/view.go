package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"swipepager/internal/pager"
)

// Renderer paints pager frames into a terminal viewport
type Renderer struct {
	styles *Styles
	popup  *PopupRenderer
	Side   *SidePage
	Center *CenterPage
	Menu   *MenuPage
}

// NewRenderer creates a renderer; maxCornerRadius scales the center border
func NewRenderer(maxCornerRadius float64) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		popup:  NewPopupRenderer(styles),
		Side:   NewSidePage(styles),
		Center: NewCenterPage(styles, maxCornerRadius),
		Menu:   NewMenuPage(styles),
	}
}

// Pages returns the page renderers for pager.Pager.Render
func (r *Renderer) Pages() pager.Renderers {
	return pager.Renderers{Side: r.Side, Center: r.Center, Menu: r.Menu}
}

// Render lays the three pages out in a row and shows the width-wide window
// of it that frame.Offset scrolls into view. The pages must already have
// received frame's styles.
func (r *Renderer) Render(frame pager.Frame, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	pages := []Page{r.Side, r.Center, r.Menu}
	columns := make([][]string, len(pages))
	for i, p := range pages {
		columns[i] = p.Lines(height)
	}

	left := int(math.Round(-frame.Offset))
	lines := make([]string, height)
	for y := range lines {
		var row strings.Builder
		for _, col := range columns {
			row.WriteString(col[y])
		}
		lines[y] = viewport(row.String(), left, width)
	}
	return strings.Join(lines, "\n")
}

// viewport returns the cells [left, left+width) of line, padding with blanks
// where the window extends past either end of the row
func viewport(line string, left, width int) string {
	if left < 0 {
		pad := min(-left, width)
		return strings.Repeat(" ", pad) + fit(line, width-pad)
	}
	return fit(ansi.Cut(line, left, left+width), width)
}

// Status renders the one-line readout of the current frame
func (r *Renderer) Status(frame pager.Frame, dragging bool, width int) string {
	s := r.styles
	field := func(name, value string) string {
		return s.StatusKey.Render(name) + s.Status.Render(" "+value)
	}

	parts := []string{
		field("page", frame.ActiveIndex.String()),
		field("Δ", fmt.Sprintf("%+.2f", frame.Delta)),
		field("opacity", fmt.Sprintf("%.2f", frame.Center.Opacity)),
		field("radius", fmt.Sprintf("%.0f", frame.Center.CornerRadius)),
		field("height", fmt.Sprintf("%.1f", frame.Center.Height)),
		field("menu", fmt.Sprintf("%.0f° %.2f", frame.Menu.RotationDegrees, frame.Menu.Opacity)),
	}
	if dragging {
		parts = append(parts, s.Dragging.Render("dragging"))
	}
	return fit(strings.Join(parts, s.Status.Render(" · ")), width)
}

// Error renders a popup in place of the pages
func (r *Renderer) Error(err error, width, height int) string {
	return r.popup.RenderPopup("Cannot lay out pages", err.Error(), width, height)
}
