package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"swipepager/internal/pager"
)

// Page paints one pager page into a block of terminal lines
type Page interface {
	pager.Renderer
	// Lines returns exactly height lines, each exactly as wide as the page
	Lines(height int) []string
}

const (
	pageText     = "PagePagePagePagePagePagePagePage"
	listRowText  = "PagePagePagePage"
	listRowLines = 3
)

// SidePage is the leftmost, full-width page
type SidePage struct {
	styles *Styles
	style  pager.PageStyle
}

func NewSidePage(styles *Styles) *SidePage {
	return &SidePage{styles: styles}
}

func (p *SidePage) ApplyPageStyle(style pager.PageStyle) { p.style = style }

func (p *SidePage) Lines(height int) []string {
	w := cells(p.style.Width)
	content := make([]string, 5)
	for i := range content {
		content[i] = " " + pageText
	}
	top := (height - len(content)) / 2

	lines := make([]string, height)
	for y := range lines {
		text := ""
		if i := y - top; i >= 0 && i < len(content) {
			text = content[i]
		}
		lines[y] = p.styles.Side.Render(fit(text, w))
	}
	return lines
}

// CenterPage is the list page; it fades, shrinks and rounds as the menu opens
type CenterPage struct {
	styles    *Styles
	style     pager.PageStyle
	maxRadius float64
}

func NewCenterPage(styles *Styles, maxRadius float64) *CenterPage {
	return &CenterPage{styles: styles, maxRadius: maxRadius}
}

func (p *CenterPage) ApplyPageStyle(style pager.PageStyle) { p.style = style }

// Lines centers the page vertically within height, leaving the rows it lost
// to the shrink blank
func (p *CenterPage) Lines(height int) []string {
	w := cells(p.style.Width)
	h := min(cells(p.style.Height), height)

	block := p.block(w, h)
	top := (height - len(block)) / 2

	lines := make([]string, height)
	blank := strings.Repeat(" ", w)
	for y := range lines {
		if i := y - top; i >= 0 && i < len(block) {
			lines[y] = block[i]
		} else {
			lines[y] = blank
		}
	}
	return lines
}

func (p *CenterPage) block(w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}

	bordered := p.style.CornerRadius > 0 && w > 2 && h > 2
	innerW, innerH := w, h
	if bordered {
		innerW, innerH = w-2, h-2
	}

	opacity := p.style.Opacity
	fg := fade(ColorText, ColorBlackPearl, opacity)
	backdrop := lipgloss.NewStyle().Background(lipgloss.Color(ColorBlackPearl))
	dot := backdrop.Foreground(fg)

	// trailing two columns hold the three-dot menu indicator
	listW := innerW
	if innerW > 4 {
		listW = innerW - 2
	}
	mid := innerH / 2

	lines := make([]string, innerH)
	for y := range lines {
		row := y / listRowLines
		bg := ColorBlackPearl
		if row%2 == 1 {
			bg = ColorBlackPearlLight
		}
		text := ""
		if y%listRowLines == listRowLines/2 {
			text = ansi.Truncate(listRowText, listW, "")
		}
		line := p.styles.Row.
			Width(listW).
			Background(fade(bg, ColorBlackPearl, opacity)).
			Foreground(fg).
			Render(text)

		if listW < innerW {
			indicator := "  "
			if y >= mid-1 && y <= mid+1 {
				indicator = "● "
			}
			line += dot.Render(indicator)
		}
		lines[y] = line
	}

	if !bordered {
		return lines
	}

	// Terminals cannot draw a radius, so any rounding shows as a rounded
	// border that brightens as the radius approaches its maximum
	strength := 1.0
	if p.maxRadius > 0 {
		strength = p.style.CornerRadius / p.maxRadius
	}
	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fade(ColorBorder, ColorScreen, strength)).
		Render(strings.Join(lines, "\n"))
	return strings.Split(framed, "\n")
}

// MenuPage is the narrow rightmost page that unfolds about its leading edge
type MenuPage struct {
	styles *Styles
	style  pager.PageStyle
}

func NewMenuPage(styles *Styles) *MenuPage {
	return &MenuPage{styles: styles}
}

func (p *MenuPage) ApplyPageStyle(style pager.PageStyle) { p.style = style }

// ProjectedWidth is how much of the menu faces the viewer: a page rotated by
// θ about its leading edge covers width·cos θ
func (p *MenuPage) ProjectedWidth() int {
	w := cells(p.style.Width)
	projected := cells(p.style.Width * math.Cos(p.style.RotationDegrees*math.Pi/180))
	return min(projected, w)
}

func (p *MenuPage) Lines(height int) []string {
	w := cells(p.style.Width)
	visible := p.ProjectedWidth()

	fg := fade(ColorText, ColorScreen, p.style.Opacity)
	content := []string{p.styles.MenuTitle.Foreground(fg).Render("Menu")}
	for i := 0; i < 5; i++ {
		content = append(content, p.styles.MenuItem.Foreground(fg).Render(pageText))
	}
	content = strings.Split(strings.Join(content, "\n"), "\n")
	top := (height - len(content)) / 2

	lines := make([]string, height)
	for y := range lines {
		text := ""
		if i := y - top; i >= 0 && i < len(content) && visible > 1 {
			text = " " + content[i]
		}
		lines[y] = fit(fit(text, visible), w)
	}
	return lines
}

// fit truncates or pads s to exactly w cells
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = ansi.Truncate(s, w, "")
	if gap := w - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
