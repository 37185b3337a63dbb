package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centers a bordered popup in a width by height area. Content
// wider than the area, less a small margin, is truncated.
func (pr *PopupRenderer) RenderPopup(title, content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	// keep a small margin; border and padding take four columns
	inner := max(width-10, 1)
	body := pr.styles.PopupTitle.Render(ansi.Truncate(title, inner, "…")) + "\n" +
		ansi.Truncate(content, inner, "…")

	popup := pr.styles.Popup.Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}
