package pager

import "swipepager/internal/domain"

// Props is a bitmask naming which optional PageStyle fields apply to a page.
type Props uint8

const (
	PropCornerRadius Props = 1 << iota
	PropHeight
	PropRotation
	PropWidthFraction
)

// PageStyle holds the computed render parameters for one page in one frame.
// X, Width and Opacity always apply; the remaining fields only when the
// matching bit is set in Props.
type PageStyle struct {
	Page    domain.Page
	X       float64 // Leading edge relative to the viewport, in pixels
	Width   float64
	Opacity float64

	CornerRadius    float64
	Height          float64
	RotationDegrees float64 // About a vertical axis at the leading edge; 0 faces the viewer
	WidthFraction   float64 // Of the pager width

	Props Props
}

// Has reports whether the optional field p applies to this page
func (s PageStyle) Has(p Props) bool {
	return s.Props&p != 0
}

// Frame is the full set of render parameters for one frame.
type Frame struct {
	ActiveIndex domain.Page
	Delta       float64 // Boundary-clamped, normalized drag
	Offset      float64 // Horizontal offset of the row of pages

	Side   PageStyle
	Center PageStyle
	Menu   PageStyle
}

// Pages returns the three page styles in row order
func (f Frame) Pages() [domain.PageCount]PageStyle {
	return [domain.PageCount]PageStyle{f.Side, f.Center, f.Menu}
}

// Renderer is anything that can paint a page from its computed style.
type Renderer interface {
	ApplyPageStyle(style PageStyle)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(style PageStyle)

func (f RendererFunc) ApplyPageStyle(style PageStyle) { f(style) }

// Renderers assigns a renderer to each page. Nil entries are skipped.
type Renderers struct {
	Side   Renderer
	Center Renderer
	Menu   Renderer
}
