package pager

import "swipepager/internal/domain"

// Engine derives render parameters from a State. Every method is a pure
// function of the state it reads; nothing is cached between calls.
type Engine struct {
	state           *State
	heightCutoff    float64
	maxCornerRadius float64
}

// NewEngine creates an engine reading from state
func NewEngine(state *State, heightCutoff, maxCornerRadius float64) *Engine {
	return &Engine{
		state:           state,
		heightCutoff:    heightCutoff,
		maxCornerRadius: maxCornerRadius,
	}
}

// ClampedTranslation is the translation used for rendering. Dragging outward
// past the first or last page is ignored so the row never rubber-bands.
func (e *Engine) ClampedTranslation() float64 {
	s := e.state
	if (s.activeIndex == domain.FirstPage && s.translation > 0) ||
		(s.activeIndex == domain.LastPage && s.translation < 0) {
		return 0
	}
	return s.translation
}

// ClampedDelta is ClampedTranslation normalized by the page width
func (e *Engine) ClampedDelta() float64 {
	return e.ClampedTranslation() / e.state.pagerWidth
}

func (e *Engine) ramp(r Ramp) float64 {
	return r.At(e.state.activeIndex, e.ClampedDelta(), e.state.deltaCutoff)
}

// CenterOpacity fades the center content out towards the side and menu pages
func (e *Engine) CenterOpacity() float64 {
	return e.ramp(centerOpacityRamp)
}

// CenterCornerRadius rounds the center page as the menu opens
func (e *Engine) CenterCornerRadius() float64 {
	return e.ramp(centerRadiusRamp(e.maxCornerRadius))
}

// CenterHeight shrinks the center page as the menu opens
func (e *Engine) CenterHeight() float64 {
	return e.ramp(centerHeightRamp(e.state.screenHeight, e.heightCutoff))
}

// MenuRotation folds the menu page edge-on (90°) until it opens (0°)
func (e *Engine) MenuRotation() float64 {
	return e.ramp(menuRotationRamp)
}

// MenuOpacity fades the menu in as it unfolds
func (e *Engine) MenuOpacity() float64 {
	return e.ramp(menuOpacityRamp)
}

// MenuWidthFraction is the share of the pager width the menu occupies
func (e *Engine) MenuWidthFraction() float64 {
	return e.state.deltaCutoff
}

// BaseOffset is the row offset of the committed page without any drag. The
// menu is narrower than a page, so when it is active the row is shifted back
// by the unused width to align the menu with the viewport's trailing edge.
func (e *Engine) BaseOffset() float64 {
	s := e.state
	offset := -float64(s.activeIndex) * s.pagerWidth
	if s.activeIndex == domain.LastPage {
		offset += s.pagerWidth * (1 - s.deltaCutoff)
	}
	return offset
}

// Offset is the horizontal offset of the whole row of pages
func (e *Engine) Offset() float64 {
	return e.BaseOffset() + e.ClampedTranslation()
}

// Frame computes every page's style for the current state
func (e *Engine) Frame() Frame {
	s := e.state
	offset := e.Offset()
	w := s.pagerWidth

	return Frame{
		ActiveIndex: s.activeIndex,
		Delta:       e.ClampedDelta(),
		Offset:      offset,
		Side: PageStyle{
			Page:    domain.PageSide,
			X:       offset,
			Width:   w,
			Opacity: 1,
		},
		Center: PageStyle{
			Page:         domain.PageCenter,
			X:            offset + w,
			Width:        w,
			Opacity:      e.CenterOpacity(),
			CornerRadius: e.CenterCornerRadius(),
			Height:       e.CenterHeight(),
			Props:        PropCornerRadius | PropHeight,
		},
		Menu: PageStyle{
			Page:            domain.PageMenu,
			X:               offset + 2*w,
			Width:           w * e.MenuWidthFraction(),
			Opacity:         e.MenuOpacity(),
			RotationDegrees: e.MenuRotation(),
			WidthFraction:   e.MenuWidthFraction(),
			Props:           PropRotation | PropWidthFraction,
		},
	}
}
