package pager

import (
	"math"

	"swipepager/internal/domain"
)

// Ramp describes one animated property by the value it rests at on each page.
//
// While dragging from the active page towards a neighbour, the value moves
// linearly from the active page's value to the neighbour's value as |delta|
// grows from 0 to the cutoff, and stays pinned at the neighbour's value past
// the cutoff. A property whose values on both sides of a transition are equal
// is therefore constant across it. There is no neighbour past the first or last
// page, so dragging outward there leaves the value where it rests.
//
// Every ramp shares the same cutoff, the center opacity included: the fade
// between the side and center pages is complete once the drag reaches the
// cutoff rather than after a full page width.
type Ramp [domain.PageCount]float64

// At evaluates the ramp for the committed page and the signed, already
// boundary-clamped delta. Negative delta moves towards the next page.
func (r Ramp) At(active domain.Page, delta, cutoff float64) float64 {
	active = domain.ClampPage(int(active))

	switch {
	case delta < 0:
		if active == domain.LastPage {
			return r[active]
		}
		return lerp(r[active], r[active+1], progress(-delta, cutoff))
	case delta > 0:
		if active == domain.FirstPage {
			return r[active]
		}
		return lerp(r[active], r[active-1], progress(delta, cutoff))
	default:
		return r[active]
	}
}

// progress maps a drag distance onto [0, 1], reaching 1 at the cutoff
func progress(distance, cutoff float64) float64 {
	if distance >= cutoff {
		return 1
	}
	return distance / cutoff
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Resting values of every ramped property, indexed side, center, menu.
var (
	centerOpacityRamp = Ramp{0, 1, 0}
	menuOpacityRamp   = Ramp{0, 0, 1}
	menuRotationRamp  = Ramp{MenuClosedDegrees, MenuClosedDegrees, MenuOpenDegrees}
)

// Menu rotation endpoints, about a vertical axis at the menu's leading edge.
const (
	MenuClosedDegrees = 90.0
	MenuOpenDegrees   = 0.0
)

func centerRadiusRamp(maxRadius float64) Ramp {
	return Ramp{0, 0, maxRadius}
}

func centerHeightRamp(screenHeight, cutoff float64) Ramp {
	minHeight := math.Max(screenHeight-cutoff, 0)
	return Ramp{screenHeight, screenHeight, minHeight}
}
