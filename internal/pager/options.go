package pager

import (
	"math"

	"swipepager/internal/domain"
)

// Default tuning.
const (
	DefaultDeltaCutoff     = 0.8
	DefaultHeightCutoff    = 80
	DefaultMaxCornerRadius = 40
)

// Options configures a pager at construction. PagerWidth and ScreenHeight come
// from the container layout and may later change through Resize; the rest are
// fixed for the lifetime of the widget.
type Options struct {
	PagerWidth      float64     // Width of one page, > 0
	ScreenHeight    float64     // Full height of the center page, > 0
	DeltaCutoff     float64     // Fraction of a page-width drag at which ramps reach their endpoint, in (0, 1]
	HeightCutoff    float64     // Amount the center page shrinks by when the menu is active
	MaxCornerRadius float64     // Center page corner radius when the menu is active
	StartIndex      domain.Page // Page active before the first gesture; clamped to [0, 2]
}

// DefaultOptions returns options for a pager of the given size with the
// default tuning, starting on the center page.
func DefaultOptions(width, height float64) Options {
	return Options{
		PagerWidth:      width,
		ScreenHeight:    height,
		DeltaCutoff:     DefaultDeltaCutoff,
		HeightCutoff:    DefaultHeightCutoff,
		MaxCornerRadius: DefaultMaxCornerRadius,
		StartIndex:      domain.PageCenter,
	}
}

func (o Options) validate() error {
	if err := validateSize(o.PagerWidth, o.ScreenHeight); err != nil {
		return err
	}
	if !(o.DeltaCutoff > 0 && o.DeltaCutoff <= 1) {
		return &ConfigError{Field: "DeltaCutoff", Value: o.DeltaCutoff, Err: ErrInvalidCutoff}
	}
	if !finiteNonNegative(o.HeightCutoff) {
		return &ConfigError{Field: "HeightCutoff", Value: o.HeightCutoff, Err: ErrInvalidOption}
	}
	if !finiteNonNegative(o.MaxCornerRadius) {
		return &ConfigError{Field: "MaxCornerRadius", Value: o.MaxCornerRadius, Err: ErrInvalidOption}
	}
	return nil
}

func validateSize(width, height float64) error {
	if !(width > 0) || math.IsInf(width, 1) {
		return &ConfigError{Field: "PagerWidth", Value: width, Err: ErrInvalidWidth}
	}
	if !(height > 0) || math.IsInf(height, 1) {
		return &ConfigError{Field: "ScreenHeight", Value: height, Err: ErrInvalidHeight}
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
