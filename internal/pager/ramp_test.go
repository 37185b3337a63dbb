package pager

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"swipepager/internal/domain"
)

func TestRampAt(t *testing.T) {
	r := Ramp{10, 20, 40}
	const cutoff = 0.5

	tests := []struct {
		name   string
		active domain.Page
		delta  float64
		want   float64
	}{
		{"rest on side", domain.PageSide, 0, 10},
		{"rest on center", domain.PageCenter, 0, 20},
		{"rest on menu", domain.PageMenu, 0, 40},
		{"center towards menu halfway", domain.PageCenter, -0.25, 30},
		{"center towards menu at cutoff", domain.PageCenter, -0.5, 40},
		{"center towards menu past cutoff", domain.PageCenter, -0.9, 40},
		{"center towards side halfway", domain.PageCenter, 0.25, 15},
		{"center towards side past cutoff", domain.PageCenter, 1, 10},
		{"side towards center", domain.PageSide, -0.1, 12},
		{"menu towards center", domain.PageMenu, 0.4, 24},
		{"no page before side", domain.PageSide, 0.3, 10},
		{"no page after menu", domain.PageMenu, -0.3, 40},
		{"out of range index is clamped", domain.Page(7), 0, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, r.At(tt.active, tt.delta, cutoff), 1e-9)
		})
	}
}

func TestRampNaNDeltaRests(t *testing.T) {
	r := Ramp{1, 2, 3}
	assert.Equal(t, 2.0, r.At(domain.PageCenter, math.NaN(), 0.8))
}

func TestCenterHeightRampNeverNegative(t *testing.T) {
	r := centerHeightRamp(30, 80)
	assert.Equal(t, Ramp{30, 30, 0}, r)
}
