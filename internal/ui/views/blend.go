package views

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// fade renders opacity in a terminal, which has no alpha channel: the colour
// is mixed with what would show through it. Opacity is clamped to [0, 1].
func fade(color, behind string, opacity float64) lipgloss.Color {
	opacity = clamp01(opacity)
	c, err := colorful.Hex(color)
	if err != nil {
		return lipgloss.Color(color)
	}
	b, err := colorful.Hex(behind)
	if err != nil {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(b.BlendRgb(c, opacity).Clamped().Hex())
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// cells rounds a pixel measure to a whole number of terminal cells
func cells(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return int(math.Round(v))
}
