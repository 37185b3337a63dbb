package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette colours, as hex so they can be blended
const (
	ColorScreen          = "#000000" // terminal background behind the pages
	ColorBlackPearl      = "#1b2631" // center backdrop and filled list rows
	ColorBlackPearlLight = "#25384a" // alternate list rows
	ColorSide            = "#2e8b57"
	ColorText            = "#f5f5f5"
	ColorBorder          = "#8aa1b4"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Side       lipgloss.Style
	Row        lipgloss.Style
	MenuTitle  lipgloss.Style
	MenuItem   lipgloss.Style
	Status     lipgloss.Style
	StatusKey  lipgloss.Style
	Dragging   lipgloss.Style
	Popup      lipgloss.Style
	PopupTitle lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Side: lipgloss.NewStyle().
			Background(lipgloss.Color(ColorSide)).
			Foreground(lipgloss.Color(ColorText)).
			Bold(true),
		Row: lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center, lipgloss.Center),
		MenuTitle: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			MarginBottom(1),
		MenuItem:  lipgloss.NewStyle(),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusKey: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Dragging:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")). // red
			Padding(0, 1),
		PopupTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}
