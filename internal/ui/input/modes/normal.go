package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swipepager/internal/domain"
	"swipepager/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Force):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Next):
		if ctx.ActiveIndex() == domain.LastPage {
			return nil, true
		}
		return []types.Action{types.StepAction{Direction: 1}}, true

	case key.Matches(msg, m.keys.Prev):
		if ctx.ActiveIndex() == domain.FirstPage {
			return nil, true
		}
		return []types.Action{types.StepAction{Direction: -1}}, true

	case key.Matches(msg, m.keys.Status):
		return []types.Action{types.ToggleStatusAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
