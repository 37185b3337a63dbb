package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swipepager/internal/ui/input/types"
)

// DraggingMode is active while the mouse holds a drag. The pointer owns the
// pager, so paging keys are swallowed; Esc abandons the drag.
type DraggingMode struct {
	keys types.KeyMap
}

func NewDraggingMode(keys types.KeyMap) *DraggingMode {
	return &DraggingMode{keys: keys}
}

func (m *DraggingMode) Name() string {
	return "dragging"
}

func (m *DraggingMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DraggingMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DraggingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Force):
		return []types.Action{types.CancelDragAction{}, types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Cancel):
		return []types.Action{
			types.CancelDragAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return nil, true
}
