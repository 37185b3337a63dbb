package types

// StepAction turns one page forward (+1) or back (-1)
type StepAction struct {
	Direction int
}

func (a StepAction) Type() string { return "step" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type CancelDragAction struct{}

func (a CancelDragAction) Type() string { return "cancel_drag" }

type ToggleStatusAction struct{}

func (a ToggleStatusAction) Type() string { return "toggle_status" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
