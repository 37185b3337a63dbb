package pager

import (
	"swipepager/internal/domain"
	"swipepager/internal/eventbus"
)

// Pager is one three-page widget instance. It creates the single State and
// hands it explicitly to the gesture machine and the engine.
type Pager struct {
	state   *State
	gesture *Gesture
	engine  *Engine
}

// New validates opts and builds a pager. bus may be nil.
func New(opts Options, bus eventbus.EventBus) (*Pager, error) {
	state, err := NewState(opts, bus)
	if err != nil {
		return nil, err
	}
	return &Pager{
		state:   state,
		gesture: NewGesture(state, bus),
		engine:  NewEngine(state, opts.HeightCutoff, opts.MaxCornerRadius),
	}, nil
}

// State returns the pager's state for read access
func (p *Pager) State() *State {
	return p.state
}

// Engine returns the transition engine
func (p *Pager) Engine() *Engine {
	return p.engine
}

// Gesture returns the drag state machine
func (p *Pager) Gesture() *Gesture {
	return p.gesture
}

// ActiveIndex returns the committed page
func (p *Pager) ActiveIndex() domain.Page {
	return p.state.activeIndex
}

// HandleDrag feeds one drag event through the gesture state machine
func (p *Pager) HandleDrag(ev DragEvent) {
	p.gesture.Handle(ev)
}

// Resize applies a new container layout
func (p *Pager) Resize(width, height float64) error {
	return p.state.Resize(width, height)
}

// Step turns one page forward (direction > 0) or back (direction < 0) by
// running a full page-width drag through the gesture machine, so keyboard
// navigation obeys the same commit rule as a swipe. It does nothing while a
// drag is in progress and returns the committed page.
func (p *Pager) Step(direction int) domain.Page {
	if direction == 0 || p.gesture.Dragging() {
		return p.state.activeIndex
	}
	distance := p.state.pagerWidth
	if direction > 0 {
		distance = -distance
	}
	p.gesture.Begin()
	p.gesture.Move(distance)
	return p.gesture.End()
}

// Frame computes the render parameters for the current state
func (p *Pager) Frame() Frame {
	return p.engine.Frame()
}

// Render computes the frame and hands each page its style
func (p *Pager) Render(r Renderers) Frame {
	frame := p.engine.Frame()
	if r.Side != nil {
		r.Side.ApplyPageStyle(frame.Side)
	}
	if r.Center != nil {
		r.Center.ApplyPageStyle(frame.Center)
	}
	if r.Menu != nil {
		r.Menu.ApplyPageStyle(frame.Menu)
	}
	return frame
}
