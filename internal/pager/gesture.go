package pager

import (
	"math"

	"swipepager/internal/domain"
	"swipepager/internal/eventbus"
)

// GesturePhase is the state of the drag state machine
type GesturePhase int

const (
	Idle GesturePhase = iota
	Dragging
)

func (p GesturePhase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// DragEvent is one event from the host's horizontal drag recognizer.
// Translation is the horizontal displacement since the drag started; it is
// ignored for Start, End and Cancel.
type DragEvent struct {
	Phase       domain.DragPhase
	Translation float64
}

// Gesture turns drag events into State mutations.
//
//	Idle     --Start-->  Dragging
//	Dragging --Move-->   Dragging  (translation = raw displacement)
//	Dragging --End-->    Idle      (commit nearest page, translation = 0)
//	Dragging --Cancel--> Idle      (translation = 0, no commit)
//
// Events that do not apply to the current phase are ignored.
type Gesture struct {
	state *State
	bus   eventbus.EventBus
	phase GesturePhase
}

// NewGesture creates a state machine driving state
func NewGesture(state *State, bus eventbus.EventBus) *Gesture {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Gesture{state: state, bus: bus}
}

// Phase returns the current phase
func (g *Gesture) Phase() GesturePhase {
	return g.phase
}

// Dragging reports whether a drag is being tracked
func (g *Gesture) Dragging() bool {
	return g.phase == Dragging
}

// Handle dispatches a drag event to the matching transition
func (g *Gesture) Handle(ev DragEvent) {
	switch ev.Phase {
	case domain.DragStart:
		g.Begin()
	case domain.DragMove:
		g.Move(ev.Translation)
	case domain.DragEnd:
		g.End()
	case domain.DragCancel:
		g.Cancel()
	}
}

// Begin enters tracking mode
func (g *Gesture) Begin() {
	if g.phase == Dragging {
		return
	}
	g.phase = Dragging
	g.bus.Publish(eventbus.DragStartedEvent{ActiveIndex: g.state.activeIndex})
}

// Move records the raw displacement since the drag started. Clamping at the
// first and last page happens when the translation is read, not here.
func (g *Gesture) Move(translation float64) {
	if g.phase != Dragging {
		return
	}
	g.state.SetTranslation(translation)
}

// End commits the page nearest to where the drag was released and returns it
func (g *Gesture) End() domain.Page {
	if g.phase != Dragging {
		return g.state.activeIndex
	}
	g.phase = Idle

	from := g.state.activeIndex
	turnFraction := g.state.Delta()
	to := CommitTarget(from, turnFraction)

	g.state.CommitIndex(int(to))
	g.state.SetTranslation(0)
	g.bus.Publish(eventbus.DragEndedEvent{From: from, To: to, TurnFraction: turnFraction})
	return to
}

// Cancel abandons the drag without changing the active page
func (g *Gesture) Cancel() {
	if g.phase != Dragging {
		return
	}
	g.phase = Idle
	g.state.SetTranslation(0)
	g.bus.Publish(eventbus.DragCancelledEvent{ActiveIndex: g.state.activeIndex})
}

// CommitTarget returns the page a drag released at turnFraction (translation
// over page width) settles on: the nearest index to active - turnFraction,
// rounding halves away from zero, clamped to [0, 2]. Dragging left (negative
// turnFraction) advances to a higher index. Past the halfway point of a page
// width the drag turns the page; there is no velocity term.
func CommitTarget(active domain.Page, turnFraction float64) domain.Page {
	if math.IsNaN(turnFraction) {
		return domain.ClampPage(int(active))
	}
	target := math.Round(float64(active) - turnFraction)
	switch {
	case target < float64(domain.FirstPage):
		return domain.FirstPage
	case target > float64(domain.LastPage):
		return domain.LastPage
	}
	return domain.Page(int(target))
}
