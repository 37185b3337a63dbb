package pager

import (
	"swipepager/internal/domain"
	"swipepager/internal/eventbus"
)

// State is the authoritative interaction state of one pager widget. It is
// owned by the Pager and read by the Engine; only the Gesture mutates the
// index and translation. Not safe for concurrent use: every call happens on
// the UI goroutine.
type State struct {
	bus eventbus.EventBus

	activeIndex domain.Page
	translation float64 // raw drag offset in pixels, never clamped here

	pagerWidth   float64
	screenHeight float64
	deltaCutoff  float64
}

// NewState validates opts and creates the state with the start page active.
// A nil bus disables change notifications.
func NewState(opts Options, bus eventbus.EventBus) (*State, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &State{
		bus:          bus,
		activeIndex:  domain.ClampPage(int(opts.StartIndex)),
		pagerWidth:   opts.PagerWidth,
		screenHeight: opts.ScreenHeight,
		deltaCutoff:  opts.DeltaCutoff,
	}, nil
}

// ActiveIndex returns the committed page
func (s *State) ActiveIndex() domain.Page {
	return s.activeIndex
}

// Translation returns the live, uncommitted drag offset in pixels
func (s *State) Translation() float64 {
	return s.translation
}

// PagerWidth returns the width of one page
func (s *State) PagerWidth() float64 {
	return s.pagerWidth
}

// ScreenHeight returns the full height of the center page
func (s *State) ScreenHeight() float64 {
	return s.screenHeight
}

// DeltaCutoff returns the fraction of a page-width drag after which ramps are pinned
func (s *State) DeltaCutoff() float64 {
	return s.deltaCutoff
}

// Delta returns the raw translation normalized by the page width
func (s *State) Delta() float64 {
	return s.translation / s.pagerWidth
}

// IsSwipingLeft reports a drag towards the next (higher index) page
func (s *State) IsSwipingLeft() bool {
	return s.translation < 0
}

// IsSwipingRight reports a drag towards the previous (lower index) page
func (s *State) IsSwipingRight() bool {
	return s.translation > 0
}

// SetTranslation stores the raw horizontal displacement of the current drag
func (s *State) SetTranslation(x float64) {
	s.translation = x
	s.bus.Publish(eventbus.TranslationChangedEvent{Translation: x})
}

// CommitIndex makes i the active page, clamping it to [0, 2]
func (s *State) CommitIndex(i int) {
	previous := s.activeIndex
	s.activeIndex = domain.ClampPage(i)
	s.bus.Publish(eventbus.IndexCommittedEvent{Previous: previous, Current: s.activeIndex})
}

// Resize applies a new container layout. Index and translation are kept.
func (s *State) Resize(width, height float64) error {
	if err := validateSize(width, height); err != nil {
		return err
	}
	if width == s.pagerWidth && height == s.screenHeight {
		return nil
	}
	s.pagerWidth = width
	s.screenHeight = height
	s.bus.Publish(eventbus.PagerResizedEvent{Width: width, Height: height})
	return nil
}
