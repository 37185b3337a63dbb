// Package pager implements the transition engine of a three-page swipeable
// pager: a side page, a center page and a menu page laid out in a row.
//
// A drag drives the row's horizontal offset and, at the same time, a set of
// correlated page properties: the center page fades, rounds its corners and
// shrinks while the menu page unfolds about its leading edge and fades in.
// All of them are pure functions of two values held in State: the committed
// page index and the live drag translation.
//
// The Gesture state machine is the only writer of State. On release it
// commits the page nearest to the drag position. The Engine reads State and
// produces a Frame of PageStyle values which a host hands to any Renderer.
//
//	p, err := pager.New(pager.DefaultOptions(375, 812), bus)
//	p.HandleDrag(pager.DragEvent{Phase: domain.DragStart})
//	p.HandleDrag(pager.DragEvent{Phase: domain.DragMove, Translation: -150})
//	frame := p.Frame() // frame.Center.Opacity == 0.5, frame.Menu.RotationDegrees == 45
//	p.HandleDrag(pager.DragEvent{Phase: domain.DragEnd})
//
// Everything runs on the caller's goroutine; a Pager must not be shared
// between goroutines.
package pager
