package domain

// Page identifies one of the three pager pages by its index
type Page int

const (
	PageSide   Page = 0
	PageCenter Page = 1
	PageMenu   Page = 2
)

// PageCount is the number of pages in the pager
const PageCount = 3

// FirstPage and LastPage bound every committed index
const (
	FirstPage = PageSide
	LastPage  = PageMenu
)

// String returns the display name of the page
func (p Page) String() string {
	switch p {
	case PageSide:
		return "side"
	case PageCenter:
		return "center"
	case PageMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the three pages
func (p Page) Valid() bool {
	return p >= FirstPage && p <= LastPage
}

// ClampPage pins an arbitrary index to the valid page range
func ClampPage(index int) Page {
	if index < int(FirstPage) {
		return FirstPage
	}
	if index > int(LastPage) {
		return LastPage
	}
	return Page(index)
}

// DragPhase is the phase of a horizontal drag gesture
type DragPhase int

const (
	DragStart DragPhase = iota
	DragMove
	DragEnd
	DragCancel
)

// String returns the phase name
func (p DragPhase) String() string {
	switch p {
	case DragStart:
		return "start"
	case DragMove:
		return "move"
	case DragEnd:
		return "end"
	case DragCancel:
		return "cancel"
	default:
		return "unknown"
	}
}
