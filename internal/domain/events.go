package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDragStarted        EventType = "DragStarted"
	EventTranslationChanged EventType = "TranslationChanged"
	EventDragEnded          EventType = "DragEnded"
	EventDragCancelled      EventType = "DragCancelled"
	EventIndexCommitted     EventType = "IndexCommitted"
	EventPagerResized       EventType = "PagerResized"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DragStartedEvent is emitted when a drag gesture begins
type DragStartedEvent struct {
	ActiveIndex Page
}

func (e DragStartedEvent) Type() EventType { return EventDragStarted }

// TranslationChangedEvent is emitted on every drag move
type TranslationChangedEvent struct {
	Translation float64 // raw, unclamped
}

func (e TranslationChangedEvent) Type() EventType { return EventTranslationChanged }

// DragEndedEvent is emitted when a drag is released and its page turn resolved
type DragEndedEvent struct {
	From         Page
	To           Page
	TurnFraction float64
}

func (e DragEndedEvent) Type() EventType { return EventDragEnded }

// DragCancelledEvent is emitted when the host abandons a drag without a commit
type DragCancelledEvent struct {
	ActiveIndex Page
}

func (e DragCancelledEvent) Type() EventType { return EventDragCancelled }

// IndexCommittedEvent is emitted whenever the active index is committed, even if unchanged
type IndexCommittedEvent struct {
	Previous Page
	Current  Page
}

func (e IndexCommittedEvent) Type() EventType { return EventIndexCommitted }

// Changed reports whether the commit moved to another page
func (e IndexCommittedEvent) Changed() bool { return e.Previous != e.Current }

// PagerResizedEvent is emitted when the container layout changes
type PagerResizedEvent struct {
	Width  float64
	Height float64
}

func (e PagerResizedEvent) Type() EventType { return EventPagerResized }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
