package engine

import (
	"time"

	"github.com/akyairhashvil/intervaltimer/internal/models"
)

// EventType defines the operation that produced an Event.
type EventType string

const (
	EventOpened     EventType = "opened"
	EventClosed     EventType = "closed"
	EventToggled    EventType = "toggled"
	EventTick       EventType = "tick"
	EventTransition EventType = "transition"
	EventFinished   EventType = "finished"
)

// Event is published once per completed engine operation.
type Event struct {
	Type   EventType
	Run    models.ActiveRun
	Active bool
	At     time.Time
}
