package render

import "github.com/ha1tch/genomap/pkg/genome"

// EventType names a viewer event.
type EventType string

const (
	EventZoom                EventType = "zoom"
	EventPan                 EventType = "pan"
	EventClick               EventType = "click"
	EventHover               EventType = "hover"
	EventDataLoaded          EventType = "dataLoaded"
	EventViewModeChanged     EventType = "viewModeChanged"
	EventInitialized         EventType = "initialized"
	EventRendererTypeChanged EventType = "rendererTypeChanged"
)

// Event carries the payload for a viewer notification. Fields are populated
// per type: Delta and X/Y for zoom, X/Y for pan and click, Feature (possibly
// nil) for hover, Renderer for renderer changes.
type Event struct {
	Type     EventType
	Delta    float64
	X, Y     float64
	Feature  *genome.Feature
	Renderer string
}

// Handler receives events synchronously.
type Handler func(Event)

// Emitter dispatches events to handlers synchronously, in registration
// order, with no priorities.
type Emitter struct {
	handlers map[EventType][]Handler
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{handlers: make(map[EventType][]Handler)}
}

// On registers a handler for an event type.
func (e *Emitter) On(t EventType, h Handler) {
	e.handlers[t] = append(e.handlers[t], h)
}

// Emit invokes every handler registered for the event's type, in the order
// they were registered, on the calling goroutine.
func (e *Emitter) Emit(ev Event) {
	for _, h := range e.handlers[ev.Type] {
		h(ev)
	}
}
