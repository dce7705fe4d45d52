package ecs

// EventKind identifies scene event types.
type EventKind string

const (
	EventGrab          EventKind = "grab"
	EventRelease       EventKind = "release"
	EventFollowerReady EventKind = "follower_arrived"
	EventCameraChanged EventKind = "camera_changed"
	EventLightToggled  EventKind = "light_toggled"
	EventMaterialCycle EventKind = "material_cycled"
	EventStateChanged  EventKind = "state_changed"
)

// Event is a scene event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
