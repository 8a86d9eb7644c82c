package ecs

// Event is a generic world event payload.
type Event struct {
	Type string
	Data any
}

// EventBoundary is the Type of events carrying a BoundaryEvent.
const EventBoundary = "boundary"

// Axis names the arena walls an agent crossed.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisX | AxisY:
		return "xy"
	}
	return "none"
}

// BoundaryEvent is emitted when an agent leaves the arena and is turned around.
type BoundaryEvent struct {
	Entity Entity
	Axis   Axis
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

// Len returns the number of queued events.
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
