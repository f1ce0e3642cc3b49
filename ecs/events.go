package ecs

// Event is one notification raised during a tick. Data is a small value
// struct whose type is implied by Type.
type Event struct {
	Type string
	Data any
}

// EventQueue collects events in emission order until the owner drains them.
// The zero value is ready to use and a nil queue drops everything.
type EventQueue struct {
	pending []Event
}

func (q *EventQueue) Push(events ...Event) {
	if q == nil {
		return
	}
	q.pending = append(q.pending, events...)
}

func (q *EventQueue) Emit(typ string, data any) {
	q.Push(Event{Type: typ, Data: data})
}

// Drain hands over everything queued so far. It returns nil when empty.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

// OfType returns the events in events whose type is typ, keeping order.
func OfType(events []Event, typ string) []Event {
	var out []Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
