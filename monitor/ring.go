package monitor

import (
	"sync"
	"time"
)

// Event is one line of the monitor's activity log.
type Event struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

// Ring is a bounded, concurrency-safe event log. Once full, the oldest
// event is dropped for each new one.
type Ring struct {
	mu     sync.Mutex
	max    int
	events []Event
}

func NewRing(max int) *Ring {
	if max <= 0 {
		max = 200
	}
	return &Ring{max: max}
}

func (r *Ring) Append(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Event{Time: time.Now().UTC(), Message: msg})
	if len(r.events) > r.max {
		r.events = r.events[len(r.events)-r.max:]
	}
}

// Events returns a copy of the log, oldest first.
func (r *Ring) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
