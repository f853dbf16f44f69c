package library

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityEvent describes one borrow or return on an item.
type AvailabilityEvent struct {
	ItemID     uuid.UUID
	ItemTitle  string
	Message    string
	OccurredAt time.Time
}

// Listener receives availability events. Listeners run synchronously, in
// registration order, on the goroutine performing the borrow or return.
type Listener func(e AvailabilityEvent)

// Subscription is the handle for one registered listener.
type Subscription struct {
	core *itemCore
	seq  uint64
}

// Cancel detaches the listener. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.core == nil {
		return
	}
	for i, e := range s.core.listeners {
		if e.seq == s.seq {
			s.core.listeners = append(s.core.listeners[:i], s.core.listeners[i+1:]...)
			break
		}
	}
	s.core = nil
}

type listenerEntry struct {
	seq uint64
	fn  Listener
}
