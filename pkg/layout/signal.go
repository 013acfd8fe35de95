// Package layout provides the observable-item primitives that size
// synchronization builds on: a single-threaded change-notification signal
// and a measurable visual item.
//
// Everything in this package is meant to run on the host program's event
// loop. None of it is safe for concurrent use, and none of it needs to be:
// all geometry and visibility changes are dispatched from the same
// goroutine that renders.
package layout

// Subscription is a disposable handle to a connected observer. Cancel
// detaches the observer; cancelling twice is harmless.
type Subscription struct {
	signal *Signal
	id     int
}

// Cancel detaches the observer from its signal.
func (s Subscription) Cancel() {
	if s.signal == nil {
		return
	}
	s.signal.disconnect(s.id)
}

// Signal is an ordered list of parameterless observers. Observers re-read
// whatever state they care about when notified, so the signal itself
// carries no payload.
type Signal struct {
	nextID   int
	handlers []handler
}

type handler struct {
	id int
	fn func()
}

// Connect registers fn and returns a Subscription that detaches it.
func (s *Signal) Connect(fn func()) Subscription {
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, handler{id: id, fn: fn})
	return Subscription{signal: s, id: id}
}

// Emit invokes every connected observer in connection order. Observers may
// connect or cancel during emission; changes take effect on the next Emit.
func (s *Signal) Emit() {
	snapshot := make([]handler, len(s.handlers))
	copy(snapshot, s.handlers)
	for _, h := range snapshot {
		if s.connected(h.id) {
			h.fn()
		}
	}
}

// Len reports the number of connected observers.
func (s *Signal) Len() int {
	return len(s.handlers)
}

func (s *Signal) connected(id int) bool {
	for _, h := range s.handlers {
		if h.id == id {
			return true
		}
	}
	return false
}

func (s *Signal) disconnect(id int) {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return
		}
	}
}
