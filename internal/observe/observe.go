// Package observe provides synchronous change notification.
package observe

// Subject keeps a list of change listeners. It is not safe for concurrent
// use; all editor state is driven from a single event loop.
type Subject struct {
	next      int
	listeners []listener
}

type listener struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (s *Subject) Subscribe(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.next++
	id := s.next
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit invokes every listener registered at the time of the call.
func (s *Subject) Emit() {
	if len(s.listeners) == 0 {
		return
	}
	snapshot := make([]listener, len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		l.fn()
	}
}

// Len reports the number of registered listeners.
func (s *Subject) Len() int { return len(s.listeners) }
