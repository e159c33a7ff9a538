package core

import "sync"

// Signal holds a value and notifies subscribers when it changes.
// Setting a value equal to the current one notifies no one.
//
// Signal is safe for concurrent use. Subscribers run on the goroutine that
// calls Set, in subscription order, without locks held.
type Signal[T comparable] struct {
	mu        sync.RWMutex
	value     T
	listeners []signalListener[T]
	nextID    uint64
}

type signalListener[T comparable] struct {
	id uint64
	fn func(T)
}

// NewSignal creates a signal with the given initial value.
func NewSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Value returns the current value.
func (s *Signal[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	if s.value == value {
		s.mu.Unlock()
		return
	}
	s.value = value
	listeners := make([]signalListener[T], len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(value)
	}
}

// Subscribe registers fn to be called with each new value. The returned
// function removes the subscription.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, signalListener[T]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of active subscriptions.
func (s *Signal[T]) ListenerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}
