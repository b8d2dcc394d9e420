// Package publish provides observable values for UI bindings: a subject with
// current-value semantics and a tracker that publishes whether data is loading.
package publish

import "sync"

// Subject holds a value and notifies subscribers of every new value.
// New subscribers immediately receive the current value.
type Subject[T any] struct {
	deliverMu sync.Mutex // serializes Next and Subscribe so listeners see values in order
	mu        sync.Mutex
	value     T
	nextID    int
	listeners map[int]func(T)
}

// NewSubject creates a subject holding initial.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
	}
}

// Value returns the current value.
func (s *Subject[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Next stores v and delivers it to every current subscriber.
// Listeners must not call Next themselves.
func (s *Subject[T]) Next(v T) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	s.value = v
	listeners := make([]func(T), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
}

// Subscribe registers fn, calls it with the current value and returns a
// function that removes the subscription. Calling it more than once is a no-op.
func (s *Subject[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	current := s.value
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Subject[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
