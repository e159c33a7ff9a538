package core

import "sync"

// Scope owns cleanup functions, child scopes and context values for one
// region of a UI tree. The zero value is not usable; create scopes with
// NewScope.
//
// Scope is safe for concurrent use, but cleanups run on the goroutine that
// calls Dispose.
type Scope struct {
	mu        sync.Mutex
	parent    *Scope
	detach    func()
	disposers []func()
	disposed  bool
	values    map[any]any
}

// NewScope creates a scope. When parent is non-nil the new scope is disposed
// together with it.
func NewScope(parent *Scope) *Scope {
	s := &Scope{parent: parent}
	if parent != nil {
		s.detach = parent.OnDispose(s.Dispose)
	}
	return s
}

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// OnDispose registers a cleanup function to be called when the scope is
// disposed. Returns an unregister function that can be called to remove the
// disposer. The cleanup function will only be called once.
//
// Registering on an already disposed scope runs cleanup immediately.
func (s *Scope) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		cleanup()
		return func() {}
	}
	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// Dispose runs all registered cleanups in reverse order and detaches the
// scope from its parent. Calling Dispose more than once is a no-op.
func (s *Scope) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	s.mu.Unlock()

	// Cleanups run unlocked so they may register or query scopes.
	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
	if s.detach != nil {
		s.detach()
	}
}

// IsDisposed returns true if this scope has been disposed.
func (s *Scope) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
