package core

// Provide attaches value to this scope under key. Descendant scopes see it
// through Lookup until a nearer scope provides the same key.
func (s *Scope) Provide(key, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[any]any)
	}
	s.values[key] = value
}

// Lookup returns the value provided for key by this scope or the nearest
// ancestor. The result is read fresh on every call.
func (s *Scope) Lookup(key any) (any, bool) {
	for current := s; current != nil; current = current.parent {
		current.mu.Lock()
		value, ok := current.values[key]
		current.mu.Unlock()
		if ok {
			return value, true
		}
	}
	return nil, false
}

// LookupValue is a typed Lookup. It reports false when no scope provides key
// or the provided value is not a T.
func LookupValue[T any](s *Scope, key any) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	raw, ok := s.Lookup(key)
	if !ok {
		return zero, false
	}
	value, ok := raw.(T)
	return value, ok
}
