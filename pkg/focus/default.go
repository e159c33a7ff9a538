package focus

import "sync"

var (
	defaultMu        sync.RWMutex
	defaultNavigator = NewNavigator()
)

// Default returns the process-wide navigator used by focusable.Create.
func Default() *Navigator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultNavigator
}

// SetDefault replaces the process-wide navigator and returns the previous
// one. Passing nil installs a fresh Navigator.
func SetDefault(n *Navigator) *Navigator {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultNavigator
	if n == nil {
		n = NewNavigator()
	}
	defaultNavigator = n
	return prev
}
