package core

// Disposable is implemented by resources that need explicit release.
type Disposable interface {
	Dispose()
}

// UseController creates a controller and registers it for automatic disposal.
// The controller will be disposed when the scope is disposed.
//
// Example:
//
//	player := core.UseController(scope, func() *video.Player {
//	    return video.NewPlayer(src)
//	})
func UseController[C Disposable](s *Scope, create func() C) C {
	controller := create()
	s.OnDispose(controller.Dispose)
	return controller
}

// UseSignal subscribes fn to a signal. The subscription is automatically
// cleaned up when the scope is disposed.
func UseSignal[T comparable](s *Scope, sig *Signal[T], fn func(T)) {
	unsub := sig.Subscribe(fn)
	s.OnDispose(unsub)
}
