// Package core provides the host-side reactive primitives that focusable
// bindings are built on: ownership scopes with cleanup, tree-scoped context
// values, and observable signals.
//
// # Scopes
//
// A Scope owns cleanup functions and child scopes. Disposing a scope runs its
// cleanups in reverse registration order, which disposes children created
// after a cleanup was registered before that cleanup runs:
//
//	root := core.NewScope(nil)
//	row := core.NewScope(root)
//	row.OnDispose(func() { fmt.Println("row gone") })
//	root.Dispose() // prints "row gone"
//
// # Context Values
//
// Provide attaches a value to a scope; Lookup finds the nearest value for a
// key by walking toward the root. This is how enclosing constructs make
// themselves visible to descendants without threading parameters through
// every constructor.
//
// # Signals
//
// Signal holds a comparable value and notifies subscribers when it changes:
//
//	focused := core.NewSignal(false)
//	core.UseSignal(scope, focused, func(v bool) { redraw(v) })
//	focused.Set(true) // redraw(true)
//
// # Hooks
//
// UseController and UseSignal tie resources and subscriptions to a scope so
// they are released automatically on disposal.
package core
