// Package errors provides structured error reporting for spatial navigation.
//
// The focusable binding itself raises no errors. Registries report contract
// violations (duplicate or unknown keys) and recovered panics here, and a
// process-wide ErrorHandler decides what to do with them.
package errors

import (
	goerrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRegistry indicates a registry contract violation, such as adding
	// a key twice or updating a key that was never added.
	KindRegistry
	// KindConfig indicates invalid scene or navigator configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindRegistry:
		return "registry"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel causes for registry errors. Match them with errors.Is.
var (
	ErrDuplicateKey = goerrors.New("focus key already registered")
	ErrUnknownKey   = goerrors.New("focus key not registered")
	ErrEmptyKey     = goerrors.New("empty focus key")
)

// NavError represents a structured navigation error.
type NavError struct {
	// Op is the operation that failed (e.g., "focus.Navigator.AddFocusable").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// FocusKey is the registration involved, if any.
	FocusKey string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *NavError) Error() string {
	if e.FocusKey != "" {
		return fmt.Sprintf("%s [%s] focusKey=%s: %v", e.Op, e.Kind, e.FocusKey, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *NavError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.replay").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by navigation components.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *NavError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
