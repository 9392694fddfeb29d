// Package errors provides structured error reporting for the scroll core.
//
// Nothing in the core returns these errors to its callers: gesture, bounds
// and guide anomalies are absorbed where they happen and reported here so a
// host can log or collect them.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindGeometry indicates degenerate or non-finite bounds.
	KindGeometry
	// KindGesture indicates malformed gesture data or a forced release.
	KindGesture
	// KindGuide indicates a snap guide or anchor problem.
	KindGuide
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindGeometry:
		return "geometry"
	case KindGesture:
		return "gesture"
	case KindGuide:
		return "guide"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ScrollError represents a structured error in the scroll core.
type ScrollError struct {
	// Op is the operation that failed (e.g., "scroll.Stack.UpdateBounds").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Stack is the id of the scroll stack involved, if any.
	Stack string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ScrollError) Error() string {
	if e.Stack != "" {
		return fmt.Sprintf("%s [%s] stack=%s: %v", e.Op, e.Kind, e.Stack, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ScrollError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "scroll.Stack.notify").
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

// ValueError describes a value that was rejected and what replaced it.
type ValueError struct {
	// Field names the rejected input (e.g., "translation.x").
	Field string
	// Got is the rejected value.
	Got any
	// Used is the value used instead.
	Used any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s %v, using %v", e.Field, e.Got, e.Used)
}

// ErrorHandler receives errors reported by the scroll core.
type ErrorHandler interface {
	// HandleError is called when an error is absorbed.
	HandleError(err *ScrollError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
