// Package errors provides structured error handling for the weft engine.
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
	// KindElement indicates a malformed element description.
	KindElement
	// KindHook indicates a misuse of the state-hook API.
	KindHook
	// KindRender indicates a failure while producing a component's output.
	KindRender
	// KindCommit indicates a failure while applying effects to the host tree.
	KindCommit
	// KindInternal indicates a breached engine invariant.
	KindInternal
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindHook:
		return "hook"
	case KindRender:
		return "render"
	case KindCommit:
		return "commit"
	case KindInternal:
		return "internal"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WeftError represents a structured error in the weft engine.
type WeftError struct {
	// Op is the operation that failed (e.g., "core.commitPlacement").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Fiber names the fiber involved, if applicable (host tag or component name).
	Fiber string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WeftError) Error() string {
	if e.Fiber != "" {
		return fmt.Sprintf("%s [%s] fiber=%s: %v", e.Op, e.Kind, e.Fiber, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WeftError) Unwrap() error {
	return e.Err
}

// HookError reports a state hook invoked while no fiber was being
// processed. It is the one engine error surfaced to the caller (as a
// panic value) rather than routed through the handler, since it
// signals a programming error at the call site.
type HookError struct {
	// Op is the hook entry point that was misused (e.g., "core.UseState").
	Op string
	// StackTrace contains the call stack at the time of the misuse.
	StackTrace string
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s called outside component render", e.Op)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.renderComposite").
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

// RenderError represents a failure inside a user component function.
type RenderError struct {
	// Component is the name of the component whose render failed.
	Component string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RenderError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in component %s: %v", e.Component, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in component %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("unknown error in component %s", e.Component)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the weft engine.
type ErrorHandler interface {
	// HandleError is called when a recoverable engine error occurs.
	HandleError(err *WeftError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleRenderError is called when a component render fails.
	HandleRenderError(err *RenderError)
}
