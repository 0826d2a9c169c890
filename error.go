package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error provides rich context about stage failures.
// It wraps the underlying error with information about where and when
// the failure occurred, what data was being processed, and whether
// the failure was due to timeout or cancellation.
type Error[T any] struct {
	Timestamp time.Time
	InputData T
	Err       error
	Path      []Name
	Duration  time.Duration
	Timeout   bool
	Canceled  bool
}

// Error implements the error interface, rendering the processor path
// followed by the underlying error.
func (e *Error[T]) Error() string {
	if e == nil {
		return "<nil>"
	}
	path := strings.Join(e.Path, " -> ")

	if e.Timeout {
		return fmt.Sprintf("%s timed out after %v: %v", path, e.Duration, e.Err)
	}
	if e.Canceled {
		return fmt.Sprintf("%s canceled after %v: %v", path, e.Duration, e.Err)
	}
	return fmt.Sprintf("%s failed after %v: %v", path, e.Duration, e.Err)
}

// Unwrap returns the underlying error, so errors.Is and errors.As see
// through the stage wrapper.
func (e *Error[T]) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsTimeout reports whether the failure was caused by a deadline.
func (e *Error[T]) IsTimeout() bool {
	if e == nil {
		return false
	}
	return e.Timeout || errors.Is(e.Err, context.DeadlineExceeded)
}

// IsCanceled reports whether the failure was caused by cancellation.
func (e *Error[T]) IsCanceled() bool {
	if e == nil {
		return false
	}
	return e.Canceled || errors.Is(e.Err, context.Canceled)
}

// ValidationError is the only domain failure. It carries a single message
// naming the rule a record violated; there is no error code, callers inspect
// Detail.
type ValidationError struct {
	Detail string
}

// Error renders the error as "Validation error: <detail>".
func (e *ValidationError) Error() string {
	return "Validation error: " + e.Detail
}

// invalid builds a *ValidationError from a format string.
func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

// panicError wraps a recovered panic so it can travel as an error.
type panicError struct {
	processorName Name
	sanitized     string
}

func (p *panicError) Error() string {
	return fmt.Sprintf("panic in processor %q: %s", p.processorName, p.sanitized)
}

// recoverFromPanic turns a panic inside a processor into an *Error[T].
// It must be deferred with named results.
func recoverFromPanic[T any](result *T, err *error, name Name, input T) {
	r := recover()
	if r == nil {
		return
	}
	var zero T
	*result = zero
	*err = &Error[T]{
		Path:      []Name{name},
		InputData: input,
		Err: &panicError{
			processorName: name,
			sanitized:     sanitizePanicMessage(r),
		},
		Timestamp: time.Now(),
	}
}

// sanitizePanicMessage keeps panic text short enough for logs.
func sanitizePanicMessage(r any) string {
	if r == nil {
		return "unknown panic (nil value)"
	}
	msg := fmt.Sprintf("%v", r)
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return "panic occurred: " + msg
}
