package middlewares

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// PanicError is returned by Recover when a handler panics. The error
// handler renders it as a 500 page.
type PanicError struct {
	Value any
	// Stack is nil when stack capture is disabled.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// TimeoutError is returned by Timeout when a handler outlives its budget.
// The error handler renders it as 503.
type TimeoutError struct {
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return "request exceeded " + e.Duration.String()
}

func (e *TimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

func IsPanicError(err error) bool {
	_, ok := AsPanicError(err)
	return ok
}

func IsTimeoutError(err error) bool {
	_, ok := AsTimeoutError(err)
	return ok
}

// AsPanicError returns the first PanicError in err's chain.
func AsPanicError(err error) (*PanicError, bool) {
	return find[*PanicError](err)
}

// AsTimeoutError returns the first TimeoutError in err's chain.
func AsTimeoutError(err error) (*TimeoutError, bool) {
	return find[*TimeoutError](err)
}

func find[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}
