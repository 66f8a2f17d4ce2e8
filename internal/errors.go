package internal

import (
	"errors"
	"net/http"
)

// HTTPError is returned by handlers to pick the response status and the
// text shown on the error page. Err is logged but never rendered.
type HTTPError struct {
	Code      int
	Message   string
	Title     string
	Detail    string
	ErrorCode string // translation key for the message, if any
	RequestID string
	Err       error
}

// NewHTTPError builds an HTTPError and applies opts in order.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	e := &HTTPError{Code: code, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Error returns the user-facing message, or the status text when empty.
func (e *HTTPError) Error() string {
	if e.Message == "" {
		return e.StatusText()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error { return e.Err }
func (e *HTTPError) StatusCode() int { return e.Code }

// StatusText is the standard reason phrase for Code.
func (e *HTTPError) StatusText() string { return http.StatusText(e.Code) }

// HTTPErrorOption sets an optional HTTPError field.
type HTTPErrorOption func(*HTTPError)

func WithTitle(title string) HTTPErrorOption {
	return func(e *HTTPError) { e.Title = title }
}

func WithDetail(detail string) HTTPErrorOption {
	return func(e *HTTPError) { e.Detail = detail }
}

func WithErrorCode(code string) HTTPErrorOption {
	return func(e *HTTPError) { e.ErrorCode = code }
}

func WithRequestID(id string) HTTPErrorOption {
	return func(e *HTTPError) { e.RequestID = id }
}

// WithError attaches the cause for logging and errors.Is matching.
func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) { e.Err = err }
}

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message, opts...)
}

func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusServiceUnavailable, message, opts...)
}

// AsHTTPError returns the first *HTTPError in err's chain, or nil.
func AsHTTPError(err error) *HTTPError {
	var he *HTTPError
	if !errors.As(err, &he) {
		return nil
	}
	return he
}

// IsHTTPError reports whether err's chain holds an *HTTPError.
func IsHTTPError(err error) bool { return AsHTTPError(err) != nil }
