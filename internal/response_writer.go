package internal

import (
	"net/http"
	"sync"
)

// ResponseWriter records the status and size of a response and runs
// registered hooks right before the header is sent.
//
// For HTMX requests, redirect and error statuses go out as 200 so htmx swaps
// the rendered error fragment in. 2xx statuses pass through untouched. A
// handler whose target must never receive an error fragment calls
// KeepStatus.
type ResponseWriter struct {
	http.ResponseWriter
	isHTMX bool

	mu      sync.Mutex
	status  int
	size    int64
	written bool
	hooks   []func()
}

// NewResponseWriter wraps w. isHTMX enables the status rewrite.
func NewResponseWriter(w http.ResponseWriter, isHTMX bool) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, isHTMX: isHTMX, status: http.StatusOK}
}

// OnBeforeWrite registers fn to run once, before the header is sent.
func (w *ResponseWriter) OnBeforeWrite(fn func()) {
	w.mu.Lock()
	w.hooks = append(w.hooks, fn)
	w.mu.Unlock()
}

// WriteHeader sends code. Only the first call has an effect; Status keeps
// the handler's code even when a different one went on the wire.
func (w *ResponseWriter) WriteHeader(code int) {
	w.commit(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	w.commit(http.StatusOK)
	n, err := w.ResponseWriter.Write(b)
	w.mu.Lock()
	w.size += int64(n)
	w.mu.Unlock()
	return n, err
}

// commit sends the header once. Hooks run outside the lock so they may set
// headers or inspect the writer.
func (w *ResponseWriter) commit(code int) {
	w.mu.Lock()
	if w.written {
		w.mu.Unlock()
		return
	}
	w.written = true
	w.status = code
	rewrite := w.isHTMX
	hooks := w.hooks
	w.hooks = nil
	w.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}

	if rewrite && code >= http.StatusMultipleChoices {
		code = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(code)
}

// KeepStatus sends the handler's status as is, even for HTMX requests. It
// has no effect once the header is sent.
func (w *ResponseWriter) KeepStatus() {
	w.mu.Lock()
	w.isHTMX = false
	w.mu.Unlock()
}

// Status returns the code the handler wrote (200 if none yet).
func (w *ResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Size returns the number of body bytes written.
func (w *ResponseWriter) Size() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

func (w *ResponseWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
