package middlewares

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/trizel-ai/trizel/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that puts a deadline on the request context.
// If the handler does not finish in time a *TimeoutError is returned to the
// app's error handler. Handlers observe the deadline through c.Done(), so
// status reads and content rendering stop early.
//
// The handler goroutine keeps running after the deadline until it returns.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			tc := withRequestContext(c, ctx)

			done := make(chan error, 1)
			go func() {
				done <- next(tc)
			}()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					c.LogWarn("request timeout", "timeout", timeout.String())
					return &TimeoutError{Duration: timeout}
				}
				return ctx.Err()
			}
		}
	}
}

type requestContext = internal.Context

// timeoutContext overrides the context.Context half of an internal.Context.
// Values stored with Set after the deadline was attached live in both the
// wrapped context and ctx, so Request and Value see them.
type timeoutContext struct {
	requestContext
	ctx context.Context
}

func withRequestContext(c internal.Context, ctx context.Context) internal.Context {
	return &timeoutContext{requestContext: c, ctx: ctx}
}

func (c *timeoutContext) Context() context.Context { return c.ctx }

func (c *timeoutContext) Deadline() (time.Time, bool) { return c.ctx.Deadline() }
func (c *timeoutContext) Done() <-chan struct{} { return c.ctx.Done() }
func (c *timeoutContext) Err() error { return c.ctx.Err() }

func (c *timeoutContext) Value(key any) any {
	if v := c.ctx.Value(key); v != nil {
		return v
	}
	return c.requestContext.Value(key)
}

// Request returns the request carrying the deadline, so handlers mounted
// behind this middleware observe it too.
func (c *timeoutContext) Request() *http.Request {
	return c.requestContext.Request().WithContext(c.ctx)
}

func (c *timeoutContext) Set(key, value any) {
	c.requestContext.Set(key, value)
	c.ctx = context.WithValue(c.ctx, key, value)
}
