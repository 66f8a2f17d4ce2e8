package middlewares_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trizel-ai/trizel/internal"
	"github.com/trizel-ai/trizel/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	newCtx := func() *testContext {
		return newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fr/", nil))
	}

	t.Run("converts panic to PanicError", func(t *testing.T) {
		t.Parallel()

		handler := middlewares.Recover()(func(internal.Context) error {
			panic("template exploded")
		})

		err := handler(newCtx())
		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "template exploded", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Equal(t, "recovered panic: template exploded", err.Error())
	})

	t.Run("passes handler result through", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("not found")
		require.ErrorIs(t, middlewares.Recover()(func(internal.Context) error { return sentinel })(newCtx()), sentinel)
		require.NoError(t, middlewares.Recover()(func(internal.Context) error { return nil })(newCtx()))
	})

	t.Run("panic values of any type", func(t *testing.T) {
		t.Parallel()

		for _, v := range []any{errors.New("boom"), 42, struct{ Page string }{"/ar/"}} {
			handler := middlewares.Recover()(func(internal.Context) error { panic(v) })
			pe, ok := middlewares.AsPanicError(handler(newCtx()))
			require.True(t, ok)
			require.Equal(t, v, pe.Value)
		}
	})

	t.Run("panic(nil) surfaces as runtime.PanicNilError", func(t *testing.T) {
		t.Parallel()

		handler := middlewares.Recover()(func(internal.Context) error { panic(nil) })
		pe, ok := middlewares.AsPanicError(handler(newCtx()))
		require.True(t, ok)
		var pne *runtime.PanicNilError
		require.ErrorAs(t, pe.Value.(error), &pne)
	})

	t.Run("stack size bounds the trace", func(t *testing.T) {
		t.Parallel()

		handler := middlewares.Recover(middlewares.WithRecoverStackSize(64))(func(internal.Context) error {
			panic("x")
		})
		pe, _ := middlewares.AsPanicError(handler(newCtx()))
		require.LessOrEqual(t, len(pe.Stack), 64)
	})

	t.Run("disable stack keeps it nil and logs without it", func(t *testing.T) {
		t.Parallel()

		log, records := newCaptureLogger()
		c := newCtx()
		c.logger = log

		handler := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(internal.Context) error {
			panic("x")
		})
		pe, _ := middlewares.AsPanicError(handler(c))
		require.Nil(t, pe.Stack)

		rec := <-records
		require.Equal(t, slog.LevelError, rec.Level)
		require.Equal(t, "panic recovered", rec.Message)
		rec.Attrs(func(a slog.Attr) bool {
			require.NotEqual(t, "stack", a.Key)
			return true
		})
	})
}
