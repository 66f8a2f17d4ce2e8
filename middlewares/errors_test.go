package middlewares_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trizel-ai/trizel/middlewares"
)

func TestErrorTypes(t *testing.T) {
	t.Parallel()

	t.Run("messages", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "recovered panic: <nil>", (&middlewares.PanicError{}).Error())
		require.Equal(t, "recovered panic: 42", (&middlewares.PanicError{Value: 42}).Error())
		require.Equal(t, "request exceeded 1.5s", (&middlewares.TimeoutError{Duration: 1500 * time.Millisecond}).Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		t.Parallel()

		errTemplate := errors.New("template exploded")
		require.ErrorIs(t, &middlewares.PanicError{Value: errTemplate}, errTemplate)
		require.NoError(t, (&middlewares.PanicError{Value: "text"}).Unwrap())
		require.ErrorIs(t, &middlewares.TimeoutError{Duration: time.Second}, context.DeadlineExceeded)
	})

	t.Run("wrapped errors are found", func(t *testing.T) {
		t.Parallel()

		pe := fmt.Errorf("render: %w", &middlewares.PanicError{Value: "x"})
		te := fmt.Errorf("status: %w", &middlewares.TimeoutError{Duration: time.Second})

		require.True(t, middlewares.IsPanicError(pe))
		require.False(t, middlewares.IsPanicError(te))
		require.True(t, middlewares.IsTimeoutError(te))
		require.False(t, middlewares.IsTimeoutError(pe))

		got, ok := middlewares.AsTimeoutError(te)
		require.True(t, ok)
		require.Equal(t, time.Second, got.Duration)
	})

	t.Run("nil and foreign errors", func(t *testing.T) {
		t.Parallel()

		for _, err := range []error{nil, errors.New("other")} {
			require.False(t, middlewares.IsPanicError(err))
			require.False(t, middlewares.IsTimeoutError(err))
			_, ok := middlewares.AsPanicError(err)
			require.False(t, ok)
			_, ok = middlewares.AsTimeoutError(err)
			require.False(t, ok)
		}
	})
}
