package internal_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trizel-ai/trizel/internal"
)

func TestAppRun(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routesFunc(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			return c.String(http.StatusOK, "up")
		})
	})))

	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan net.Addr, 1)
	hookCalls := make(chan string, 2)

	done := make(chan error, 1)
	go func() {
		done <- app.Run(":0",
			internal.Address("127.0.0.1:0"),
			internal.WithContext(ctx),
			internal.ShutdownTimeout(time.Second),
			internal.OnListen(func(a net.Addr) { addrCh <- a }),
			internal.ShutdownHook(func(context.Context) error {
				hookCalls <- "first"
				return nil
			}),
			internal.ShutdownHook(func(context.Context) error {
				hookCalls <- "second"
				return errors.New("cache close failed")
			}),
		)
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Equal(t, "up", string(body))

	cancel()

	select {
	case err := <-done:
		require.ErrorContains(t, err, "cache close failed")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	require.Equal(t, "first", <-hookCalls)
	require.Equal(t, "second", <-hookCalls)
}

func TestAppRunListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	err = internal.New().Run(ln.Addr().String())
	require.Error(t, err)
}
