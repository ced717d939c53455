package httputil_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	httputil "github.com/nspcc-dev/eigentrust-node/pkg/util/http"
	"github.com/stretchr/testify/require"
)

func TestServer(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	require.Panics(t, func() { httputil.New(httputil.Prm{Handler: handler}) })
	require.Panics(t, func() { httputil.New(httputil.Prm{Listener: lis}) })
	require.Panics(t, func() {
		httputil.New(httputil.Prm{Listener: lis, Handler: handler}, httputil.WithShutdownTimeout(0))
	})

	srv := httputil.New(httputil.Prm{
		Listener: lis,
		Handler:  handler,
	}, httputil.WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get("http://" + srv.Addr().String())
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, "pong", string(body))

	cancel()
	require.NoError(t, <-done)

	_, err = http.Get("http://" + srv.Addr().String())
	require.Error(t, err)
}

func TestServer_ListenerFailure(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, lis.Close())

	srv := httputil.New(httputil.Prm{
		Listener: lis,
		Handler:  http.NotFoundHandler(),
	})

	require.Error(t, srv.Run(context.Background()))
}
