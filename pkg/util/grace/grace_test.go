package grace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sys/unix"
)

func TestNewGracefulContext(t *testing.T) {
	var reloads atomic.Int32

	ctx := NewGracefulContext(zaptest.NewLogger(t), func() { reloads.Inc() })

	require.NoError(t, unix.Kill(unix.Getpid(), unix.SIGHUP))
	require.Eventually(t, func() bool { return reloads.Load() == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, ctx.Err())

	require.NoError(t, unix.Kill(unix.Getpid(), unix.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context is not cancelled")
	}
}
