package nats

import (
	"context"
	"testing"
	"time"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNew(t *testing.T) {
	w := New("eigentrust.scores",
		WithLogger(zaptest.NewLogger(t)),
		WithStream("scores"),
		WithStream(""),
		WithTimeout(100*time.Millisecond),
		WithConnectionName("test"),
	)

	require.Equal(t, "eigentrust.scores", w.subject)
	require.Equal(t, "scores", w.stream)
	// timeout, name and 3 handlers
	require.Len(t, w.nOpts, 5)
}

func TestWriter_NotConnected(t *testing.T) {
	w := New("eigentrust.scores", WithLogger(zaptest.NewLogger(t)))

	// nothing listens on the discard port
	err := w.Connect(context.Background(), "nats://127.0.0.1:9")
	require.Error(t, err)

	require.ErrorIs(t, w.Notify(context.Background(), eigentrust.Result{Epoch: 1}), errConnIsClosed)
}
