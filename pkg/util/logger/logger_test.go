package logger_test

import (
	"testing"

	"github.com/nspcc-dev/eigentrust-node/pkg/util/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	l, reload, err := logger.NewLogger(nil)
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zap.InfoLevel))
	require.False(t, l.Core().Enabled(zap.DebugLevel))

	var prm logger.Prm

	require.Error(t, prm.SetLevelString("loud"))
	require.Error(t, prm.SetEncoding("xml"))

	require.NoError(t, prm.SetLevelString("debug"))
	require.NoError(t, prm.SetEncoding(logger.EncodingJSON))

	require.NoError(t, reload(&prm))
	require.True(t, l.Core().Enabled(zap.DebugLevel))

	l, _, err = logger.NewLogger(&prm)
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zap.DebugLevel))
}
