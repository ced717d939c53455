package eigentrustconfig_test

import (
	"testing"
	"time"

	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
	eigentrustconfig "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/eigentrust"
	configtest "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/test"
	"github.com/stretchr/testify/require"
)

func TestEigenTrustSection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		empty := configtest.EmptyConfig()

		require.Equal(t, eigentrustconfig.EpochIntervalDefault, eigentrustconfig.EpochInterval(empty))
		require.EqualValues(t, eigentrustconfig.IterationsDefault, eigentrustconfig.Iterations(empty))
		require.Equal(t, eigentrustconfig.InitialScoreDefault, eigentrustconfig.InitialScore(empty))
		require.Zero(t, eigentrustconfig.Alpha(empty))
		require.Equal(t, eigentrustconfig.NormalizationDefault, eigentrustconfig.Normalization(empty))
		require.Nil(t, eigentrustconfig.PreTrust(empty))
		require.False(t, eigentrustconfig.RequireComplete(empty))
		require.Equal(t, eigentrustconfig.ArityDefault, eigentrustconfig.Arity(empty))
		require.Equal(t, eigentrustconfig.CacheSizeDefault, eigentrustconfig.CacheSize(empty))
		require.EqualValues(t, eigentrustconfig.InitialTotalScoreDefault, eigentrustconfig.InitialTotalScore(empty))
	})

	const path = "../../../../config/example/node"

	configtest.ForEachFileType(path, func(c *config.Config) {
		require.Equal(t, time.Minute, eigentrustconfig.EpochInterval(c))
		require.EqualValues(t, 20, eigentrustconfig.Iterations(c))
		require.Equal(t, 0.25, eigentrustconfig.InitialScore(c))
		require.Equal(t, 0.1, eigentrustconfig.Alpha(c))
		require.Equal(t, "step", eigentrustconfig.Normalization(c))
		require.True(t, eigentrustconfig.RequireComplete(c))
		require.Equal(t, 3, eigentrustconfig.Arity(c))
		require.Equal(t, 32, eigentrustconfig.CacheSize(c))
		require.EqualValues(t, 900, eigentrustconfig.InitialTotalScore(c))
	})
}

func TestPreTrust(t *testing.T) {
	configtest.ForEachFileType("testdata/pre_trust", func(c *config.Config) {
		require.Equal(t, map[string]float64{
			"3XFCqfSwRXVaAxSY9FfBu2yFFa6xgnLHTG1b7Ch4DqRp": 1,
			"8R6rZf5E5Bb2NYTm5wvPHqhh8MDbHAGmGHQkX4Fqv3PD": 0.5,
		}, eigentrustconfig.PreTrust(c))

		require.Panics(t, func() { eigentrustconfig.PreTrust(c.Sub("invalid")) })
	})
}

func TestEpochInterval(t *testing.T) {
	for _, tc := range []struct {
		env string
		exp time.Duration
	}{
		{env: "2s", exp: 2 * time.Second},
		{env: "1m30s", exp: 90 * time.Second},
		{env: "1500ms", exp: eigentrustconfig.EpochIntervalDefault},
		{env: "999ms", exp: eigentrustconfig.EpochIntervalDefault},
		{env: "-5s", exp: eigentrustconfig.EpochIntervalDefault},
	} {
		t.Setenv("EIGENTRUST_EIGENTRUST_EPOCH_INTERVAL", tc.env)

		require.Equal(t, tc.exp, eigentrustconfig.EpochInterval(configtest.EmptyConfig()), tc.env)
	}
}
