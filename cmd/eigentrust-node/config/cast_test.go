package config_test

import (
	"testing"
	"time"

	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
	configtest "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/test"
	"github.com/stretchr/testify/require"
)

func TestStringSlice(t *testing.T) {
	configtest.ForEachFileType("test/config", func(c *config.Config) {
		cs := c.Sub("slice")

		require.Equal(t, []string{"a", "b"}, config.StringSlice(cs, "correct"))
		require.Empty(t, config.StringSliceSafe(cs, "missing"))
	})
}

func TestString(t *testing.T) {
	configtest.ForEachFileType("test/config", func(c *config.Config) {
		require.Equal(t, "some value", config.String(c, "value"))
		require.Equal(t, "", config.StringSafe(c, "missing"))
	})
}

func TestDuration(t *testing.T) {
	configtest.ForEachFileType("test/config", func(c *config.Config) {
		c = c.Sub("duration")

		require.Equal(t, 15*time.Minute, config.Duration(c, "correct"))
		require.Panics(t, func() { config.Duration(c, "incorrect") })
		require.Zero(t, config.DurationSafe(c, "incorrect"))
	})
}

func TestBool(t *testing.T) {
	configtest.ForEachFileType("test/config", func(c *config.Config) {
		c = c.Sub("bool")

		require.True(t, config.Bool(c, "correct_true"))
		require.False(t, config.Bool(c, "correct_false"))
		require.Panics(t, func() { config.Bool(c, "incorrect") })
		require.False(t, config.BoolSafe(c, "incorrect"))
	})
}

func TestNumbers(t *testing.T) {
	configtest.ForEachFileType("test/config", func(c *config.Config) {
		c = c.Sub("number")

		require.EqualValues(t, 42, config.Int(c, "int"))
		require.EqualValues(t, -10, config.IntSafe(c, "negative"))
		require.EqualValues(t, 7, config.Uint(c, "uint"))
		require.Zero(t, config.UintSafe(c, "incorrect"))
		require.Panics(t, func() { config.Uint(c, "incorrect") })
		require.Equal(t, 0.25, config.Float(c, "float"))
		require.Zero(t, config.FloatSafe(c, "incorrect"))
		require.Panics(t, func() { config.Float(c, "incorrect") })
	})
}
