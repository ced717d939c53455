package natsconfig_test

import (
	"testing"
	"time"

	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
	natsconfig "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/nats"
	configtest "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/test"
	"github.com/stretchr/testify/require"
)

func TestNATSSection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		empty := configtest.EmptyConfig()

		require.False(t, natsconfig.Enabled(empty))
		require.Empty(t, natsconfig.Endpoint(empty))
		require.Equal(t, natsconfig.SubjectDefault, natsconfig.Subject(empty))
		require.Equal(t, natsconfig.StreamDefault, natsconfig.Stream(empty))
		require.Equal(t, natsconfig.TimeoutDefault, natsconfig.Timeout(empty))
		require.Empty(t, natsconfig.CertificatePath(empty))
		require.Empty(t, natsconfig.KeyPath(empty))
		require.Empty(t, natsconfig.CAPath(empty))
	})

	const path = "../../../../config/example/node"

	configtest.ForEachFileType(path, func(c *config.Config) {
		require.False(t, natsconfig.Enabled(c))
		require.Equal(t, "nats://localhost:4222", natsconfig.Endpoint(c))
		require.Equal(t, "reputation.global", natsconfig.Subject(c))
		require.Equal(t, "reputation", natsconfig.Stream(c))
		require.Equal(t, 7*time.Second, natsconfig.Timeout(c))
		require.Equal(t, "/cert/path", natsconfig.CertificatePath(c))
		require.Equal(t, "/key/path", natsconfig.KeyPath(c))
		require.Equal(t, "/ca/path", natsconfig.CAPath(c))
	})
}
