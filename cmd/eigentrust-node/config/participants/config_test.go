package participantsconfig_test

import (
	"testing"

	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
	participantsconfig "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/participants"
	configtest "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/test"
	"github.com/stretchr/testify/require"
)

func TestParticipantsSection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		empty := configtest.EmptyConfig()

		require.Empty(t, participantsconfig.Keys(empty))
		require.Empty(t, participantsconfig.Seeds(empty))
		require.False(t, participantsconfig.Bootstrap(empty))
	})

	const path = "../../../../config/example/node"

	configtest.ForEachFileType(path, func(c *config.Config) {
		require.Empty(t, participantsconfig.Keys(c))
		require.Equal(t, []string{
			"3xeGdyP9fYPBeF4a5AsNkMRw64kZP6jajaME8567W8NF",
			"89FMN53JkVs7Wz4EqAnt5KrYMyovYYzSPZHzjFzFzVAv",
			"GnTHsmTDVzGUKbGoSYVsEs5AirgSma97tT57yYaWxZYn",
		}, participantsconfig.Seeds(c))
		require.True(t, participantsconfig.Bootstrap(c))
	})
}
