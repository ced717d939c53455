package reputation_test

import (
	"testing"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/reputationtest"
	"github.com/stretchr/testify/require"
)

func TestPublicKey(t *testing.T) {
	keys := reputationtest.Keys(t, 2)
	pk := reputation.PublicKeyOf(keys[0])

	require.True(t, pk.IsValid())
	require.False(t, pk.IsAbsent())

	t.Run("binary", func(t *testing.T) {
		b := pk.Bytes()
		require.Len(t, b, reputation.PublicKeySize)

		restored, err := reputation.PublicKeyFromBytes(b)
		require.NoError(t, err)
		require.True(t, restored.Equal(pk))

		_, err = reputation.PublicKeyFromBytes(b[1:])
		require.Error(t, err)
	})

	t.Run("string", func(t *testing.T) {
		restored, err := reputation.PublicKeyFromString(pk.String())
		require.NoError(t, err)
		require.True(t, restored.Equal(pk))

		_, err = reputation.PublicKeyFromString("abcd__123")
		require.Error(t, err)
	})

	t.Run("id", func(t *testing.T) {
		require.Equal(t, pk.ID(), reputation.PublicKeyOf(keys[0]).ID())
		require.NotEqual(t, pk.ID(), reputation.PublicKeyOf(keys[1]).ID())
	})

	t.Run("absent", func(t *testing.T) {
		absent := reputation.AbsentKey()
		require.True(t, absent.IsAbsent())
		require.False(t, absent.IsValid())
	})
}

func TestKeyFromSeed(t *testing.T) {
	k1, err := reputation.KeyFromSeed(reputationtest.Seed(0))
	require.NoError(t, err)

	k2, err := reputation.KeyFromSeed(reputationtest.Seed(0))
	require.NoError(t, err)

	require.True(t, reputation.PublicKeyOf(k1).Equal(reputation.PublicKeyOf(k2)))

	_, err = reputation.KeyFromSeed(make([]byte, reputation.SeedSize-1))
	require.Error(t, err)
}
