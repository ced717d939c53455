// Package reputationtest provides helpers for testing reputation components.
package reputationtest

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/stretchr/testify/require"
)

// Seed returns deterministic seed number i.
func Seed(i int) []byte {
	seed := make([]byte, reputation.SeedSize)
	for j := range seed {
		seed[j] = byte(i + 1)
	}

	return seed
}

// Keys returns n deterministic private keys.
func Keys(t testing.TB, n int) []*eddsa.PrivateKey {
	res := make([]*eddsa.PrivateKey, n)

	for i := range res {
		k, err := reputation.KeyFromSeed(Seed(i))
		require.NoError(t, err)

		res[i] = k
	}

	return res
}

// PublicKeys returns identities of the key holders.
func PublicKeys(keys []*eddsa.PrivateKey) []reputation.PublicKey {
	res := make([]reputation.PublicKey, len(keys))

	for i := range keys {
		res[i] = reputation.PublicKeyOf(keys[i])
	}

	return res
}

// Attestation signs the statement of keys[i] which trusts
// the next keys in the ring with the given scores. Unused slots
// up to arity are absent.
func Attestation(t testing.TB, keys []*eddsa.PrivateKey, i int, arity int, scores ...uint64) reputation.Attestation {
	neighbours := make([]reputation.PublicKey, arity)
	values := make([]fr.Element, arity)

	for j := range scores {
		neighbours[j] = reputation.PublicKeyOf(keys[(i+j+1)%len(keys)])
		values[j] = reputation.ScoreFromUint64(scores[j])
	}

	att, err := reputation.NewAttestation(keys[i], neighbours, values)
	require.NoError(t, err)

	return att
}

// ThreePeers returns attestations of the three participants each
// trusting the two others with 10 and 20 respectively: the first
// participant trusts the second with 10 and the third with 20,
// the second trusts the first with 10 and the third with 20, the
// third trusts the first with 10 and the second with 20.
func ThreePeers(t testing.TB, keys []*eddsa.PrivateKey, arity int) []reputation.Attestation {
	require.Len(t, keys, 3)

	order := [3][2]int{{1, 2}, {0, 2}, {0, 1}}
	res := make([]reputation.Attestation, 3)

	for i := range order {
		neighbours := make([]reputation.PublicKey, arity)
		values := make([]fr.Element, arity)

		neighbours[0] = reputation.PublicKeyOf(keys[order[i][0]])
		neighbours[1] = reputation.PublicKeyOf(keys[order[i][1]])
		values[0] = reputation.ScoreFromUint64(10)
		values[1] = reputation.ScoreFromUint64(20)

		att, err := reputation.NewAttestation(keys[i], neighbours, values)
		require.NoError(t, err)

		res[i] = att
	}

	return res
}
