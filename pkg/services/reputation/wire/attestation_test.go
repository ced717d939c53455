package wire_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/reputationtest"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/wire"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	keys := reputationtest.Keys(t, 3)
	att := reputationtest.Attestation(t, keys, 0, 4, 10, 20)

	data, err := wire.Marshal(att)
	require.NoError(t, err)

	restored, err := wire.Unmarshal(data)
	require.NoError(t, err)

	require.Equal(t, att, restored)
	require.True(t, restored.VerifySignature())
	require.True(t, restored.Neighbours[3].IsAbsent())
}

func TestFormat(t *testing.T) {
	keys := reputationtest.Keys(t, 2)
	att := reputationtest.Attestation(t, keys, 0, 1, 7)

	data, err := wire.Marshal(att)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))

	for _, k := range []string{"sig_r_x", "sig_r_y", "sig_s", "pk", "neighbours", "scores"} {
		require.Contains(t, m, k)
	}

	var scores [][]int
	require.NoError(t, json.Unmarshal(m["scores"], &scores))
	require.Len(t, scores, 1)
	require.Len(t, scores[0], 32)
	require.Equal(t, 7, scores[0][31])

	var pk [][]int
	require.NoError(t, json.Unmarshal(m["pk"], &pk))
	require.Len(t, pk, 2)
}

func TestUnmarshal_Invalid(t *testing.T) {
	keys := reputationtest.Keys(t, 3)
	att := reputationtest.Attestation(t, keys, 0, 3, 10, 20)

	data, err := wire.Marshal(att)
	require.NoError(t, err)

	t.Run("truncated", func(t *testing.T) {
		for _, n := range []int{0, 1, len(data) / 2, len(data) - 1} {
			_, err := wire.Unmarshal(data[:n])
			require.Error(t, err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		broken := bytes.Replace(data, []byte(`"scores"`), []byte(`"values"`), 1)

		_, err := wire.Unmarshal(broken)
		require.Error(t, err)
	})

	t.Run("byte overflow", func(t *testing.T) {
		raw := wire.FromAttestation(att)

		b, err := json.Marshal(raw)
		require.NoError(t, err)

		broken := bytes.Replace(b, []byte(`"sig_s":[`), []byte(`"sig_s":[256,`), 1)

		_, err = wire.Unmarshal(broken)
		require.Error(t, err)
	})

	t.Run("element length", func(t *testing.T) {
		resize := func(arr []any, n int) []any {
			res := make([]any, n)
			for i := range res {
				res[i] = float64(0)
			}
			copy(res, arr)
			return res
		}

		for _, tc := range []struct {
			name   string
			modify func(m map[string]any)
		}{
			{name: "long signature", modify: func(m map[string]any) {
				m["sig_s"] = resize(m["sig_s"].([]any), 33)
			}},
			{name: "short signature", modify: func(m map[string]any) {
				m["sig_r_x"] = resize(m["sig_r_x"].([]any), 31)
			}},
			{name: "empty signature", modify: func(m map[string]any) {
				m["sig_r_y"] = []any{}
			}},
			{name: "long key coordinate", modify: func(m map[string]any) {
				pk := m["pk"].([]any)
				pk[0] = resize(pk[0].([]any), 40)
			}},
			{name: "short neighbour coordinate", modify: func(m map[string]any) {
				nb := m["neighbours"].([]any)[1].([]any)
				nb[1] = resize(nb[1].([]any), 1)
			}},
			{name: "long score", modify: func(m map[string]any) {
				sc := m["scores"].([]any)
				sc[2] = resize(sc[2].([]any), 64)
			}},
		} {
			t.Run(tc.name, func(t *testing.T) {
				var m map[string]any
				require.NoError(t, json.Unmarshal(data, &m))

				tc.modify(m)

				broken, err := json.Marshal(m)
				require.NoError(t, err)

				_, err = wire.Unmarshal(broken)
				require.ErrorContains(t, err, "invalid field element length")
			})
		}
	})

	t.Run("non-canonical", func(t *testing.T) {
		raw := wire.FromAttestation(att)
		for i := range raw.Scores[0] {
			raw.Scores[0][i] = 0xff
		}

		_, err := raw.Attestation()
		require.Error(t, err)

		raw = wire.FromAttestation(att)
		raw.PK[0][0] = 0xff

		_, err = raw.Attestation()
		require.Error(t, err)
	})

	t.Run("trailing data", func(t *testing.T) {
		_, err := wire.Unmarshal(append(bytes.Clone(data), []byte(` {}`)...))
		require.Error(t, err)
	})

	t.Run("corrupted signature", func(t *testing.T) {
		raw := wire.FromAttestation(att)
		raw.SigS[0] ^= 1

		restored, err := raw.Attestation()
		require.NoError(t, err)
		require.False(t, restored.VerifySignature())
	})
}

func TestFromAttestation_Empty(t *testing.T) {
	raw := wire.FromAttestation(reputation.Attestation{})

	restored, err := raw.Attestation()
	require.NoError(t, err)
	require.True(t, restored.Signer.IsAbsent())
	require.Empty(t, restored.Neighbours)
}
