package notificator_test

import (
	"testing"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/notificator"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
	"github.com/stretchr/testify/require"
)

func TestFromResult(t *testing.T) {
	id := reputation.PeerID{1, 2, 3}

	n := notificator.FromResult(eigentrust.Result{
		Epoch:        10,
		Participants: []reputation.PeerID{id},
		Scores:       []float64{0.5},
	})

	require.EqualValues(t, 10, n.Epoch)
	require.Equal(t, []string{id.String()}, n.Participants)
	require.Equal(t, []float64{0.5}, n.Scores)
	require.Empty(t, n.Certificate)

	n = notificator.FromResult(eigentrust.Result{Certificate: []byte{0xff}})
	require.Equal(t, "/w==", n.Certificate)
}
