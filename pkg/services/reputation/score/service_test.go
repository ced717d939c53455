package score_test

import (
	"context"
	"testing"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	eigentrustcalc "github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust/calculator"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust/storage/epochs"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/ledger"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/reputationtest"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/score"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const arity = 3

func newService(t *testing.T, m ledger.Membership) *score.Service {
	return score.New(score.Prm{
		Ledger: ledger.New(ledger.Prm{Membership: m, Arity: arity}),
		Epochs: epochs.New(epochs.Prm{Capacity: 4}),
	}, score.WithLogger(zaptest.NewLogger(t)))
}

type panicMembership struct{}

func (panicMembership) IsMember(reputation.PeerID) bool {
	panic("broken registry")
}

func TestNew(t *testing.T) {
	require.Panics(t, func() { score.New(score.Prm{}) })
	require.Panics(t, func() {
		score.New(score.Prm{Ledger: ledger.New(ledger.Prm{Membership: ledger.OpenSet{}, Arity: 1})})
	})
}

func TestService(t *testing.T) {
	ctx := context.Background()
	keys := reputationtest.Keys(t, 4)
	pks := reputationtest.PublicKeys(keys)

	set, err := ledger.NewFixedSet(pks[:3])
	require.NoError(t, err)

	s := newService(t, set)

	for _, att := range reputationtest.ThreePeers(t, keys[:3], arity) {
		require.NoError(t, s.Submit(ctx, att))
	}

	err = s.Submit(ctx, reputationtest.Attestation(t, keys, 3, arity, 1))
	require.ErrorIs(t, err, reputation.ErrInvalidAttestation)

	att, err := s.Attestation(ctx, pks[0])
	require.NoError(t, err)
	require.True(t, att.Signer.Equal(pks[0]))

	_, err = s.Attestation(ctx, pks[3])
	require.ErrorIs(t, err, reputation.ErrAttestationNotFound)

	_, err = s.Query(ctx, pks[0], 123)
	require.ErrorIs(t, err, score.ErrNotFound)

	_, err = s.Latest(ctx)
	require.ErrorIs(t, err, score.ErrNotFound)

	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 3)

	calc := eigentrustcalc.New(eigentrustcalc.Prm{Iterations: 10, InitialScore: 0.5})

	res, err := calc.Calculate(123, []reputation.PeerID{pks[0].ID(), pks[1].ID(), pks[2].ID()}, snapshot)
	require.NoError(t, err)

	require.NoError(t, s.Install(ctx, res))

	ok, err := s.HasResult(ctx, 123)
	require.NoError(t, err)
	require.True(t, ok)

	v, err := s.Query(ctx, pks[0], 123)
	require.NoError(t, err)
	require.InDelta(t, 0.3750021168859759, v, 1e-12)

	contribs, err := s.Contributions(ctx, pks[0], 123)
	require.NoError(t, err)
	require.Len(t, contribs, 10)
	require.Equal(t, v, contribs[9])

	_, err = s.Query(ctx, pks[3], 123)
	require.ErrorIs(t, err, score.ErrNotFound)

	_, err = s.Contributions(ctx, pks[3], 123)
	require.ErrorIs(t, err, score.ErrNotFound)

	_, err = s.Query(ctx, pks[0], 124)
	require.ErrorIs(t, err, score.ErrNotFound)

	latest, err := s.Latest(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 123, latest.Epoch)
}

func TestService_Bootstrap(t *testing.T) {
	ctx := context.Background()
	keys := reputationtest.Keys(t, arity)

	s := newService(t, ledger.OpenSet{})

	require.NoError(t, s.Bootstrap(ctx, keys, 1000))

	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, arity)
}

func TestService_LockError(t *testing.T) {
	ctx := context.Background()
	keys := reputationtest.Keys(t, 3)

	s := newService(t, panicMembership{})

	err := s.Submit(ctx, reputationtest.Attestation(t, keys, 0, arity, 1))
	require.ErrorIs(t, err, score.ErrLock)

	_, err = s.Query(ctx, reputation.PublicKeyOf(keys[0]), 1)
	require.ErrorIs(t, err, score.ErrLock)

	_, err = s.Snapshot(ctx)
	require.ErrorIs(t, err, score.ErrLock)

	cctx, cancel := context.WithCancel(ctx)
	cancel()

	_, err = newService(t, ledger.OpenSet{}).Latest(cctx)
	require.ErrorIs(t, err, score.ErrLock)
}
