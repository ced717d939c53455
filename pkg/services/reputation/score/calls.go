package score

import (
	"context"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
	"go.uber.org/zap"
)

// ErrNotFound is returned when requested epoch has no result or the
// participant is not a part of it.
var ErrNotFound = errors.New("not found")

// Submit validates the attestation and stores it in the ledger. It does
// not trigger computation: the attestation is taken into account by the
// next scheduled run.
//
// Returns reputation.ErrInvalidAttestation if attestation is rejected,
// ErrLock if exclusive access failed.
func (s *Service) Submit(ctx context.Context, att reputation.Attestation) error {
	return s.guard.do(ctx, func() error {
		err := s.prm.Ledger.Add(att)
		if err != nil {
			s.opts.log.Debug("attestation rejected",
				zap.Stringer("signer", att.Signer),
				zap.String("error", err.Error()),
			)
		}

		return err
	})
}

// Attestation returns the stored attestation of the participant.
func (s *Service) Attestation(ctx context.Context, pk reputation.PublicKey) (reputation.Attestation, error) {
	var res reputation.Attestation

	err := s.guard.do(ctx, func() (err error) {
		res, err = s.prm.Ledger.Get(pk)
		return
	})

	return res, err
}

// Bootstrap seeds the ledger with equal trust attestations of the key
// holders.
func (s *Service) Bootstrap(ctx context.Context, keys []*eddsa.PrivateKey, initialTotalScore uint64) error {
	return s.guard.do(ctx, func() error {
		return s.prm.Ledger.Bootstrap(keys, initialTotalScore)
	})
}

// Snapshot returns copies of all stored attestations.
func (s *Service) Snapshot(ctx context.Context) ([]reputation.Attestation, error) {
	var res []reputation.Attestation

	err := s.guard.do(ctx, func() error {
		res = s.prm.Ledger.Snapshot()
		return nil
	})

	return res, err
}

// Install saves the computation result of its epoch.
func (s *Service) Install(ctx context.Context, res eigentrust.Result) error {
	return s.guard.do(ctx, func() error {
		s.prm.Epochs.Put(res.Epoch, res)
		return nil
	})
}

// HasResult checks if the epoch has a result.
func (s *Service) HasResult(ctx context.Context, epoch uint64) (bool, error) {
	var ok bool

	err := s.guard.do(ctx, func() error {
		ok = s.prm.Epochs.Has(epoch)
		return nil
	})

	return ok, err
}

// Result returns the computation result of the epoch.
//
// Returns ErrNotFound if there is no result for the epoch.
func (s *Service) Result(ctx context.Context, epoch uint64) (eigentrust.Result, error) {
	var res eigentrust.Result

	err := s.guard.do(ctx, func() (err error) {
		res, err = s.prm.Epochs.Get(epoch)
		if err != nil {
			err = fmt.Errorf("%w: epoch %d: %w", ErrNotFound, epoch, err)
		}

		return
	})

	return res, err
}

// Latest returns the result of the last computed epoch.
//
// Returns ErrNotFound if nothing is computed yet.
func (s *Service) Latest(ctx context.Context) (eigentrust.Result, error) {
	var res eigentrust.Result

	err := s.guard.do(ctx, func() (err error) {
		res, err = s.prm.Epochs.Latest()
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrNotFound, err)
		}

		return
	})

	return res, err
}

// Query returns global trust of the participant computed for the epoch.
//
// Returns ErrNotFound if the epoch has no result or the participant
// is not a part of it, ErrLock if exclusive access failed.
func (s *Service) Query(ctx context.Context, pk reputation.PublicKey, epoch uint64) (float64, error) {
	res, err := s.Result(ctx, epoch)
	if err != nil {
		return 0, err
	}

	v, ok := res.Score(pk.ID())
	if !ok {
		return 0, fmt.Errorf("%w: participant %s in epoch %d", ErrNotFound, pk, epoch)
	}

	return v, nil
}

// Contributions returns per-iteration sums of the contributions the
// participant received in the epoch computation.
func (s *Service) Contributions(ctx context.Context, pk reputation.PublicKey, epoch uint64) ([]float64, error) {
	res, err := s.Result(ctx, epoch)
	if err != nil {
		return nil, err
	}

	v, ok := res.Contributions(pk.ID())
	if !ok {
		return nil, fmt.Errorf("%w: participant %s in epoch %d", ErrNotFound, pk, epoch)
	}

	return v, nil
}
