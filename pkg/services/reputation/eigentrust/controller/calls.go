package eigentrustctrl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/certificate"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
	"go.uber.org/zap"
)

// ContinuePrm groups the required parameters of Continue operation.
type ContinuePrm struct {
	Epoch uint64
}

type runContext struct {
	context.Context

	cancel context.CancelFunc

	id uuid.UUID

	epoch uint64
}

// Continue starts the computation for the epoch unless it was already
// started. Contexts of the previous epochs are forgotten.
func (c *Controller) Continue(prm ContinuePrm) {
	c.mtx.Lock()

	{
		_, ok := c.mCtx[prm.Epoch]

		switch {
		case c.stopped:
			c.opts.log.Debug("controller is stopped, run skipped",
				zap.Uint64("epoch", prm.Epoch),
			)
		case ok:
			c.opts.log.Debug("epoch is already processed",
				zap.Uint64("epoch", prm.Epoch),
			)
		default:
			for e := range c.mCtx {
				if e < prm.Epoch {
					delete(c.mCtx, e)
				}
			}

			rc := &runContext{
				id:    uuid.New(),
				epoch: prm.Epoch,
			}

			rc.Context, rc.cancel = context.WithCancel(context.Background())

			c.mCtx[prm.Epoch] = rc

			err := c.prm.WorkerPool.Submit(func() {
				c.run(rc)
			})
			if err != nil {
				// run may be retried within the same epoch
				delete(c.mCtx, prm.Epoch)
				rc.cancel()

				c.opts.log.Debug("computation submit failure",
					zap.Uint64("epoch", prm.Epoch),
					zap.String("error", err.Error()),
				)
			}
		}
	}

	c.mtx.Unlock()
}

// Stop cancels runs in progress and prevents new ones.
func (c *Controller) Stop() {
	c.mtx.Lock()

	{
		c.stopped = true

		for _, rc := range c.mCtx {
			rc.cancel()
		}
	}

	c.mtx.Unlock()
}

func (c *Controller) run(rc *runContext) {
	defer rc.cancel()

	log := c.opts.log.With(
		zap.Stringer("run", rc.id),
		zap.Uint64("epoch", rc.epoch),
	)

	start := time.Now()

	res, err := c.compute(rc)

	if c.opts.metrics != nil {
		c.opts.metrics.AddRun(time.Since(start), err == nil)
	}

	if err != nil {
		log.Error("global trust computation failed",
			zap.String("error", err.Error()),
		)

		return
	}

	if c.opts.metrics != nil {
		c.opts.metrics.SetEpoch(res.Epoch)
		c.opts.metrics.SetParticipants(len(res.Participants))
	}

	log.Info("global trust computed",
		zap.Int("participants", len(res.Participants)),
		zap.Int("certificate size", len(res.Certificate)),
		zap.Duration("duration", time.Since(start)),
	)

	if c.opts.notifier != nil {
		if err := c.opts.notifier.Notify(rc, res); err != nil {
			log.Warn("could not notify about computed global trust",
				zap.String("error", err.Error()),
			)
		}
	}
}

func (c *Controller) compute(rc *runContext) (eigentrust.Result, error) {
	atts, err := c.prm.State.Snapshot(rc)
	if err != nil {
		return eigentrust.Result{}, fmt.Errorf("could not snapshot attestations: %w", err)
	}

	if c.opts.metrics != nil {
		c.opts.metrics.SetAttestations(len(atts))
	}

	var participants []reputation.PeerID

	if c.opts.participants != nil {
		pks := c.opts.participants.Participants()

		participants = make([]reputation.PeerID, len(pks))
		for i := range pks {
			participants[i] = pks[i].ID()
		}
	}

	res, err := c.prm.Calculator.Calculate(rc.epoch, participants, atts)
	if err != nil {
		return eigentrust.Result{}, fmt.Errorf("could not calculate global trust: %w", err)
	}

	res.Certificate, err = c.opts.certifier.Certify(rc, certificate.InputsOf(res))
	if err != nil {
		return eigentrust.Result{}, fmt.Errorf("could not certify global trust: %w", err)
	}

	if err = c.prm.State.Install(rc, res); err != nil {
		return eigentrust.Result{}, fmt.Errorf("could not install global trust: %w", err)
	}

	return res, nil
}
