package main

import (
	"context"
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/mr-tron/base58"
	certificateconfig "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/certificate"
	eigentrustconfig "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/eigentrust"
	participantsconfig "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/participants"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/certificate"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/certificate/bls"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
	eigentrustcalc "github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust/calculator"
	eigentrustctrl "github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust/controller"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust/storage/epochs"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/ledger"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/score"
	"github.com/nspcc-dev/eigentrust-node/pkg/util"
	"go.uber.org/zap"
)

func initEigenTrust(c *cfg) {
	keys, registry, err := readParticipants(c)
	fatalOnErrDetails("participants", err)

	var membership ledger.Membership = ledger.OpenSet{}

	if registry != nil {
		membership = registry
		c.cfgEigenTrust.registry = registry

		c.log.Info("fixed participant registry",
			zap.Int("size", registry.Len()))
	} else {
		c.log.Info("open participant set")
	}

	c.cfgEigenTrust.service = score.New(score.Prm{
		Ledger: ledger.New(ledger.Prm{
			Membership: membership,
			Arity:      eigentrustconfig.Arity(c.appCfg),
		}, ledger.WithLogger(c.log)),
		Epochs: epochs.New(epochs.Prm{
			Capacity: eigentrustconfig.CacheSize(c.appCfg),
		}),
	}, score.WithLogger(c.log))

	if participantsconfig.Bootstrap(c.appCfg) {
		err = c.cfgEigenTrust.service.Bootstrap(context.Background(), keys,
			eigentrustconfig.InitialTotalScore(c.appCfg))
		fatalOnErrDetails("bootstrap attestations", err)

		c.log.Info("bootstrap attestations are signed",
			zap.Int("participants", len(keys)))
	}

	c.cfgEigenTrust.calculator, err = newCalculator(c)
	fatalOnErrDetails("calculator", err)

	c.cfgEigenTrust.certifier, err = newCertifier(c)
	fatalOnErrDetails("certificate", err)
}

// readParticipants returns local participant keys and the fixed registry
// of the listed public keys followed by the local ones. Registry is nil
// if no participants are configured.
func readParticipants(c *cfg) ([]*eddsa.PrivateKey, *ledger.FixedSet, error) {
	strKeys := participantsconfig.Keys(c.appCfg)
	strSeeds := participantsconfig.Seeds(c.appCfg)

	if len(strKeys)+len(strSeeds) == 0 {
		return nil, nil, nil
	}

	pubs := make([]reputation.PublicKey, 0, len(strKeys)+len(strSeeds))

	for i := range strKeys {
		pk, err := reputation.PublicKeyFromString(strKeys[i])
		if err != nil {
			return nil, nil, fmt.Errorf("public key #%d: %w", i, err)
		}

		pubs = append(pubs, pk)
	}

	keys := make([]*eddsa.PrivateKey, len(strSeeds))

	for i := range strSeeds {
		key, err := reputation.KeyFromString(strSeeds[i])
		if err != nil {
			return nil, nil, fmt.Errorf("seed #%d: %w", i, err)
		}

		keys[i] = key
		pubs = append(pubs, reputation.PublicKeyOf(key))
	}

	registry, err := ledger.NewFixedSet(pubs)
	if err != nil {
		return nil, nil, err
	}

	return keys, registry, nil
}

func newCalculator(c *cfg) (*eigentrustcalc.Calculator, error) {
	norm, err := eigentrustcalc.ParseNormalization(eigentrustconfig.Normalization(c.appCfg))
	if err != nil {
		return nil, err
	}

	opts := []eigentrustcalc.Option{
		eigentrustcalc.WithLogger(c.log),
	}

	if strPreTrust := eigentrustconfig.PreTrust(c.appCfg); len(strPreTrust) > 0 {
		preTrust := make(map[reputation.PeerID]float64, len(strPreTrust))

		for s, w := range strPreTrust {
			pk, err := reputation.PublicKeyFromString(s)
			if err != nil {
				return nil, fmt.Errorf("pre-trust key %s: %w", s, err)
			}

			preTrust[pk.ID()] = w
		}

		opts = append(opts, eigentrustcalc.WithPreTrust(preTrust))
	}

	return eigentrustcalc.New(eigentrustcalc.Prm{
		Iterations:      eigentrustconfig.Iterations(c.appCfg),
		InitialScore:    eigentrustconfig.InitialScore(c.appCfg),
		Alpha:           eigentrustconfig.Alpha(c.appCfg),
		Normalization:   norm,
		RequireComplete: eigentrustconfig.RequireComplete(c.appCfg),
	}, opts...), nil
}

func newCertifier(c *cfg) (certificate.Certifier, error) {
	if !certificateconfig.Enabled(c.appCfg) {
		return certificate.Nop{}, nil
	}

	seed, err := base58.Decode(certificateconfig.Seed(c.appCfg))
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	certifier, err := bls.New(seed)
	if err != nil {
		return nil, err
	}

	c.log.Info("results are certified",
		zap.String("public key", base58.Encode(certifier.PublicKey())))

	return certifier, nil
}

func initController(c *cfg) {
	pool, err := util.NewExclusivePool()
	fatalOnErr(err)

	opts := []eigentrustctrl.Option{
		eigentrustctrl.WithLogger(c.log),
		eigentrustctrl.WithCertifier(c.cfgEigenTrust.certifier),
	}

	if c.cfgEigenTrust.registry != nil {
		opts = append(opts, eigentrustctrl.WithParticipants(c.cfgEigenTrust.registry))
	}

	if c.cfgEigenTrust.notifier != nil {
		opts = append(opts, eigentrustctrl.WithNotifier(c.cfgEigenTrust.notifier))
	}

	if c.metrics != nil {
		opts = append(opts, eigentrustctrl.WithMetrics(c.metrics))
	}

	c.cfgEigenTrust.controller = eigentrustctrl.New(eigentrustctrl.Prm{
		Calculator: c.cfgEigenTrust.calculator,
		State:      c.cfgEigenTrust.service,
		WorkerPool: pool,
	}, opts...)

	c.onShutdown(func() {
		c.cfgEigenTrust.controller.Stop()
		pool.Release()
	})

	interval := eigentrustconfig.EpochInterval(c.appCfg)

	c.addWorker("epoch ticker", func(ctx context.Context) {
		runEpochTicker(ctx, c.log, interval, c.cfgEigenTrust.controller)
	})
}

type epochHandler interface {
	Continue(eigentrustctrl.ContinuePrm)
}

// runEpochTicker triggers computation of the current epoch every interval
// until the context is done. Ticks missed by a stalled process are dropped.
func runEpochTicker(ctx context.Context, log *zap.Logger, interval time.Duration, h epochHandler) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("epoch ticker stopped")
			return
		case now := <-ticker.C:
			epoch := eigentrust.EpochAt(now, interval)

			log.Debug("new epoch tick", zap.Uint64("epoch", epoch))

			h.Continue(eigentrustctrl.ContinuePrm{Epoch: epoch})
		}
	}
}
