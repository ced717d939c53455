package main

import (
	natsconfig "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/nats"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/notificator/nats"
	"go.uber.org/zap"
)

func initNotifications(c *cfg) {
	if !natsconfig.Enabled(c.appCfg) {
		return
	}

	opts := []nats.Option{
		nats.WithLogger(c.log),
		nats.WithTimeout(natsconfig.Timeout(c.appCfg)),
		nats.WithStream(natsconfig.Stream(c.appCfg)),
		nats.WithConnectionName("eigentrust-node"),
	}

	if cert, key := natsconfig.CertificatePath(c.appCfg), natsconfig.KeyPath(c.appCfg); cert != "" && key != "" {
		opts = append(opts, nats.WithClientCert(cert, key))
	}

	if ca := natsconfig.CAPath(c.appCfg); ca != "" {
		opts = append(opts, nats.WithRootCA(ca))
	}

	w := nats.New(natsconfig.Subject(c.appCfg), opts...)

	endpoint := natsconfig.Endpoint(c.appCfg)

	err := w.Connect(c.ctx, endpoint)
	fatalOnErrDetails("could not connect to a nats endpoint", err)

	c.log.Info("global trust notifications are enabled",
		zap.String("endpoint", endpoint),
		zap.String("subject", natsconfig.Subject(c.appCfg)))

	c.cfgEigenTrust.notifier = w
}
