package main

import (
	"fmt"

	metricsconfig "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/metrics"
	"github.com/nspcc-dev/eigentrust-node/misc"
	"github.com/nspcc-dev/eigentrust-node/pkg/metrics"
	"github.com/nspcc-dev/eigentrust-node/pkg/network"
	httputil "github.com/nspcc-dev/eigentrust-node/pkg/util/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func initMetrics(c *cfg) {
	if !metricsconfig.Enabled(c.appCfg) {
		c.log.Info("prometheus is disabled")
		return
	}

	c.metrics = metrics.NewNodeMetrics(misc.Version)
	c.metrics.SetHealth(metrics.HealthStarting)

	var addr network.Address

	err := addr.FromString(metricsconfig.Address(c.appCfg))
	fatalOnErrDetails("metrics address", err)

	lis, err := network.Listen(addr)
	fatalOnErrDetails(fmt.Sprintf("could not listen on %s", addr), err)

	c.metricsServer = httputil.New(httputil.Prm{
		Listener: lis,
		Handler:  promhttp.Handler(),
	}, httputil.WithShutdownTimeout(metricsconfig.ShutdownTimeout(c.appCfg)))
}

func serveMetrics(c *cfg) {
	if c.metricsServer != nil {
		serveHTTP(c, "prometheus", c.metricsServer)
	}
}
