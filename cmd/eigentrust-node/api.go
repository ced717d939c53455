package main

import (
	"context"
	"fmt"

	nodeconfig "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/node"
	"github.com/nspcc-dev/eigentrust-node/pkg/network"
	httpreputation "github.com/nspcc-dev/eigentrust-node/pkg/network/transport/reputation/http"
	httputil "github.com/nspcc-dev/eigentrust-node/pkg/util/http"
	"go.uber.org/zap"
)

// initAPI binds the listen address of the reputation HTTP API. Bind
// failure stops the application.
func initAPI(c *cfg) {
	var addr network.Address

	err := addr.FromString(nodeconfig.ListenAddress(c.appCfg))
	fatalOnErrDetails("listen address", err)

	lis, err := network.Listen(addr)
	fatalOnErrDetails(fmt.Sprintf("could not listen on %s", addr), err)

	opts := []httpreputation.Option{
		httpreputation.WithLogger(c.log),
		httpreputation.WithMaxBodySize(nodeconfig.MaxBodySize(c.appCfg)),
	}

	if c.metrics != nil {
		opts = append(opts, httpreputation.WithMetrics(c.metrics))
	}

	srv := httputil.New(httputil.Prm{
		Listener: lis,
		Handler:  httpreputation.New(c.cfgEigenTrust.service, opts...),
	}, httputil.WithShutdownTimeout(nodeconfig.ShutdownTimeout(c.appCfg)))

	c.apiServer = srv

	c.log.Info("reputation API is bound", zap.Stringer("address", srv.Addr()))
}

func serveAPI(c *cfg) {
	serveHTTP(c, "reputation API", c.apiServer)
}

// serveHTTP registers the server as the application worker. The server
// stops with the application, serve failure leads to shutdown.
func serveHTTP(c *cfg, name string, srv *httputil.Server) {
	c.addWorker(name, func(ctx context.Context) {
		c.log.Info("start listening "+name, zap.Stringer("address", srv.Addr()))

		if err := srv.Run(ctx); err != nil {
			select {
			case c.internalErr <- fmt.Errorf("%s: %w", name, err):
			default:
				c.log.Debug("could not stop "+name, zap.String("error", err.Error()))
			}
		}
	})
}
