package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/nspcc-dev/eigentrust-node/misc"
	"github.com/nspcc-dev/eigentrust-node/pkg/metrics"
	"github.com/nspcc-dev/eigentrust-node/pkg/util/grace"
	"go.uber.org/zap"
)

func fatalOnErr(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func fatalOnErrDetails(details string, err error) {
	if err != nil {
		log.Fatal(fmt.Errorf("%s: %w", details, err))
	}
}

func main() {
	configFile := flag.String("config", "", "path to config")
	versionFlag := flag.Bool("version", false, "eigentrust-node version")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("eigentrust-node\nVersion: %s\nBuild: %s\nGoVersion: %s\n",
			misc.Version, misc.Build, runtime.Version())

		os.Exit(0)
	}

	c := initCfg(*configFile)

	initApp(c)

	bootUp(c)

	c.setHealthStatus(metrics.HealthReady)

	wait(c)

	shutdown(c)
}

func initApp(c *cfg) {
	c.ctx, c.ctxCancel = context.WithCancel(grace.NewGracefulContext(c.log, c.reloadConfig))

	initMetrics(c)
	initEigenTrust(c)
	initNotifications(c)
	initController(c)
	initAPI(c)
}

func bootUp(c *cfg) {
	serveMetrics(c)
	serveAPI(c)
	startWorkers(c)
}

func wait(c *cfg) {
	c.log.Info("application started",
		zap.String("version", misc.Version))

	select {
	case <-c.ctx.Done(): // graceful shutdown
	case err := <-c.internalErr: // internal application error
		c.log.Warn("internal application error",
			zap.String("message", err.Error()))
	}
}

func shutdown(c *cfg) {
	c.setHealthStatus(metrics.HealthShuttingDown)

	c.ctxCancel()

	for _, closer := range c.closers {
		closer()
	}

	c.wg.Wait()

	c.log.Debug("application stopped")
}
