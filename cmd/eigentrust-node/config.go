package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
	loggerconfig "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/logger"
	"github.com/nspcc-dev/eigentrust-node/pkg/metrics"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/certificate"
	eigentrustcalc "github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust/calculator"
	eigentrustctrl "github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust/controller"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/ledger"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/score"
	httputil "github.com/nspcc-dev/eigentrust-node/pkg/util/http"
	"github.com/nspcc-dev/eigentrust-node/pkg/util/logger"
	"go.uber.org/zap"
)

type cfg struct {
	ctx       context.Context
	ctxCancel func()

	appCfg *config.Config

	log *zap.Logger

	logReload logger.Reload

	wg *sync.WaitGroup

	// application-level error channel, any error
	// written to it leads to application shutdown
	internalErr chan error

	// functions called in order on shutdown
	closers []func()

	workers []worker

	metrics *metrics.NodeMetrics

	apiServer *httputil.Server

	// nil if metrics are disabled
	metricsServer *httputil.Server

	cfgEigenTrust cfgEigenTrust
}

type cfgEigenTrust struct {
	// nil for open deployments
	registry *ledger.FixedSet

	service *score.Service

	calculator *eigentrustcalc.Calculator

	certifier certificate.Certifier

	notifier eigentrustctrl.Notifier

	controller *eigentrustctrl.Controller
}

func initCfg(path string) *cfg {
	var p config.Prm

	appCfg := config.New(p,
		config.WithConfigFile(path),
	)

	log, logReload, err := newLogger(appCfg)
	fatalOnErr(err)

	return &cfg{
		appCfg:      appCfg,
		log:         log,
		logReload:   logReload,
		wg:          new(sync.WaitGroup),
		internalErr: make(chan error, 1),
	}
}

func loggerPrm(appCfg *config.Config) (*logger.Prm, error) {
	prm := new(logger.Prm)

	err := prm.SetLevelString(loggerconfig.Level(appCfg))
	if err != nil {
		return nil, fmt.Errorf("logger level: %w", err)
	}

	err = prm.SetEncoding(loggerconfig.Encoding(appCfg))
	if err != nil {
		return nil, err
	}

	return prm, nil
}

func newLogger(appCfg *config.Config) (*zap.Logger, logger.Reload, error) {
	prm, err := loggerPrm(appCfg)
	if err != nil {
		return nil, nil, err
	}

	return logger.NewLogger(prm)
}

// reloadConfig rereads the configuration file and applies the logger
// level. Other values take effect after restart.
func (c *cfg) reloadConfig() {
	c.log.Info("SIGHUP has been received, rereading configuration...")

	err := c.appCfg.Reload()
	if err != nil {
		c.log.Error("configuration reading", zap.String("error", err.Error()))
		return
	}

	prm, err := loggerPrm(c.appCfg)
	if err == nil {
		err = c.logReload(prm)
	}

	if err != nil {
		c.log.Error("logger configuration preparation", zap.String("error", err.Error()))
		return
	}

	c.log.Info("configuration has been reloaded successfully")
}

func (c *cfg) onShutdown(f func()) {
	c.closers = append(c.closers, f)
}

func (c *cfg) setHealthStatus(s int32) {
	if c.metrics != nil {
		c.metrics.SetHealth(s)
	}
}
