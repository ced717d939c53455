package grace

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// NewGracefulContext returns context cancelled by SIGINT or SIGTERM.
// SIGHUP calls reload if it is set and is ignored otherwise.
func NewGracefulContext(l *zap.Logger, reload func()) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGINT, unix.SIGTERM, unix.SIGHUP)

	go func() {
		defer signal.Stop(ch)

		for sig := range ch {
			l.Info("received signal", zap.Stringer("signal", sig))

			if sig != unix.SIGHUP {
				cancel()
				return
			}

			if reload != nil {
				reload()
			}
		}
	}()

	return ctx
}
