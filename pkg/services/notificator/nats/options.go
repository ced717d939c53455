package nats

import (
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// WithClientCert sets the client TLS certificate and key.
func WithClientCert(certPath, keyPath string) Option {
	return func(o *opts) {
		o.nOpts = append(o.nOpts, nats.ClientCert(certPath, keyPath))
	}
}

// WithRootCA sets the CA certificates used to verify the server.
func WithRootCA(paths ...string) Option {
	return func(o *opts) {
		o.nOpts = append(o.nOpts, nats.RootCAs(paths...))
	}
}

// WithTimeout sets the connection timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *opts) {
		o.nOpts = append(o.nOpts, nats.Timeout(timeout))
	}
}

// WithConnectionName sets the client name reported to the server.
func WithConnectionName(name string) Option {
	return func(o *opts) {
		o.nOpts = append(o.nOpts, nats.Name(name))
	}
}

// WithStream sets name of the JetStream stream. Default is "eigentrust".
func WithStream(name string) Option {
	return func(o *opts) {
		if name != "" {
			o.stream = name
		}
	}
}

// WithLogger sets logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *opts) {
		if logger != nil {
			o.log = logger
		}
	}
}
