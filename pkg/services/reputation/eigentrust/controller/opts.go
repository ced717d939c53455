package eigentrustctrl

import (
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/certificate"
	"go.uber.org/zap"
)

// Option sets an optional parameter of Controller.
type Option func(*options)

type options struct {
	log *zap.Logger

	certifier certificate.Certifier

	participants ParticipantsSource

	notifier Notifier

	metrics Metrics
}

func defaultOpts() *options {
	return &options{
		log:       zap.L(),
		certifier: certificate.Nop{},
	}
}

// WithLogger returns Option to specify logging component.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithCertifier returns Option to certify computation results.
// Results are not certified by default.
func WithCertifier(c certificate.Certifier) Option {
	return func(o *options) {
		if c != nil {
			o.certifier = c
		}
	}
}

// WithParticipants returns Option to compute scores over the fixed
// participant registry. By default, participants are derived from
// the attestations.
func WithParticipants(s ParticipantsSource) Option {
	return func(o *options) {
		o.participants = s
	}
}

// WithNotifier returns Option to announce installed results.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithMetrics returns Option to collect computation statistics.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
