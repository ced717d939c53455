package score

import (
	"fmt"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust/storage/epochs"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/ledger"
	"go.uber.org/zap"
)

// Prm groups the required parameters of the Service's constructor.
//
// All values must comply with the requirements imposed on them.
// Passing incorrect parameter values will result in constructor
// failure (error or panic depending on the implementation).
type Prm struct {
	// Storage of the validated attestations.
	//
	// Must not be nil.
	Ledger *ledger.Ledger

	// Storage of the computation results.
	//
	// Must not be nil.
	Epochs *epochs.Storage
}

// Service is a façade of the attestation ledger and the epoch results
// for the transport layer and the scheduler. Ledger and results are
// a single resource: every operation takes exclusive access to it.
//
// For correct operation, the Service must be created
// using the constructor (New) based on the required parameters
// and optional components. After successful creation,
// the Service is immediately ready to work through API.
// Service is safe for concurrent use.
type Service struct {
	prm Prm

	opts *options

	guard *guard
}

// Option sets an optional parameter of Service.
type Option func(*options)

type options struct {
	log *zap.Logger
}

func defaultOpts() *options {
	return &options{
		log: zap.L(),
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

const invalidPrmValFmt = "invalid parameter %s (%T):%v"

func panicOnPrmValue(n string, v any) {
	panic(fmt.Sprintf(invalidPrmValFmt, n, v, v))
}

// New creates a new instance of the Service.
//
// Panics if at least one value of the parameters is invalid.
func New(prm Prm, opts ...Option) *Service {
	switch {
	case prm.Ledger == nil:
		panicOnPrmValue("Ledger", prm.Ledger)
	case prm.Epochs == nil:
		panicOnPrmValue("Epochs", prm.Epochs)
	}

	o := defaultOpts()

	for i := range opts {
		opts[i](o)
	}

	return &Service{
		prm:   prm,
		opts:  o,
		guard: newGuard(),
	}
}
