package eigentrustcalc

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"go.uber.org/zap"
)

// ErrMissingAttestation is returned when complete input is required but
// some participant has not attested.
var ErrMissingAttestation = errors.New("missing attestation")

// Normalization is a policy of scaling intermediate global trust vectors.
type Normalization uint8

const (
	// NormalizeAtEnd keeps raw iteration results, scores are normalized
	// only on read.
	NormalizeAtEnd Normalization = iota

	// NormalizeEachStep scales the vector to sum up to 1 after each
	// iteration.
	NormalizeEachStep
)

// String implements fmt.Stringer.
func (x Normalization) String() string {
	switch x {
	default:
		return fmt.Sprintf("UNKNOWN#%d", x)
	case NormalizeAtEnd:
		return "end"
	case NormalizeEachStep:
		return "step"
	}
}

// ParseNormalization parses the policy from its string representation.
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "", "end":
		return NormalizeAtEnd, nil
	case "step":
		return NormalizeEachStep, nil
	default:
		return 0, fmt.Errorf("unknown normalization policy %q", s)
	}
}

// Prm groups the required parameters of the Calculator's constructor.
//
// All values must comply with the requirements imposed on them.
// Passing incorrect parameter values will result in constructor
// failure (error or panic depending on the implementation).
type Prm struct {
	// Fixed number of power iterations.
	//
	// Must be positive.
	Iterations uint32

	// Value of each participant in the uniform initial vector. Ignored
	// if pre-trust is provided.
	//
	// Must be positive.
	InitialScore float64

	// Weight of the pre-trust vector in each iteration.
	//
	// Must be in [0, 1).
	Alpha float64

	Normalization Normalization

	// Require an attestation of each participant.
	RequireComplete bool
}

// Calculator performs statement-based EigenTrust computation:
//
//	t^(k+1) = (1 - alpha) * C^T * t^k + alpha * p
//
// where C is the row-normalized local trust matrix and p is the
// pre-trust vector (uniform if not provided).
//
// For correct operation, the Calculator must be created
// using the constructor (New). Calculator is stateless
// and safe for concurrent use.
type Calculator struct {
	prm Prm

	opts *options
}

// Option sets an optional parameter of Calculator.
type Option func(*options)

type options struct {
	log *zap.Logger

	preTrust map[reputation.PeerID]float64
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

// WithPreTrust returns Option to set pre-trusted participants. The values
// are normalized to sum up to 1 and form both the initial vector and the
// alpha-weighted pre-trust vector. Unlisted participants get zero.
func WithPreTrust(p map[reputation.PeerID]float64) Option {
	return func(o *options) {
		o.preTrust = p
	}
}

const invalidPrmValFmt = "invalid parameter %s (%T):%v"

func panicOnPrmValue(n string, v any) {
	panic(fmt.Sprintf(invalidPrmValFmt, n, v, v))
}

// New creates a new instance of the Calculator.
//
// Panics if at least one value of the parameters is invalid.
func New(prm Prm, opts ...Option) *Calculator {
	switch {
	case prm.Iterations == 0:
		panicOnPrmValue("Iterations", prm.Iterations)
	case prm.InitialScore <= 0:
		panicOnPrmValue("InitialScore", prm.InitialScore)
	case prm.Alpha < 0 || prm.Alpha >= 1:
		panicOnPrmValue("Alpha", prm.Alpha)
	case prm.Normalization > NormalizeEachStep:
		panicOnPrmValue("Normalization", prm.Normalization)
	}

	o := defaultOpts()

	for i := range opts {
		opts[i](o)
	}

	for id, v := range o.preTrust {
		if v < 0 {
			panicOnPrmValue("pre-trust of "+id.String(), v)
		}
	}

	return &Calculator{
		prm:  prm,
		opts: o,
	}
}

// Iterations returns the configured number of iterations.
func (c *Calculator) Iterations() uint32 {
	return c.prm.Iterations
}
