package eigentrustctrl

import (
	"fmt"
	"sync"

	"github.com/nspcc-dev/eigentrust-node/pkg/util"
)

// Prm groups the required parameters of the Controller's constructor.
type Prm struct {
	// Must not be nil.
	Calculator Calculator

	// Attestations source and results destination.
	//
	// Must not be nil.
	State State

	// Pool the runs are executed in. Pool of a single non-blocking
	// worker drops the run while the previous one is in progress.
	//
	// Must not be nil.
	WorkerPool util.WorkerPool
}

// Controller runs global trust computation at most once per epoch. A run
// snapshots attestations and installs the certified result with the
// exclusive access to State, calculation and certification happen
// without it. Failed run leaves State untouched and is not retried
// within the same epoch.
//
// Controller must be created via New.
type Controller struct {
	prm Prm

	opts *options

	mtx     sync.Mutex
	mCtx    map[uint64]*runContext
	stopped bool
}

const invalidPrmValFmt = "invalid parameter %s (%T):%v"

func panicOnPrmValue(n string, v any) {
	panic(fmt.Sprintf(invalidPrmValFmt, n, v, v))
}

// New creates Controller ready to process epochs via Continue.
//
// Panics if any of the required parameters is missing.
func New(prm Prm, opts ...Option) *Controller {
	switch {
	case prm.Calculator == nil:
		panicOnPrmValue("Calculator", prm.Calculator)
	case prm.State == nil:
		panicOnPrmValue("State", prm.State)
	case prm.WorkerPool == nil:
		panicOnPrmValue("WorkerPool", prm.WorkerPool)
	}

	o := defaultOpts()

	for _, opt := range opts {
		opt(o)
	}

	return &Controller{
		prm:  prm,
		opts: o,
		mCtx: make(map[uint64]*runContext),
	}
}
