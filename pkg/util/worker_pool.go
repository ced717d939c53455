package util

import (
	"fmt"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"
)

// WorkerPool executes submitted routines.
type WorkerPool interface {
	// Submit passes fn for execution. Error means fn will never run.
	Submit(fn func()) error

	// Release makes subsequent Submit calls fail with ErrPoolClosed.
	// Routines in progress are not awaited.
	Release()
}

// ErrPoolClosed is returned by Submit of a released pool.
var ErrPoolClosed = ants.ErrPoolClosed

// ErrPoolOverload is returned by Submit of a non-blocking pool
// when all workers are busy.
var ErrPoolOverload = ants.ErrPoolOverload

type syncWorkerPool struct {
	released atomic.Bool
}

// NewPseudoWorkerPool returns WorkerPool which runs routines in the
// caller's goroutine, so Submit returns after fn.
func NewPseudoWorkerPool() WorkerPool {
	return new(syncWorkerPool)
}

func (p *syncWorkerPool) Submit(fn func()) error {
	if p.released.Load() {
		return ErrPoolClosed
	}

	fn()

	return nil
}

func (p *syncWorkerPool) Release() {
	p.released.Store(true)
}

// NewExclusivePool returns WorkerPool of a single worker which refuses
// new routines with ErrPoolOverload while the previous one is running.
func NewExclusivePool() (WorkerPool, error) {
	p, err := ants.NewPool(1, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("could not create worker pool: %w", err)
	}

	return p, nil
}
