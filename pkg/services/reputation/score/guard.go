package score

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/atomic"
)

// ErrLock is returned when exclusive access to the shared state
// can not be obtained.
var ErrLock = errors.New("lock error")

// guard provides exclusive access to the shared state. Panic in the
// critical section makes guard unusable: all subsequent acquisitions
// fail with ErrLock.
type guard struct {
	sem chan struct{}

	poisoned atomic.Bool
}

func newGuard() *guard {
	return &guard{
		sem: make(chan struct{}, 1),
	}
}

func (g *guard) do(ctx context.Context, f func() error) (err error) {
	if g.poisoned.Load() {
		return fmt.Errorf("%w: poisoned", ErrLock)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrLock, err)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrLock, ctx.Err())
	case g.sem <- struct{}{}:
	}

	defer func() { <-g.sem }()

	if g.poisoned.Load() {
		return fmt.Errorf("%w: poisoned", ErrLock)
	}

	done := false

	defer func() {
		if done {
			return
		}

		g.poisoned.Store(true)

		err = fmt.Errorf("%w: critical section panicked: %v", ErrLock, recover())
	}()

	err = f()
	done = true

	return err
}
