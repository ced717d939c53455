package epochs

import (
	"errors"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
)

// ErrNotFound is returned when there is no result for the requested epoch.
var ErrNotFound = errors.New("epoch result not found")

// Put saves the result of the epoch. Previous result of the same epoch
// is overwritten.
func (x *Storage) Put(epoch uint64, res eigentrust.Result) {
	x.items.Add(epoch, res)
}

// Get returns the result of the epoch.
//
// Returns ErrNotFound if there is no result for the epoch.
func (x *Storage) Get(epoch uint64) (eigentrust.Result, error) {
	res, ok := x.items.Get(epoch)
	if !ok {
		return eigentrust.Result{}, ErrNotFound
	}

	return res, nil
}

// Latest returns the result of the maximum stored epoch.
//
// Returns ErrNotFound if the Storage is empty.
func (x *Storage) Latest() (eigentrust.Result, error) {
	var (
		latest uint64
		found  bool
	)

	for _, e := range x.items.Keys() {
		if !found || e > latest {
			latest, found = e, true
		}
	}

	if !found {
		return eigentrust.Result{}, ErrNotFound
	}

	res, ok := x.items.Peek(latest)
	if !ok {
		return eigentrust.Result{}, ErrNotFound
	}

	return res, nil
}

// Has checks if there is a result for the epoch.
func (x *Storage) Has(epoch uint64) bool {
	return x.items.Contains(epoch)
}

// Len returns number of stored epochs.
func (x *Storage) Len() int {
	return x.items.Len()
}
