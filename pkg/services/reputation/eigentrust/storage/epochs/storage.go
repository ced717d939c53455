package epochs

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
)

// Prm groups the required parameters of the Storage's constructor.
//
// All values must comply with the requirements imposed on them.
// Passing incorrect parameter values will result in constructor
// failure (error or panic depending on the implementation).
type Prm struct {
	// Maximum number of stored epochs.
	//
	// Must be positive.
	Capacity int
}

// Storage represents in-memory storage of the computation results
// indexed by epoch.
//
// The least recently stored or read epochs are evicted when
// the capacity is exceeded.
//
// For correct operation, Storage must be created
// using the constructor (New) based on the required parameters
// and optional components. After successful creation,
// the Storage is immediately ready to work through API.
type Storage struct {
	items *lru.Cache[uint64, eigentrust.Result]
}

// New creates a new instance of the Storage.
//
// Panics if at least one value of the parameters is invalid.
//
// The created Storage does not require additional
// initialization and is completely ready for work.
func New(prm Prm) *Storage {
	if prm.Capacity <= 0 {
		panic(fmt.Sprintf("invalid parameter Capacity (%T):%v", prm.Capacity, prm.Capacity))
	}

	items, err := lru.New[uint64, eigentrust.Result](prm.Capacity)
	if err != nil {
		panic(fmt.Errorf("could not create LRU cache: %w", err))
	}

	return &Storage{
		items: items,
	}
}
