package eigentrust

import (
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
)

// EpochIteration identifies the iteration of the epoch's computation.
type EpochIteration struct {
	e uint64
	i uint32
}

// NewEpochIteration returns i-th iteration of the epoch e.
func NewEpochIteration(e uint64, i uint32) EpochIteration {
	return EpochIteration{e: e, i: i}
}

func (x EpochIteration) Epoch() uint64 {
	return x.e
}

// I returns the sequence number of the iteration starting from 1.
func (x EpochIteration) I() uint32 {
	return x.i
}

// Increment moves to the next iteration of the same epoch.
func (x *EpochIteration) Increment() {
	x.i++
}

// Contribution is a part of the target's global trust received from
// the rater at the iteration: (1 - alpha) * c_ji * t_j.
type Contribution struct {
	EpochIteration

	From, To reputation.PeerID

	Value float64
}
