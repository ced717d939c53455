package eigentrust

import (
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
)

// Result is a completed computation of the epoch. It must not be
// changed after creation.
type Result struct {
	// Epoch of the computation.
	Epoch uint64

	// Participants in canonical order.
	Participants []reputation.PeerID

	// Raw global trust values after the last iteration, positionally
	// corresponding to Participants.
	Scores []float64

	// Contributions of each iteration, Trace[k] belongs to iteration k+1.
	Trace [][]Contribution

	// Opaque artifact certifying the computation, may be empty.
	Certificate []byte
}

// Index returns position of the participant in the canonical order.
func (r Result) Index(id reputation.PeerID) (int, bool) {
	for i := range r.Participants {
		if r.Participants[i] == id {
			return i, true
		}
	}

	return -1, false
}

// Score returns raw global trust of the participant.
func (r Result) Score(id reputation.PeerID) (float64, bool) {
	i, ok := r.Index(id)
	if !ok {
		return 0, false
	}

	return r.Scores[i], true
}

// GlobalTrust returns the scores normalized to sum up to 1. If all raw
// scores are zero, trust is distributed uniformly.
func (r Result) GlobalTrust() []float64 {
	res := make([]float64, len(r.Scores))
	if len(res) == 0 {
		return res
	}

	var sum float64
	for i := range r.Scores {
		sum += r.Scores[i]
	}

	for i := range r.Scores {
		if sum == 0 {
			res[i] = 1 / float64(len(res))
		} else {
			res[i] = r.Scores[i] / sum
		}
	}

	return res
}

// Iterations returns number of recorded iterations.
func (r Result) Iterations() int {
	return len(r.Trace)
}

// Contributions returns sums of the contributions the participant received
// at each iteration. A caller sums any prefix of them to reconstruct
// partial results without re-running the computation.
func (r Result) Contributions(id reputation.PeerID) ([]float64, bool) {
	if _, ok := r.Index(id); !ok {
		return nil, false
	}

	res := make([]float64, len(r.Trace))

	for k := range r.Trace {
		for _, c := range r.Trace[k] {
			if c.To == id {
				res[k] += c.Value
			}
		}
	}

	return res, true
}

// Edges returns individual contributions the participant received at the
// k-th (starting from 1) iteration.
func (r Result) Edges(id reputation.PeerID, k int) []Contribution {
	if k < 1 || k > len(r.Trace) {
		return nil
	}

	var res []Contribution

	for _, c := range r.Trace[k-1] {
		if c.To == id {
			res = append(res, c)
		}
	}

	return res
}
