package eigentrustcalc

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
	"go.uber.org/zap"
)

var errNoParticipants = errors.New("no participants")

// Participants returns the sorted union of signers and non-absent
// neighbours of the attestations. It is the canonical order of unbounded
// deployments.
func Participants(atts []reputation.Attestation) []reputation.PeerID {
	m := make(map[reputation.PeerID]struct{})

	for i := range atts {
		m[atts[i].Signer.ID()] = struct{}{}

		for j := range atts[i].Neighbours {
			if !atts[i].Neighbours[j].IsAbsent() {
				m[atts[i].Neighbours[j].ID()] = struct{}{}
			}
		}
	}

	res := make([]reputation.PeerID, 0, len(m))
	for id := range m {
		res = append(res, id)
	}

	slices.SortFunc(res, func(a, b reputation.PeerID) int {
		return bytes.Compare(a[:], b[:])
	})

	return res
}

// Calculate runs the configured number of iterations over the attestations
// and returns the result for the epoch. Scores positionally correspond to
// the participants. If participants is nil, the order is derived
// from the attestations (see Participants).
//
// Attestations of non-participants and trust toward them are ignored.
// If complete input is required, ErrMissingAttestation is returned when
// some participant has no attestation.
func (c *Calculator) Calculate(epoch uint64, participants []reputation.PeerID, atts []reputation.Attestation) (eigentrust.Result, error) {
	if participants == nil {
		participants = Participants(atts)
	}

	n := len(participants)
	if n == 0 {
		return eigentrust.Result{}, errNoParticipants
	}

	pos := make(map[reputation.PeerID]int, n)
	for i := range participants {
		pos[participants[i]] = i
	}

	local, attested := c.localTrust(pos, atts)

	if c.prm.RequireComplete {
		for i := range attested {
			if !attested[i] {
				return eigentrust.Result{}, fmt.Errorf("%w: participant %s", ErrMissingAttestation, participants[i])
			}
		}
	}

	p, t := c.initialVectors(participants)

	var (
		alpha = c.prm.Alpha
		trace = make([][]eigentrust.Contribution, c.prm.Iterations)
	)

	it := eigentrust.NewEpochIteration(epoch, 0)

	for k := uint32(1); k <= c.prm.Iterations; k++ {
		it.Increment()

		next := make([]float64, n)

		for i := 0; i < n; i++ {
			var sum float64

			for j := 0; j < n; j++ {
				if local[j][i] == 0 {
					continue
				}

				v := (1 - alpha) * local[j][i] * t[j]
				sum += v

				trace[k-1] = append(trace[k-1], eigentrust.Contribution{
					EpochIteration: it,
					From:           participants[j],
					To:             participants[i],
					Value:          v,
				})
			}

			if alpha != 0 {
				sum += alpha * p[i]
			}

			next[i] = sum
		}

		if c.prm.Normalization == NormalizeEachStep {
			normalize(next)
		}

		t = next
	}

	c.opts.log.Debug("global trust calculated",
		zap.Uint64("epoch", epoch),
		zap.Int("participants", n),
		zap.Int("attestations", len(atts)),
		zap.Uint32("iterations", c.prm.Iterations),
	)

	return eigentrust.Result{
		Epoch:        epoch,
		Participants: append([]reputation.PeerID(nil), participants...),
		Scores:       t,
		Trace:        trace,
	}, nil
}

// localTrust builds row-normalized local trust matrix. Rows without
// any trust stay zero.
func (c *Calculator) localTrust(pos map[reputation.PeerID]int, atts []reputation.Attestation) ([][]float64, []bool) {
	n := len(pos)

	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	attested := make([]bool, n)

	for _, att := range atts {
		i, ok := pos[att.Signer.ID()]
		if !ok {
			c.opts.log.Debug("attestation of non-participant ignored",
				zap.Stringer("signer", att.Signer),
			)

			continue
		}

		attested[i] = true
		trust := att.LocalTrust()

		for s := range att.Neighbours {
			if att.Neighbours[s].IsAbsent() || trust[s] == 0 {
				continue
			}

			j, ok := pos[att.Neighbours[s].ID()]
			if !ok {
				continue
			}

			m[i][j] += trust[s]
		}
	}

	for i := range m {
		var sum float64
		for j := range m[i] {
			sum += m[i][j]
		}

		if sum == 0 {
			continue
		}

		for j := range m[i] {
			m[i][j] /= sum
		}
	}

	return m, attested
}

// initialVectors returns the pre-trust vector and the initial
// global trust vector.
func (c *Calculator) initialVectors(participants []reputation.PeerID) ([]float64, []float64) {
	n := len(participants)
	p := make([]float64, n)

	if c.opts.preTrust != nil {
		for i := range participants {
			p[i] = c.opts.preTrust[participants[i]]
		}

		if normalize(p) {
			return p, append([]float64(nil), p...)
		}
	}

	t := make([]float64, n)

	for i := range p {
		p[i] = 1 / float64(n)
		t[i] = c.prm.InitialScore
	}

	return p, t
}

// normalize scales the vector to sum up to 1. Returns false if the vector
// is zero.
func normalize(v []float64) bool {
	var sum float64
	for i := range v {
		sum += v[i]
	}

	if sum == 0 {
		return false
	}

	for i := range v {
		v[i] /= sum
	}

	return true
}
