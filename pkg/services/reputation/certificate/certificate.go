// Package certificate defines the capability of certifying global trust
// computations.
package certificate

import (
	"context"
	"encoding/binary"
	"math"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
)

// PublicInputs are the values a certificate is bound to.
type PublicInputs struct {
	Epoch uint64

	Participants []reputation.PeerID

	Scores []float64
}

// InputsOf returns public inputs of the computation result.
func InputsOf(res eigentrust.Result) PublicInputs {
	return PublicInputs{
		Epoch:        res.Epoch,
		Participants: res.Participants,
		Scores:       res.Scores,
	}
}

// Bytes returns canonical binary representation of the inputs:
//
//	epoch (8 bytes BE) || N (4 bytes BE) || N * PeerID || N * score (IEEE 754, 8 bytes BE)
func (x PublicInputs) Bytes() []byte {
	b := make([]byte, 0, 12+len(x.Participants)*len(reputation.PeerID{})+len(x.Scores)*8)

	b = binary.BigEndian.AppendUint64(b, x.Epoch)
	b = binary.BigEndian.AppendUint32(b, uint32(len(x.Participants)))

	for i := range x.Participants {
		b = append(b, x.Participants[i][:]...)
	}

	for i := range x.Scores {
		b = binary.BigEndian.AppendUint64(b, math.Float64bits(x.Scores[i]))
	}

	return b
}

// Verifier checks certificates.
type Verifier interface {
	// Verify checks that the certificate was issued for the inputs.
	// Malformed certificate is reported as false without error.
	Verify(cert []byte, inputs PublicInputs) (bool, error)
}

// Certifier issues and checks certificates. Certify may be slow and
// must not be called under exclusive access to the shared state.
type Certifier interface {
	Verifier

	Certify(ctx context.Context, inputs PublicInputs) ([]byte, error)
}

// Nop is a Certifier of deployments without certification: it issues
// empty certificates and accepts only them.
type Nop struct{}

// Certify implements Certifier.
func (Nop) Certify(ctx context.Context, _ PublicInputs) ([]byte, error) {
	return nil, ctx.Err()
}

// Verify implements Verifier.
func (Nop) Verify(cert []byte, _ PublicInputs) (bool, error) {
	return len(cert) == 0, nil
}
