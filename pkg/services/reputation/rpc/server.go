package reputationrpc

import (
	"context"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
)

// Server is an interface of the reputation service server.
//
// Implementations report attestation validation failures as
// reputation.ErrInvalidAttestation. Other errors are described by
// the particular implementation.
type Server interface {
	// Submit validates and stores the attestation.
	Submit(context.Context, reputation.Attestation) error

	// Query returns global trust of the participant computed for the epoch.
	Query(ctx context.Context, pk reputation.PublicKey, epoch uint64) (float64, error)

	// Contributions returns per-iteration sums of the contributions
	// the participant received in the epoch computation.
	Contributions(ctx context.Context, pk reputation.PublicKey, epoch uint64) ([]float64, error)
}
