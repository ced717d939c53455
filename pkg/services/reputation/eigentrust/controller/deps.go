package eigentrustctrl

import (
	"context"
	"time"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
)

// Calculator is an interface of entity responsible for calculating
// the global trust of the participants in terms of EigenTrust algorithm
// http://ilpubs.stanford.edu:8090/562/1/2002-56.pdf.
type Calculator interface {
	// Calculate must run the computation over the attestations for the
	// epoch. Nil participants mean order derived from the attestations.
	Calculate(epoch uint64, participants []reputation.PeerID, atts []reputation.Attestation) (eigentrust.Result, error)
}

// State is the shared state of the attestations and computed results.
// All methods must take exclusive access to it.
type State interface {
	// Snapshot must return copies of all stored attestations.
	Snapshot(context.Context) ([]reputation.Attestation, error)

	// Install must save the result of its epoch.
	Install(context.Context, eigentrust.Result) error
}

// ParticipantsSource provides the canonical participant order of bounded
// deployments.
type ParticipantsSource interface {
	Participants() []reputation.PublicKey
}

// Notifier is informed about installed results.
type Notifier interface {
	Notify(context.Context, eigentrust.Result) error
}

// Metrics collects computation statistics.
type Metrics interface {
	SetEpoch(uint64)
	SetParticipants(int)
	SetAttestations(int)
	AddRun(d time.Duration, success bool)
}
