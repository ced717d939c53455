package reputation

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
)

var (
	// ErrInvalidAttestation is returned when attestation does not pass
	// structure, membership or signature checks.
	ErrInvalidAttestation = errors.New("invalid attestation")

	// ErrAttestationNotFound is returned when there is no attestation
	// of the requested participant.
	ErrAttestationNotFound = errors.New("attestation not found")
)

// Attestation is a signed local trust statement of the participant:
// its neighbours and the local trust values it assigns to each of
// them. Neighbours and Scores correspond positionally.
type Attestation struct {
	Signer     PublicKey
	Neighbours []PublicKey
	Scores     []fr.Element
	Signature  Signature
}

// NewAttestation creates the attestation of the key holder
// and signs it.
func NewAttestation(key *eddsa.PrivateKey, neighbours []PublicKey, scores []fr.Element) (Attestation, error) {
	msg, err := MessageHash(neighbours, scores)
	if err != nil {
		return Attestation{}, err
	}

	sig, err := Sign(key, msg)
	if err != nil {
		return Attestation{}, err
	}

	return Attestation{
		Signer:     PublicKeyOf(key),
		Neighbours: neighbours,
		Scores:     scores,
		Signature:  sig,
	}, nil
}

// VerifySignature recomputes the message hash and checks the signature.
func (a Attestation) VerifySignature() bool {
	msg, err := MessageHash(a.Neighbours, a.Scores)
	if err != nil {
		return false
	}

	return Verify(a.Signature, a.Signer, msg)
}

// CheckArity checks that the attestation has exactly n neighbour slots
// and absent slots are not scored.
func (a Attestation) CheckArity(n int) error {
	if len(a.Neighbours) != n || len(a.Scores) != n {
		return fmt.Errorf("%w: expected %d slots, got %d neighbours and %d scores",
			ErrInvalidAttestation, n, len(a.Neighbours), len(a.Scores))
	}

	for i := range a.Neighbours {
		if a.Neighbours[i].IsAbsent() && !a.Scores[i].IsZero() {
			return fmt.Errorf("%w: absent neighbour #%d has non-zero score", ErrInvalidAttestation, i)
		}

		if !a.Scores[i].IsUint64() {
			return fmt.Errorf("%w: score #%d overflows uint64", ErrInvalidAttestation, i)
		}
	}

	return nil
}

// LocalTrust returns the trust values of the attestation as numbers.
// Absent slots have zero trust.
func (a Attestation) LocalTrust() []float64 {
	res := make([]float64, len(a.Scores))

	for i := range a.Scores {
		res[i] = float64(a.Scores[i].Uint64())
	}

	return res
}

// Clone returns a deep copy of the attestation.
func (a Attestation) Clone() Attestation {
	res := a

	res.Neighbours = append([]PublicKey(nil), a.Neighbours...)
	res.Scores = append([]fr.Element(nil), a.Scores...)

	return res
}

// ScoreFromUint64 converts integer local trust value to the field element.
func ScoreFromUint64(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)

	return e
}
