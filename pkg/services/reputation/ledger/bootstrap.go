package ledger

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"go.uber.org/zap"
)

// Bootstrap seeds the cold Ledger: each key holder attests equal trust
// initialTotalScore / N toward every participant in keys order
// (itself included).
//
// Number of keys must be equal to the Ledger's arity. Produced
// attestations pass regular validation.
func (l *Ledger) Bootstrap(keys []*eddsa.PrivateKey, initialTotalScore uint64) error {
	n := len(keys)
	if n != l.prm.Arity {
		return fmt.Errorf("bootstrap requires %d participants, got %d", l.prm.Arity, n)
	}

	neighbours := make([]reputation.PublicKey, n)
	for i := range keys {
		neighbours[i] = reputation.PublicKeyOf(keys[i])
	}

	score := reputation.ScoreFromUint64(initialTotalScore / uint64(n))

	scores := make([]fr.Element, n)
	for i := range scores {
		scores[i] = score
	}

	atts := make([]reputation.Attestation, n)

	for i := range keys {
		att, err := reputation.NewAttestation(keys[i], neighbours, scores)
		if err != nil {
			return fmt.Errorf("sign bootstrap attestation of participant #%d: %w", i, err)
		}

		atts[i] = att
	}

	for i := range atts {
		if err := l.Add(atts[i]); err != nil {
			return fmt.Errorf("add bootstrap attestation of participant #%d: %w", i, err)
		}
	}

	l.opts.log.Info("ledger bootstrapped",
		zap.Int("participants", n),
		zap.Uint64("initial total score", initialTotalScore),
	)

	return nil
}
