package reputation

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
)

// Signature is an EdDSA signature of the local trust statement.
type Signature struct {
	// Point R of the signature.
	RX, RY fr.Element
	// Scalar S in big-endian.
	S [fr.Bytes]byte
}

var errLengthMismatch = errors.New("neighbours and scores length mismatch")

// MessageHash calculates the digest of the ordered neighbour/score
// sequences. The digest is the message attestation signatures are
// made for.
//
// Any change of values or their order changes the result.
func MessageHash(neighbours []PublicKey, scores []fr.Element) (fr.Element, error) {
	var res fr.Element

	if len(neighbours) != len(scores) {
		return res, errLengthMismatch
	}

	h := mimc.NewMiMC()

	var n fr.Element
	n.SetUint64(uint64(len(neighbours)))

	write := func(e *fr.Element) {
		b := e.Bytes()
		// canonical field elements are always accepted
		_, _ = h.Write(b[:])
	}

	write(&n)

	for i := range neighbours {
		write(&neighbours[i].X)
		write(&neighbours[i].Y)
		write(&scores[i])
	}

	res.SetBytes(h.Sum(nil))

	return res, nil
}

// Sign signs the message hash with the private key.
func Sign(key *eddsa.PrivateKey, msg fr.Element) (Signature, error) {
	b := msg.Bytes()

	raw, err := key.Sign(b[:], mimc.NewMiMC())
	if err != nil {
		return Signature{}, fmt.Errorf("sign message: %w", err)
	}

	var sig eddsa.Signature

	if _, err = sig.SetBytes(raw); err != nil {
		return Signature{}, fmt.Errorf("decode produced signature: %w", err)
	}

	return Signature{
		RX: sig.R.X,
		RY: sig.R.Y,
		S:  sig.S,
	}, nil
}

// Verify checks that the signature of the message hash was produced
// by the holder of the signer key.
//
// Returns false on any malformed input.
func Verify(sig Signature, signer PublicKey, msg fr.Element) bool {
	if !signer.IsValid() {
		return false
	}

	r := PublicKey{X: sig.RX, Y: sig.RY}
	if !r.IsValid() {
		return false
	}

	var es eddsa.Signature

	es.R = r.point()
	es.S = sig.S

	pub := eddsa.PublicKey{A: signer.point()}
	b := msg.Bytes()

	ok, err := pub.Verify(es.Bytes(), b[:], mimc.NewMiMC())

	return err == nil && ok
}
