// Package bls implements certificates of global trust computations as
// BLS12-381 signatures (G1 public keys, G2 signatures) over BLAKE3 digest
// of the public inputs.
package bls

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/certificate"
	blst "github.com/supranational/blst/bindings/go"
	"github.com/zeebo/blake3"
)

const (
	// PublicKeySize is the size of the compressed public key.
	PublicKeySize = 48

	// SignatureSize is the size of the compressed signature,
	// i.e. of the certificate.
	SignatureSize = 96

	// MinSeedSize is the minimum size of the key seed.
	MinSeedSize = 32
)

var dst = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_")

// digestPrefix separates certificate messages from other BLAKE3 users.
const digestPrefix = "eigentrust-certificate"

func digest(inputs certificate.PublicInputs) []byte {
	h := blake3.New()

	_, _ = h.Write([]byte(digestPrefix))
	_, _ = h.Write(inputs.Bytes())

	return h.Sum(nil)
}

// Verifier checks certificates against the public key of the issuer.
type Verifier struct {
	pub *blst.P1Affine
}

var errInvalidPublicKey = errors.New("invalid BLS public key")

// NewVerifier decodes compressed public key of the issuer.
func NewVerifier(pub []byte) (*Verifier, error) {
	if len(pub) != PublicKeySize {
		return nil, fmt.Errorf("%w: length %d", errInvalidPublicKey, len(pub))
	}

	p := new(blst.P1Affine).Uncompress(pub)
	if p == nil || !p.KeyValidate() {
		return nil, errInvalidPublicKey
	}

	return &Verifier{pub: p}, nil
}

// Verify implements certificate.Verifier.
func (x *Verifier) Verify(cert []byte, inputs certificate.PublicInputs) (bool, error) {
	if len(cert) != SignatureSize {
		return false, nil
	}

	sig := new(blst.P2Affine).Uncompress(cert)
	if sig == nil {
		return false, nil
	}

	return sig.Verify(true, x.pub, true, digest(inputs), dst), nil
}

// PublicKey returns compressed public key of the issuer.
func (x *Verifier) PublicKey() []byte {
	return x.pub.Compress()
}

// Certifier issues certificates signing them with the BLS secret key.
type Certifier struct {
	Verifier

	secret *blst.SecretKey
}

// New derives the key pair from the seed and returns Certifier using it.
func New(seed []byte) (*Certifier, error) {
	if len(seed) < MinSeedSize {
		return nil, fmt.Errorf("seed must be at least %d bytes", MinSeedSize)
	}

	secret := blst.KeyGen(seed)
	if secret == nil {
		return nil, errors.New("failed to generate BLS key")
	}

	return &Certifier{
		Verifier: Verifier{pub: new(blst.P1Affine).From(secret)},
		secret:   secret,
	}, nil
}

// Certify implements certificate.Certifier.
func (x *Certifier) Certify(ctx context.Context, inputs certificate.PublicInputs) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return new(blst.P2Affine).Sign(x.secret, digest(inputs), dst).Compress(), nil
}
