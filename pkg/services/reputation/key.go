package reputation

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/mr-tron/base58"
)

// PublicKeySize is the size of the compressed public key
// in a binary representation.
const PublicKeySize = fr.Bytes

// PeerID is a canonical identity hash of the participant.
//
// PeerID is MiMC digest of the public key coordinates, so it
// can be used as a map key and compared directly.
type PeerID [fr.Bytes]byte

// String returns base58 representation of the PeerID.
func (id PeerID) String() string {
	return base58.Encode(id[:])
}

// PublicKey is an identity of the network participant: the point
// of BN254 twisted Edwards curve in affine coordinates.
//
// Zero value (0, 0) does not belong to the curve and is used as
// an explicit marker of the absent neighbour slot.
type PublicKey struct {
	X, Y fr.Element
}

var errNotOnCurve = errors.New("point is not on curve")

// AbsentKey returns the marker of the unused neighbour slot.
func AbsentKey() PublicKey {
	return PublicKey{}
}

// IsAbsent checks if the key marks an unused neighbour slot.
func (k PublicKey) IsAbsent() bool {
	return k.X.IsZero() && k.Y.IsZero()
}

// Equal compares two keys.
func (k PublicKey) Equal(other PublicKey) bool {
	return k.X.Equal(&other.X) && k.Y.Equal(&other.Y)
}

func (k PublicKey) point() twistededwards.PointAffine {
	var p twistededwards.PointAffine

	p.X.Set(&k.X)
	p.Y.Set(&k.Y)

	return p
}

// IsValid checks if the key is a point on the curve.
func (k PublicKey) IsValid() bool {
	p := k.point()
	return p.IsOnCurve()
}

// ID calculates the canonical identity hash of the key.
func (k PublicKey) ID() PeerID {
	h := mimc.NewMiMC()

	x := k.X.Bytes()
	y := k.Y.Bytes()

	// canonical field elements are always accepted
	_, _ = h.Write(x[:])
	_, _ = h.Write(y[:])

	var id PeerID
	copy(id[:], h.Sum(nil))

	return id
}

// Bytes returns compressed binary representation of the key.
func (k PublicKey) Bytes() []byte {
	p := k.point()
	b := p.Bytes()

	return b[:]
}

// String returns base58 representation of the compressed key.
func (k PublicKey) String() string {
	return base58.Encode(k.Bytes())
}

// PublicKeyFromBytes decodes compressed key and checks that
// it belongs to the curve.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return PublicKey{}, fmt.Errorf("invalid public key length %d", len(b))
	}

	var p twistededwards.PointAffine

	if _, err := p.SetBytes(b); err != nil {
		return PublicKey{}, fmt.Errorf("decompress public key: %w", err)
	}

	if !p.IsOnCurve() {
		return PublicKey{}, errNotOnCurve
	}

	return PublicKey{X: p.X, Y: p.Y}, nil
}

// PublicKeyFromString decodes base58 representation of the compressed key.
func PublicKeyFromString(s string) (PublicKey, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("decode base58: %w", err)
	}

	return PublicKeyFromBytes(b)
}

// PublicKeyOf returns the identity of the private key holder.
func PublicKeyOf(key *eddsa.PrivateKey) PublicKey {
	return PublicKey{X: key.PublicKey.A.X, Y: key.PublicKey.A.Y}
}

// SeedSize is the size of the seed private keys are derived from.
const SeedSize = 32

// KeyFromSeed deterministically derives a private key from the seed.
func KeyFromSeed(seed []byte) (*eddsa.PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("invalid seed length %d", len(seed))
	}

	return eddsa.GenerateKey(bytes.NewReader(seed))
}

// KeyFromString derives a private key from base58 encoded seed.
func KeyFromString(s string) (*eddsa.PrivateKey, error) {
	seed, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode base58: %w", err)
	}

	return KeyFromSeed(seed)
}
