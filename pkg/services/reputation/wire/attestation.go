// Package wire provides the JSON representation of attestations exchanged
// with the node.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
)

// Element is a big-endian field element. It is encoded as JSON array
// of exactly fr.Bytes numbers.
type Element [fr.Bytes]byte

// UnmarshalJSON implements json.Unmarshaler. Arrays of other length and
// numbers out of byte range are rejected.
func (x *Element) UnmarshalJSON(data []byte) error {
	// []uint8 is decoded from base64 strings, so go through ints
	var nums []int

	if err := json.Unmarshal(data, &nums); err != nil {
		return err
	}

	if len(nums) != len(x) {
		return fmt.Errorf("%w: %d bytes instead of %d", errElementLen, len(nums), len(x))
	}

	var res Element

	for i := range nums {
		if nums[i] < 0 || nums[i] > 0xff {
			return fmt.Errorf("byte #%d is out of range: %d", i, nums[i])
		}

		res[i] = uint8(nums[i])
	}

	*x = res

	return nil
}

// Point is a pair of big-endian affine coordinates.
type Point = [2]Element

// AttestationData is a raw attestation. Byte arrays are encoded
// as JSON arrays of numbers.
type AttestationData struct {
	SigRX      Element   `json:"sig_r_x"`
	SigRY      Element   `json:"sig_r_y"`
	SigS       Element   `json:"sig_s"`
	PK         Point     `json:"pk"`
	Neighbours []Point   `json:"neighbours"`
	Scores     []Element `json:"scores"`
}

var (
	errNonCanonical = errors.New("non-canonical field element")
	errElementLen   = errors.New("invalid field element length")
)

func element(e fr.Element) Element {
	return Element(e.Bytes())
}

func fromElement(b Element) (fr.Element, error) {
	var e fr.Element

	e.SetBytes(b[:])

	if Element(e.Bytes()) != b {
		return e, errNonCanonical
	}

	return e, nil
}

func point(pk reputation.PublicKey) Point {
	return Point{element(pk.X), element(pk.Y)}
}

func fromPoint(p Point) (reputation.PublicKey, error) {
	x, err := fromElement(p[0])
	if err != nil {
		return reputation.PublicKey{}, fmt.Errorf("x: %w", err)
	}

	y, err := fromElement(p[1])
	if err != nil {
		return reputation.PublicKey{}, fmt.Errorf("y: %w", err)
	}

	return reputation.PublicKey{X: x, Y: y}, nil
}

// FromAttestation returns raw data of the attestation.
func FromAttestation(att reputation.Attestation) AttestationData {
	res := AttestationData{
		SigRX:      element(att.Signature.RX),
		SigRY:      element(att.Signature.RY),
		SigS:       Element(att.Signature.S),
		PK:         point(att.Signer),
		Neighbours: make([]Point, len(att.Neighbours)),
		Scores:     make([]Element, len(att.Scores)),
	}

	for i := range att.Neighbours {
		res.Neighbours[i] = point(att.Neighbours[i])
	}

	for i := range att.Scores {
		res.Scores[i] = element(att.Scores[i])
	}

	return res
}

// Attestation decodes the raw data. Coordinates and scores must be
// canonical field elements. Semantic checks are the ledger's concern.
func (x AttestationData) Attestation() (reputation.Attestation, error) {
	var (
		res reputation.Attestation
		err error
	)

	if res.Signature.RX, err = fromElement(x.SigRX); err != nil {
		return res, fmt.Errorf("signature R x: %w", err)
	}

	if res.Signature.RY, err = fromElement(x.SigRY); err != nil {
		return res, fmt.Errorf("signature R y: %w", err)
	}

	res.Signature.S = x.SigS

	if res.Signer, err = fromPoint(x.PK); err != nil {
		return res, fmt.Errorf("public key: %w", err)
	}

	res.Neighbours = make([]reputation.PublicKey, len(x.Neighbours))

	for i := range x.Neighbours {
		if res.Neighbours[i], err = fromPoint(x.Neighbours[i]); err != nil {
			return res, fmt.Errorf("neighbour #%d: %w", i, err)
		}
	}

	res.Scores = make([]fr.Element, len(x.Scores))

	for i := range x.Scores {
		if res.Scores[i], err = fromElement(x.Scores[i]); err != nil {
			return res, fmt.Errorf("score #%d: %w", i, err)
		}
	}

	return res, nil
}

// Marshal encodes the attestation into JSON.
func Marshal(att reputation.Attestation) ([]byte, error) {
	return json.Marshal(FromAttestation(att))
}

// Unmarshal decodes the attestation from JSON. Unknown fields and
// trailing data are rejected.
func Unmarshal(data []byte) (reputation.Attestation, error) {
	var raw AttestationData

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&raw); err != nil {
		return reputation.Attestation{}, fmt.Errorf("decode JSON: %w", err)
	}

	if dec.More() {
		return reputation.Attestation{}, errors.New("trailing data after attestation")
	}

	return raw.Attestation()
}
