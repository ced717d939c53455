package ledger

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"go.uber.org/zap"
)

// Prm groups the required parameters of the Ledger's constructor.
//
// All values must comply with the requirements imposed on them.
// Passing incorrect parameter values will result in constructor
// failure (error or panic depending on the implementation).
type Prm struct {
	// Predicate of the canonical participant set.
	//
	// Must not be nil.
	Membership Membership

	// Number of neighbour slots in each attestation.
	//
	// Must be positive.
	Arity int
}

// Ledger is a gatekeeper between untrusted network input and the
// trust calculation. It stores at most one attestation per participant.
//
// Ledger is not safe for concurrent use: the owner must guard it.
type Ledger struct {
	prm Prm

	opts *options

	items map[reputation.PeerID]reputation.Attestation
}

// Option is a Ledger's constructor option.
type Option func(*options)

type options struct {
	log *zap.Logger
}

func defaultOpts() *options {
	return &options{
		log: zap.L(),
	}
}

// WithLogger returns option to specify logging component.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

const invalidPrmValFmt = "invalid parameter %s (%T):%v"

func panicOnPrmValue(n string, v any) {
	panic(fmt.Sprintf(invalidPrmValFmt, n, v, v))
}

// New creates a new instance of the Ledger.
//
// Panics if at least one value of the parameters is invalid.
func New(prm Prm, opts ...Option) *Ledger {
	switch {
	case prm.Membership == nil:
		panicOnPrmValue("Membership", prm.Membership)
	case prm.Arity <= 0:
		panicOnPrmValue("Arity", prm.Arity)
	}

	o := defaultOpts()

	for i := range opts {
		opts[i](o)
	}

	return &Ledger{
		prm:   prm,
		opts:  o,
		items: make(map[reputation.PeerID]reputation.Attestation),
	}
}

// Arity returns number of neighbour slots in accepted attestations.
func (l *Ledger) Arity() int {
	return l.prm.Arity
}

// Add validates the attestation and stores it replacing any previous
// attestation of the same signer.
//
// Validation steps are structure, membership of the signer and each
// neighbour, signature. All validation failures are
// reputation.ErrInvalidAttestation, the Ledger is not changed in that case.
func (l *Ledger) Add(att reputation.Attestation) error {
	if err := att.CheckArity(l.prm.Arity); err != nil {
		return err
	}

	signer := att.Signer.ID()

	if !l.prm.Membership.IsMember(signer) {
		return fmt.Errorf("%w: unknown signer %s", reputation.ErrInvalidAttestation, att.Signer)
	}

	for i := range att.Neighbours {
		if att.Neighbours[i].IsAbsent() {
			continue
		}

		if !att.Neighbours[i].IsValid() || !l.prm.Membership.IsMember(att.Neighbours[i].ID()) {
			return fmt.Errorf("%w: unknown neighbour #%d", reputation.ErrInvalidAttestation, i)
		}
	}

	if !att.VerifySignature() {
		return fmt.Errorf("%w: signature mismatch", reputation.ErrInvalidAttestation)
	}

	_, replaced := l.items[signer]

	l.items[signer] = att.Clone()

	l.opts.log.Debug("attestation stored",
		zap.Stringer("signer", signer),
		zap.Bool("replaced", replaced),
	)

	return nil
}

// Get returns the attestation of the participant.
//
// Returns reputation.ErrAttestationNotFound if there is no one.
func (l *Ledger) Get(pk reputation.PublicKey) (reputation.Attestation, error) {
	att, ok := l.items[pk.ID()]
	if !ok {
		return reputation.Attestation{}, reputation.ErrAttestationNotFound
	}

	return att.Clone(), nil
}

// Len returns number of stored attestations.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Snapshot returns copies of all stored attestations sorted
// by signer identity hash.
func (l *Ledger) Snapshot() []reputation.Attestation {
	res := make([]reputation.Attestation, 0, len(l.items))

	for _, att := range l.items {
		res = append(res, att.Clone())
	}

	slices.SortFunc(res, func(a, b reputation.Attestation) int {
		ida, idb := a.Signer.ID(), b.Signer.ID()
		return bytes.Compare(ida[:], idb[:])
	})

	return res
}
