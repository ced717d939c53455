package ledger

import (
	"fmt"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
)

// Membership decides whether the identity belongs to the canonical
// participant set.
type Membership interface {
	IsMember(reputation.PeerID) bool
}

// Registry is a Membership with a canonical order of the participants.
// Bounded deployments compute scores over the registry in that order.
type Registry interface {
	Membership

	// Participants returns the participants in canonical order.
	Participants() []reputation.PublicKey
}

// FixedSet is a Registry of known participants.
type FixedSet struct {
	keys []reputation.PublicKey
	ids  map[reputation.PeerID]int
}

// NewFixedSet creates the registry of the given participants.
// The order of keys is canonical.
func NewFixedSet(keys []reputation.PublicKey) (*FixedSet, error) {
	s := &FixedSet{
		keys: make([]reputation.PublicKey, 0, len(keys)),
		ids:  make(map[reputation.PeerID]int, len(keys)),
	}

	for i := range keys {
		if !keys[i].IsValid() {
			return nil, fmt.Errorf("participant #%d: invalid public key", i)
		}

		id := keys[i].ID()
		if _, ok := s.ids[id]; ok {
			return nil, fmt.Errorf("participant #%d: duplicated key %s", i, keys[i])
		}

		s.ids[id] = len(s.keys)
		s.keys = append(s.keys, keys[i])
	}

	return s, nil
}

// IsMember implements Membership.
func (s *FixedSet) IsMember(id reputation.PeerID) bool {
	_, ok := s.ids[id]
	return ok
}

// Participants implements Registry.
func (s *FixedSet) Participants() []reputation.PublicKey {
	return append([]reputation.PublicKey(nil), s.keys...)
}

// Len returns number of participants.
func (s *FixedSet) Len() int {
	return len(s.keys)
}

// OpenSet is a Membership of unbounded deployments: any identity
// is recognized.
type OpenSet struct{}

// IsMember implements Membership.
func (OpenSet) IsMember(reputation.PeerID) bool {
	return true
}
