package notificator

import (
	"encoding/base64"

	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
)

// Notification is a message about computed global trust
// delivered to the subscribers.
type Notification struct {
	Epoch uint64 `json:"epoch"`

	// Base58 identities in the order of Scores.
	Participants []string `json:"participants"`

	Scores []float64 `json:"scores"`

	// Base64 certificate, empty if certification is disabled.
	Certificate string `json:"certificate,omitempty"`
}

// FromResult builds Notification about the computation result.
func FromResult(res eigentrust.Result) Notification {
	n := Notification{
		Epoch:        res.Epoch,
		Participants: make([]string, len(res.Participants)),
		Scores:       res.Scores,
	}

	for i := range res.Participants {
		n.Participants[i] = res.Participants[i].String()
	}

	if len(res.Certificate) > 0 {
		n.Certificate = base64.StdEncoding.EncodeToString(res.Certificate)
	}

	return n
}
