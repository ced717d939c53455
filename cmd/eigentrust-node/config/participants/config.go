package participantsconfig

import (
	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
)

const subsection = "participants"

// Keys returns the value of "keys" config parameter from "participants"
// section: base58 public keys of the fixed registry members.
//
// Returns nil if the value is missing or invalid.
func Keys(c *config.Config) []string {
	return config.StringSliceSafe(c.Sub(subsection), "keys")
}

// Seeds returns the value of "seeds" config parameter from "participants"
// section: base58 private key seeds of the participants the node signs
// bootstrap attestations for. Their public keys join the registry.
//
// Returns nil if the value is missing or invalid.
func Seeds(c *config.Config) []string {
	return config.StringSliceSafe(c.Sub(subsection), "seeds")
}

// Bootstrap returns the value of "bootstrap" config parameter from
// "participants" section.
//
// Returns false if the value is missing or invalid.
func Bootstrap(c *config.Config) bool {
	return config.BoolSafe(c.Sub(subsection), "bootstrap")
}
