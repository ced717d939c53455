package certificateconfig

import (
	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
)

const subsection = "certificate"

// Enabled returns the value of "enabled" config parameter
// from "certificate" section.
//
// Returns false if the value is missing or invalid.
func Enabled(c *config.Config) bool {
	return config.BoolSafe(c.Sub(subsection), "enabled")
}

// Seed returns the value of "seed" config parameter from "certificate"
// section: base58 seed of the BLS key results are certified with.
//
// Returns "" if the value is missing.
func Seed(c *config.Config) string {
	return config.StringSafe(c.Sub(subsection), "seed")
}
