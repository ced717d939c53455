package metricsconfig

import (
	"time"

	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
)

const (
	subsection = "prometheus"

	// AddressDefault is the default listen address of the Prometheus
	// endpoint.
	AddressDefault = "localhost:9090"

	// ShutdownTimeoutDefault is the default time given to the Prometheus
	// endpoint to finish requests in progress on shutdown.
	ShutdownTimeoutDefault = 30 * time.Second
)

// Enabled returns "prometheus.enabled" or false if it is missing.
func Enabled(c *config.Config) bool {
	return config.BoolSafe(c.Sub(subsection), "enabled")
}

// Address returns "prometheus.address" or AddressDefault.
func Address(c *config.Config) string {
	if v := config.StringSafe(c.Sub(subsection), "address"); v != "" {
		return v
	}

	return AddressDefault
}

// ShutdownTimeout returns "prometheus.shutdown_timeout" or
// ShutdownTimeoutDefault if the value is not a positive duration.
func ShutdownTimeout(c *config.Config) time.Duration {
	if v := config.DurationSafe(c.Sub(subsection), "shutdown_timeout"); v > 0 {
		return v
	}

	return ShutdownTimeoutDefault
}
