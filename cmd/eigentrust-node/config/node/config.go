package nodeconfig

import (
	"time"

	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
)

const (
	subsection = "node"

	// ListenAddressDefault is a default address the HTTP API is served on.
	ListenAddressDefault = "127.0.0.1:3000"

	// ShutdownTimeoutDefault is a default timeout of HTTP API graceful shutdown.
	ShutdownTimeoutDefault = 15 * time.Second

	// MaxBodySizeDefault is a default limit of request body size.
	MaxBodySizeDefault = 1 << 20
)

// ListenAddress returns the value of "listen" config parameter
// from "node" section: multiaddr or host:port.
//
// Returns ListenAddressDefault if the value is not a non-empty string.
func ListenAddress(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "listen")
	if v != "" {
		return v
	}

	return ListenAddressDefault
}

// ShutdownTimeout returns the value of "shutdown_timeout" config parameter
// from "node" section.
//
// Returns ShutdownTimeoutDefault if the value is not positive duration.
func ShutdownTimeout(c *config.Config) time.Duration {
	v := config.DurationSafe(c.Sub(subsection), "shutdown_timeout")
	if v > 0 {
		return v
	}

	return ShutdownTimeoutDefault
}

// MaxBodySize returns the value of "max_body_size" config parameter
// from "node" section.
//
// Returns MaxBodySizeDefault if the value is not positive number.
func MaxBodySize(c *config.Config) int64 {
	v := config.IntSafe(c.Sub(subsection), "max_body_size")
	if v > 0 {
		return v
	}

	return MaxBodySizeDefault
}
