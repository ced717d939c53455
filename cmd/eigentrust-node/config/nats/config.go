package natsconfig

import (
	"time"

	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
)

const (
	subsection = "nats"

	// SubjectDefault is a default subject results are published to.
	SubjectDefault = "eigentrust.scores"

	// StreamDefault is a default name of the JetStream stream.
	StreamDefault = "eigentrust"

	// TimeoutDefault is a default connection timeout.
	TimeoutDefault = 5 * time.Second
)

// Enabled returns the value of "enabled" config parameter
// from "nats" section.
//
// Returns false if the value is missing or invalid.
func Enabled(c *config.Config) bool {
	return config.BoolSafe(c.Sub(subsection), "enabled")
}

// Endpoint returns the value of "endpoint" config parameter
// from "nats" section.
//
// Returns "" if the value is missing.
func Endpoint(c *config.Config) string {
	return config.StringSafe(c.Sub(subsection), "endpoint")
}

// Subject returns the value of "subject" config parameter
// from "nats" section.
//
// Returns SubjectDefault if the value is not set.
func Subject(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "subject")
	if v != "" {
		return v
	}

	return SubjectDefault
}

// Stream returns the value of "stream" config parameter
// from "nats" section.
//
// Returns StreamDefault if the value is not set.
func Stream(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "stream")
	if v != "" {
		return v
	}

	return StreamDefault
}

// Timeout returns the value of "timeout" config parameter
// from "nats" section.
//
// Returns TimeoutDefault if the value is not positive duration.
func Timeout(c *config.Config) time.Duration {
	v := config.DurationSafe(c.Sub(subsection), "timeout")
	if v > 0 {
		return v
	}

	return TimeoutDefault
}

// CertificatePath returns the value of "certificate" config parameter
// from "nats.tls" section.
func CertificatePath(c *config.Config) string {
	return config.StringSafe(c.Sub(subsection).Sub("tls"), "certificate")
}

// KeyPath returns the value of "key" config parameter
// from "nats.tls" section.
func KeyPath(c *config.Config) string {
	return config.StringSafe(c.Sub(subsection).Sub("tls"), "key")
}

// CAPath returns the value of "ca" config parameter
// from "nats.tls" section.
func CAPath(c *config.Config) string {
	return config.StringSafe(c.Sub(subsection).Sub("tls"), "ca")
}
