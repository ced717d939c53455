package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prm groups Logger's parameters.
//
// Successful passing non-nil parameters to the NewLogger (if returned
// error is nil) leads to applying the changes to the created Logger.
type Prm struct {
	// support runtime rereading
	level zapcore.Level

	// do not support runtime rereading
	encoding string
}

const (
	// EncodingConsole is a human-readable encoding with JSON context.
	EncodingConsole = "console"

	// EncodingJSON is a machine-readable encoding.
	EncodingJSON = "json"
)

// SetLevelString sets the minimum logging level. Default is
// "info".
//
// Returns an error if s is not a string representation of a
// supporting logging level.
//
// Supports runtime rereading.
func (p *Prm) SetLevelString(s string) error {
	return p.level.UnmarshalText([]byte(s))
}

// SetEncoding sets the logger encoding: "console" (default) or "json".
func (p *Prm) SetEncoding(s string) error {
	switch s {
	case "", EncodingConsole, EncodingJSON:
		p.encoding = s
		return nil
	default:
		return fmt.Errorf("unsupported logger encoding %q", s)
	}
}

// Reload reloads configuration of a current logger instance.
type Reload func(*Prm) error

// NewLogger constructs a new zap logger instance. Constructing with nil
// parameters is safe: default values will be used then.
// Passing non-nil parameters after a successful creation (non-error)
// allows runtime reconfiguration of the level through the returned
// Reload.
//
// Logger is built from production logging configuration with:
//   - parameterized level;
//   - console or JSON encoding;
//   - ISO8601 time encoding.
//
// Logger records a stack trace for all messages at or above fatal level.
func NewLogger(prm *Prm) (*zap.Logger, Reload, error) {
	if prm == nil {
		prm = new(Prm)
	}

	lvl := zap.NewAtomicLevelAt(prm.level)

	c := zap.NewProductionConfig()
	c.Level = lvl
	c.Encoding = EncodingConsole
	if prm.encoding != "" {
		c.Encoding = prm.encoding
	}
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := c.Build(
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("build zap logger: %w", err)
	}

	reload := func(p *Prm) error {
		if p == nil {
			return nil
		}

		lvl.SetLevel(p.level)

		return nil
	}

	return l, reload, nil
}
