package eigentrustconfig

import (
	"fmt"
	"time"

	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
	"github.com/spf13/cast"
)

const (
	subsection = "eigentrust"

	// EpochIntervalDefault is a default duration of the epoch.
	EpochIntervalDefault = 10 * time.Second

	// IterationsDefault is a default number of power iterations per run.
	IterationsDefault = 10

	// InitialScoreDefault is a default initial score of every participant.
	InitialScoreDefault = 0.5

	// NormalizationDefault is a default normalization policy.
	NormalizationDefault = "end"

	// ArityDefault is a default number of neighbour slots in attestations.
	ArityDefault = 5

	// CacheSizeDefault is a default number of epoch results kept in memory.
	CacheSizeDefault = 16

	// InitialTotalScoreDefault is a default total score distributed
	// by the bootstrap attestations.
	InitialTotalScoreDefault = 1000
)

func section(c *config.Config) *config.Config {
	return c.Sub(subsection)
}

// EpochInterval returns the value of "epoch_interval" config parameter
// from "eigentrust" section.
//
// Returns EpochIntervalDefault if the value is not a positive whole
// number of seconds, since epochs are counted in Unix seconds.
func EpochInterval(c *config.Config) time.Duration {
	v := config.DurationSafe(section(c), "epoch_interval")
	if v >= time.Second && v%time.Second == 0 {
		return v
	}

	return EpochIntervalDefault
}

// Iterations returns the value of "iterations" config parameter
// from "eigentrust" section.
//
// Returns IterationsDefault if the value is not positive number.
func Iterations(c *config.Config) uint32 {
	v := config.UintSafe(section(c), "iterations")
	if v > 0 && v <= 1<<32-1 {
		return uint32(v)
	}

	return IterationsDefault
}

// InitialScore returns the value of "initial_score" config parameter
// from "eigentrust" section.
//
// Returns InitialScoreDefault if the value is not positive number.
func InitialScore(c *config.Config) float64 {
	v := config.FloatSafe(section(c), "initial_score")
	if v > 0 {
		return v
	}

	return InitialScoreDefault
}

// Alpha returns the value of "alpha" config parameter
// from "eigentrust" section: weight of pre-trust mixed into
// every iteration.
//
// Returns 0 if the value is missing.
func Alpha(c *config.Config) float64 {
	return config.FloatSafe(section(c), "alpha")
}

// Normalization returns the value of "normalization" config parameter
// from "eigentrust" section.
//
// Returns NormalizationDefault if the value is not a non-empty string.
func Normalization(c *config.Config) string {
	v := config.StringSafe(section(c), "normalization")
	if v != "" {
		return v
	}

	return NormalizationDefault
}

// PreTrust returns the value of "pre_trust" config parameter
// from "eigentrust" section: list of {key, weight} entries where
// key is a base58 public key. Result maps keys to weights.
//
// Returns nil if the value is missing. Panics if an entry is invalid.
func PreTrust(c *config.Config) map[string]float64 {
	v := section(c).Value("pre_trust")
	if v == nil {
		return nil
	}

	entries, err := cast.ToSliceE(v)
	if err != nil {
		panic(fmt.Errorf("invalid pre-trust list: %w", err))
	}

	if len(entries) == 0 {
		return nil
	}

	res := make(map[string]float64, len(entries))

	for i := range entries {
		e, err := cast.ToStringMapE(entries[i])
		if err != nil {
			panic(fmt.Errorf("invalid pre-trust entry #%d: %w", i, err))
		}

		key, err := cast.ToStringE(e["key"])
		if err != nil || key == "" {
			panic(fmt.Errorf("invalid key of pre-trust entry #%d", i))
		}

		w, err := cast.ToFloat64E(e["weight"])
		if err != nil || w < 0 {
			panic(fmt.Errorf("invalid weight of pre-trust entry #%d", i))
		}

		res[key] = w
	}

	return res
}

// RequireComplete returns the value of "require_complete" config parameter
// from "eigentrust" section.
//
// Returns false if the value is missing or invalid.
func RequireComplete(c *config.Config) bool {
	return config.BoolSafe(section(c), "require_complete")
}

// Arity returns the value of "arity" config parameter
// from "eigentrust" section.
//
// Returns ArityDefault if the value is not positive number.
func Arity(c *config.Config) int {
	v := config.IntSafe(section(c), "arity")
	if v > 0 {
		return int(v)
	}

	return ArityDefault
}

// CacheSize returns the value of "cache_size" config parameter
// from "eigentrust" section.
//
// Returns CacheSizeDefault if the value is not positive number.
func CacheSize(c *config.Config) int {
	v := config.IntSafe(section(c), "cache_size")
	if v > 0 {
		return int(v)
	}

	return CacheSizeDefault
}

// InitialTotalScore returns the value of "initial_total_score" config
// parameter from "eigentrust" section.
//
// Returns InitialTotalScoreDefault if the value is not positive number.
func InitialTotalScore(c *config.Config) uint64 {
	v := config.UintSafe(section(c), "initial_total_score")
	if v > 0 {
		return v
	}

	return InitialTotalScoreDefault
}
