package config

import (
	"fmt"
	"strings"

	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config/internal"
	"github.com/spf13/viper"
)

// Config represents a group of named values structured
// by tree type.
//
// Sub-trees are named configuration sub-sections,
// leaves are named configuration values.
// Names are of string type.
type Config struct {
	v *viper.Viper

	opts opts

	// dot-separated key of the section, empty for the root
	prefix string
}

const separator = "."

// Prm groups required parameters of the Config.
type Prm struct{}

// New creates a new Config instance.
//
// If file option is provided (WithConfigFile),
// configuration values are read from it.
// Otherwise, Config is a degenerate tree.
//
// Values of ENV variables with EIGENTRUST prefix
// override the file ones.
func New(_ Prm, opts ...Option) *Config {
	o := defaultOpts()
	for i := range opts {
		opts[i](o)
	}

	v, err := readViper(o)
	if err != nil {
		panic(err)
	}

	return &Config{
		v:    v,
		opts: *o,
	}
}

func readViper(o *opts) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(internal.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(separator, internal.EnvSeparator))

	if o.path != "" {
		v.SetConfigFile(o.path)

		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// Reload reads the configuration file and the environment again.
// Sub-sections taken before the call keep the previous values.
//
// Config is left unchanged on error.
func (x *Config) Reload() error {
	v, err := readViper(&x.opts)
	if err != nil {
		return err
	}

	x.v = v

	return nil
}
