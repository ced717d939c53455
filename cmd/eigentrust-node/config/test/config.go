// Package configtest provides helpers reading test configurations.
package configtest

import (
	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-node/config"
)

// Extensions lists the file formats every test configuration is
// provided in.
var Extensions = []string{".yaml", ".json"}

// ForEachFileType calls f for the configuration read from the file with
// path prefix pref and each of the Extensions.
func ForEachFileType(pref string, f func(*config.Config)) {
	for _, ext := range Extensions {
		f(config.New(config.Prm{}, config.WithConfigFile(pref+ext)))
	}
}

// EmptyConfig returns Config which reads only ENV.
func EmptyConfig() *config.Config {
	return config.New(config.Prm{})
}
