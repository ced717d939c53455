// Package commonflags defines flags shared by the CLI commands.
package commonflags

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Node API flags.
const (
	Endpoint          = "endpoint"
	EndpointShorthand = "r"
	EndpointDefault   = "127.0.0.1:3000"
	EndpointUsage     = "Node API address as multiaddr, <host>:<port> or URL"

	Timeout          = "timeout"
	TimeoutShorthand = "t"
	TimeoutDefault   = 15 * time.Second
	TimeoutUsage     = "Timeout of the node API request"
)

// Participant key flag.
const (
	Seed      = "seed"
	SeedUsage = "Base58 seed of the participant key"
)

// InitAPI adds Endpoint and Timeout flags to the command.
func InitAPI(cmd *cobra.Command) {
	ff := cmd.Flags()

	ff.StringP(Endpoint, EndpointShorthand, EndpointDefault, EndpointUsage)
	ff.DurationP(Timeout, TimeoutShorthand, TimeoutDefault, TimeoutUsage)
}

// Bind makes viper resolve the shared flags of the command, so values
// absent in the command line come from the config file or ENV. Must be
// called before the command is run since all commands share the keys.
func Bind(cmd *cobra.Command) {
	for _, name := range [...]string{Endpoint, Timeout, Seed} {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = viper.BindPFlag(name, f)
		}
	}
}
