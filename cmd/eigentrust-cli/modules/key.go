package cmd

import (
	"github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-cli/internal/commonflags"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Operations with participant keys",
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate participant key",
	Long: `Generate participant key or restore it from the seed: prints the seed,
compressed public key and identity hash.`,
	Args: cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, _ []string) {
		commonflags.Bind(cmd)
	},
	RunE: generateKey,
}

func init() {
	keyGenerateCmd.Flags().String(commonflags.Seed, "", commonflags.SeedUsage+" (random if not set)")

	keyCmd.AddCommand(keyGenerateCmd)
}

func generateKey(cmd *cobra.Command, _ []string) error {
	seed := viper.GetString(commonflags.Seed)
	if seed == "" {
		var err error

		seed, err = newSeed()
		if err != nil {
			return err
		}
	}

	key, err := keyFromSeed(seed)
	if err != nil {
		return err
	}

	pk := reputation.PublicKeyOf(key)

	tw := newTable(cmd.OutOrStdout(), "Field", "Value")
	tw.Append([]string{"Seed", seed})
	tw.Append([]string{"Public key", pk.String()})
	tw.Append([]string{"Identity", pk.ID().String()})
	tw.Render()

	return nil
}
