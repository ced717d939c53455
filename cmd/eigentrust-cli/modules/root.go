package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/nspcc-dev/eigentrust-node/misc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "EIGENTRUST_CLI"

	configFlag = "config"
)

var rootCmd = &cobra.Command{
	Use:   "eigentrust-cli",
	Short: "Command Line Tool to work with EigenTrust node",
	Long: `EigenTrust CLI manages participant keys, signs local trust attestations,
submits them to the node, queries computed global trust and simulates
convergence of the trust network locally.

Flag values may be set in the config file (~/.config/eigentrust-cli/config.yaml
by default) or in EIGENTRUST_CLI_* environment variables.`,
	Version:           misc.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute runs the command chosen by the program arguments.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Config file (~ is expanded)")

	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(attestationCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(simulateCmd)
}

// initConfig reads the config file and ENV. Missing default config file
// is not an error.
func initConfig(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString(configFlag)

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return fmt.Errorf("config path: %w", err)
		}

		viper.SetConfigFile(expanded)

		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}

		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("home directory: %w", err)
	}

	viper.AddConfigPath(filepath.Join(home, ".config", "eigentrust-cli"))
	viper.SetConfigName("config")

	if err := viper.ReadInConfig(); err != nil && !errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}
