package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configOutput string
	configForce  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the effective configuration to a TOML file",
	Long: `Write the effective configuration (defaults merged with --config) to a
TOML file, ready to be edited. An existing file is only replaced with --force.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&configOutput, "output", "o", defaultConfigFile, "File to write")
	configCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(configOutput); err == nil && !configForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", configOutput)
	}
	if err := appConfig.Save(configOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", configOutput)
	return nil
}
