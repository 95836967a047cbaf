package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.arcade/configs/breakout.yaml or ./configs/breakout.yaml and edit the
keys you want to change; missing keys keep their defaults.

Examples:
  breakout config > ~/.arcade/configs/breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
