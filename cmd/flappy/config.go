package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	flagFormat   string
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve, validate and print the configuration the game would use.

The output is a complete file: save it to ~/.flappy/flappy.yaml (or .toml)
and edit the values you want to change.

Examples:
  flappy config
  flappy config --format toml > ~/.flappy/flappy.toml
  flappy config --config ./custom.yaml
  flappy config --defaults > ~/.flappy/flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file, comments included")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return config.Encode(cmd.OutOrStdout(), format, cfg)
}
