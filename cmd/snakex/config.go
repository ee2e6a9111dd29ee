package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-extreme/internal/config"
	"github.com/vovakirdan/snake-extreme/internal/games/snakex"
	"github.com/vovakirdan/snake-extreme/internal/registry"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the resolved configuration as YAML",
	Long: `Print the configuration a mode would start with, after the config
search path, --config and --difficulty are applied.

With --defaults, print the embedded default file instead. It is a good
starting point for ~/.snakex/configs/snakex.yaml.

Examples:
  snakex config
  snakex config snakex_classic --difficulty hard
  snakex config --defaults > ~/.snakex/configs/snakex.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the embedded defaults")
}

func runConfig(_ *cobra.Command, args []string) error {
	mode := string(snakex.VariantExtreme)
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'snakex list' to see available modes", mode)
	}

	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML(mode))
		return err
	}

	if flagConfig != "" {
		// Surface a broken custom file instead of the silent fallback
		if _, err := config.LoadSnakeX(flagConfig); err != nil {
			return err
		}
	}

	data, err := config.MarshalSnakeX(snakex.LoadConfig(snakex.Variant(mode)))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
