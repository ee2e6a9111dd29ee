// snakex plays Snake Extreme in the terminal, over SSH or in a browser.
//
// Usage:
//
//	snakex list              - List available modes
//	snakex play [mode]       - Play a mode (default: snakex)
//	snakex menu              - Start menu to pick modes interactively
//	snakex scores [mode]     - Show high scores for a mode
//	snakex serve             - Start SSH server for remote play
//	snakex web               - Start WebSocket server for browser play
//	snakex config [mode]     - Print the resolved configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set host frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snakex/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--sound               - Enable sound and music (default: true)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/snake-extreme/internal/games/snakex"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakex",
	Short: "Snake Extreme - grid snake with hazards, in your terminal",
	Long: `Snake Extreme is a grid snake game. Past a few points the field starts
growing obstacles, lightning that flips between hazard and food, and shine
food that lets the snake devour hazards.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  scores   - View high scores
  serve    - Start SSH server for remote play
  web      - Start WebSocket server for browser play
  config   - Print the resolved configuration

Examples:
  snakex play
  snakex play snakex_classic --difficulty easy
  snakex menu
  snakex serve --ssh :2222
  snakex web --http :8080
  snakex scores snakex`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setup()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		teardown()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snakex/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", true, "Play sound effects and music")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}
