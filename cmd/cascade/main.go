// cascade is a terminal color matching game: tap the primary colors that
// make up each falling shape before it lands.
//
// Usage:
//
//	cascade play             - Play a round directly
//	cascade menu             - Start menu with difficulty picker and scores
//	cascade serve            - Start SSH server for remote play
//	cascade scores           - Show high scores
//	cascade config           - Print the effective game config
//	cascade list             - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.color-cascade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/color-cascade/internal/games/colorcascade"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cascade",
		Level:           log.WarnLevel,
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cascade",
	Short: "Color Cascade - a color matching game for your terminal",
	Long: `Color Cascade drops colored shapes down the screen. Tap the primary
colors that make up each shape before it lands: red, yellow and blue match
themselves, purple is red + blue, orange is red + yellow and green is
yellow + blue. Composite shapes appear once your score passes 5.

Available commands:
  play     - Play a round directly
  menu     - Interactive menu with difficulty picker and scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective game config
  list     - Show registered games

Examples:
  cascade play
  cascade play --difficulty hard --sound
  cascade menu
  cascade serve --ssh :2222
  cascade scores --limit 20`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		log.SetDefault(logger)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.color-cascade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
