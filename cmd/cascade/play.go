package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/color-cascade/internal/cascade"
	"github.com/vovakirdan/color-cascade/internal/config"
	"github.com/vovakirdan/color-cascade/internal/core"
	"github.com/vovakirdan/color-cascade/internal/games/colorcascade"
	"github.com/vovakirdan/color-cascade/internal/platform/audio"
	"github.com/vovakirdan/color-cascade/internal/platform/tui"
	"github.com/vovakirdan/color-cascade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round of Color Cascade",
	Long: `Start playing immediately.

Controls:
  Space/Enter  - Start
  1 2 3        - Tap red, yellow, blue
  4 5 6        - Tap purple, orange, green (once unlocked)
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Pause, or leave when not playing
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot

Taps that land within a short window count together, so press both
primaries of a composite shape quickly.

Difficulty options:
  easy   - Start at lowest speed, speeds up with score
  normal - Start at 30% speed-up, speeds up with score
  hard   - Start at 70% speed-up with a shorter tap window
  fixed  - No speed-up, stays at the config's initial level

Examples:
  cascade play
  cascade play --difficulty easy
  cascade play --difficulty hard --sound
  cascade play --config ./my-cascade.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects and music")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with scores (default: current user)")
}

// gameSetup validates the shared game flags and applies them.
func gameSetup() (config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return "", err
	}
	if flagConfig != "" {
		if _, err := config.LoadCascade(flagConfig); err != nil {
			return "", err
		}
	}
	colorcascade.SetConfigPath(flagConfig)
	colorcascade.SetDifficultyPreset(preset)
	return preset, nil
}

// playerName returns the --player flag or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// soundObservers starts audio when --sound is set.
func soundObservers() ([]cascade.Observer, func()) {
	if !flagSound {
		return nil, func() {}
	}
	sm := audio.NewSoundManager(logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil, func() {}
	}
	return []cascade.Observer{sm}, sm.Close
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := gameSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := tui.NewGame(preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	observers, closeSound := soundObservers()

	_, runErr := tui.Run(game, store, runtimeConfig(), tui.PlayOptions{
		Player:     playerName(),
		Difficulty: difficultyLabel(preset),
		Logger:     logger,
		Observers:  observers,
	})

	closeSound()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// difficultyLabel is the name stored with a score. Rounds played with the
// config as loaded are labelled "custom".
func difficultyLabel(preset config.DifficultyPreset) string {
	if preset == "" {
		return "custom"
	}
	return string(preset)
}
