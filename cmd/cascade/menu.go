package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-cascade/internal/config"
	"github.com/vovakirdan/color-cascade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the menu",
	Long: `Start Color Cascade in interactive menu mode.

Pick a difficulty, play, and return to the menu when the round is over.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  cascade menu
  cascade menu --difficulty hard
  cascade menu --fps 30 --sound`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addGameFlags(menuCmd)
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects and music")
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := gameSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}

	store := openStore()
	observers, closeSound := soundObservers()
	player := playerName()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg, player, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes and the chosen difficulty for the next visit
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		game, err := tui.NewGame(preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			break
		}

		// Fresh seed per round unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, tui.PlayOptions{
			Player:     player,
			Difficulty: string(preset),
			Logger:     logger,
			Observers:  observers,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		if !backToMenu {
			break
		}
	}

	closeSound()
	if store != nil {
		store.Close()
	}
}
