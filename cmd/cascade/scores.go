package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-cascade/internal/games/colorcascade"
	"github.com/vovakirdan/color-cascade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top Color Cascade scores.

Use --player to also show one player's best score.

Examples:
  cascade scores
  cascade scores --limit 25
  cascade scores --player ada
  cascade scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Also show this player's best score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	gameID := colorcascade.GameID

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores cleared.")
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Color Cascade")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cascade play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-6s  %-10s  %s\n", "Rank", "Player", "Score", "Combo", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-6s  %-10s  %s\n", "----", "------", "-----", "-----", "----------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-16s  %-6d  %-6d  %-10s  %s\n",
			i+1, player, entry.Score, entry.BestCombo, entry.Difficulty,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Printf("Games: %d  Best: %d  Best combo: %d  Average: %.1f\n",
			stats.GamesCount, stats.HighScore, stats.BestCombo, stats.AvgScore)
	}
	if flagPlayer != "" {
		if best, err := store.PlayerBest(gameID, flagPlayer); err == nil {
			fmt.Printf("Best for %s: %d\n", flagPlayer, best)
		}
	}
}
