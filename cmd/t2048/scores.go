package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui2048/internal/platform/tui"
	"github.com/vovakirdan/tui2048/internal/storage"
)

var (
	flagScoresBoard string
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores. Scores are grouped by board size,
a 5x5 game never competes with a 4x4 one.

Examples:
  t2048 scores
  t2048 scores --board 5x5
  t2048 scores --tui`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresBoard, "board", "4x4", "Board label to show scores for")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(flagScoresBoard, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", flagScoresBoard)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-4s  %s\n", "Rank", "Score", "Tile", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-4s  %s\n", "----", "-----", "----", "---", "----")

	for i, entry := range scores {
		won := ""
		if entry.Won {
			won = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-4s  %s\n", i+1, entry.Score, entry.MaxTile, won, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(flagScoresBoard); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
