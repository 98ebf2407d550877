// t2048 is a terminal 2048 game.
//
// Usage:
//
//	t2048 play               - Play in the current terminal
//	t2048 serve              - Start SSH server for remote play
//	t2048 scores             - Show high scores
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.t2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "t2048 - Play 2048 in your terminal",
	Long: `t2048 is a terminal version of the 2048 tile-merging puzzle.

Slide tiles with the arrow keys. When two tiles with the same value
touch, they merge into one. Reach the winning tile before the board
fills up.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  t2048 play
  t2048 play --size 5 --difficulty hard
  t2048 serve --ssh :2222
  t2048 scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
