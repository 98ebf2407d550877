package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui2048/internal/config"
	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/engine"
	"github.com/vovakirdan/tui2048/internal/platform/tui"
	"github.com/vovakirdan/tui2048/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagWinTile    int
	flagStartTiles int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game in the current terminal.

Controls:
  Arrow keys/WASD - Move tiles
  R               - Restart
  Tab             - High scores
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Fewer 4s spawn, win at 1024
  normal - Classic rules, win at 2048
  hard   - More 4s spawn, win at 4096

Examples:
  t2048 play
  t2048 play --size 5
  t2048 play --difficulty hard
  t2048 play --win 4096 --start-tiles 3
  t2048 play --config ./my-2048.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (overrides config)")
	playCmd.Flags().IntVar(&flagWinTile, "win", 0, "Winning tile value (overrides config)")
	playCmd.Flags().IntVar(&flagStartTiles, "start-tiles", 0, "Tiles spawned at game start (overrides config)")
}

// loadGameConfig loads the YAML config and applies preset and flag overrides.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	// Flags beat config
	if flagSize > 0 {
		cfg.Board.Size = flagSize
	}
	if flagWinTile > 0 {
		cfg.Board.WinTile = flagWinTile
	}
	if flagStartTiles > 0 {
		cfg.Board.StartTiles = flagStartTiles
	}

	return cfg, nil
}

// engineConfig converts a game config to the engine's config.
func engineConfig(cfg config.GameConfig, seed int64) engine.Config {
	return engine.Config{
		Size:            cfg.Board.Size,
		StartTiles:      cfg.Board.StartTiles,
		WinTile:         cfg.Board.WinTile,
		FourProbability: cfg.Spawn.FourProbability,
		ForcePowerOfTwo: cfg.Sanitize.ForcePowerOfTwo,
		Seed:            seed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(engineConfig(gameCfg, flagSeed), store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
