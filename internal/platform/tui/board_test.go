package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/engine"
)

func emptyGrid(size int) [][]int {
	g := make([][]int, size)
	for i := range g {
		g[i] = make([]int, size)
	}
	return g
}

func TestBoardLabel(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{4, "4x4"},
		{5, "5x5"},
		{3, "3x3"},
	}
	for _, tt := range tests {
		if got := BoardLabel(tt.size); got != tt.want {
			t.Errorf("BoardLabel(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestTileColorProgression(t *testing.T) {
	// Distinct values should not collapse into one color at the low end
	if tileColor(2) == tileColor(4) {
		t.Error("2 and 4 should have different colors")
	}
	if tileColor(1024) == tileColor(2048) {
		t.Error("1024 and 2048 should have different colors")
	}
	if got := tileColor(2048); got != core.ColorBrightYellow {
		t.Errorf("tileColor(2048) = %v, want ColorBrightYellow", got)
	}
	// Above the win tile values keep the top color
	if tileColor(4096) != tileColor(2048) {
		t.Error("values above 2048 should reuse the top color")
	}
}

func TestDrawGameShowsTiles(t *testing.T) {
	snap := engine.Snapshot{
		Size:  4,
		Score: 128,
		Grid: [][]int{
			{2, 0, 0, 0},
			{0, 64, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 2048},
		},
		MaxTile: 2048,
		Status:  engine.StatusPlaying,
	}

	screen := core.NewScreen(80, 24)
	DrawGame(screen, snap, 500)
	out := screen.String()

	for _, want := range []string{"2048", "64", "Score: 128", "Best: 500", "Max: 2048"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered board missing %q", want)
		}
	}
}

func TestDrawGameOverlays(t *testing.T) {
	snap := engine.Snapshot{
		Size:    4,
		Score:   100,
		Grid:    emptyGrid(4),
		MaxTile: 64,
		Status:  engine.StatusLost,
	}

	screen := core.NewScreen(80, 24)
	DrawGame(screen, snap, 0)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("lost game should render GAME OVER overlay")
	}

	snap.Status = engine.StatusWon
	DrawGame(screen, snap, 0)
	if !strings.Contains(screen.String(), "YOU WIN!") {
		t.Error("won game should render YOU WIN! overlay")
	}
}

func TestDrawGameTooSmall(t *testing.T) {
	snap := engine.Snapshot{
		Size:   4,
		Grid:   emptyGrid(4),
		Status: engine.StatusPlaying,
	}

	screen := core.NewScreen(20, 8)
	DrawGame(screen, snap, 0)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screen should render resize hint")
	}
}
