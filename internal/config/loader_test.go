package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// Run from a temp dir so no local configs/ shadows the embedded default.
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(oldWd)
	t.Setenv("HOME", tmpDir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Size != 4 {
		t.Errorf("Board.Size = %d, want 4", cfg.Board.Size)
	}
	if cfg.Board.StartTiles != 2 {
		t.Errorf("Board.StartTiles = %d, want 2", cfg.Board.StartTiles)
	}
	if cfg.Board.WinTile != 2048 {
		t.Errorf("Board.WinTile = %d, want 2048", cfg.Board.WinTile)
	}
	if cfg.Spawn.FourProbability != 0.1 {
		t.Errorf("Spawn.FourProbability = %v, want 0.1", cfg.Spawn.FourProbability)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := `
board:
  size: 5
  start_tiles: 3
  win_tile: 1024
spawn:
  four_probability: 0.25
sanitize:
  force_power_of_two: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Board.StartTiles != 3 {
		t.Errorf("Board.StartTiles = %d, want 3", cfg.Board.StartTiles)
	}
	if cfg.Board.WinTile != 1024 {
		t.Errorf("Board.WinTile = %d, want 1024", cfg.Board.WinTile)
	}
	if cfg.Spawn.FourProbability != 0.25 {
		t.Errorf("Spawn.FourProbability = %v, want 0.25", cfg.Spawn.FourProbability)
	}
	if !cfg.Sanitize.ForcePowerOfTwo {
		t.Error("Sanitize.ForcePowerOfTwo = false, want true")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load with missing custom path should fail")
	}
}

func TestLoadCustomPathInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [not a map"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load with invalid YAML should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		wantProb float64
		wantWin  int
	}{
		{DifficultyEasy, 0.05, 1024},
		{DifficultyNormal, 0.1, 2048},
		{DifficultyHard, 0.2, 4096},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Spawn.FourProbability != tt.wantProb {
				t.Errorf("FourProbability = %v, want %v", cfg.Spawn.FourProbability, tt.wantProb)
			}
			if cfg.Board.WinTile != tt.wantWin {
				t.Errorf("WinTile = %d, want %d", cfg.Board.WinTile, tt.wantWin)
			}
		})
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		if !ValidPreset(p) {
			t.Errorf("ValidPreset(%q) = false, want true", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error(`ValidPreset("nightmare") = true, want false`)
	}
}

func TestDefaultYAMLMatchesHardcoded(t *testing.T) {
	if len(GetDefaultYAML()) == 0 {
		t.Fatal("embedded default YAML is empty")
	}
}
