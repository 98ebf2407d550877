package engine

import (
	"reflect"
	"testing"
)

func TestMergeUp(t *testing.T) {
	tests := []struct {
		name     string
		input    Grid
		expected Grid
		score    int
	}{
		{
			name: "merge with trailing tile",
			input: Grid{
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: Grid{
				{4, 0, 0, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4,
		},
		{
			name: "merged result does not chain",
			input: Grid{
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: Grid{
				{4, 0, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4,
		},
		{
			name: "two pairs in one column",
			input: Grid{
				{4, 0, 0, 0},
				{4, 0, 0, 0},
				{4, 0, 0, 0},
				{4, 0, 0, 0},
			},
			expected: Grid{
				{8, 0, 0, 0},
				{8, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 16,
		},
		{
			name: "compact across gaps",
			input: Grid{
				{2, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{2, 0, 0, 0},
			},
			expected: Grid{
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4,
		},
		{
			name: "no merge possible",
			input: Grid{
				{2, 0, 0, 0},
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{16, 0, 0, 0},
			},
			expected: Grid{
				{2, 0, 0, 0},
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{16, 0, 0, 0},
			},
			score: 0,
		},
		{
			name: "independent columns",
			input: Grid{
				{2, 4, 0, 2},
				{2, 0, 0, 4},
				{0, 4, 0, 2},
				{0, 0, 0, 4},
			},
			expected: Grid{
				{4, 8, 0, 2},
				{0, 0, 0, 4},
				{0, 0, 0, 2},
				{0, 0, 0, 4},
			},
			score: 12,
		},
		{
			name:     "empty grid",
			input:    NewGrid(4),
			expected: NewGrid(4),
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.input.Clone()
			score := g.mergeUp()
			if !reflect.DeepEqual(g, tt.expected) {
				t.Errorf("mergeUp: got\n%v\nwant\n%v", g, tt.expected)
			}
			if score != tt.score {
				t.Errorf("mergeUp score = %d, want %d", score, tt.score)
			}
		})
	}
}

func TestTranspose(t *testing.T) {
	g := Grid{
		{1, 2, 4},
		{8, 16, 32},
		{64, 128, 256},
	}
	expected := Grid{
		{1, 8, 64},
		{2, 16, 128},
		{4, 32, 256},
	}

	g.transpose()
	if !reflect.DeepEqual(g, expected) {
		t.Errorf("transpose: got %v, want %v", g, expected)
	}

	// Transposing twice restores the original.
	g.transpose()
	g.transpose()
	if !reflect.DeepEqual(g, expected) {
		t.Error("transpose applied twice should be the identity")
	}
}

func TestReverseRows(t *testing.T) {
	g := Grid{
		{2, 4},
		{8, 16},
	}
	expected := Grid{
		{8, 16},
		{2, 4},
	}

	g.reverseRows()
	if !reflect.DeepEqual(g, expected) {
		t.Errorf("reverseRows: got %v, want %v", g, expected)
	}
}

func TestReverseEachRow(t *testing.T) {
	g := Grid{
		{2, 4, 8},
		{16, 32, 64},
		{0, 2, 0},
	}
	expected := Grid{
		{8, 4, 2},
		{64, 32, 16},
		{0, 2, 0},
	}

	g.reverseEachRow()
	if !reflect.DeepEqual(g, expected) {
		t.Errorf("reverseEachRow: got %v, want %v", g, expected)
	}
}

func TestRotations(t *testing.T) {
	g := Grid{
		{2, 4},
		{8, 16},
	}
	clockwise := Grid{
		{8, 2},
		{16, 4},
	}

	r := g.Clone()
	r.rotateClockwise()
	if !reflect.DeepEqual(r, clockwise) {
		t.Errorf("rotateClockwise: got %v, want %v", r, clockwise)
	}

	r.rotateCounterClockwise()
	if !reflect.DeepEqual(r, g) {
		t.Errorf("rotateCounterClockwise should undo rotateClockwise, got %v", r)
	}
}

func TestLeftMergeViaRotation(t *testing.T) {
	// A leftward move is rotate clockwise, merge up, rotate back. The
	// result must match merging the row directly.
	g := Grid{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	expected := Grid{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	g.rotateClockwise()
	score := g.mergeUp()
	g.rotateCounterClockwise()

	if !reflect.DeepEqual(g, expected) {
		t.Errorf("left merge via rotation: got %v, want %v", g, expected)
	}
	if score != 4 {
		t.Errorf("left merge score = %d, want 4", score)
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want bool
	}{
		{
			name: "empty cell present",
			grid: Grid{
				{2, 4},
				{4, 0},
			},
			want: true,
		},
		{
			name: "horizontal merge available",
			grid: Grid{
				{2, 2},
				{4, 8},
			},
			want: true,
		},
		{
			name: "vertical merge available",
			grid: Grid{
				{2, 4},
				{2, 8},
			},
			want: true,
		},
		{
			name: "dead board",
			grid: Grid{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grid.canMove(); got != tt.want {
				t.Errorf("canMove() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxTile(t *testing.T) {
	g := Grid{
		{2, 4, 8},
		{512, 1024, 4},
		{8, 16, 32},
	}
	if max := g.MaxTile(); max != 1024 {
		t.Errorf("MaxTile() = %d, want 1024", max)
	}
}

func TestEmptyCells(t *testing.T) {
	g := Grid{
		{2, 0, 8},
		{0, 64, 0},
		{512, 0, 2048},
	}
	if cells := g.emptyCells(); len(cells) != 4 {
		t.Errorf("emptyCells() count = %d, want 4", len(cells))
	}
}

func TestSanitizeStrict(t *testing.T) {
	g := Grid{
		{3, 5, 2},
		{-2, 6, 1024},
		{0, 7, 16},
	}
	expected := Grid{
		{0, 0, 2},
		{0, 0, 1024},
		{0, 0, 16},
	}

	g.sanitize(false)
	if !reflect.DeepEqual(g, expected) {
		t.Errorf("sanitize(false): got %v, want %v", g, expected)
	}
}

func TestSanitizeForce(t *testing.T) {
	g := Grid{
		{3, 5, 2},
		{-2, 6, 1000},
		{0, 7, 16},
	}
	expected := Grid{
		{2, 4, 2},
		{0, 4, 512},
		{0, 4, 16},
	}

	g.sanitize(true)
	if !reflect.DeepEqual(g, expected) {
		t.Errorf("sanitize(true): got %v, want %v", g, expected)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	powers := []int{1, 2, 4, 8, 1024, 65536}
	for _, v := range powers {
		if !isPowerOfTwo(v) {
			t.Errorf("isPowerOfTwo(%d) = false, want true", v)
		}
	}

	nonPowers := []int{0, -1, -8, 3, 6, 12, 100}
	for _, v := range nonPowers {
		if isPowerOfTwo(v) {
			t.Errorf("isPowerOfTwo(%d) = true, want false", v)
		}
	}
}

func TestFloorPowerOfTwo(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{7, 4},
		{8, 8},
		{1000, 512},
		{2048, 2048},
	}

	for _, tt := range tests {
		if got := floorPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("floorPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := Grid{
		{2, 4},
		{8, 16},
	}
	c := g.Clone()
	c[0][0] = 2048

	if g[0][0] != 2 {
		t.Error("mutating a clone must not affect the original grid")
	}
}
