package engine

// Grid is a square board of tile values. 0 marks an empty cell; every
// other value is a strictly positive power of two.
type Grid [][]int

// NewGrid creates an empty n-by-n grid.
func NewGrid(n int) Grid {
	g := make(Grid, n)
	for y := range g {
		g[y] = make([]int, n)
	}
	return g
}

// Size returns the board dimension N.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = make([]int, len(row))
		copy(c[y], row)
	}
	return c
}

// transpose swaps the grid across its main diagonal in place.
func (g Grid) transpose() {
	n := len(g)
	for y := 0; y < n; y++ {
		for x := y + 1; x < n; x++ {
			g[y][x], g[x][y] = g[x][y], g[y][x]
		}
	}
}

// reverseRows flips the grid top-to-bottom in place.
func (g Grid) reverseRows() {
	for i, j := 0, len(g)-1; i < j; i, j = i+1, j-1 {
		g[i], g[j] = g[j], g[i]
	}
}

// reverseEachRow mirrors every row left-to-right in place.
func (g Grid) reverseEachRow() {
	for _, row := range g {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// rotateClockwise rotates the grid 90 degrees clockwise in place.
func (g Grid) rotateClockwise() {
	g.transpose()
	g.reverseEachRow()
}

// rotateCounterClockwise rotates the grid 90 degrees counter-clockwise in place.
func (g Grid) rotateCounterClockwise() {
	g.reverseEachRow()
	g.transpose()
}

// mergeUp compacts and merges every column toward row 0 and returns the
// score gained. Each column is collected into a dense sequence, merged
// with a single greedy left-to-right pass (a merged pair is never
// eligible to merge again within the same move), zero-padded and
// written back.
func (g Grid) mergeUp() int {
	n := len(g)
	gained := 0

	for x := 0; x < n; x++ {
		dense := make([]int, 0, n)
		for y := 0; y < n; y++ {
			if g[y][x] != 0 {
				dense = append(dense, g[y][x])
			}
		}

		merged := make([]int, 0, n)
		for i := 0; i < len(dense); i++ {
			if i+1 < len(dense) && dense[i] == dense[i+1] {
				v := dense[i] * 2
				merged = append(merged, v)
				gained += v
				i++ // skip the partner; the result cannot merge again
			} else {
				merged = append(merged, dense[i])
			}
		}

		for y := 0; y < n; y++ {
			if y < len(merged) {
				g[y][x] = merged[y]
			} else {
				g[y][x] = 0
			}
		}
	}

	return gained
}

// emptyCells returns the coordinates of all empty cells.
func (g Grid) emptyCells() []struct{ X, Y int } {
	var cells []struct{ X, Y int }
	for y := range g {
		for x := range g[y] {
			if g[y][x] == 0 {
				cells = append(cells, struct{ X, Y int }{x, y})
			}
		}
	}
	return cells
}

// canMove reports whether any move is possible: an empty cell exists,
// or two equal non-zero values are horizontally or vertically adjacent.
// Scans the full grid in O(N^2).
func (g Grid) canMove() bool {
	n := len(g)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := g[y][x]
			if v == 0 {
				return true
			}
			if x < n-1 && g[y][x+1] == v {
				return true
			}
			if y < n-1 && g[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the highest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// sanitize normalizes every cell so the grid invariant holds for
// arbitrary input. With force, each value is floored to the largest
// power of two below or equal to it (0 for values <= 0); otherwise any
// value that is not an exact power of two becomes 0.
func (g Grid) sanitize(force bool) {
	for _, row := range g {
		for i, v := range row {
			if force {
				row[i] = floorPowerOfTwo(v)
			} else if !isPowerOfTwo(v) {
				row[i] = 0
			}
		}
	}
}

// isPowerOfTwo reports whether v is a strictly positive power of two.
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// floorPowerOfTwo returns the largest power of two <= v, or 0 for v <= 0.
func floorPowerOfTwo(v int) int {
	if v <= 0 {
		return 0
	}
	p := 1
	for p*2 <= v {
		p *= 2
	}
	return p
}
