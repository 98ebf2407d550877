// Package engine implements the 2048 rules engine: an N-by-N grid of
// power-of-two tiles, directional compact-and-merge moves, random tile
// spawning, scoring and win/loss detection. The package contains pure
// game logic with no external dependencies; rendering, input and
// persistence live in the platform layers.
package engine

import "math/rand"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Status represents the game lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusPlaying:
		return "Playing"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Config contains the construction parameters of an Engine.
type Config struct {
	Size            int     // Board dimension N (ignored when InitialGrid is set)
	StartTiles      int     // Tiles spawned by Start (default 2)
	WinTile         int     // Tile value that wins the game (default 2048)
	FourProbability float64 // Probability a spawned tile is a 4 instead of a 2
	ForcePowerOfTwo bool    // Floor initial values to powers of two instead of zeroing
	InitialGrid     [][]int // Optional starting layout; sanitized on construction
	Seed            int64   // RNG seed for deterministic spawning
}

// DefaultConfig returns the classic 4x4 game configuration.
func DefaultConfig() Config {
	return Config{
		Size:            4,
		StartTiles:      2,
		WinTile:         2048,
		FourProbability: 0.1,
	}
}

// Engine is the 2048 game state machine. It owns its grid, score and
// status exclusively; callers observe them through queries and mutate
// them only through Start, Restart and Move.
//
// The engine is a synchronous single-threaded state holder: every
// operation runs to completion before returning, and concurrent use
// from multiple goroutines must be serialized by the caller.
type Engine struct {
	grid    Grid
	initial Grid // sanitized construction-time snapshot, used by Restart
	score   int
	status  Status

	startTiles int
	winTile    int
	fourProb   float64
	rng        *rand.Rand
}

// New creates an engine from the given configuration. Invalid initial
// grid values are sanitized rather than rejected, so construction never
// fails.
func New(cfg Config) *Engine {
	size := cfg.Size
	if size <= 0 {
		size = DefaultConfig().Size
	}
	if len(cfg.InitialGrid) > 0 {
		size = len(cfg.InitialGrid)
	}

	grid := NewGrid(size)
	for y := 0; y < size && y < len(cfg.InitialGrid); y++ {
		for x := 0; x < size && x < len(cfg.InitialGrid[y]); x++ {
			grid[y][x] = cfg.InitialGrid[y][x]
		}
	}
	grid.sanitize(cfg.ForcePowerOfTwo)

	startTiles := cfg.StartTiles
	if startTiles <= 0 {
		startTiles = 2
	}
	winTile := cfg.WinTile
	if winTile <= 0 {
		winTile = 2048
	}
	fourProb := cfg.FourProbability
	if fourProb <= 0 {
		fourProb = 0.1
	}

	return &Engine{
		grid:       grid,
		initial:    grid.Clone(),
		status:     StatusIdle,
		startTiles: startTiles,
		winTile:    winTile,
		fourProb:   fourProb,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Start transitions the engine from Idle to Playing and spawns the
// starting tiles. Each spawn sees the grid left by the previous one, so
// fewer tiles appear when the board is nearly full.
func (e *Engine) Start() {
	e.status = StatusPlaying
	for i := 0; i < e.startTiles; i++ {
		e.spawnTile()
	}
}

// Restart resets the grid to the construction-time snapshot, zeroes the
// score, passes through Idle and starts a fresh game.
func (e *Engine) Restart() {
	e.grid = e.initial.Clone()
	e.score = 0
	e.status = StatusIdle
	e.Start()
}

// orientations maps a direction to the grid transforms that bracket the
// canonical upward merge. Up needs no reorientation.
var orientations = map[Direction]struct{ pre, post func(Grid) }{
	DirDown:  {Grid.reverseRows, Grid.reverseRows},
	DirLeft:  {Grid.rotateClockwise, Grid.rotateCounterClockwise},
	DirRight: {Grid.rotateCounterClockwise, Grid.rotateClockwise},
}

// Move applies a directional move: reorient the grid so the move points
// upward, run the canonical per-column merge, reorient back, then spawn
// one tile and re-evaluate the status.
//
// A tile is spawned even when the move changed nothing, and Move is
// accepted in any status; both match the observed behavior of the
// original game. An unrecognized direction skips the transform but
// still runs the spawn and status steps.
func (e *Engine) Move(dir Direction) {
	switch dir {
	case DirUp:
		e.score += e.grid.mergeUp()
	case DirDown, DirLeft, DirRight:
		o := orientations[dir]
		o.pre(e.grid)
		e.score += e.grid.mergeUp()
		o.post(e.grid)
	}

	e.spawnTile()
	e.updateStatus()
}

// spawnTile places a 2 (or, with probability fourProb, a 4) in a
// uniformly chosen empty cell. Does nothing when the board is full.
func (e *Engine) spawnTile() {
	empty := e.grid.emptyCells()
	if len(empty) == 0 {
		return
	}

	cell := empty[e.rng.Intn(len(empty))]
	value := 2
	if e.rng.Float64() < e.fourProb {
		value = 4
	}
	e.grid[cell.Y][cell.X] = value
}

// updateStatus re-evaluates the game status after a move. The loss
// check runs first and short-circuits: a board with no possible move is
// Lost even when it holds the winning tile.
func (e *Engine) updateStatus() {
	switch {
	case !e.grid.canMove():
		e.status = StatusLost
	case e.grid.MaxTile() >= e.winTile:
		e.status = StatusWon
	default:
		e.status = StatusPlaying
	}
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Status returns the current lifecycle status.
func (e *Engine) Status() Status {
	return e.status
}

// State returns the live grid. The engine keeps mutating it on
// subsequent operations, so callers that need a stable view must Clone
// it; treating the return value as read-only is part of the contract,
// not an aliasing accident.
func (e *Engine) State() Grid {
	return e.grid
}

// Size returns the board dimension N.
func (e *Engine) Size() int {
	return e.grid.Size()
}

// MaxTile returns the highest tile value on the board.
func (e *Engine) MaxTile() int {
	return e.grid.MaxTile()
}

// WinTile returns the tile value that wins the game.
func (e *Engine) WinTile() int {
	return e.winTile
}
