package engine

// Snapshot captures the complete observable game state at one point in
// time. Unlike State, the grid inside a snapshot is a deep copy and
// stays valid across later engine operations.
type Snapshot struct {
	Size    int
	Score   int
	Status  Status
	Grid    Grid
	MaxTile int
}

// Snapshot returns a stable copy of the current game state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Size:    e.grid.Size(),
		Score:   e.score,
		Status:  e.status,
		Grid:    e.grid.Clone(),
		MaxTile: e.grid.MaxTile(),
	}
}
