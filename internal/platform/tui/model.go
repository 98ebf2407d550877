package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/engine"
	"github.com/vovakirdan/tui2048/internal/storage"
)

// Model is the Bubble Tea model for a 2048 session. The game is fully
// event-driven: each key press maps to exactly one engine operation,
// there is no simulation tick.
type Model struct {
	eng        *engine.Engine
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	board      string // Score storage label, e.g. "4x4"
	highScore  int
	scoreboard *ScoreboardModel // Non-nil while the scoreboard overlay is open
	quitting   bool
	scoreSaved bool // Whether the result has been saved for the current game
}

// NewModel creates a new Bubble Tea model for the given engine config.
func NewModel(engCfg engine.Config, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if engCfg.Seed == 0 {
		engCfg.Seed = cfg.Seed
	}

	eng := engine.New(engCfg)
	board := BoardLabel(eng.Size())

	m := Model{
		eng:       eng,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		board:     board,
	}

	if store != nil {
		if high, err := store.HighScore(board); err == nil {
			m.highScore = high
		}
	}

	return m
}

// Init starts the game.
func (m Model) Init() tea.Cmd {
	m.eng.Start()
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Scoreboard overlay consumes everything until closed
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Every accepted direction key
// triggers exactly one engine move.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.move(engine.DirUp)
	case core.ActionDown:
		m.move(engine.DirDown)
	case core.ActionLeft:
		m.move(engine.DirLeft)
	case core.ActionRight:
		m.move(engine.DirRight)
	case core.ActionRestart:
		m.eng.Restart()
		m.scoreSaved = false
	case core.ActionScores:
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		return m, m.scoreboard.Init()
	}

	// Save the result once when the game ends
	if !m.scoreSaved {
		switch m.eng.Status() {
		case engine.StatusWon, engine.StatusLost:
			m.saveResult()
			m.scoreSaved = true
		}
	}

	return m, nil
}

// move applies one directional move to the engine.
func (m *Model) move(dir engine.Direction) {
	m.eng.Move(dir)
	if m.eng.Score() > m.highScore {
		m.highScore = m.eng.Score()
	}
}

// saveResult persists the finished game. Best effort, play continues
// even if the database is unavailable.
func (m *Model) saveResult() {
	if m.store == nil || m.eng.Score() <= 0 {
		return
	}
	won := m.eng.Status() == engine.StatusWon
	//nolint:errcheck // Best-effort save
	m.store.SaveScore(m.board, m.eng.Score(), m.eng.MaxTile(), won)
}

// updateScoreboard forwards messages to the scoreboard overlay.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		// Swallow the quit command, only the overlay closes
		m.scoreboard = nil
		return m, nil
	}

	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	DrawGame(m.screen, m.eng.Snapshot(), m.highScore)
	m.screen.DrawTextCentered(m.screen.Height()-1, Controls())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given configuration.
func Run(engCfg engine.Config, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(engCfg, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
