package core

// Action represents a semantic game action, abstracted from physical
// key presses. The platform maps keys to actions; the game model maps
// actions to engine operations.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, K - move tiles up
	ActionDown           // S, Down arrow, J - move tiles down
	ActionLeft           // A, Left arrow, H - move tiles left
	ActionRight          // D, Right arrow, L - move tiles right
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B, Escape - go back
	ActionRestart        // R - restart the game
	ActionScores         // Tab - toggle the scoreboard
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
