package core

import "github.com/vovakirdan/tui-2048/internal/t2048"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the session to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // W, Up arrow - slide tiles up
	ActionLeft                  // A, Left arrow - slide tiles left
	ActionDown                  // S, Down arrow - slide tiles down
	ActionRight                 // D, Right arrow - slide tiles right
	ActionUndo                  // U - undo the last move
	ActionReset                 // R - restart with the same player
	ActionClearBest             // C - reset the best score
	ActionStartHuman            // H - start a game with the human player
	ActionStartAutomatic        // Space, I - start a game with the automatic player
	ActionConfirm               // Enter - start (human) or play again after game over
	ActionBack                  // B, Escape - return to the start screen
	ActionHelp                  // ? - toggle full help
	ActionQuit                  // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionRight:
		return "Right"
	case ActionUndo:
		return "Undo"
	case ActionReset:
		return "Reset"
	case ActionClearBest:
		return "ClearBest"
	case ActionStartHuman:
		return "StartHuman"
	case ActionStartAutomatic:
		return "StartAutomatic"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the slide direction for a movement action.
func (a Action) Direction() (t2048.Direction, bool) {
	switch a {
	case ActionUp:
		return t2048.DirUp, true
	case ActionLeft:
		return t2048.DirLeft, true
	case ActionDown:
		return t2048.DirDown, true
	case ActionRight:
		return t2048.DirRight, true
	default:
		return 0, false
	}
}
