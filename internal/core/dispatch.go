package core

import "github.com/vovakirdan/tui-2048/internal/t2048"

// Outcome describes what Dispatch did with an action.
type Outcome struct {
	Handled bool // The action applied in the current state
	Moved   bool // A move changed the board
	Quit    bool // The caller should exit
}

// Dispatch applies a to the session according to its current state.
//
// Start screen: start a human or automatic game.
// Playing: human moves, undo, reset, clear best score, back to start.
// Game over: play again returns to the start screen, reset starts a new game
// with the same player.
// Quit is honored everywhere. Movement actions are ignored while the
// automatic player is active.
func Dispatch(g *t2048.Game, a Action) Outcome {
	if a == ActionQuit {
		return Outcome{Handled: true, Quit: true}
	}

	switch g.State() {
	case t2048.StateStartScreen:
		switch a {
		case ActionStartHuman, ActionConfirm:
			g.StartGame(true)
			return Outcome{Handled: true}
		case ActionStartAutomatic:
			g.StartGame(false)
			return Outcome{Handled: true}
		case ActionClearBest:
			g.ClearBestScore()
			return Outcome{Handled: true}
		}

	case t2048.StatePlaying:
		if dir, ok := a.Direction(); ok {
			if g.Player() != t2048.PlayerHuman {
				return Outcome{}
			}
			g.SetPendingMove(dir)
			return Outcome{Handled: true, Moved: g.Step()}
		}
		switch a {
		case ActionUndo:
			return Outcome{Handled: g.UndoMove()}
		case ActionReset:
			g.ResetGame()
			return Outcome{Handled: true}
		case ActionClearBest:
			g.ClearBestScore()
			return Outcome{Handled: true}
		case ActionBack:
			g.ReturnToStart()
			return Outcome{Handled: true}
		}

	case t2048.StateGameOver:
		switch a {
		case ActionConfirm, ActionBack:
			g.ReturnToStart()
			return Outcome{Handled: true}
		case ActionReset:
			g.ResetGame()
			return Outcome{Handled: true}
		case ActionClearBest:
			g.ClearBestScore()
			return Outcome{Handled: true}
		}
	}

	return Outcome{}
}
