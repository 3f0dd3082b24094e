package t2048

import "math/rand"

// PlayerKind tags which variant of Player is active.
type PlayerKind int

const (
	PlayerNone PlayerKind = iota
	PlayerHuman
	PlayerAutomatic
)

// String returns a human-readable name for the player kind.
func (k PlayerKind) String() string {
	switch k {
	case PlayerHuman:
		return "human"
	case PlayerAutomatic:
		return "automatic"
	default:
		return "none"
	}
}

// Player supplies moves to the session.
// A human player returns the move waiting in its pending slot; an automatic
// player runs the search.
type Player struct {
	kind PlayerKind

	pending    Direction
	hasPending bool

	stuck int // Consecutive committed moves that changed nothing
}

// newPlayer creates a player of the given kind with a fresh state.
func newPlayer(kind PlayerKind) Player {
	return Player{kind: kind}
}

// setPending stores a human move for the next call to next.
func (p *Player) setPending(dir Direction) {
	p.pending = dir
	p.hasPending = true
}

// next asks the active variant for a move.
// Returns false if the player has nothing to play (no pending human input).
func (p *Player) next(b *Board, score int, rng *rand.Rand) (Direction, bool, error) {
	switch p.kind {
	case PlayerHuman:
		if !p.hasPending {
			return 0, false, nil
		}
		p.hasPending = false
		return p.pending, true, nil
	case PlayerAutomatic:
		dir, err := searchMove(b, score, p.stuck, rng)
		return dir, true, err
	default:
		return 0, false, nil
	}
}

// observe updates the stuck counter after a committed move.
func (p *Player) observe(changed bool) {
	if p.kind != PlayerAutomatic {
		return
	}
	if changed {
		p.stuck = 0
		return
	}
	p.stuck++
}
