package t2048

import "slices"

// MoveOutcome is the result of applying a direction to a board.
type MoveOutcome struct {
	ScoreGained int  // Sum of the values produced by merges
	Changed     bool // Whether any cell differs from before the move
}

// Apply slides and merges the board in place in the given direction.
// It never spawns a tile: when Changed is true the caller spawns exactly one.
// An unknown direction leaves the board untouched.
func Apply(b *Board, dir Direction) MoveOutcome {
	if !dir.Valid() {
		return MoveOutcome{}
	}

	order := TraversalFor(b.size).order(dir)
	before := slices.Clone(b.cells)
	cells := b.cells
	score := 0

	for pos := range order {
		idx := order[pos]
		if cells[idx] == 0 {
			continue
		}

		// Walk back toward the accumulation edge within the same line
		for look := pos - b.size; look >= 0; look -= b.size {
			target := order[look]

			if cells[target] == 0 {
				// Slide into the empty cell
				cells[target] = cells[idx]
				cells[idx] = 0
				idx = target
				continue
			}

			if cells[target] == cells[idx] {
				// Merge; a tile merges at most once per move
				cells[target] *= 2
				cells[idx] = 0
				score += cells[target]
			}
			break
		}
	}

	return MoveOutcome{
		ScoreGained: score,
		Changed:     !slices.Equal(before, cells),
	}
}
