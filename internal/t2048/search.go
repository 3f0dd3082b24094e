package t2048

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrSearchFailure reports an unexpected failure inside move search.
// It is never returned to the control loop; the player falls back to a random move.
var ErrSearchFailure = errors.New("t2048: move search failed")

// Stuck-counter thresholds for the automatic player.
const (
	stuckAvoidUpAfter = 5
	stuckRandomAfter  = 15
)

// fallbackDirections are tried at random once the player is stuck. Up is excluded.
var fallbackDirections = [...]Direction{DirLeft, DirDown, DirRight}

// BestMove runs a depth-1 greedy search: each direction is applied to a
// clone and the resulting position is scored with Evaluate. There is no
// deeper lookahead; the terminal penalty in Evaluate is the only signal
// about future danger.
//
// Ties keep the earliest direction in Up, Left, Down, Right order.
// Returns false if no direction changes the board.
func BestMove(b *Board, score int) (Direction, bool) {
	best := DirUp
	bestValue := math.Inf(-1)
	found := false

	for _, dir := range Directions {
		trial := b.Clone()
		outcome := Apply(trial, dir)
		if !outcome.Changed {
			continue
		}

		value := Evaluate(trial, score+outcome.ScoreGained)
		if !found || value > bestValue {
			best = dir
			bestValue = value
			found = true
		}
	}

	return best, found
}

// searchMove picks a move with the stuck-counter fallbacks applied.
// Any failure inside the search degrades to a uniformly random direction.
func searchMove(b *Board, score, stuck int, rng *rand.Rand) (dir Direction, err error) {
	switch {
	case stuck > stuckRandomAfter:
		return randomDirection(rng), nil
	case stuck > stuckAvoidUpAfter:
		return fallbackDirections[rng.Intn(len(fallbackDirections))], nil
	}

	defer func() {
		if r := recover(); r != nil {
			dir = randomDirection(rng)
			err = errors.Join(ErrSearchFailure, panicError(r))
		}
	}()

	if b == nil {
		return randomDirection(rng), ErrSearchFailure
	}

	if best, ok := BestMove(b, score); ok {
		return best, nil
	}
	return randomDirection(rng), nil
}

func randomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
