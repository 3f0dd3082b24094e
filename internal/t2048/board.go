// Package t2048 implements the 2048 board state machine, the slide/merge
// move engine, undo history, and the one-ply automatic player.
package t2048

import (
	"fmt"
	"math/rand"
	"slices"
)

const (
	// DefaultBoardSize is the default board dimension.
	DefaultBoardSize = 4

	// MinBoardSize is the smallest supported board dimension.
	MinBoardSize = 2

	spawnFourProb = 0.1
)

// Board is a square grid of tiles stored in row-major order.
// Every cell is 0 (empty) or a power of two >= 2.
type Board struct {
	size  int
	cells []int
}

// NewBoard creates an empty board of the given size.
func NewBoard(size int) *Board {
	if size < MinBoardSize {
		size = MinBoardSize
	}
	return &Board{
		size:  size,
		cells: make([]int, size*size),
	}
}

// NewBoardFromCells creates a board from row-major cell values.
// The cells are copied.
func NewBoardFromCells(size int, cells []int) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("t2048: board size %d is below minimum %d", size, MinBoardSize)
	}
	if len(cells) != size*size {
		return nil, fmt.Errorf("t2048: got %d cells, want %d for size %d", len(cells), size*size, size)
	}
	for i, v := range cells {
		if !validTile(v) {
			return nil, fmt.Errorf("t2048: cell %d holds %d, not 0 or a power of two", i, v)
		}
	}
	return &Board{size: size, cells: slices.Clone(cells)}, nil
}

// validTile reports whether v is 0 or a power of two >= 2.
func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// Cells returns a copy of the grid in row-major order.
func (b *Board) Cells() []int {
	return slices.Clone(b.cells)
}

// restore overwrites the grid with cells, which must have the same length.
func (b *Board) restore(cells []int) {
	copy(b.cells, cells)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{size: b.size, cells: slices.Clone(b.cells)}
}

// emptyIndices returns the indices of all empty cells.
func (b *Board) emptyIndices() []int {
	var empty []int
	for i, v := range b.cells {
		if v == 0 {
			empty = append(empty, i)
		}
	}
	return empty
}

// SpawnRandomTile places a 2 (90%) or a 4 (10%) in a random empty cell.
// Returns false and leaves the board untouched if there is no empty cell.
func (b *Board) SpawnRandomTile(rng *rand.Rand) bool {
	empty := b.emptyIndices()
	if len(empty) == 0 {
		return false
	}

	idx := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < spawnFourProb {
		value = 4
	}

	b.cells[idx] = value
	return true
}

// IsTerminal returns true if the board is full and no adjacent tiles match.
func (b *Board) IsTerminal() bool {
	if slices.Contains(b.cells, 0) {
		return false
	}

	n := b.size
	for i, val := range b.cells {
		// Check right neighbor
		if i%n < n-1 && b.cells[i+1] == val {
			return false
		}
		// Check bottom neighbor
		if i/n < n-1 && b.cells[i+n] == val {
			return false
		}
	}
	return true
}

// MaxValue returns the highest tile on the board, or 0 if the board is empty.
func (b *Board) MaxValue() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	count := 0
	for _, v := range b.cells {
		if v == 0 {
			count++
		}
	}
	return count
}

// String formats the board as rows of numbers, one row per line.
func (b *Board) String() string {
	var out []byte
	for row := range b.size {
		if row > 0 {
			out = append(out, '\n')
		}
		out = fmt.Appendf(out, "%v", b.cells[row*b.size:(row+1)*b.size])
	}
	return string(out)
}
