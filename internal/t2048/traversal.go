package t2048

import (
	"slices"
	"sync"
)

// Traversal holds the per-direction cell visit orders for one board size.
//
// In every order, stepping back by size positions reaches the neighbouring
// cell toward the edge where tiles accumulate, so a single backward scan
// handles all four directions.
type Traversal struct {
	orders [len(Directions)][]int
}

var (
	traversals   = make(map[int]*Traversal)
	traversalsMu sync.Mutex
)

// TraversalFor returns the cached traversal tables for the given size.
func TraversalFor(size int) *Traversal {
	traversalsMu.Lock()
	defer traversalsMu.Unlock()

	if t, ok := traversals[size]; ok {
		return t
	}
	t := newTraversal(size)
	traversals[size] = t
	return t
}

func newTraversal(size int) *Traversal {
	total := size * size
	t := &Traversal{}

	up := make([]int, total)
	for i := range total {
		up[i] = i
	}

	down := slices.Clone(up)
	slices.Reverse(down)

	left := make([]int, 0, total)
	for col := 0; col < size; col++ {
		for i := col; i < total; i += size {
			left = append(left, i)
		}
	}

	right := make([]int, 0, total)
	for col := size - 1; col >= 0; col-- {
		for i := col; i < total; i += size {
			right = append(right, i)
		}
	}

	t.orders[DirUp] = up
	t.orders[DirDown] = down
	t.orders[DirLeft] = left
	t.orders[DirRight] = right
	return t
}

// order returns the shared, read-only visit order.
func (t *Traversal) order(dir Direction) []int {
	return t.orders[dir]
}
