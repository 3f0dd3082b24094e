package t2048

import "math"

// Heuristic weights. These are empirically tuned and only meaningful
// relative to each other within a single search.
const (
	emptyCellWeight  = 1024
	cornerBiasWeight = 4
)

// Evaluate scores a hypothetical position for the automatic player.
// Higher is better. Terminal positions get -(score^4), which dominates
// every other term.
func Evaluate(b *Board, score int) float64 {
	if b.IsTerminal() {
		return -math.Pow(float64(score), 4)
	}

	empty := float64(b.EmptyCount())
	maxValue := b.MaxValue()

	return empty*empty*float64(maxValue)*emptyCellWeight +
		cornerBiasWeight*cornerBias(b) +
		float64(maxValue)*float64(score) +
		variety(b, maxValue)
}

// cornerBias weights each tile by (row+col)^3, favouring the bottom-right corner.
func cornerBias(b *Board) float64 {
	total := 0.0
	for i, v := range b.cells {
		w := float64(i%b.size + i/b.size)
		total += w * w * w * float64(v)
	}
	return total
}

// variety rewards distinct tile values, weighted toward small ones.
func variety(b *Board, maxValue int) float64 {
	counts := make(map[int]int)
	for _, v := range b.cells {
		if v != 0 {
			counts[v]++
		}
	}

	total := 0
	for v, n := range counts {
		total += (maxValue / v) * n
	}
	return float64(total)
}
