package t2048

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		cells []int
		score int
		want  float64
	}{
		{
			name:  "terminal board",
			cells: []int{2, 4, 4, 2},
			score: 3,
			want:  -81,
		},
		{
			// empty 9*2*1024, no corner weight at index 0, variety 1
			name:  "single tile top-left",
			cells: []int{2, 0, 0, 0},
			score: 0,
			want:  18433,
		},
		{
			// 9*4*1024 + 4*(8*4) + 4*4 + 1
			name:  "single tile bottom-right",
			cells: []int{0, 0, 0, 4},
			score: 4,
			want:  37009,
		},
		{
			// 1*8*1024 + 4*(1*2 + 1*4 + 8*8) + 8*10 + (4+2+1)
			name:  "variety uses integer division",
			cells: []int{0, 2, 4, 8},
			score: 10,
			want:  8192 + 280 + 80 + 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, 2, tt.cells)
			if got := Evaluate(b, tt.score); got != tt.want {
				t.Errorf("Evaluate(%v, %d) = %v, want %v", tt.cells, tt.score, got, tt.want)
			}
		})
	}
}

func TestEvaluateTerminalDominates(t *testing.T) {
	terminal := mustBoard(t, 4, []int{2, 4, 2, 4, 4, 2, 4, 2, 2, 4, 2, 4, 4, 2, 4, 2})
	open := mustBoard(t, 4, []int{2, 4, 2, 4, 4, 2, 4, 2, 2, 4, 2, 4, 4, 2, 4, 0})

	if Evaluate(terminal, 5000) >= Evaluate(open, 0) {
		t.Error("terminal position should score below any open position")
	}
}

func TestEvaluateLargeScoreIsFinite(t *testing.T) {
	terminal := mustBoard(t, 2, []int{2, 4, 4, 2})
	if v := Evaluate(terminal, 1_000_000); math.IsInf(v, 0) || math.IsNaN(v) || v >= 0 {
		t.Errorf("Evaluate(terminal, 1e6) = %v, want a finite negative value", v)
	}
}
