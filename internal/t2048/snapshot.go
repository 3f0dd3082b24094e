package t2048

// Snapshot captures the complete game state for determinism testing and reporting.
type Snapshot struct {
	State        State
	Player       PlayerKind
	Size         int
	Grid         []int
	Score        int
	BestScore    int
	MaxTile      int
	Moves        int
	HistoryDepth int
	StuckCount   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:        g.state,
		Player:       g.player.kind,
		Size:         g.board.Size(),
		Grid:         g.board.Cells(),
		Score:        g.score,
		BestScore:    g.best,
		MaxTile:      g.board.MaxValue(),
		Moves:        g.moves,
		HistoryDepth: g.history.Len(),
		StuckCount:   g.player.stuck,
	}
}
