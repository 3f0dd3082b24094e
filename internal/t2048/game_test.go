package t2048

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

// memStore is an in-memory BestScoreStore.
type memStore struct {
	value   int
	saves   int
	loadErr error
	saveErr error
}

func (s *memStore) Load() (int, error) {
	return s.value, s.loadErr
}

func (s *memStore) Save(score int) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.value = score
	return nil
}

func newTestGame(t *testing.T, store BestScoreStore) *Game {
	t.Helper()
	return New(Options{
		Size:       4,
		MaxHistory: DefaultMaxHistory,
		Seed:       12345,
		Store:      store,
		Logger:     log.New(io.Discard),
	})
}

func TestNewGameStartsOnStartScreen(t *testing.T) {
	g := newTestGame(t, nil)

	if g.State() != StateStartScreen {
		t.Errorf("State() = %s, want %s", g.State(), StateStartScreen)
	}
	if g.MakeMove(DirLeft) {
		t.Error("MakeMove() on start screen = true, want false")
	}
	if g.UndoMove() {
		t.Error("UndoMove() on start screen = true, want false")
	}
}

func TestStartGame(t *testing.T) {
	g := newTestGame(t, nil)
	g.StartGame(true)

	if g.State() != StatePlaying {
		t.Errorf("State() = %s, want %s", g.State(), StatePlaying)
	}
	if g.Player() != PlayerHuman {
		t.Errorf("Player() = %v, want human", g.Player())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, want 0", g.Score())
	}

	tiles := 0
	for _, v := range g.Grid() {
		if v != 0 {
			tiles++
			if v != 2 && v != 4 {
				t.Errorf("initial tile %d, want 2 or 4", v)
			}
		}
	}
	if tiles != 2 {
		t.Errorf("initial board has %d tiles, want 2", tiles)
	}

	if snap := g.Snapshot(); snap.HistoryDepth != 1 {
		t.Errorf("HistoryDepth = %d, want 1", snap.HistoryDepth)
	}

	for _, dir := range Directions {
		g.MakeMove(dir)
	}
	g.StartGame(true)
	if snap := g.Snapshot(); snap.HistoryDepth != 1 || g.CanUndo() {
		t.Errorf("after restart HistoryDepth = %d, CanUndo = %v, want 1 and false", snap.HistoryDepth, g.CanUndo())
	}
}

func TestDeterministicStart(t *testing.T) {
	g1 := newTestGame(t, nil)
	g1.StartGame(true)

	g2 := newTestGame(t, nil)
	g2.StartGame(true)

	if diff := cmp.Diff(g1.Snapshot(), g2.Snapshot()); diff != "" {
		t.Errorf("same seed should produce the same game (-g1 +g2):\n%s", diff)
	}
}

func TestMakeMove(t *testing.T) {
	g := newTestGame(t, nil)
	g.StartGame(true)
	g.board = mustBoard(t, 4, []int{
		2, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	if !g.MakeMove(DirLeft) {
		t.Fatal("MakeMove(left) = false, want true")
	}
	if g.Score() != 4 {
		t.Errorf("Score() = %d, want 4", g.Score())
	}
	if got := g.board.cells[0]; got != 4 {
		t.Errorf("merged tile = %d, want 4", got)
	}
	if got := g.board.EmptyCount(); got != 14 {
		t.Errorf("EmptyCount() after move = %d, want 14 (merge plus one spawn)", got)
	}
	if g.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", g.Moves())
	}
}

func TestMakeMoveNoChange(t *testing.T) {
	g := newTestGame(t, nil)
	g.StartGame(true)
	g.board = mustBoard(t, 4, []int{
		4, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	before := g.Grid()

	if g.MakeMove(DirLeft) {
		t.Error("MakeMove(left) on packed row = true, want false")
	}
	if diff := cmp.Diff(before, g.Grid()); diff != "" {
		t.Errorf("no-op move changed the board (-want +got):\n%s", diff)
	}
	if g.MakeMove(Direction(-1)) {
		t.Error("MakeMove(invalid) = true, want false")
	}
}

func TestUndoMove(t *testing.T) {
	g := newTestGame(t, nil)
	g.StartGame(true)

	if g.UndoMove() {
		t.Error("UndoMove() right after start = true, want false")
	}

	initial := g.Grid()

	moved := 0
	for _, dir := range []Direction{DirLeft, DirRight, DirUp, DirDown, DirLeft, DirRight} {
		if g.MakeMove(dir) {
			moved++
		}
		if moved == 2 {
			break
		}
	}
	if moved < 2 {
		t.Fatal("could not make two moves")
	}

	// History holds [initial, after first move]; undo rewinds to initial
	if !g.CanUndo() {
		t.Fatal("CanUndo() = false after two moves")
	}
	if !g.UndoMove() {
		t.Fatal("UndoMove() = false, want true")
	}
	if diff := cmp.Diff(initial, g.Grid()); diff != "" {
		t.Errorf("UndoMove() grid mismatch (-want +got):\n%s", diff)
	}
	if g.Score() != 0 {
		t.Errorf("Score() after undo = %d, want 0", g.Score())
	}
	if g.UndoMove() {
		t.Error("second UndoMove() = true, want false")
	}
}

func TestZeroMaxHistoryDisablesUndo(t *testing.T) {
	g := New(Options{Size: 4, MaxHistory: 0, Seed: 1, Logger: log.New(io.Discard)})
	g.StartGame(true)

	moved := 0
	for i := 0; i < 40 && moved < 8; i++ {
		if g.MakeMove(Directions[i%len(Directions)]) {
			moved++
		}
	}
	if moved < 2 {
		t.Fatalf("made only %d moves", moved)
	}

	if got := g.Snapshot().HistoryDepth; got != 1 {
		t.Errorf("HistoryDepth = %d, want 1", got)
	}
	if g.CanUndo() {
		t.Error("CanUndo() = true with max history 0")
	}
	if g.UndoMove() {
		t.Error("UndoMove() = true with max history 0")
	}
}

func TestNegativeMaxHistoryUsesDefault(t *testing.T) {
	g := New(Options{Size: 4, MaxHistory: -1, Seed: 1, Logger: log.New(io.Discard)})
	g.StartGame(true)

	for i := 0; i < 40; i++ {
		g.MakeMove(Directions[i%len(Directions)])
	}

	if got := g.Snapshot().HistoryDepth; got > DefaultMaxHistory+1 {
		t.Errorf("HistoryDepth = %d, want at most %d", got, DefaultMaxHistory+1)
	}
	if g.State() == StatePlaying && !g.CanUndo() {
		t.Error("CanUndo() = false with default history after many moves")
	}
}

func TestGameOver(t *testing.T) {
	g := New(Options{Size: 2, Seed: 1, Logger: log.New(io.Discard)})
	g.StartGame(true)

	// Whatever spawns in the freed cell, no merge remains
	g.board = mustBoard(t, 2, []int{4, 8, 0, 16})

	if !g.MakeMove(DirLeft) {
		t.Fatal("MakeMove(left) = false, want true")
	}
	if g.State() != StateGameOver {
		t.Errorf("State() = %s, want %s", g.State(), StateGameOver)
	}
	if g.MakeMove(DirUp) {
		t.Error("MakeMove() after game over = true, want false")
	}
	if g.UndoMove() {
		t.Error("UndoMove() after game over = true, want false")
	}

	g.ReturnToStart()
	if g.State() != StateStartScreen || g.Player() != PlayerNone {
		t.Errorf("after ReturnToStart: state %s player %v", g.State(), g.Player())
	}
}

func TestBestScoreTracking(t *testing.T) {
	store := &memStore{value: 2}
	g := newTestGame(t, store)

	if g.BestScore() != 2 {
		t.Fatalf("BestScore() = %d, want loaded 2", g.BestScore())
	}

	g.StartGame(true)
	g.board = mustBoard(t, 4, []int{
		8, 8, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	g.MakeMove(DirLeft)

	if g.BestScore() != 16 {
		t.Errorf("BestScore() = %d, want 16", g.BestScore())
	}
	if store.value != 16 {
		t.Errorf("stored best = %d, want 16", store.value)
	}

	g.ClearBestScore()
	if g.BestScore() != 0 || store.value != 0 {
		t.Errorf("after ClearBestScore: best %d stored %d, want 0 and 0", g.BestScore(), store.value)
	}
}

func TestBestScoreStoreFailures(t *testing.T) {
	store := &memStore{value: 500, loadErr: errors.New("corrupt")}
	g := newTestGame(t, store)

	if g.BestScore() != 0 {
		t.Errorf("BestScore() with failing load = %d, want 0", g.BestScore())
	}

	store.saveErr = errors.New("disk full")
	g.StartGame(true)
	g.board = mustBoard(t, 4, []int{
		2, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	if !g.MakeMove(DirLeft) {
		t.Fatal("MakeMove() should succeed even if saving fails")
	}
	if g.BestScore() != 4 {
		t.Errorf("BestScore() = %d, want 4 kept in memory", g.BestScore())
	}
}

func TestHumanPendingMove(t *testing.T) {
	g := newTestGame(t, nil)
	g.StartGame(true)

	if _, ok := g.NextMove(); ok {
		t.Error("NextMove() without pending input = true, want false")
	}

	g.SetPendingMove(DirRight)
	dir, ok := g.NextMove()
	if !ok || dir != DirRight {
		t.Errorf("NextMove() = %v, %v; want right, true", dir, ok)
	}

	if _, ok := g.NextMove(); ok {
		t.Error("pending move should be consumed once")
	}
}

func TestAutomaticStuckCounter(t *testing.T) {
	g := newTestGame(t, nil)
	g.StartGame(false)
	g.board = mustBoard(t, 4, []int{
		2, 4, 2, 4,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	g.MakeMove(DirUp)
	g.MakeMove(DirLeft)
	if got := g.Snapshot().StuckCount; got != 2 {
		t.Errorf("StuckCount = %d, want 2", got)
	}

	if !g.MakeMove(DirDown) {
		t.Fatal("MakeMove(down) = false, want true")
	}
	if got := g.Snapshot().StuckCount; got != 0 {
		t.Errorf("StuckCount after changing move = %d, want 0", got)
	}

	g.MakeMove(Direction(7))
	g.ResetGame()
	if g.Player() != PlayerAutomatic {
		t.Errorf("ResetGame() player = %v, want automatic", g.Player())
	}
	if got := g.Snapshot().StuckCount; got != 0 {
		t.Errorf("StuckCount after reset = %d, want 0", got)
	}
}

func TestAutomaticGameRunsToCompletion(t *testing.T) {
	g := newTestGame(t, &memStore{})
	g.StartGame(false)

	lastScore := 0
	for step := 0; step < 100000 && g.State() == StatePlaying; step++ {
		g.Step()

		if g.Score() < lastScore {
			t.Fatalf("step %d: score decreased from %d to %d", step, lastScore, g.Score())
		}
		lastScore = g.Score()

		for _, v := range g.Grid() {
			if !validTile(v) {
				t.Fatalf("step %d: invalid tile %d", step, v)
			}
		}
	}

	if g.State() != StateGameOver {
		t.Fatalf("automatic game did not finish, state %s", g.State())
	}
	if g.BestScore() < g.Score() {
		t.Errorf("BestScore() = %d below final score %d", g.BestScore(), g.Score())
	}
	if g.board.MaxValue() < 32 {
		t.Errorf("automatic player reached only %d", g.board.MaxValue())
	}
}
