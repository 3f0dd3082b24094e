package t2048

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// State represents the current game state.
type State string

const (
	StateStartScreen State = "start_screen"
	StatePlaying     State = "playing"
	StateGameOver    State = "game_over"
)

// BestScoreStore persists the best score across sessions.
// Load must return 0 for a missing value.
type BestScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Options configures a Game.
type Options struct {
	Size       int            // Board dimension (default 4)
	MaxHistory int            // Undoable states; 0 disables undo, negative means default (5)
	Seed       int64          // RNG seed; 0 means use current time
	Store      BestScoreStore // Optional best-score persistence
	Logger     *log.Logger    // Optional; defaults to log.Default()
}

// Game is a 2048 session: board, score, undo history and the active player.
// It is not safe for concurrent use.
type Game struct {
	size int
	rng        *rand.Rand
	store      BestScoreStore
	logger     *log.Logger

	state   State
	board   *Board
	score   int
	best    int
	moves   int
	history *History
	player  Player
}

// New creates a game on the start screen and loads the best score.
func New(opts Options) *Game {
	if opts.Size < MinBoardSize {
		opts.Size = DefaultBoardSize
	}
	if opts.MaxHistory < 0 {
		opts.MaxHistory = DefaultMaxHistory
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	g := &Game{
		rng:     rand.New(rand.NewSource(opts.Seed)),
		store:   opts.Store,
		logger:  opts.Logger,
		state:   StateStartScreen,
		board:   NewBoard(opts.Size),
		history: NewHistory(opts.MaxHistory),
	}
	g.best = g.loadBestScore()
	return g
}

// loadBestScore reads the stored best score, treating any failure as 0.
func (g *Game) loadBestScore() int {
	if g.store == nil {
		return 0
	}
	best, err := g.store.Load()
	if err != nil {
		g.logger.Warn("could not load best score", "error", err)
		return 0
	}
	if best < 0 {
		return 0
	}
	return best
}

// saveBestScore persists the best score; failures are logged and ignored.
func (g *Game) saveBestScore() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.best); err != nil {
		g.logger.Warn("could not save best score", "best", g.best, "error", err)
	}
}

// StartGame begins a new game with a human or automatic player.
func (g *Game) StartGame(human bool) {
	kind := PlayerAutomatic
	if human {
		kind = PlayerHuman
	}

	g.player = newPlayer(kind)
	g.state = StatePlaying
	g.score = 0
	g.moves = 0

	// Fresh board with two tiles
	g.board = NewBoard(g.board.Size())
	g.board.SpawnRandomTile(g.rng)
	g.board.SpawnRandomTile(g.rng)

	g.history.Clear()
	g.history.Push(g.board.cells, g.score)

	g.logger.Debug("game started", "player", kind, "size", g.board.Size())
}

// ResetGame restarts with the same kind of player.
func (g *Game) ResetGame() {
	g.StartGame(g.player.kind != PlayerAutomatic)
}

// ReturnToStart leaves the current game and shows the start screen.
func (g *Game) ReturnToStart() {
	g.state = StateStartScreen
	g.player = newPlayer(PlayerNone)
}

// MakeMove applies dir to the live board.
// Returns true if the board changed. Moves are ignored outside StatePlaying.
func (g *Game) MakeMove(dir Direction) bool {
	if g.state != StatePlaying {
		return false
	}

	g.history.Push(g.board.cells, g.score)

	outcome := Apply(g.board, dir)
	g.player.observe(outcome.Changed)
	if !outcome.Changed {
		return false
	}

	g.board.SpawnRandomTile(g.rng)
	g.score += outcome.ScoreGained
	g.moves++

	if g.score > g.best {
		g.best = g.score
		g.saveBestScore()
	}

	if g.board.IsTerminal() {
		g.state = StateGameOver
		g.logger.Debug("game over",
			"score", g.score,
			"max_tile", g.board.MaxValue(),
			"moves", g.moves,
			"board", g.board.String(),
		)
	}

	return true
}

// UndoMove restores the state recorded before the previous move.
// Returns false if there is not enough history or no game is in progress.
func (g *Game) UndoMove() bool {
	if g.state != StatePlaying {
		return false
	}

	cells, score, err := g.history.Undo()
	if err != nil {
		return false
	}

	g.board.restore(cells)
	g.score = score
	return true
}

// ClearBestScore resets the best score to 0 and persists it.
func (g *Game) ClearBestScore() {
	g.best = 0
	g.saveBestScore()
}

// SetPendingMove queues a direction for a human player.
func (g *Game) SetPendingMove(dir Direction) {
	if g.player.kind == PlayerHuman {
		g.player.setPending(dir)
	}
}

// NextMove asks the active player for a direction.
// Returns false if the player has no move to offer.
func (g *Game) NextMove() (Direction, bool) {
	if g.state != StatePlaying {
		return 0, false
	}

	dir, ok, err := g.player.next(g.board, g.score, g.rng)
	if err != nil {
		g.logger.Warn("search failed, playing random move", "direction", dir, "error", err)
	}
	return dir, ok
}

// Step asks the active player for a move and commits it.
// Returns true if the board changed.
func (g *Game) Step() bool {
	dir, ok := g.NextMove()
	if !ok {
		return false
	}
	return g.MakeMove(dir)
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Grid returns a copy of the board cells in row-major order.
func (g *Game) Grid() []int {
	return g.board.Cells()
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.board.Size()
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// BestScore returns the best score seen so far.
func (g *Game) BestScore() int {
	return g.best
}

// Moves returns the number of board-changing moves in the current game.
func (g *Game) Moves() int {
	return g.moves
}

// Player returns the kind of the active player.
func (g *Game) Player() PlayerKind {
	return g.player.kind
}

// CanUndo reports whether UndoMove would succeed.
func (g *Game) CanUndo() bool {
	return g.state == StatePlaying && g.history.CanUndo()
}
