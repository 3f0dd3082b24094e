// Package autoplay runs automatic-player games without a terminal UI.
package autoplay

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Config controls a batch of headless games.
type Config struct {
	Games      int   // Number of games to play
	Parallel   int   // Concurrent games; 0 = GOMAXPROCS
	Size       int   // Board dimension
	MaxHistory int   // Undo depth kept by each session
	MaxMoves   int   // Move cap per game; 0 = until game over
	Seed       int64 // Game i uses Seed+i; 0 = clock-based base
}

// Result is the outcome of one game.
type Result struct {
	Game     int
	Seed     int64
	Score    int
	MaxTile  int
	Moves    int
	Finished bool // Reached game over rather than the move cap
}

// Summary aggregates a batch of results.
type Summary struct {
	Games     int
	Finished  int
	BestScore int
	MeanScore float64
	MaxTile   int
	TileCount map[int]int // Games reaching each max tile
}

// ErrNoGames is returned when Config.Games is not positive.
var ErrNoGames = errors.New("autoplay: no games requested")

// Run plays cfg.Games automatic games and returns their results in game order.
// Each game owns its session, so games run concurrently without locking.
func Run(ctx context.Context, cfg Config, logger *log.Logger) ([]Result, error) {
	if cfg.Games <= 0 {
		return nil, ErrNoGames
	}
	if cfg.Parallel <= 0 {
		cfg.Parallel = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = log.Default()
	}

	results := make([]Result, cfg.Games)
	seeds := gameSeeds(cfg.Seed, cfg.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)

	for i := range cfg.Games {
		g.Go(func() error {
			res, err := playOne(ctx, cfg, i, seeds[i], logger)
			if err != nil {
				return fmt.Errorf("autoplay: game %d: %w", i, err)
			}
			results[i] = res
			logger.Debug("game finished",
				"game", i,
				"score", res.Score,
				"max_tile", res.MaxTile,
				"moves", res.Moves,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// gameSeeds returns one non-zero seed per game, base+i for game i.
// A zero base is replaced by the clock. A computed seed of 0 would make the
// session pick its own seed, so it becomes base+games, which no game uses.
func gameSeeds(base int64, games int) []int64 {
	if base == 0 {
		base = time.Now().UnixNano()
	}

	seeds := make([]int64, games)
	for i := range seeds {
		seed := base + int64(i)
		if seed == 0 {
			seed = base + int64(games)
		}
		seeds[i] = seed
	}
	return seeds
}

// playOne runs a single game until game over, the move cap or cancellation.
func playOne(ctx context.Context, cfg Config, i int, seed int64, logger *log.Logger) (Result, error) {
	game := t2048.New(t2048.Options{
		Size:       cfg.Size,
		MaxHistory: cfg.MaxHistory,
		Seed:       seed,
		Logger:     logger,
	})
	game.StartGame(false)

	attempts := 0
	for game.State() == t2048.StatePlaying {
		if cfg.MaxMoves > 0 && game.Moves() >= cfg.MaxMoves {
			break
		}
		if attempts%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		game.Step()
		attempts++
	}

	snap := game.Snapshot()
	return Result{
		Game:     i,
		Seed:     seed,
		Score:    snap.Score,
		MaxTile:  snap.MaxTile,
		Moves:    snap.Moves,
		Finished: snap.State == t2048.StateGameOver,
	}, nil
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{
		Games:     len(results),
		TileCount: make(map[int]int),
	}
	if len(results) == 0 {
		return s
	}

	total := 0
	for _, r := range results {
		total += r.Score
		s.BestScore = max(s.BestScore, r.Score)
		s.MaxTile = max(s.MaxTile, r.MaxTile)
		s.TileCount[r.MaxTile]++
		if r.Finished {
			s.Finished++
		}
	}
	s.MeanScore = float64(total) / float64(len(results))
	return s
}

// Tiles returns the max tiles reached, highest first.
func (s Summary) Tiles() []int {
	tiles := make([]int, 0, len(s.TileCount))
	for t := range s.TileCount {
		tiles = append(tiles, t)
	}
	slices.Sort(tiles)
	slices.Reverse(tiles)
	return tiles
}
