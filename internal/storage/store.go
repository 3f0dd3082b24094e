// Package storage persists the 2048 best score.
// Two backends are available: a plain-text file and a SQLite database using
// the pure-Go modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var (
	// ErrCorruptValue is returned by Load when the stored value is not a
	// non-negative integer.
	ErrCorruptValue = errors.New("storage: corrupt best score")

	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

// BestScore is a persistent best-score slot.
type BestScore interface {
	Load() (int, error)
	Save(score int) error
	Close() error
}

// Ensure both backends satisfy the session's store contract
var (
	_ t2048.BestScoreStore = (*FileStore)(nil)
	_ t2048.BestScoreStore = (*SQLStore)(nil)
)

// Open opens the best-score store for the named backend at path.
func Open(backend, path string) (BestScore, error) {
	switch backend {
	case BackendFile:
		store, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendSQLite:
		store, err := OpenSQL(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// preparePath expands a leading ~ and creates the parent directory.
func preparePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("storage: empty path")
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return path, nil
}
