package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps the best score as a decimal integer in a text file.
type FileStore struct {
	path string
}

// OpenFile prepares a file store at path. The file itself is created on the
// first Save.
func OpenFile(path string) (*FileStore, error) {
	path, err := preparePath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Load reads the stored best score. A missing file yields 0.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}

	score, err := strconv.Atoi(text)
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%w: %q in %s", ErrCorruptValue, text, s.path)
	}
	return score, nil
}

// Save overwrites the stored best score.
// The value is written to a temporary file and renamed into place.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		score = 0
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".best-*")
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Close is a no-op; the file is opened per call.
func (s *FileStore) Close() error {
	return nil
}
