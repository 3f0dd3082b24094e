package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLStore keeps the best score in a single-row SQLite table.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQL(dbPath string) (*SQLStore, error) {
	dbPath, err := preparePath(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLStore{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// The CHECK on id keeps the table to a single row.
func (s *SQLStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the stored best score, or 0 if none was saved yet.
func (s *SQLStore) Load() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT score FROM best_score WHERE id = 1").Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid || score.Int64 < 0 {
		return 0, fmt.Errorf("%w: %v", ErrCorruptValue, score.Int64)
	}

	return int(score.Int64), nil
}

// Save overwrites the stored best score.
func (s *SQLStore) Save(score int) error {
	if score < 0 {
		score = 0
	}

	_, err := s.db.Exec(
		`INSERT INTO best_score (id, score) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}
