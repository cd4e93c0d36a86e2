//go:build sqlite

package tape

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists frames to a single-file SQLite database.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func newSQLiteStore(path string) (Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	return &SQLiteStore{path: path}, nil
}

// Init opens the database and creates the frames table.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS frames (
			generation INTEGER PRIMARY KEY,
			w INTEGER NOT NULL,
			h INTEGER NOT NULL,
			bits BLOB NOT NULL,
			metrics BLOB
		)
	`)
	if err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// Append upserts a frame keyed by generation.
func (s *SQLiteStore) Append(ctx context.Context, frame Frame) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO frames (generation, w, h, bits, metrics)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(generation) DO UPDATE SET
			w = excluded.w,
			h = excluded.h,
			bits = excluded.bits,
			metrics = excluded.metrics
	`, int64(frame.Generation), frame.W, frame.H, frame.Bits, frame.Metrics)
	return err
}

// Frame loads the recorded frame for a generation, if present.
func (s *SQLiteStore) Frame(ctx context.Context, generation uint64) (Frame, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Frame{}, false, err
	}
	row := db.QueryRowContext(ctx, `
		SELECT w, h, bits, metrics FROM frames WHERE generation = ?
	`, int64(generation))

	frame := Frame{Generation: generation}
	err = row.Scan(&frame.W, &frame.H, &frame.Bits, &frame.Metrics)
	if errors.Is(err, sql.ErrNoRows) {
		return Frame{}, false, nil
	}
	if err != nil {
		return Frame{}, false, err
	}
	return frame, true, nil
}

// Len reports the number of recorded frames.
func (s *SQLiteStore) Len(ctx context.Context) (int, error) {
	db, err := s.getDB()
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM frames`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, errors.New("sqlite store is not initialized")
	}
	return s.db, nil
}
