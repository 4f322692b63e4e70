// Package storage provides SQLite-based persistence for render history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for render history.
type Store struct {
	db *sql.DB
}

// RenderEntry records one finished render: the full parameter set plus where
// the output landed and how long the run took.
type RenderEntry struct {
	ID             int64
	Focus          complex128
	Width          int
	Height         int
	Frames         int
	RecenterFrames int
	Depth          int
	Palette        string
	Format         string
	OutputPath     string
	Duration       time.Duration
	CreatedAt      time.Time
}

// RenderStats contains aggregated history statistics.
type RenderStats struct {
	Renders      int
	TotalFrames  int64
	TotalTime    time.Duration
	LastRendered time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS renders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			focus_re REAL NOT NULL,
			focus_im REAL NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			recenter_frames INTEGER NOT NULL DEFAULT 0,
			depth INTEGER NOT NULL,
			palette TEXT NOT NULL,
			format TEXT NOT NULL,
			output_path TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_renders_created ON renders(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRender records a finished render.
// Returns the ID of the inserted record.
func (s *Store) SaveRender(e RenderEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO renders
		 (focus_re, focus_im, width, height, frames, recenter_frames, depth, palette, format, output_path, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		real(e.Focus),
		imag(e.Focus),
		e.Width,
		e.Height,
		e.Frames,
		e.RecenterFrames,
		e.Depth,
		e.Palette,
		e.Format,
		e.OutputPath,
		e.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save render: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRenders retrieves the most recent renders, newest first.
func (s *Store) RecentRenders(limit int) ([]RenderEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, focus_re, focus_im, width, height, frames, recenter_frames,
		        depth, palette, format, output_path, duration_ms, created_at
		 FROM renders
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query renders: %w", err)
	}
	defer rows.Close()

	var entries []RenderEntry
	for rows.Next() {
		var e RenderEntry
		var re, im float64
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&re,
			&im,
			&e.Width,
			&e.Height,
			&e.Frames,
			&e.RecenterFrames,
			&e.Depth,
			&e.Palette,
			&e.Format,
			&e.OutputPath,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		e.Focus = complex(re, im)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = scanTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RenderCount returns the number of recorded renders.
func (s *Store) RenderCount() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM renders").Scan(&count); err != nil {
		return 0, fmt.Errorf("storage: cannot count renders: %w", err)
	}
	return count, nil
}

// ClearRenders deletes the whole render history.
func (s *Store) ClearRenders() error {
	_, err := s.db.Exec("DELETE FROM renders")
	if err != nil {
		return fmt.Errorf("storage: cannot clear renders: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics over the whole history.
func (s *Store) Stats() (*RenderStats, error) {
	stats := &RenderStats{}

	var totalMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0), COALESCE(SUM(duration_ms), 0)
		 FROM renders`,
	).Scan(&stats.Renders, &stats.TotalFrames, &totalMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.TotalTime = time.Duration(totalMS) * time.Millisecond

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM renders ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last render time: %w", err)
	}
	if err == nil {
		stats.LastRendered = scanTime(last)
	}

	return stats, nil
}

// scanTime converts a scanned created_at value. The driver hands back either
// time.Time or the SQLite text form depending on how the row was written.
func scanTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
