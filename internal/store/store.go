// Package store handles SQLite persistence of session history.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/tenff-dev/tenff/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for session history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			corpus TEXT NOT NULL,
			time_limit_sec INTEGER NOT NULL,
			rigorous INTEGER NOT NULL,
			correct_chars INTEGER NOT NULL,
			wrong_chars INTEGER NOT NULL,
			keys_pressed INTEGER NOT NULL,
			correct_words INTEGER NOT NULL,
			wrong_words INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSession stores one completed session.
func (s *Store) InsertSession(ctx context.Context, stats model.SessionStats) (int64, error) {
	rigorous := 0
	if stats.Rigorous {
		rigorous = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (started_at, ended_at, corpus, time_limit_sec, rigorous,
			correct_chars, wrong_chars, keys_pressed, correct_words, wrong_words, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stats.StartedAt.Format(time.RFC3339Nano),
		stats.EndedAt.Format(time.RFC3339Nano),
		stats.Corpus,
		stats.TimeLimitSec,
		rigorous,
		stats.CorrectChars,
		stats.WrongChars,
		stats.KeysPressed,
		stats.CorrectWords,
		stats.WrongWords,
		stats.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSessions returns stored sessions ordered by end time ascending.
func (s *Store) ListSessions(ctx context.Context) ([]model.SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ended_at, corpus, time_limit_sec, correct_chars, wrong_chars,
			keys_pressed, correct_words, wrong_words, duration_ms
		 FROM sessions
		 ORDER BY ended_at ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionRecord
	for rows.Next() {
		var rec model.SessionRecord
		var endedAt string
		if err := rows.Scan(&rec.ID, &endedAt, &rec.Corpus, &rec.TimeLimitSec,
			&rec.CorrectChars, &rec.WrongChars, &rec.KeysPressed,
			&rec.CorrectWords, &rec.WrongWords, &rec.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		rec.EndedAt = parsed
		sessions = append(sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
