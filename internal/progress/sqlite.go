package progress

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// SQLiteStore is the durable Store backed by a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS completions (
		subject      TEXT NOT NULL,
		item_id      TEXT NOT NULL,
		completed_at INTEGER NOT NULL,
		PRIMARY KEY (subject, item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS quiz_answers (
		subject      TEXT NOT NULL,
		item_id      TEXT NOT NULL,
		question_idx INTEGER NOT NULL,
		choice       TEXT NOT NULL,
		PRIMARY KEY (subject, item_id, question_idx)
	)`,
	`CREATE TABLE IF NOT EXISTS quiz_results (
		subject      TEXT NOT NULL,
		item_id      TEXT NOT NULL,
		attempt_id   TEXT NOT NULL,
		correct      INTEGER NOT NULL,
		total        INTEGER NOT NULL,
		score        REAL NOT NULL,
		passed       INTEGER NOT NULL,
		submitted_at INTEGER NOT NULL,
		PRIMARY KEY (subject, item_id)
	)`,
}

// Open creates a SQLiteStore at the given path. It applies recommended
// pragmas and creates the schema if needed.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	slog.Debug("progress store opened", "path", path)
	return &SQLiteStore{db: db}, nil
}

// applyPragmas configures SQLite for single-user client use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context, subject string) (*Record, error) {
	rec := NewRecord()

	rows, err := s.db.QueryContext(ctx, `SELECT item_id FROM completions WHERE subject = ?`, subject)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		rec.Completed[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}

	arows, err := s.db.QueryContext(ctx, `SELECT item_id, question_idx, choice FROM quiz_answers WHERE subject = ?`, subject)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	defer arows.Close()
	for arows.Next() {
		var id, choice string
		var idx int
		if err := arows.Scan(&id, &idx, &choice); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		rec.Answers[AnswerKey(id, idx)] = choice
	}
	if err := arows.Err(); err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	rrows, err := s.db.QueryContext(ctx, `SELECT item_id, attempt_id, correct, total, score, passed, submitted_at FROM quiz_results WHERE subject = ?`, subject)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	defer rrows.Close()
	for rrows.Next() {
		var id string
		var res Result
		var passed int
		var submitted int64
		if err := rrows.Scan(&id, &res.AttemptID, &res.Correct, &res.Total, &res.Score, &passed, &submitted); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		res.Passed = passed != 0
		res.SubmittedAt = time.Unix(submitted, 0)
		rec.Results[id] = res
	}
	if err := rrows.Err(); err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}

	return rec, nil
}

func (s *SQLiteStore) MarkCompleted(ctx context.Context, subject, itemID string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO completions (subject, item_id, completed_at)
		VALUES (?, ?, ?)
		ON CONFLICT (subject, item_id) DO NOTHING`,
		subject, itemID, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveAnswer(ctx context.Context, subject, itemID string, questionIdx int, choice string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO quiz_answers (subject, item_id, question_idx, choice)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (subject, item_id, question_idx) DO UPDATE SET choice = excluded.choice`,
		subject, itemID, questionIdx, choice)
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveResult(ctx context.Context, subject, itemID string, res Result) error {
	passed := 0
	if res.Passed {
		passed = 1
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO quiz_results (subject, item_id, attempt_id, correct, total, score, passed, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (subject, item_id) DO UPDATE SET
			attempt_id = excluded.attempt_id,
			correct = excluded.correct,
			total = excluded.total,
			score = excluded.score,
			passed = excluded.passed,
			submitted_at = excluded.submitted_at`,
		subject, itemID, res.AttemptID, res.Correct, res.Total, res.Score, passed, res.SubmittedAt.Unix())
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ClearQuiz(ctx context.Context, subject, itemID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("clear quiz: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM quiz_answers WHERE subject = ? AND item_id = ?`, subject, itemID); err != nil {
		return fmt.Errorf("clear answers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM quiz_results WHERE subject = ? AND item_id = ?`, subject, itemID); err != nil {
		return fmt.Errorf("clear result: %w", err)
	}
	return tx.Commit()
}

// DefaultDBPath resolves the database file path in priority order:
// 1. BRAINCELL_DB environment variable
// 2. $XDG_DATA_HOME/braincell/progress.db
// 3. ~/.local/share/braincell/progress.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("BRAINCELL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "braincell", "progress.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
