// Package archive keeps completed extraction results in SQLite so the same
// document extracted with the same settings is not processed twice.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dgallion1/qagen/internal/extract"
)

// timeLayout is fixed-width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Key identifies one extraction: the document text plus the settings that
// shape its output.
type Key struct {
	ContentHash string
	Limits      extract.WordLimits
	Language    string
}

// Entry is an archived result with its bookkeeping.
type Entry struct {
	Key
	Result    extract.Result
	CreatedAt time.Time
}

// Store is a SQLite-backed result archive. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS results (
			content_hash TEXT NOT NULL,
			short_limit INTEGER NOT NULL,
			medium_limit INTEGER NOT NULL,
			long_limit INTEGER NOT NULL,
			language TEXT NOT NULL,
			pairs TEXT NOT NULL,
			pair_count INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			PRIMARY KEY (content_hash, short_limit, medium_limit, long_limit, language)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_created_at ON results(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores result under key, replacing any earlier entry.
func (s *Store) Save(ctx context.Context, key Key, result extract.Result) error {
	if result == nil {
		result = extract.Result{}
	}
	pairs, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO results
			(content_hash, short_limit, medium_limit, long_limit, language, pairs, pair_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		key.ContentHash, key.Limits.Short, key.Limits.Medium, key.Limits.Long, key.Language,
		string(pairs), len(result), time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("saving result %s: %w", key.ContentHash, err)
	}
	return nil
}

// Lookup returns the archived entry for key. ok is false when none exists.
func (s *Store) Lookup(ctx context.Context, key Key) (entry Entry, ok bool, err error) {
	var pairs, created string
	err = s.db.QueryRowContext(ctx,
		`SELECT pairs, created_at FROM results
		WHERE content_hash = ? AND short_limit = ? AND medium_limit = ? AND long_limit = ? AND language = ?`,
		key.ContentHash, key.Limits.Short, key.Limits.Medium, key.Limits.Long, key.Language,
	).Scan(&pairs, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("looking up result %s: %w", key.ContentHash, err)
	}

	entry.Key = key
	if err := json.Unmarshal([]byte(pairs), &entry.Result); err != nil {
		return Entry{}, false, fmt.Errorf("decoding result %s: %w", key.ContentHash, err)
	}
	entry.CreatedAt, _ = time.Parse(timeLayout, created)
	return entry, true, nil
}

// Count returns the number of archived results.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting results: %w", err)
	}
	return n, nil
}

// Prune deletes entries created before cutoff and reports how many went.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM results WHERE created_at < ?`,
		cutoff.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("pruning results: %w", err)
	}
	return res.RowsAffected()
}
