// Package prefs is the durable per-entity usage store. It is the sole source
// of truth for base scores, usage counters, TUI flags, and last-use times;
// entity identity lives in the discovery cache, never here.
//
// Every mutation is a single-statement INSERT … ON CONFLICT DO UPDATE upsert,
// so no existence-check/branch races exist even if concurrency is added
// later. Rows are created lazily and never deleted.
package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record holds the persisted preference data for one entity name.
// The zero value is the correct default for an absent row.
type Record struct {
	IsTUI    bool
	Score    int
	Usage    int
	LastUsed int64
}

// Store wraps the sqlite preference database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS app_prefs (
	app_name  TEXT PRIMARY KEY,
	is_tui    BOOLEAN NOT NULL DEFAULT 0,
	score     INTEGER NOT NULL DEFAULT 0,
	usage     INTEGER NOT NULL DEFAULT 0,
	last_used INTEGER NOT NULL DEFAULT 0
)`

// FileName is the database file name inside the per-user data directory.
const FileName = "prefs.sqlite"

// Open opens (creating if needed) the preference store at path. Failure here
// is fatal to the caller: usage-based ranking has no memory without it.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open preference store %s: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("cannot apply %s: %w", p, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot create app_prefs table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordLaunch bumps the usage counter and last-use timestamp for name,
// creating the row with usage=1 if absent.
func (s *Store) RecordLaunch(name string) error {
	return s.recordLaunchAt(name, time.Now().Unix())
}

func (s *Store) recordLaunchAt(name string, now int64) error {
	_, err := s.db.Exec(
		`INSERT INTO app_prefs (app_name, usage, last_used) VALUES (?, 1, ?)
		 ON CONFLICT(app_name) DO UPDATE SET
			usage = usage + 1,
			last_used = excluded.last_used`,
		name, now,
	)
	return err
}

// SetTUI sets the terminal-wrapper flag for name, creating the row if absent.
func (s *Store) SetTUI(name string, tui bool) error {
	_, err := s.db.Exec(
		`INSERT INTO app_prefs (app_name, is_tui) VALUES (?, ?)
		 ON CONFLICT(app_name) DO UPDATE SET is_tui = excluded.is_tui`,
		name, tui,
	)
	return err
}

// SetBaseScore overwrites the base score for name, leaving usage and flags
// untouched on existing rows. Used by bulk seeding.
func (s *Store) SetBaseScore(name string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO app_prefs (app_name, score) VALUES (?, ?)
		 ON CONFLICT(app_name) DO UPDATE SET score = excluded.score`,
		name, score,
	)
	return err
}

// Lookup returns the preference record for name. Absence is not an error:
// ok is false and the zero Record (the defaults) is returned.
func (s *Store) Lookup(name string) (Record, bool, error) {
	var r Record
	err := s.db.QueryRow(
		`SELECT is_tui, score, usage, last_used FROM app_prefs WHERE app_name = ?`,
		name,
	).Scan(&r.IsTUI, &r.Score, &r.Usage, &r.LastUsed)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return r, true, nil
}

// LookupAll reads the whole table in one query. Enrichment of K entities must
// cost one query, not K point lookups.
func (s *Store) LookupAll() (map[string]Record, error) {
	rows, err := s.db.Query(`SELECT app_name, is_tui, score, usage, last_used FROM app_prefs`)
	if err != nil {
		return nil, fmt.Errorf("cannot read app_prefs: %w", err)
	}
	defer rows.Close()

	out := make(map[string]Record)
	for rows.Next() {
		var name string
		var r Record
		if err := rows.Scan(&name, &r.IsTUI, &r.Score, &r.Usage, &r.LastUsed); err != nil {
			return nil, err
		}
		out[name] = r
	}
	return out, rows.Err()
}

// Count returns the number of preference rows. Rows accumulate indefinitely
// (uninstalled entities are never evicted); doctor surfaces the count.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM app_prefs`).Scan(&n)
	return n, err
}
