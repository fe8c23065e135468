// Package cache persists the discovery snapshot: the stable identity triples
// of all enumerated entities. It is a best-effort accelerator: any problem
// reading it is reported as ErrMiss so the caller falls back to a full scan.
// Derived fields (scores, dormancy) are never stored here.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumecli/lume/internal/scan"
)

// ErrMiss indicates the cache is absent, empty, or unreadable and a full
// enumeration is required. It is never a failure condition.
var ErrMiss = errors.New("discovery cache miss")

// FileName is the cache file name inside the per-user cache directory.
const FileName = "apps.json"

// Load reads the cached identity list from path. Missing files, empty
// content, and malformed JSON all return ErrMiss.
func Load(path string) ([]scan.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrMiss
	}
	var entries []scan.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, ErrMiss
	}
	if len(entries) == 0 {
		return nil, ErrMiss
	}
	return entries, nil
}

// Save overwrites the cache at path with the full identity list, creating
// the parent directory if needed.
func Save(path string, entries []scan.Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create cache directory: %w", err)
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("cannot marshal cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write cache %s: %w", path, err)
	}
	return nil
}
