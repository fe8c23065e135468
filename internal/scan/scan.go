// Package scan enumerates launchable entities from desktop entries and $PATH.
//
// Sources form a fixed priority list: desktop-entry directories in
// configuration order, then $PATH directories. A seen-name set makes the
// first occurrence win, so desktop entries shadow PATH binaries and earlier
// directories shadow later ones. Unreadable directories and malformed files
// are skipped; enumeration never fails on a single bad source.
package scan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lumecli/lume/internal/config"
)

// Entry is the stable identity of one launchable entity.
type Entry struct {
	Name    string `json:"name"`
	Exec    string `json:"exec"`
	CLIOnly bool   `json:"is_cli_only"`
}

// Scanner enumerates entries from the configured sources.
type Scanner struct {
	DesktopDirs     []string
	PathVar         string
	ExcludeSegments []string
}

// New builds a Scanner from cfg and the process environment.
func New(cfg *config.Config) *Scanner {
	return &Scanner{
		DesktopDirs:     cfg.DesktopDirs,
		PathVar:         os.Getenv("PATH"),
		ExcludeSegments: cfg.ExcludePathSegments,
	}
}

// Scan runs all sources in priority order and returns the deduplicated list.
func (s *Scanner) Scan() []Entry {
	seen := make(map[string]struct{})
	knownExecs := make(map[string]struct{})

	var out []Entry
	for _, dir := range s.DesktopDirs {
		out = s.scanDesktopDir(dir, seen, knownExecs, out)
	}
	for _, dir := range filepath.SplitList(s.PathVar) {
		if s.excluded(dir) {
			continue
		}
		out = s.scanPathDir(dir, seen, knownExecs, out)
	}
	return out
}

// excluded reports whether a $PATH directory contains one of the excluded
// path segments (sbin, games, lib by default). Segments are compared exactly,
// so /usr/lib is excluded but /usr/libexec is not.
func (s *Scanner) excluded(dir string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(filepath.Clean(dir)), "/") {
		for _, ex := range s.ExcludeSegments {
			if seg == ex {
				return true
			}
		}
	}
	return false
}
