// Package seed imports flat base scores for package-owned binaries into the
// preference store. The package database is environment-specific, so it sits
// behind the Source interface; the default CommandSource shells out to the
// configured listing command.
package seed

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Source lists binary names eligible for a base score.
type Source interface {
	Binaries(ctx context.Context) ([]string, error)
}

// Store is the subset of the preference store that seeding needs.
type Store interface {
	SetBaseScore(name string, score int) error
}

// CommandSource runs a shell line whose output pairs a package with a binary
// path per line, e.g. "coreutils /usr/bin/ls".
type CommandSource struct {
	Command string
}

// Binaries executes the listing command and extracts unique binary basenames.
func (c CommandSource) Binaries(ctx context.Context) ([]string, error) {
	if strings.TrimSpace(c.Command) == "" {
		return nil, fmt.Errorf("no seed command configured")
	}
	out, err := exec.CommandContext(ctx, "sh", "-c", c.Command).Output()
	if err != nil {
		return nil, fmt.Errorf("cannot run seed command: %w", err)
	}
	return parseListing(string(out)), nil
}

// parseListing extracts binary basenames from "package /path/to/binary"
// lines, preserving first-seen order and dropping duplicates.
func parseListing(out string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name := filepath.Base(fields[1])
		if name == "" || name == "." || name == "/" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Apply assigns score to every binary reported by src and returns the number
// of seeded names. Re-running with the same source is idempotent.
func Apply(ctx context.Context, st Store, src Source, score int) (int, error) {
	names, err := src.Binaries(ctx)
	if err != nil {
		return 0, err
	}
	for _, name := range names {
		if err := st.SetBaseScore(name, score); err != nil {
			return 0, fmt.Errorf("cannot seed %q: %w", name, err)
		}
	}
	return len(names), nil
}
