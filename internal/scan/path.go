package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// scanPathDir appends executables found directly inside one $PATH directory.
// Filenames containing a dot or starting with one are skipped, as are names
// already claimed by a desktop entry's binary.
func (s *Scanner) scanPathDir(dir string, seen, knownExecs map[string]struct{}, out []Entry) []Entry {
	items, err := os.ReadDir(dir)
	if err != nil {
		return out
	}

	for _, it := range items {
		name := it.Name()
		if strings.Contains(name, ".") || strings.HasPrefix(name, ".") {
			continue
		}

		// Stat follows symlinks: most $PATH entries are links into a store
		// or versioned directory.
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.Mode().IsRegular() || info.Mode().Perm()&0o111 == 0 {
			continue
		}

		if _, known := knownExecs[name]; known {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, Entry{Name: name, Exec: name, CLIOnly: true})
	}
	return out
}
