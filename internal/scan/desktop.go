package scan

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// desktopSection holds the flat key/value pairs of a [Desktop Entry] section.
// The first value wins when a key repeats; localized keys like Name[de] are
// distinct from Name and never consulted.
type desktopSection map[string]string

// scanDesktopDir reads every .desktop file directly inside dir (the scan is
// non-recursive) and appends valid, displayable entries to out.
func (s *Scanner) scanDesktopDir(dir string, seen, knownExecs map[string]struct{}, out []Entry) []Entry {
	items, err := os.ReadDir(dir)
	if err != nil {
		return out
	}

	for _, it := range items {
		if it.IsDir() || !strings.HasSuffix(it.Name(), ".desktop") {
			continue
		}
		sec, err := readDesktopEntry(filepath.Join(dir, it.Name()))
		if err != nil {
			continue
		}
		if sec["NoDisplay"] == "true" {
			continue
		}
		name := strings.TrimSpace(sec["Name"])
		exec := stripFieldCodes(sec["Exec"])
		if name == "" || exec == "" {
			continue
		}

		// Record the simple binary name so the PATH scan can suppress the
		// same executable appearing under its bare name.
		if first := strings.Fields(exec); len(first) > 0 {
			knownExecs[filepath.Base(first[0])] = struct{}{}
		}

		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, Entry{Name: name, Exec: exec, CLIOnly: false})
	}
	return out
}

// readDesktopEntry parses the [Desktop Entry] section of a .desktop file.
func readDesktopEntry(path string) (desktopSection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sec := make(desktopSection)
	inSection := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "["):
			inSection = line == "[Desktop Entry]"
		case inSection:
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			if _, repeated := sec[key]; repeated {
				continue
			}
			sec[key] = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sec, nil
}

// stripFieldCodes removes %-prefixed placeholder tokens (%f, %U, ...) from a
// desktop Exec line.
func stripFieldCodes(exec string) string {
	fields := strings.Fields(exec)
	kept := fields[:0]
	for _, f := range fields {
		if strings.HasPrefix(f, "%") {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
