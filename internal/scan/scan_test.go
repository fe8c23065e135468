package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDesktopFile(t *testing.T, dir, file, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write desktop file: %v", err)
	}
}

func writeExecutable(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to write executable: %v", err)
	}
}

func TestScanDesktopEntries(t *testing.T) {
	dir := t.TempDir()
	writeDesktopFile(t, dir, "firefox.desktop", `[Desktop Entry]
Name=Firefox
Exec=/usr/lib/firefox/firefox %u
`)
	writeDesktopFile(t, dir, "hidden.desktop", `[Desktop Entry]
Name=Hidden Tool
Exec=/usr/bin/hidden
NoDisplay=true
`)
	writeDesktopFile(t, dir, "broken.desktop", `[Desktop Entry]
Name=
Exec=/usr/bin/nothing
`)
	writeDesktopFile(t, dir, "noexec.desktop", `[Desktop Entry]
Name=No Exec
`)

	s := &Scanner{DesktopDirs: []string{dir}}
	entries := s.Scan()

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d: %+v", len(entries), entries)
	}
	e := entries[0]
	if e.Name != "Firefox" {
		t.Errorf("name = %q, want Firefox", e.Name)
	}
	if e.Exec != "/usr/lib/firefox/firefox" {
		t.Errorf("exec = %q, want field code stripped", e.Exec)
	}
	if e.CLIOnly {
		t.Errorf("desktop entries must not be CLI-only")
	}
}

func TestScanDesktopFirstValueWins(t *testing.T) {
	dir := t.TempDir()
	writeDesktopFile(t, dir, "app.desktop", `[Desktop Entry]
Name=First
Name=Second
Exec=/usr/bin/app
`)

	s := &Scanner{DesktopDirs: []string{dir}}
	entries := s.Scan()
	if len(entries) != 1 || entries[0].Name != "First" {
		t.Fatalf("expected first Name value to win, got %+v", entries)
	}
}

func TestScanIgnoresOtherSections(t *testing.T) {
	dir := t.TempDir()
	writeDesktopFile(t, dir, "app.desktop", `[Desktop Entry]
Name=Real
Exec=/usr/bin/real
[Desktop Action new-window]
Name=Fake
Exec=/usr/bin/fake
`)

	s := &Scanner{DesktopDirs: []string{dir}}
	entries := s.Scan()
	if len(entries) != 1 || entries[0].Name != "Real" || entries[0].Exec != "/usr/bin/real" {
		t.Fatalf("action section leaked into entry: %+v", entries)
	}
}

func TestScanDedupAcrossDesktopDirs(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeDesktopFile(t, first, "a.desktop", "[Desktop Entry]\nName=Editor\nExec=/usr/bin/vi\n")
	writeDesktopFile(t, second, "b.desktop", "[Desktop Entry]\nName=Editor\nExec=/usr/bin/emacs\n")

	s := &Scanner{DesktopDirs: []string{first, second}}
	entries := s.Scan()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after dedup, got %d", len(entries))
	}
	if entries[0].Exec != "/usr/bin/vi" {
		t.Errorf("earlier directory should win, got exec %q", entries[0].Exec)
	}
}

func TestScanPathExecutables(t *testing.T) {
	bin := t.TempDir()
	writeExecutable(t, bin, "rg")
	writeExecutable(t, bin, "fd")
	writeExecutable(t, bin, "tool.sh") // dot in name, skipped
	if err := os.WriteFile(filepath.Join(bin, "notes"), []byte("text"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	s := &Scanner{PathVar: bin}
	entries := s.Scan()

	names := make(map[string]Entry)
	for _, e := range entries {
		names[e.Name] = e
	}
	if len(names) != 2 {
		t.Fatalf("expected rg and fd only, got %+v", entries)
	}
	for _, want := range []string{"rg", "fd"} {
		e, ok := names[want]
		if !ok {
			t.Fatalf("missing %q in %+v", want, entries)
		}
		if !e.CLIOnly {
			t.Errorf("%s: PATH binaries must be CLI-only", want)
		}
		if e.Exec != want {
			t.Errorf("%s: exec = %q, want bare name", want, e.Exec)
		}
	}
}

func TestScanDesktopShadowsPathBinary(t *testing.T) {
	apps := t.TempDir()
	bin := t.TempDir()
	writeDesktopFile(t, apps, "alacritty.desktop", "[Desktop Entry]\nName=Alacritty\nExec=alacritty\n")
	writeExecutable(t, bin, "alacritty")
	writeExecutable(t, bin, "htop")

	s := &Scanner{DesktopDirs: []string{apps}, PathVar: bin}
	entries := s.Scan()

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	joined := strings.Join(names, ",")
	if joined != "Alacritty,htop" {
		t.Fatalf("expected desktop entry to shadow its PATH binary, got %q", joined)
	}
}

func TestExcludedPathSegments(t *testing.T) {
	s := &Scanner{ExcludeSegments: []string{"sbin", "games", "lib"}}

	cases := []struct {
		dir  string
		want bool
	}{
		{"/usr/sbin", true},
		{"/usr/local/sbin", true},
		{"/usr/games", true},
		{"/usr/lib", true},
		{"/usr/libexec", false},
		{"/usr/bin", false},
		{"/opt/sbin-tools", false},
	}
	for _, c := range cases {
		if got := s.excluded(c.dir); got != c.want {
			t.Errorf("excluded(%q) = %v, want %v", c.dir, got, c.want)
		}
	}
}

func TestScanSkipsUnreadableDirs(t *testing.T) {
	s := &Scanner{
		DesktopDirs: []string{filepath.Join(t.TempDir(), "missing")},
		PathVar:     filepath.Join(t.TempDir(), "also-missing"),
	}
	if entries := s.Scan(); len(entries) != 0 {
		t.Fatalf("expected empty result from absent sources, got %+v", entries)
	}
}

func TestStripFieldCodes(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/usr/bin/app %U", "/usr/bin/app"},
		{"/usr/bin/app --new %f --end", "/usr/bin/app --new --end"},
		{"/usr/bin/app", "/usr/bin/app"},
		{"%F", ""},
	}
	for _, c := range cases {
		if got := stripFieldCodes(c.in); got != c.want {
			t.Errorf("stripFieldCodes(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
