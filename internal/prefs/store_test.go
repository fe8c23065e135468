package prefs

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLookupAbsentReturnsDefaults(t *testing.T) {
	s := openTestStore(t)

	rec, ok, err := s.Lookup("nonexistent")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for absent row")
	}
	if rec != (Record{}) {
		t.Errorf("absent row must yield zero record, got %+v", rec)
	}
}

func TestRecordLaunchCreatesAndIncrements(t *testing.T) {
	s := openTestStore(t)

	if err := s.recordLaunchAt("vim", 1000); err != nil {
		t.Fatalf("first launch failed: %v", err)
	}
	rec, ok, err := s.Lookup("vim")
	if err != nil || !ok {
		t.Fatalf("lookup failed: ok=%v err=%v", ok, err)
	}
	if rec.Usage != 1 || rec.LastUsed != 1000 {
		t.Errorf("after first launch: usage=%d last_used=%d, want 1/1000", rec.Usage, rec.LastUsed)
	}

	if err := s.recordLaunchAt("vim", 2000); err != nil {
		t.Fatalf("second launch failed: %v", err)
	}
	rec, _, err = s.Lookup("vim")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if rec.Usage != 2 || rec.LastUsed != 2000 {
		t.Errorf("after second launch: usage=%d last_used=%d, want 2/2000", rec.Usage, rec.LastUsed)
	}
}

func TestRecordLaunchPreservesScoreAndFlag(t *testing.T) {
	s := openTestStore(t)

	if err := s.SetBaseScore("vim", 50); err != nil {
		t.Fatalf("set base score failed: %v", err)
	}
	if err := s.SetTUI("vim", true); err != nil {
		t.Fatalf("set tui failed: %v", err)
	}
	if err := s.recordLaunchAt("vim", 3000); err != nil {
		t.Fatalf("launch failed: %v", err)
	}

	rec, _, err := s.Lookup("vim")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if rec.Score != 50 || !rec.IsTUI {
		t.Errorf("launch clobbered other columns: %+v", rec)
	}
}

func TestSetTUICreatesRowWithDefaults(t *testing.T) {
	s := openTestStore(t)

	if err := s.SetTUI("lazygit", true); err != nil {
		t.Fatalf("set tui failed: %v", err)
	}
	rec, ok, err := s.Lookup("lazygit")
	if err != nil || !ok {
		t.Fatalf("lookup failed: ok=%v err=%v", ok, err)
	}
	if !rec.IsTUI || rec.Usage != 0 || rec.Score != 0 || rec.LastUsed != 0 {
		t.Errorf("flag-only row has wrong defaults: %+v", rec)
	}

	if err := s.SetTUI("lazygit", false); err != nil {
		t.Fatalf("unset tui failed: %v", err)
	}
	rec, _, _ = s.Lookup("lazygit")
	if rec.IsTUI {
		t.Errorf("flag not cleared: %+v", rec)
	}
}

func TestSetBaseScorePreservesUsage(t *testing.T) {
	s := openTestStore(t)

	if err := s.recordLaunchAt("rg", 500); err != nil {
		t.Fatalf("launch failed: %v", err)
	}
	if err := s.SetBaseScore("rg", 50); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := s.SetBaseScore("rg", 50); err != nil {
		t.Fatalf("re-seed failed: %v", err)
	}

	rec, _, err := s.Lookup("rg")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if rec.Score != 50 || rec.Usage != 1 || rec.LastUsed != 500 {
		t.Errorf("seeding must not touch usage history: %+v", rec)
	}
}

func TestLookupAll(t *testing.T) {
	s := openTestStore(t)

	if err := s.SetBaseScore("a", 10); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := s.recordLaunchAt("b", 100); err != nil {
		t.Fatalf("launch failed: %v", err)
	}

	all, err := s.LookupAll()
	if err != nil {
		t.Fatalf("lookup all failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all["a"].Score != 10 {
		t.Errorf("record a: %+v", all["a"])
	}
	if all["b"].Usage != 1 || all["b"].LastUsed != 100 {
		t.Errorf("record b: %+v", all["b"])
	}
}

func TestCount(t *testing.T) {
	s := openTestStore(t)

	n, err := s.Count()
	if err != nil || n != 0 {
		t.Fatalf("empty store count = %d, err = %v", n, err)
	}
	if err := s.SetBaseScore("a", 1); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := s.SetBaseScore("b", 1); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	n, err = s.Count()
	if err != nil || n != 2 {
		t.Fatalf("count = %d, err = %v, want 2", n, err)
	}
}

func TestReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := s.recordLaunchAt("vim", 42); err != nil {
		t.Fatalf("launch failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()
	rec, ok, err := s.Lookup("vim")
	if err != nil || !ok {
		t.Fatalf("lookup after reopen: ok=%v err=%v", ok, err)
	}
	if rec.Usage != 1 || rec.LastUsed != 42 {
		t.Errorf("record lost across reopen: %+v", rec)
	}
}
