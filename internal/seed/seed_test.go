package seed

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestParseListing(t *testing.T) {
	out := `coreutils /usr/bin/ls
coreutils /usr/bin/cat
ripgrep /usr/bin/rg
dup-owner /usr/bin/ls
malformed-line
`
	got := parseListing(out)
	want := []string{"ls", "cat", "rg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseListing = %v, want %v", got, want)
	}
}

func TestParseListingEmpty(t *testing.T) {
	if got := parseListing(""); got != nil {
		t.Fatalf("expected nil for empty output, got %v", got)
	}
}

type staticSource struct {
	names []string
	err   error
}

func (s staticSource) Binaries(context.Context) ([]string, error) {
	return s.names, s.err
}

type recordingStore struct {
	scores map[string]int
	fail   bool
}

func (r *recordingStore) SetBaseScore(name string, score int) error {
	if r.fail {
		return errors.New("disk full")
	}
	if r.scores == nil {
		r.scores = make(map[string]int)
	}
	r.scores[name] = score
	return nil
}

func TestApply(t *testing.T) {
	st := &recordingStore{}
	src := staticSource{names: []string{"ls", "rg", "fd"}}

	n, err := Apply(context.Background(), st, src, 50)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if n != 3 {
		t.Errorf("seeded count = %d, want 3", n)
	}
	for _, name := range src.names {
		if st.scores[name] != 50 {
			t.Errorf("%s score = %d, want 50", name, st.scores[name])
		}
	}
}

func TestApplySourceError(t *testing.T) {
	src := staticSource{err: errors.New("pacman not found")}
	if _, err := Apply(context.Background(), &recordingStore{}, src, 50); err == nil {
		t.Fatal("expected source error to propagate")
	}
}

func TestApplyStoreError(t *testing.T) {
	src := staticSource{names: []string{"ls"}}
	if _, err := Apply(context.Background(), &recordingStore{fail: true}, src, 50); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func TestCommandSourceEmptyCommand(t *testing.T) {
	if _, err := (CommandSource{}).Binaries(context.Background()); err == nil {
		t.Fatal("expected error for missing command")
	}
}
