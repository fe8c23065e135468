package rank

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/text/cases"
)

// candidateFactor bounds the walk: collection stops once candidateFactor ×
// the requested limit paths survive the pre-filter, so a large tree is never
// fully traversed.
const candidateFactor = 10

// FileSearcher runs query-driven, depth-limited walks under a fixed root.
// File candidates are ephemeral; nothing about a walk persists across
// queries.
type FileSearcher struct {
	Root     string
	MaxDepth int
}

// NewFileSearcher returns a searcher rooted at root descending at most depth
// directory levels.
func NewFileSearcher(root string, depth int) *FileSearcher {
	return &FileSearcher{Root: root, MaxDepth: depth}
}

// Search walks the tree for candidates matching query and returns at most
// limit paths ordered by fuzzy affinity descending. An empty query returns
// nothing without touching the filesystem: this pipeline is strictly
// query-driven, never a browse mode.
func (s *FileSearcher) Search(query string, limit int) []string {
	q := strings.TrimSpace(query)
	if q == "" || limit <= 0 {
		return nil
	}

	w := &walker{
		fold:  cases.Fold(),
		max:   limit * candidateFactor,
		depth: s.MaxDepth,
	}
	w.query = []rune(w.fold.String(q))
	w.walk(s.Root, nil, 0)

	matches := matchAll(q, w.candidates)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}

// ignoreRule pairs a compiled ignore file with the directory it governs.
type ignoreRule struct {
	matcher *ignore.GitIgnore
	base    string
}

type walker struct {
	fold       cases.Caser
	query      []rune
	max        int
	depth      int
	candidates []string
}

// walk collects pre-filtered file candidates under dir. It returns false
// once the candidate cap is hit so callers unwind immediately instead of
// finishing the traversal. Unreadable directories are skipped.
func (w *walker) walk(dir string, rules []ignoreRule, depth int) bool {
	for _, name := range []string{".gitignore", ".ignore"} {
		if m, err := ignore.CompileIgnoreFile(filepath.Join(dir, name)); err == nil && m != nil {
			rules = append(rules, ignoreRule{matcher: m, base: dir})
		}
	}

	items, err := os.ReadDir(dir)
	if err != nil {
		return true
	}
	for _, it := range items {
		full := filepath.Join(dir, it.Name())
		if it.IsDir() {
			if it.Name() == ".git" {
				continue
			}
			if depth+1 >= w.depth || ignoredBy(rules, full) {
				continue
			}
			if !w.walk(full, rules, depth+1) {
				return false
			}
			continue
		}
		if !it.Type().IsRegular() || ignoredBy(rules, full) {
			continue
		}
		if !w.prefilter(full) {
			continue
		}
		w.candidates = append(w.candidates, full)
		if len(w.candidates) >= w.max {
			return false
		}
	}
	return true
}

// prefilter is the cheap inline check applied during the walk: every query
// character, case-folded, must appear somewhere in the candidate path.
func (w *walker) prefilter(path string) bool {
	p := w.fold.String(path)
	for _, r := range w.query {
		if !strings.ContainsRune(p, r) {
			return false
		}
	}
	return true
}

func ignoredBy(rules []ignoreRule, path string) bool {
	for _, r := range rules {
		rel, err := filepath.Rel(r.base, path)
		if err != nil {
			continue
		}
		if r.matcher.MatchesPath(rel) {
			return true
		}
	}
	return false
}
