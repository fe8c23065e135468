package rank

import (
	"sort"
	"strings"
)

// SearchApps runs the app pipeline over an enriched, pre-sorted list.
//
// An empty query is the identity: the full list passes through untouched
// except for the dormancy projection. A non-empty query fuzzy-scores every
// name in parallel, drops non-matches, sorts by affinity descending with
// total score as the tie-break (relevance ties favor more-used entities),
// caps the result after sorting, and applies the dormancy projection last so
// toggling visibility never perturbs relative order among survivors.
func SearchApps(apps []App, query string, limit int, showDormant bool) []App {
	q := strings.TrimSpace(query)
	if q == "" {
		return projectDormancy(apps, showDormant)
	}

	names := make([]string, len(apps))
	for i, a := range apps {
		names[i] = a.Name
	}
	matches := matchAll(q, names)

	type scored struct {
		app      App
		affinity int
	}
	hits := make([]scored, len(matches))
	for i, m := range matches {
		hits[i] = scored{app: apps[m.Index], affinity: m.Score}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].affinity != hits[j].affinity {
			return hits[i].affinity > hits[j].affinity
		}
		return hits[i].app.TotalScore > hits[j].app.TotalScore
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]App, len(hits))
	for i, h := range hits {
		out[i] = h.app
	}
	return projectDormancy(out, showDormant)
}

// projectDormancy hides dormant entries unless showDormant is set. It is a
// pure projection: relative order among survivors is preserved.
func projectDormancy(apps []App, showDormant bool) []App {
	if showDormant {
		return apps
	}
	out := make([]App, 0, len(apps))
	for _, a := range apps {
		if !a.Dormant {
			out = append(out, a)
		}
	}
	return out
}
