// Package rank composes usage-weighted scores and runs the two fuzzy
// ranking pipelines: the bounded in-memory app list and the streaming
// filesystem walk.
package rank

import (
	"sort"

	"github.com/lumecli/lume/internal/prefs"
	"github.com/lumecli/lume/internal/scan"
)

// usageWeight converts launch counts into score points. The exact constant
// is load-bearing for ranking behavior across releases.
const usageWeight = 10

// dormancySeconds is the rolling window after which an unused entity is
// considered dormant: 30 days, strict greater-than at the boundary.
const dormancySeconds = 30 * 24 * 60 * 60

// App is the ranking-ready view of one entity: stable identity plus derived
// fields. Derived fields are recomputed on every enrichment and never
// persisted anywhere.
type App struct {
	scan.Entry
	TotalScore int
	Dormant    bool
}

// TotalScore composes the derived score from a preference record.
func TotalScore(r prefs.Record) int {
	return r.Score + r.Usage*usageWeight
}

// IsDormant reports whether an entity last used at r.LastUsed is outside the
// dormancy window at time now. Never-used entities (LastUsed == 0) are not
// dormant.
func IsDormant(r prefs.Record, now int64) bool {
	return r.LastUsed > 0 && now-r.LastUsed > dormancySeconds
}

// Enrich merges preference records into identity entries and returns the
// ranking-ready list sorted by total score descending, name ascending.
// Missing records contribute the zero defaults.
func Enrich(entries []scan.Entry, records map[string]prefs.Record, now int64) []App {
	apps := make([]App, len(entries))
	for i, e := range entries {
		r := records[e.Name]
		apps[i] = App{
			Entry:      e,
			TotalScore: TotalScore(r),
			Dormant:    IsDormant(r, now),
		}
	}
	SortApps(apps)
	return apps
}

// SortApps orders apps by total score descending, ties broken by ascending
// name (case-sensitive). The sort is stable, so the final order is
// deterministic for any fixed input.
func SortApps(apps []App) {
	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].TotalScore != apps[j].TotalScore {
			return apps[i].TotalScore > apps[j].TotalScore
		}
		return apps[i].Name < apps[j].Name
	})
}
