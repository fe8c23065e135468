// Package engine ties discovery, caching, preferences, and ranking together
// behind the operations the command layer consumes.
package engine

import (
	"fmt"
	"time"

	"github.com/lumecli/lume/internal/cache"
	"github.com/lumecli/lume/internal/config"
	"github.com/lumecli/lume/internal/launch"
	"github.com/lumecli/lume/internal/prefs"
	"github.com/lumecli/lume/internal/rank"
	"github.com/lumecli/lume/internal/scan"
)

// Engine owns the discovery cache path, the preference store, and the
// configured sources. The store is required: there is no degraded mode
// without usage history.
type Engine struct {
	cfg       *config.Config
	store     *prefs.Store
	cachePath string
	now       func() int64
}

// New wires an engine over an open preference store.
func New(cfg *config.Config, store *prefs.Store, cachePath string) *Engine {
	return &Engine{
		cfg:       cfg,
		store:     store,
		cachePath: cachePath,
		now:       func() int64 { return time.Now().Unix() },
	}
}

// LoadApps returns the enriched, sorted app list. Identity comes from the
// discovery cache when it loads; otherwise a full enumeration runs and the
// cache is refilled best-effort (a failed write never fails the load).
// Derived fields are always recomputed from the store, never trusted from
// any earlier snapshot.
func (e *Engine) LoadApps() (apps []rank.App, fromCache bool, err error) {
	entries, cacheErr := cache.Load(e.cachePath)
	fromCache = cacheErr == nil
	if !fromCache {
		entries = scan.New(e.cfg).Scan()
		_ = cache.Save(e.cachePath, entries)
	}
	apps, err = e.enrich(entries)
	return apps, fromCache, err
}

// RebuildApps always re-enumerates and overwrites the cache, regardless of
// its current state.
func (e *Engine) RebuildApps() ([]rank.App, error) {
	entries := scan.New(e.cfg).Scan()
	if err := cache.Save(e.cachePath, entries); err != nil {
		return nil, err
	}
	return e.enrich(entries)
}

// enrich merges preference data into identity entries with one bulk read.
func (e *Engine) enrich(entries []scan.Entry) ([]rank.App, error) {
	records, err := e.store.LookupAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read preference store: %w", err)
	}
	return rank.Enrich(entries, records, e.now()), nil
}

// SearchApps ranks the loaded list against query.
func (e *Engine) SearchApps(apps []rank.App, query string, limit int, showDormant bool) []rank.App {
	return rank.SearchApps(apps, query, limit, showDormant)
}

// SearchFiles runs a fresh bounded walk for query.
func (e *Engine) SearchFiles(query string, limit int) []string {
	if limit <= 0 {
		limit = e.cfg.ResultLimit
	}
	return rank.NewFileSearcher(e.cfg.FileRoot, e.cfg.FileDepth).Search(query, limit)
}

// RecordLaunch bumps usage for name. A failed upsert is a silent no-op:
// launching keeps working on stale ranking data.
func (e *Engine) RecordLaunch(name string) {
	_ = e.store.RecordLaunch(name)
}

// SetTUI persists the terminal-wrapper flag for name.
func (e *Engine) SetTUI(name string, tui bool) error {
	return e.store.SetTUI(name, tui)
}

// Intent resolves the launch intent for an entity, consulting the stored
// preference for the terminal flag.
func (e *Engine) Intent(entry scan.Entry) (launch.Intent, error) {
	rec, ok, err := e.store.Lookup(entry.Name)
	if err != nil {
		// Treat a failed read like an absent row; the entity's own flag
		// still produces a usable intent.
		rec, ok = prefs.Record{}, false
	}
	return launch.ForApp(entry, rec, ok)
}

// Store exposes the preference store to maintenance commands.
func (e *Engine) Store() *prefs.Store {
	return e.store
}
