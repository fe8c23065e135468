package rank

import (
	"runtime"

	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"
)

// matchAll fuzzy-scores query against every candidate, fanning the work out
// across a shard per CPU. Scoring is side-effect free and order-independent;
// workers return their shards unsorted and the shards are concatenated in a
// fixed order, so the result is deterministic before any final sort.
// Non-matching candidates are absent from the result.
func matchAll(query string, candidates []string) []fuzzy.Match {
	n := len(candidates)
	if n == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	shardSize := (n + workers - 1) / workers

	shards := make([][]fuzzy.Match, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * shardSize
		hi := lo + shardSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			matches := fuzzy.FindNoSort(query, candidates[lo:hi])
			for i := range matches {
				matches[i].Index += lo
			}
			shards[w] = matches
			return nil
		})
	}
	// Workers never fail; errgroup is used purely for the fan-out/join.
	_ = g.Wait()

	var out []fuzzy.Match
	for _, s := range shards {
		out = append(out, s...)
	}
	return out
}
