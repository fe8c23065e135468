package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/lumecli/lume/internal/config"
)

// acquireLock obtains a per-user lock for a one-shot maintenance operation
// (rebuild, seed) so concurrent invocations cannot interleave writes.
func acquireLock(name string, timeout time.Duration) (func(), error) {
	dir, err := config.CacheDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create lock directory: %w", err)
	}
	lockPath := filepath.Join(dir, name+".lock")

	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire %s lock: %w", name, err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("another %s is in progress (lock: %s)", name, lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
