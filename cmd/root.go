package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumecli/lume/internal/cache"
	"github.com/lumecli/lume/internal/config"
	"github.com/lumecli/lume/internal/engine"
	"github.com/lumecli/lume/internal/prefs"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "lume",
	Short:        "Usage-aware application and file launcher",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Lume discovers installed applications and executables, ranks them by
fuzzy relevance blended with your launch history, and produces launch
intents for the selected entry.`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openEngine loads configuration and opens the preference store. A store
// that cannot be opened is fatal: ranking has no memory without it.
func openEngine() (*engine.Engine, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cannot load config: %w", err)
	}

	dataDir, err := config.DataDir()
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := prefs.Open(filepath.Join(dataDir, prefs.FileName))
	if err != nil {
		return nil, nil, nil, err
	}

	cachePath, err := cacheFilePath()
	if err != nil {
		store.Close()
		return nil, nil, nil, err
	}

	eng := engine.New(cfg, store, cachePath)
	return eng, cfg, func() { _ = store.Close() }, nil
}

func cacheFilePath() (string, error) {
	dir, err := config.CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, cache.FileName), nil
}
