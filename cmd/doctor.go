package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumecli/lume/internal/cache"
	"github.com/lumecli/lume/internal/config"
	"github.com/lumecli/lume/internal/prefs"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, cache, and preference store health",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	printSection("Doctor")

	cfg, err := config.Load()
	if err != nil {
		printErr("config", err.Error())
		return fmt.Errorf("configuration is unusable")
	}
	cfgPath, _ := config.ConfigPath()
	if _, err := os.Stat(cfgPath); err == nil {
		printOK("config", cfgPath)
	} else {
		printInfo("config", "no file, using defaults")
	}

	for _, dir := range cfg.DesktopDirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			printOK("desktop dir", dir)
		} else {
			printSkip("desktop dir", dir+" (absent)")
		}
	}

	if cfg.FileRoot != "" {
		if info, err := os.Stat(cfg.FileRoot); err == nil && info.IsDir() {
			printOK("file root", cfg.FileRoot)
		} else {
			printWarn("file root", cfg.FileRoot+" (absent, file search will return nothing)")
		}
	}

	cachePath, err := cacheFilePath()
	if err != nil {
		printErr("cache", err.Error())
	} else if entries, err := cache.Load(cachePath); err == nil {
		printOK("cache", fmt.Sprintf("%s (%d entries)", cachePath, len(entries)))
	} else {
		printInfo("cache", "absent or unreadable, next load will re-enumerate")
	}

	dataDir, err := config.DataDir()
	if err != nil {
		printErr("store", err.Error())
		return fmt.Errorf("preference store is unreachable")
	}
	storePath := filepath.Join(dataDir, prefs.FileName)
	store, err := prefs.Open(storePath)
	if err != nil {
		printErr("store", err.Error())
		return fmt.Errorf("preference store is unusable")
	}
	defer store.Close()
	if n, err := store.Count(); err == nil {
		printOK("store", fmt.Sprintf("%s (%d records)", storePath, n))
	} else {
		printErr("store", err.Error())
	}

	reportDiskFree(dataDir)
	return nil
}
