package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Re-enumerate all sources and overwrite the discovery cache",
	Args:  cobra.NoArgs,
	RunE:  runRebuild,
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

func runRebuild(_ *cobra.Command, _ []string) error {
	release, err := acquireLock("rebuild", 10*time.Second)
	if err != nil {
		return err
	}
	defer release()

	eng, _, closeEng, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEng()

	apps, err := eng.RebuildApps()
	if err != nil {
		return fmt.Errorf("cannot rebuild discovery cache: %w", err)
	}
	printOK("", fmt.Sprintf("discovered %d applications", len(apps)))
	return nil
}
