package cmd

import (
	"fmt"
	"time"

	"github.com/lumecli/lume/internal/rank"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <name>",
	Short: "Show the stored preference record and derived score for one entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	name := args[0]

	eng, _, closeEng, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEng()

	apps, _, err := eng.LoadApps()
	if err != nil {
		return err
	}
	var found *rank.App
	for i := range apps {
		if apps[i].Name == name {
			found = &apps[i]
			break
		}
	}

	rec, hasRec, err := eng.Store().Lookup(name)
	if err != nil {
		return fmt.Errorf("cannot read preference store: %w", err)
	}
	if found == nil && !hasRec {
		printMiss(name, "not discovered and no stored record")
		return nil
	}

	printSection(name)
	if found != nil {
		printOK("exec", found.Exec)
		if found.CLIOnly {
			printInfo("kind", "executable (terminal)")
		} else {
			printInfo("kind", "desktop entry")
		}
	} else {
		printWarn("exec", "not present in the current enumeration")
	}

	if hasRec {
		printInfo("base score", fmt.Sprintf("%d", rec.Score))
		printInfo("usage", fmt.Sprintf("%d launches", rec.Usage))
		if rec.LastUsed > 0 {
			printInfo("last used", time.Unix(rec.LastUsed, 0).Format(time.RFC3339))
		} else {
			printMiss("last used", "never")
		}
		printInfo("terminal wrapper", fmt.Sprintf("%t", rec.IsTUI))
	} else {
		printMiss("record", "no stored preferences (defaults apply)")
	}

	printInfo("total score", fmt.Sprintf("%d", rank.TotalScore(rec)))
	if rank.IsDormant(rec, time.Now().Unix()) {
		printWarn("dormancy", "dormant (unused for over 30 days)")
	} else {
		printOK("dormancy", "active")
	}
	return nil
}
