package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lumecli/lume/internal/rank"
	"github.com/spf13/cobra"
)

var flagListDormant bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the full ranked application list",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListDormant, "dormant", false, "Include entries unused for more than 30 days")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	eng, _, closeEng, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEng()

	apps, fromCache, err := eng.LoadApps()
	if err != nil {
		return err
	}
	if !fromCache {
		printInfo("", "discovery cache rebuilt from a fresh scan")
	}

	shown := eng.SearchApps(apps, "", 0, flagListDormant)
	printApps(shown)
	fmt.Printf("\n  %d shown / %d discovered\n", len(shown), len(apps))
	return nil
}

func printApps(apps []rank.App) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, a := range apps {
		marker := ""
		if a.Dormant {
			marker = "(dormant)"
		}
		fmt.Fprintf(w, "  %s\t%d\t%s\t%s\n", a.Name, a.TotalScore, a.Exec, marker)
	}
	_ = w.Flush()
}
