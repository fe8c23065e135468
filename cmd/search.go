package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagSearchLimit   int
	flagSearchDormant bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search applications by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchLimit, "limit", 0, "Maximum number of results (0 = configured default)")
	searchCmd.Flags().BoolVar(&flagSearchDormant, "dormant", false, "Include entries unused for more than 30 days")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	eng, cfg, closeEng, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEng()

	apps, _, err := eng.LoadApps()
	if err != nil {
		return err
	}

	limit := flagSearchLimit
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	results := eng.SearchApps(apps, query, limit, flagSearchDormant)
	if len(results) == 0 {
		printMiss("", "no matching applications")
		return nil
	}
	printApps(results)
	return nil
}
