package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagFilesLimit int

var filesCmd = &cobra.Command{
	Use:   "files <query>",
	Short: "Fuzzy-search files below the configured root",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFiles,
}

func init() {
	filesCmd.Flags().IntVar(&flagFilesLimit, "limit", 0, "Maximum number of results (0 = configured default)")
	rootCmd.AddCommand(filesCmd)
}

func runFiles(_ *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	eng, _, closeEng, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEng()

	paths := eng.SearchFiles(query, flagFilesLimit)
	if len(paths) == 0 {
		printMiss("", "no matching files")
		return nil
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
