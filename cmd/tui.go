package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <name> on|off",
	Short: "Mark an application as needing a terminal wrapper",
	Args:  cobra.ExactArgs(2),
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, args []string) error {
	name := args[0]
	var flag bool
	switch args[1] {
	case "on":
		flag = true
	case "off":
		flag = false
	default:
		return fmt.Errorf("expected 'on' or 'off', got %q", args[1])
	}

	eng, _, closeEng, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEng()

	if err := eng.SetTUI(name, flag); err != nil {
		return fmt.Errorf("cannot update TUI flag for %q: %w", name, err)
	}
	printOK(name, fmt.Sprintf("terminal wrapper %s", args[1]))
	return nil
}
