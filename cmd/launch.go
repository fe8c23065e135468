package cmd

import (
	"fmt"
	"strings"

	"github.com/lumecli/lume/internal/launch"
	"github.com/spf13/cobra"
)

var (
	flagLaunchPrint bool
	flagLaunchFile  bool
)

var launchCmd = &cobra.Command{
	Use:   "launch <name|path>",
	Short: "Launch an application (or open a file) and record the usage",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLaunch,
}

func init() {
	launchCmd.Flags().BoolVar(&flagLaunchPrint, "print", false, "Print the launch command instead of spawning it")
	launchCmd.Flags().BoolVar(&flagLaunchFile, "file", false, "Treat the argument as a file path and open it in the editor")
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(_ *cobra.Command, args []string) error {
	target := strings.Join(args, " ")

	eng, cfg, closeEng, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEng()

	var intent launch.Intent
	if flagLaunchFile {
		intent = launch.ForFile(target, cfg.Editor)
	} else {
		apps, _, err := eng.LoadApps()
		if err != nil {
			return err
		}
		found := false
		for _, a := range apps {
			if a.Name == target {
				intent, err = eng.Intent(a.Entry)
				if err != nil {
					return err
				}
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no application named %q, try 'lume search %s'", target, target)
		}
		eng.RecordLaunch(target)
	}

	argv := intent.Argv(cfg.Terminal)
	if flagLaunchPrint {
		fmt.Println(strings.Join(argv, " "))
		return nil
	}
	if err := spawnDetached(argv); err != nil {
		return fmt.Errorf("cannot launch %q: %w", target, err)
	}
	printOK("", fmt.Sprintf("launched %s", target))
	return nil
}
