package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/lumecli/lume/internal/seed"
	"github.com/spf13/cobra"
)

var flagSeedScore int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Assign a base score to every package-owned binary",
	Long: `Seed runs the configured listing command (seed_command) and assigns a
flat base score to every binary it reports. Usage counts and TUI flags of
existing records are preserved. Re-running is idempotent.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&flagSeedScore, "score", 0, "Base score to assign (0 = configured default)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	release, err := acquireLock("seed", 10*time.Second)
	if err != nil {
		return err
	}
	defer release()

	eng, cfg, closeEng, err := openEngine()
	if err != nil {
		return err
	}
	defer closeEng()

	score := flagSeedScore
	if score <= 0 {
		score = cfg.SeedScore
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	printSection("Seed")
	count, err := seed.Apply(ctx, eng.Store(), seed.CommandSource{Command: cfg.SeedCommand}, score)
	if err != nil {
		return fmt.Errorf("cannot seed base scores: %w", err)
	}
	printOK("", fmt.Sprintf("seeded %d binaries with base score %d", count, score))
	return nil
}
