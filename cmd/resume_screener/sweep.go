package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmatsumo/resume-screener/internal/config"
	"github.com/jmatsumo/resume-screener/internal/lifecycle"
	"github.com/jmatsumo/resume-screener/internal/metadata"
)

var sweepMaxAge time.Duration

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove stale unconfirmed temp uploads",
	Long:  `Delete temp resume uploads older than the retention window. The server runs the same sweep at startup; this command runs it on demand.`,
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().DurationVar(&sweepMaxAge, "max-age", 0, "Retention window (overrides TEMP_RETENTION)")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if sweepMaxAge != 0 {
		cfg.TempRetention = sweepMaxAge
	}
	if err := cfg.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to prepare storage directories: %w", err)
	}

	// The sweep never touches the model or saved documents.
	store := metadata.NewFileStore(cfg.MetadataPath())
	manager := lifecycle.New(cfg.TempDir(), cfg.SavedDir(), store, nil, nil)

	removed, err := manager.SweepTemp(cfg.TempRetention)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}
	fmt.Printf("Removed %d stale temp upload(s)\n", removed)
	return nil
}
