package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ktausif7709-art/Time-tracker/internal/config"
	"github.com/ktausif7709-art/Time-tracker/internal/storage"
	"github.com/ktausif7709-art/Time-tracker/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "chronotrack",
	Short: "ChronoTrack – a single-user CLI time tracker",
	Long: `chronotrack logs hours against projects and tasks, shows aggregate
statistics, and can request an AI-generated summary of your activity.
All data is stored locally under ~/.chronotrack/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(timerCmd)
}

// loadConfig reads the config, falling back to defaults with a warning.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return cfg
}

// openTracker opens the configured storage backend and loads both
// collections. The caller must Close the returned store.
func openTracker() (*tracker.Tracker, *storage.Store, error) {
	cfg := loadConfig()
	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}
	return tracker.New(store), store, nil
}
