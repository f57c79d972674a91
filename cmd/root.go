package cmd

import (
	"os"

	"homeburn/internal/config"
	"homeburn/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagNoSave      bool
	flagHistoryPath string
)

var rootCmd = &cobra.Command{
	Use:   "homeburn",
	Short: "Real estate investment calculator",
	Long:  "Project rental ROI and compare renting vs buying, in your terminal.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoSave, "no-save", false, "Don't write scenarios to history")
	rootCmd.PersistentFlags().StringVar(&flagHistoryPath, "history", "", "History database path (default XDG data dir)")
}

// loadConfig loads the config file, falling back to defaults.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// historyPath resolves the history database location from flag or config.
func historyPath(cfg config.Config) string {
	if flagHistoryPath != "" {
		return flagHistoryPath
	}
	if cfg.General.HistoryPath != "" {
		return cfg.General.HistoryPath
	}
	return store.DefaultPath()
}

// openHistory opens the scenario history store, or returns nil when
// persistence is turned off.
func openHistory(cfg config.Config) (*store.Store, error) {
	if flagNoSave {
		return nil, nil
	}
	return store.Open(historyPath(cfg))
}

// autosave reports whether computed scenarios should be persisted.
func autosave(cfg config.Config) bool {
	return cfg.General.Autosave && !flagNoSave
}
