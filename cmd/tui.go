package cmd

import (
	"fmt"
	"os"

	"homeburn/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	// Force TrueColor profile so theme styling produces ANSI codes
	// even when the terminal is detected conservatively.
	lipgloss.SetColorProfile(termenv.TrueColor)

	history, err := openHistory(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  warning: history unavailable: %s\n", err)
		history = nil
	}
	if history != nil {
		defer history.Close()
	}

	app := tui.NewApp(cfg, history)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
