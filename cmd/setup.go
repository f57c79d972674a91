package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"homeburn/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to homeburn!")
	fmt.Println()

	// 1. Default projection horizon
	fmt.Println("  1. Default projection horizon")
	fmt.Println("     (1) 5 years")
	fmt.Println("     (2) 10 years [default]")
	fmt.Println("     (3) 20 years")
	fmt.Println("     (4) 30 years")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.General.DefaultYears = 5
	case "3":
		cfg.General.DefaultYears = 20
	case "4":
		cfg.General.DefaultYears = 30
	default:
		cfg.General.DefaultYears = 10
	}
	fmt.Println()

	// 2. Theme
	fmt.Println("  2. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Tokyo Night")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "tokyo-night"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}
	fmt.Println()

	// 3. Autosave
	fmt.Println("  3. Save calculations to history automatically? [Y/n]")
	fmt.Print("     > ")
	saveChoice, _ := reader.ReadString('\n')
	saveChoice = strings.ToLower(strings.TrimSpace(saveChoice))
	cfg.General.Autosave = saveChoice != "n" && saveChoice != "no"

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `homeburn setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
