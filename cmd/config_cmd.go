// Package cmd implements the homeburn CLI commands.
package cmd

import (
	"fmt"

	"homeburn/internal/cli"
	"homeburn/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default years: %d\n", cfg.General.DefaultYears)
	fmt.Printf("    Autosave:      %v\n", cfg.General.Autosave)
	fmt.Printf("    History db:    %s\n", historyPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [ROI defaults]")
	fmt.Printf("    Purchase price:  %s\n", cli.FormatCurrency(cfg.ROI.PurchasePrice))
	fmt.Printf("    Down payment:    %s\n", cli.FormatCurrency(cfg.ROI.DownPayment))
	fmt.Printf("    Monthly rent:    %s\n", cli.FormatCurrency(cfg.ROI.MonthlyRent))
	fmt.Printf("    Annual expenses: %s\n", cli.FormatCurrency(cfg.ROI.AnnualExpenses))
	fmt.Printf("    Appreciation:    %.2f%%\n", cfg.ROI.AppreciationPct)
	fmt.Println()

	fmt.Println("  [Rent vs Buy defaults]")
	fmt.Printf("    Monthly rent:   %s\n", cli.FormatCurrency(cfg.RentVsBuy.MonthlyRent))
	fmt.Printf("    Home price:     %s\n", cli.FormatCurrency(cfg.RentVsBuy.HomePrice))
	fmt.Printf("    Mortgage rate:  %.2f%%\n", cfg.RentVsBuy.MortgageRatePct)
	fmt.Printf("    Rent inflation: %.2f%%\n", cfg.RentVsBuy.InflationPct)
	fmt.Printf("    Down payment:   %s\n", cli.FormatCurrency(cfg.RentVsBuy.DownPayment))
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Listen address: %s\n", cfg.Server.ListenAddr)

	return nil
}
