package cmd

import (
	"fmt"

	"homeburn/internal/calc"
	"homeburn/internal/cli"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Headline numbers for the configured default scenarios",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Println()
	fmt.Println(cli.RenderTitle("HOMEBURN  Investment Overview"))
	fmt.Println()

	roiIn := cfg.DefaultROIInput()
	roiRes, err := calc.ROI(roiIn)
	if err != nil {
		return fmt.Errorf("configured ROI defaults: %w", err)
	}

	rbIn := cfg.DefaultRentVsBuyInput()
	rbRes, err := calc.RentVsBuy(rbIn)
	if err != nil {
		return fmt.Errorf("configured rent-vs-buy defaults: %w", err)
	}

	rows := [][]string{
		{"ROI", cli.FormatPercent(roiRes.ROIPct)},
		{"Cash-on-cash return", cli.FormatPercent(roiRes.CashOnCashPct)},
		{"Break-even", cli.FormatYears(roiRes.BreakEvenYears)},
		{"---"},
		{"Total rent paid", cli.FormatCurrency(rbRes.TotalRentPaid)},
		{"Total cost of buying", cli.FormatCurrency(rbRes.TotalHomeCost)},
		{"Monthly payment", cli.FormatCurrency(rbRes.MonthlyPayment)},
		{"Rent-vs-buy break-even", cli.FormatBreakEvenYear(rbRes.BreakEvenYear)},
	}
	fmt.Println(cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Defaults · %s home, %d years", cli.FormatCompactCurrency(roiIn.PurchasePrice), roiIn.Years),
		Rows:  rows,
	}))

	fmt.Println("  Run `homeburn roi --help` or `homeburn rent-vs-buy --help` to customize,")
	fmt.Println("  or `homeburn tui` for the interactive dashboard.")
	fmt.Println()

	return nil
}
