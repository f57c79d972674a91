package cmd

import (
	"fmt"
	"math"
	"os"

	"homeburn/internal/calc"
	"homeburn/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagROIPrice        float64
	flagROIDown         float64
	flagROIRent         float64
	flagROIExpenses     float64
	flagROIAppreciation float64
	flagROIYears        int
)

var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Project return on investment for a rental property",
	RunE:  runROI,
}

func init() {
	rootCmd.AddCommand(roiCmd)

	d := loadConfig()
	roiCmd.Flags().Float64Var(&flagROIPrice, "price", d.ROI.PurchasePrice, "Purchase price")
	roiCmd.Flags().Float64Var(&flagROIDown, "down", d.ROI.DownPayment, "Down payment")
	roiCmd.Flags().Float64Var(&flagROIRent, "rent", d.ROI.MonthlyRent, "Expected monthly rent")
	roiCmd.Flags().Float64Var(&flagROIExpenses, "expenses", d.ROI.AnnualExpenses, "Annual expenses (tax, insurance, maintenance)")
	roiCmd.Flags().Float64Var(&flagROIAppreciation, "appreciation", d.ROI.AppreciationPct, "Annual appreciation rate (%)")
	roiCmd.Flags().IntVarP(&flagROIYears, "years", "y", d.General.DefaultYears, "Projection horizon in years")
}

func runROI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	in := cfg.DefaultROIInput()
	in.PurchasePrice = flagROIPrice
	in.DownPayment = flagROIDown
	in.MonthlyRent = flagROIRent
	in.AnnualExpenses = flagROIExpenses
	in.AppreciationPct = flagROIAppreciation
	in.Years = flagROIYears

	res, err := calc.ROI(in)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ROI PROJECTION  %d years", in.Years)))
	fmt.Println()

	rows := [][]string{
		{"Purchase price", cli.FormatCurrency(in.PurchasePrice)},
		{"Down payment", cli.FormatCurrency(in.DownPayment)},
		{"Monthly rent", cli.FormatCurrency(in.MonthlyRent)},
		{"Annual expenses", cli.FormatCurrency(in.AnnualExpenses)},
		{"Appreciation", fmt.Sprintf("%.2f%%", in.AppreciationPct)},
		{"---"},
		{"ROI", cli.FormatPercent(res.ROIPct)},
		{"Cash-on-cash return", cli.FormatPercent(res.CashOnCashPct)},
		{"Total cash flow", cli.FormatCurrency(res.TotalCashFlow)},
		{"Final value", cli.FormatCurrency(res.PropertyValues[len(res.PropertyValues)-1])},
		{"Final equity", cli.FormatCurrency(res.Equities[len(res.Equities)-1])},
		{"Break-even", cli.FormatYears(res.BreakEvenYears)},
	}
	fmt.Println(cli.RenderTable(cli.Table{Rows: rows}))

	// Year-by-year value bars, thinned to at most ~10 rows
	step := 1
	if in.Years > 10 {
		step = (in.Years + 9) / 10
	}
	maxVal := res.PropertyValues[len(res.PropertyValues)-1]
	fmt.Println("  Property value by year")
	for i := 0; i <= in.Years; i += step {
		fmt.Printf("  %4d  %s %s\n", i,
			cli.RenderHorizontalBar(res.PropertyValues[i], maxVal, 30),
			cli.FormatCompactCurrency(res.PropertyValues[i]))
	}
	fmt.Println()
	fmt.Printf("  Equity  %s\n", cli.RenderSparkline(res.Equities))
	if math.IsInf(res.BreakEvenYears, 1) {
		fmt.Println("\n  Cash flow alone never repays the down payment.")
	}
	fmt.Println()

	if autosave(cfg) {
		history, err := openHistory(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  warning: history unavailable: %s\n", err)
			return nil
		}
		defer history.Close()
		if _, err := history.SaveROI(in, res); err != nil {
			fmt.Fprintf(os.Stderr, "  warning: could not save scenario: %s\n", err)
		}
	}

	return nil
}
