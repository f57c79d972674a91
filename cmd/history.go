package cmd

import (
	"fmt"
	"strconv"

	"homeburn/internal/cli"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently saved scenarios",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "l", 10, "Max scenarios per calculator")
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	history, err := openHistory(cfg)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	if history == nil {
		fmt.Println("\n  History is disabled (--no-save).")
		return nil
	}
	defer history.Close()

	roi, err := history.RecentROI(flagHistoryLimit)
	if err != nil {
		return err
	}
	rentBuy, err := history.RecentRentVsBuy(flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SCENARIO HISTORY"))
	fmt.Println()

	if len(roi) == 0 && len(rentBuy) == 0 {
		fmt.Println("  Nothing saved yet. Run `homeburn roi` or `homeburn rent-vs-buy` first.")
		fmt.Println()
		return nil
	}

	if len(roi) > 0 {
		rows := make([][]string, 0, len(roi))
		for _, sc := range roi {
			rows = append(rows, []string{
				sc.CreatedAt.Local().Format("Jan 2 15:04"),
				cli.FormatCompactCurrency(sc.Input.PurchasePrice),
				cli.FormatCompactCurrency(sc.Input.DownPayment),
				strconv.Itoa(sc.Input.Years),
				cli.FormatPercent(sc.ROIPct),
				cli.FormatYears(sc.BreakEvenYears),
			})
		}
		fmt.Println(cli.RenderTable(cli.Table{
			Title:   "ROI",
			Headers: []string{"When", "Price", "Down", "Years", "ROI", "Break-even"},
			Rows:    rows,
		}))
	}

	if len(rentBuy) > 0 {
		rows := make([][]string, 0, len(rentBuy))
		for _, sc := range rentBuy {
			rows = append(rows, []string{
				sc.CreatedAt.Local().Format("Jan 2 15:04"),
				cli.FormatCurrency(sc.Input.MonthlyRent),
				cli.FormatCompactCurrency(sc.Input.HomePrice),
				strconv.Itoa(sc.Input.Years),
				cli.FormatCompactCurrency(sc.TotalRentPaid),
				cli.FormatCompactCurrency(sc.TotalHomeCost),
				cli.FormatBreakEvenYear(sc.BreakEvenYear),
			})
		}
		fmt.Println(cli.RenderTable(cli.Table{
			Title:   "Rent vs Buy",
			Headers: []string{"When", "Rent", "Price", "Years", "Total rent", "Total buy", "Break-even"},
			Rows:    rows,
		}))
	}

	return nil
}
