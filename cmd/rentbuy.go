package cmd

import (
	"fmt"
	"os"

	"homeburn/internal/calc"
	"homeburn/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagRBRent      float64
	flagRBPrice     float64
	flagRBRate      float64
	flagRBInflation float64
	flagRBDown      float64
	flagRBYears     int
)

var rentBuyCmd = &cobra.Command{
	Use:   "rent-vs-buy",
	Short: "Compare cumulative cost of renting against buying",
	RunE:  runRentBuy,
}

func init() {
	rootCmd.AddCommand(rentBuyCmd)

	d := loadConfig()
	rentBuyCmd.Flags().Float64Var(&flagRBRent, "rent", d.RentVsBuy.MonthlyRent, "Monthly rent")
	rentBuyCmd.Flags().Float64Var(&flagRBPrice, "price", d.RentVsBuy.HomePrice, "Home price")
	rentBuyCmd.Flags().Float64Var(&flagRBRate, "rate", d.RentVsBuy.MortgageRatePct, "Mortgage rate (%)")
	rentBuyCmd.Flags().Float64Var(&flagRBInflation, "inflation", d.RentVsBuy.InflationPct, "Annual rent inflation (%)")
	rentBuyCmd.Flags().Float64Var(&flagRBDown, "down", d.RentVsBuy.DownPayment, "Down payment")
	rentBuyCmd.Flags().IntVarP(&flagRBYears, "years", "y", d.General.DefaultYears, "Comparison horizon in years")
}

func runRentBuy(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	in := cfg.DefaultRentVsBuyInput()
	in.MonthlyRent = flagRBRent
	in.HomePrice = flagRBPrice
	in.MortgageRatePct = flagRBRate
	in.InflationPct = flagRBInflation
	in.DownPayment = flagRBDown
	in.Years = flagRBYears

	res, err := calc.RentVsBuy(in)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RENT VS BUY  %d years", in.Years)))
	fmt.Println()

	rows := [][]string{
		{"Monthly rent", cli.FormatCurrency(in.MonthlyRent)},
		{"Home price", cli.FormatCurrency(in.HomePrice)},
		{"Mortgage rate", fmt.Sprintf("%.2f%%", in.MortgageRatePct)},
		{"Rent inflation", fmt.Sprintf("%.2f%%", in.InflationPct)},
		{"Down payment", cli.FormatCurrency(in.DownPayment)},
		{"---"},
		{"Total rent paid", cli.FormatCurrency(res.TotalRentPaid)},
		{"Total cost of buying", cli.FormatCurrency(res.TotalHomeCost)},
		{"Monthly payment", cli.FormatCurrency(res.MonthlyPayment)},
		{"Break-even", cli.FormatBreakEvenYear(res.BreakEvenYear)},
	}
	fmt.Println(cli.RenderTable(cli.Table{Rows: rows}))

	fmt.Println("  " + cli.RenderDistribution("Rent", res.TotalRentPaid, "Buy", res.TotalHomeCost, 50))
	if res.BreakEvenYear != nil {
		fmt.Printf("\n  Buying becomes cheaper than renting in year %d.\n", *res.BreakEvenYear)
	} else {
		fmt.Println("\n  Renting stays cheaper for the whole horizon.")
	}
	fmt.Println()

	if autosave(cfg) {
		history, err := openHistory(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  warning: history unavailable: %s\n", err)
			return nil
		}
		defer history.Close()
		if _, err := history.SaveRentVsBuy(in, res); err != nil {
			fmt.Fprintf(os.Stderr, "  warning: could not save scenario: %s\n", err)
		}
	}

	return nil
}
