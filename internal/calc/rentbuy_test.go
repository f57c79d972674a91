package calc

import (
	"errors"
	"math"
	"testing"

	"homeburn/internal/model"
)

// Tolerance for amortization figures; reference monthly payments from
// standard mortgage calculators round to the cent.
const paymentTolerance = 0.50

func TestRentVsBuy_ReferenceScenario(t *testing.T) {
	// 1500/mo rent vs a 200k home, 4% mortgage, 2% rent inflation, 40k down, 10 years
	res, err := RentVsBuy(model.RentVsBuyInput{
		MonthlyRent:     1500,
		HomePrice:       200000,
		MortgageRatePct: 4.0,
		Years:           10,
		InflationPct:    2.0,
		DownPayment:     40000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(res.MonthlyPayment-1619.92) > paymentTolerance {
		t.Errorf("MonthlyPayment = %.2f, want ~1619.92", res.MonthlyPayment)
	}
	if math.Abs(res.TotalHomeCost-234390.67) > 1.0 {
		t.Errorf("TotalHomeCost = %.2f, want ~234390.67", res.TotalHomeCost)
	}
	if math.Abs(res.TotalRentPaid-197094.98) > 1.0 {
		t.Errorf("TotalRentPaid = %.2f, want ~197094.98", res.TotalRentPaid)
	}
	// Annual buy cost exceeds rent throughout this horizon.
	if res.BreakEvenYear != nil {
		t.Errorf("BreakEvenYear = %d, want never", *res.BreakEvenYear)
	}
}

func TestRentVsBuy_StandardPayment(t *testing.T) {
	// 200k fully financed at 4% over 25 years: 1055.67/mo
	// (reference: moneysavingexpert.com mortgage calculator)
	res, err := RentVsBuy(model.RentVsBuyInput{
		MonthlyRent:     1000,
		HomePrice:       200000,
		MortgageRatePct: 4.0,
		Years:           25,
		DownPayment:     0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.MonthlyPayment-1055.67) > paymentTolerance {
		t.Errorf("MonthlyPayment = %.2f, want ~1055.67", res.MonthlyPayment)
	}
	if math.Abs(res.TotalHomeCost-res.MonthlyPayment*300) > paymentTolerance {
		t.Errorf("TotalHomeCost = %.2f, want payments*300 = %.2f", res.TotalHomeCost, res.MonthlyPayment*300)
	}
}

func TestRentVsBuy_FlatRentNoInflation(t *testing.T) {
	res, err := RentVsBuy(model.RentVsBuyInput{
		MonthlyRent:     1200,
		HomePrice:       150000,
		MortgageRatePct: 3.0,
		Years:           8,
		InflationPct:    0,
		DownPayment:     30000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 1200.0 * 12 * 8
	if math.Abs(res.TotalRentPaid-want) > 0.01 {
		t.Errorf("TotalRentPaid = %.2f, want %.2f", res.TotalRentPaid, want)
	}
}

func TestRentVsBuy_RentGrowsWithHorizonAndInflation(t *testing.T) {
	base := model.RentVsBuyInput{
		MonthlyRent:     1500,
		HomePrice:       200000,
		MortgageRatePct: 4.0,
		Years:           5,
		InflationPct:    2.0,
		DownPayment:     40000,
	}
	short, err := RentVsBuy(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	longer := base
	longer.Years = 6
	long, err := RentVsBuy(longer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if long.TotalRentPaid <= short.TotalRentPaid {
		t.Errorf("rent over 6y (%.2f) should exceed rent over 5y (%.2f)", long.TotalRentPaid, short.TotalRentPaid)
	}

	hotter := base
	hotter.InflationPct = 5.0
	hot, err := RentVsBuy(hotter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hot.TotalRentPaid <= short.TotalRentPaid {
		t.Errorf("rent at 5%% inflation (%.2f) should exceed rent at 2%% (%.2f)", hot.TotalRentPaid, short.TotalRentPaid)
	}
}

func TestRentVsBuy_BreakEvenFirstYear(t *testing.T) {
	// Expensive rent against a cheap, lightly financed home: buying
	// pulls even immediately. 10k down + ~9.5k payments < 24k rent.
	res, err := RentVsBuy(model.RentVsBuyInput{
		MonthlyRent:     2000,
		HomePrice:       100000,
		MortgageRatePct: 1.0,
		Years:           10,
		InflationPct:    0,
		DownPayment:     10000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BreakEvenYear == nil {
		t.Fatal("expected a break-even year, got never")
	}
	if *res.BreakEvenYear != 1 {
		t.Errorf("BreakEvenYear = %d, want 1", *res.BreakEvenYear)
	}
}

func TestRentVsBuy_BreakEvenIsSmallestYear(t *testing.T) {
	in := model.RentVsBuyInput{
		MonthlyRent:     1800,
		HomePrice:       150000,
		MortgageRatePct: 3.5,
		Years:           20,
		InflationPct:    3.0,
		DownPayment:     50000,
	}
	res, err := RentVsBuy(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BreakEvenYear == nil {
		t.Fatal("expected a break-even year within 20 years")
	}

	// Recompute the cumulative series and confirm the reported year is
	// the first crossing.
	inflation := 1 + in.InflationPct/100
	monthlyRate := in.MortgageRatePct / 100 / 12
	n := float64(in.Years * 12)
	payment := (in.HomePrice - in.DownPayment) * monthlyRate / (1 - math.Pow(1+monthlyRate, -n))

	cumRent := 0.0
	cumBuy := in.DownPayment
	for year := 1; year <= in.Years; year++ {
		cumRent += in.MonthlyRent * math.Pow(inflation, float64(year-1)) * 12
		cumBuy += payment * 12
		if cumBuy <= cumRent {
			if *res.BreakEvenYear != year {
				t.Errorf("BreakEvenYear = %d, want first crossing at %d", *res.BreakEvenYear, year)
			}
			return
		}
	}
	t.Errorf("BreakEvenYear = %d, but no crossing found in recomputation", *res.BreakEvenYear)
}

func TestRentVsBuy_ZeroMortgageRateUsesFlatPrice(t *testing.T) {
	res, err := RentVsBuy(model.RentVsBuyInput{
		MonthlyRent:  1000,
		HomePrice:    180000,
		Years:        10,
		InflationPct: 2.0,
		DownPayment:  180000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalHomeCost != 180000 {
		t.Errorf("TotalHomeCost = %.2f, want flat home price 180000", res.TotalHomeCost)
	}
	if res.MonthlyPayment != 0 {
		t.Errorf("MonthlyPayment = %.2f, want 0 for unfinanced purchase", res.MonthlyPayment)
	}
}

func TestRentVsBuy_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		in   model.RentVsBuyInput
	}{
		{"zero years", model.RentVsBuyInput{MonthlyRent: 1000, HomePrice: 100000, Years: 0}},
		{"negative years", model.RentVsBuyInput{MonthlyRent: 1000, HomePrice: 100000, Years: -3}},
		{"negative rent", model.RentVsBuyInput{MonthlyRent: -1, HomePrice: 100000, Years: 5}},
		{"negative rate", model.RentVsBuyInput{MonthlyRent: 1000, HomePrice: 100000, MortgageRatePct: -1, Years: 5}},
		{"down payment above price", model.RentVsBuyInput{MonthlyRent: 1000, HomePrice: 100000, MortgageRatePct: 4, DownPayment: 120000, Years: 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := RentVsBuy(tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
