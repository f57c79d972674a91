package calc

import (
	"errors"
	"math"
	"testing"

	"homeburn/internal/model"
)

const roiTolerance = 0.01

func assertClose(t *testing.T, want, got float64, what string) {
	t.Helper()
	if math.Abs(want-got) > roiTolerance {
		t.Errorf("%s = %.4f, want %.4f", what, got, want)
	}
}

func TestROI_ReferenceScenario(t *testing.T) {
	// 200k purchase, 40k down, 1500/mo rent, 5k expenses, 3% appreciation, 10 years
	res, err := ROI(model.ROIInput{
		PurchasePrice:   200000,
		DownPayment:     40000,
		MonthlyRent:     1500,
		AnnualExpenses:  5000,
		AppreciationPct: 3.0,
		Years:           10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertClose(t, 130000, res.TotalCashFlow, "TotalCashFlow")
	assertClose(t, 268783.28, res.PropertyValues[10], "PropertyValues[10]")
	assertClose(t, 108783.28, res.Equities[10], "Equities[10]")
	assertClose(t, 496.96, res.ROIPct, "ROIPct")
	assertClose(t, 32.5, res.CashOnCashPct, "CashOnCashPct")
	assertClose(t, 3.0769, res.BreakEvenYears, "BreakEvenYears")
}

func TestROI_SeriesShapeAndStart(t *testing.T) {
	in := model.ROIInput{
		PurchasePrice:   150000,
		DownPayment:     30000,
		MonthlyRent:     1200,
		AnnualExpenses:  4000,
		AppreciationPct: 2.5,
		Years:           7,
	}
	res, err := ROI(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.PropertyValues) != in.Years+1 {
		t.Fatalf("len(PropertyValues) = %d, want %d", len(res.PropertyValues), in.Years+1)
	}
	if len(res.Equities) != in.Years+1 {
		t.Fatalf("len(Equities) = %d, want %d", len(res.Equities), in.Years+1)
	}
	if res.PropertyValues[0] != in.PurchasePrice {
		t.Errorf("PropertyValues[0] = %.2f, want purchase price %.2f", res.PropertyValues[0], in.PurchasePrice)
	}
	if res.Equities[0] != in.DownPayment {
		t.Errorf("Equities[0] = %.2f, want down payment %.2f", res.Equities[0], in.DownPayment)
	}
}

func TestROI_AppreciationMonotonicity(t *testing.T) {
	base := model.ROIInput{
		PurchasePrice:  200000,
		DownPayment:    40000,
		MonthlyRent:    1500,
		AnnualExpenses: 5000,
		Years:          15,
	}

	base.AppreciationPct = 3.0
	res, err := ROI(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(res.PropertyValues); i++ {
		if res.PropertyValues[i] <= res.PropertyValues[i-1] {
			t.Fatalf("PropertyValues not strictly increasing at year %d: %.2f -> %.2f",
				i, res.PropertyValues[i-1], res.PropertyValues[i])
		}
	}

	base.AppreciationPct = 0
	flat, err := ROI(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range flat.PropertyValues {
		if v != base.PurchasePrice {
			t.Fatalf("flat PropertyValues[%d] = %.2f, want %.2f", i, v, base.PurchasePrice)
		}
	}
}

func TestROI_NegativeCashFlowNeverBreaksEven(t *testing.T) {
	res, err := ROI(model.ROIInput{
		PurchasePrice:   100000,
		DownPayment:     20000,
		MonthlyRent:     100,
		AnnualExpenses:  5000, // annual cash flow = -3800
		AppreciationPct: 2.0,
		Years:           5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(res.BreakEvenYears, 1) {
		t.Errorf("BreakEvenYears = %v, want +Inf", res.BreakEvenYears)
	}
}

func TestROI_ZeroDownPaymentRejected(t *testing.T) {
	_, err := ROI(model.ROIInput{
		PurchasePrice: 200000,
		DownPayment:   0,
		MonthlyRent:   1500,
		Years:         10,
	})
	if err == nil {
		t.Fatal("expected error for zero down payment")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestROI_NegativeInputsRejected(t *testing.T) {
	tests := []struct {
		name string
		in   model.ROIInput
	}{
		{"negative price", model.ROIInput{PurchasePrice: -1, DownPayment: 1000, Years: 1}},
		{"negative rent", model.ROIInput{DownPayment: 1000, MonthlyRent: -1, Years: 1}},
		{"negative expenses", model.ROIInput{DownPayment: 1000, AnnualExpenses: -1, Years: 1}},
		{"negative appreciation", model.ROIInput{DownPayment: 1000, AppreciationPct: -1, Years: 1}},
		{"negative years", model.ROIInput{DownPayment: 1000, Years: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ROI(tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestROI_ZeroYearHorizon(t *testing.T) {
	res, err := ROI(model.ROIInput{
		PurchasePrice:   180000,
		DownPayment:     36000,
		MonthlyRent:     1400,
		AnnualExpenses:  3000,
		AppreciationPct: 3.0,
		Years:           0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.PropertyValues) != 1 || res.PropertyValues[0] != 180000 {
		t.Errorf("PropertyValues = %v, want [180000]", res.PropertyValues)
	}
	if len(res.Equities) != 1 || res.Equities[0] != 36000 {
		t.Errorf("Equities = %v, want [36000]", res.Equities)
	}
	if res.TotalCashFlow != 0 {
		t.Errorf("TotalCashFlow = %.2f, want 0", res.TotalCashFlow)
	}
}
