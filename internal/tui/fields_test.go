package tui

import (
	"testing"

	"homeburn/internal/model"
)

func TestROIStateRoundTripsInput(t *testing.T) {
	in := model.ROIInput{
		PurchasePrice:   200000,
		DownPayment:     40000,
		MonthlyRent:     1500,
		AnnualExpenses:  5000,
		AppreciationPct: 3.0,
		Years:           10,
	}

	s := newROIState(in)
	if got := s.input(); got != in {
		t.Errorf("input() = %+v, want %+v", got, in)
	}

	s.recompute()
	if s.err != nil {
		t.Fatalf("recompute error: %v", s.err)
	}
	if len(s.res.PropertyValues) != in.Years+1 {
		t.Errorf("len(PropertyValues) = %d, want %d", len(s.res.PropertyValues), in.Years+1)
	}
}

func TestRentBuyStateRoundTripsInput(t *testing.T) {
	in := model.RentVsBuyInput{
		MonthlyRent:     1500,
		HomePrice:       200000,
		MortgageRatePct: 4.0,
		InflationPct:    2.0,
		DownPayment:     40000,
		Years:           10,
	}

	s := newRentBuyState(in)
	if got := s.input(); got != in {
		t.Errorf("input() = %+v, want %+v", got, in)
	}
}

func TestNudgeFieldClampsAtZero(t *testing.T) {
	f := field{label: "Down payment", value: 3000, step: 5000, kind: fieldCurrency}

	nudgeField(&f, -1)
	if f.value != 0 {
		t.Errorf("value = %v, want 0", f.value)
	}

	nudgeField(&f, 1)
	if f.value != 5000 {
		t.Errorf("value = %v, want 5000", f.value)
	}
}

func TestApplyFieldInput(t *testing.T) {
	f := field{label: "Purchase price", value: 200000, step: 5000, kind: fieldCurrency}

	applyFieldInput(&f, "$250,000")
	if f.value != 250000 {
		t.Errorf("value = %v, want 250000", f.value)
	}

	// Invalid input leaves the field untouched
	applyFieldInput(&f, "abc")
	if f.value != 250000 {
		t.Errorf("value = %v after bad input, want 250000", f.value)
	}

	y := field{label: "Years", value: 10, step: 1, kind: fieldYears}
	applyFieldInput(&y, "12.7")
	if y.value != 12 {
		t.Errorf("years = %v, want 12 (truncated)", y.value)
	}
}
