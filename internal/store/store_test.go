package store

import (
	"math"
	"path/filepath"
	"testing"

	"homeburn/internal/calc"
	"homeburn/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndRecentROI(t *testing.T) {
	s := openTestStore(t)

	in := model.ROIInput{
		PurchasePrice:   200000,
		DownPayment:     40000,
		MonthlyRent:     1500,
		AnnualExpenses:  5000,
		AppreciationPct: 3.0,
		Years:           10,
	}
	res, err := calc.ROI(in)
	if err != nil {
		t.Fatalf("ROI: %v", err)
	}

	id, err := s.SaveROI(in, res)
	if err != nil {
		t.Fatalf("SaveROI: %v", err)
	}
	if id == 0 {
		t.Fatal("SaveROI returned id 0")
	}

	recent, err := s.RecentROI(10)
	if err != nil {
		t.Fatalf("RecentROI: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("len(recent) = %d, want 1", len(recent))
	}

	sc := recent[0]
	if sc.Input != in {
		t.Errorf("round-tripped input = %+v, want %+v", sc.Input, in)
	}
	if math.Abs(sc.ROIPct-res.ROIPct) > 1e-9 {
		t.Errorf("ROIPct = %v, want %v", sc.ROIPct, res.ROIPct)
	}
	if math.Abs(sc.FinalValue-res.PropertyValues[10]) > 1e-9 {
		t.Errorf("FinalValue = %v, want %v", sc.FinalValue, res.PropertyValues[10])
	}
	if sc.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestSaveROI_InfiniteBreakEvenRoundTrips(t *testing.T) {
	s := openTestStore(t)

	in := model.ROIInput{
		PurchasePrice:  100000,
		DownPayment:    20000,
		MonthlyRent:    100,
		AnnualExpenses: 5000,
		Years:          5,
	}
	res, err := calc.ROI(in)
	if err != nil {
		t.Fatalf("ROI: %v", err)
	}
	if _, err := s.SaveROI(in, res); err != nil {
		t.Fatalf("SaveROI: %v", err)
	}

	recent, err := s.RecentROI(1)
	if err != nil {
		t.Fatalf("RecentROI: %v", err)
	}
	if !math.IsInf(recent[0].BreakEvenYears, 1) {
		t.Errorf("BreakEvenYears = %v, want +Inf", recent[0].BreakEvenYears)
	}
}

func TestSaveAndRecentRentVsBuy(t *testing.T) {
	s := openTestStore(t)

	in := model.RentVsBuyInput{
		MonthlyRent:     2000,
		HomePrice:       100000,
		MortgageRatePct: 1.0,
		Years:           10,
		DownPayment:     10000,
	}
	res, err := calc.RentVsBuy(in)
	if err != nil {
		t.Fatalf("RentVsBuy: %v", err)
	}
	if res.BreakEvenYear == nil {
		t.Fatal("test scenario should break even")
	}

	if _, err := s.SaveRentVsBuy(in, res); err != nil {
		t.Fatalf("SaveRentVsBuy: %v", err)
	}

	recent, err := s.RecentRentVsBuy(10)
	if err != nil {
		t.Fatalf("RecentRentVsBuy: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("len(recent) = %d, want 1", len(recent))
	}
	sc := recent[0]
	if sc.Input != in {
		t.Errorf("round-tripped input = %+v, want %+v", sc.Input, in)
	}
	if sc.BreakEvenYear == nil || *sc.BreakEvenYear != *res.BreakEvenYear {
		t.Errorf("BreakEvenYear = %v, want %d", sc.BreakEvenYear, *res.BreakEvenYear)
	}
}

func TestRecentOrderAndCounts(t *testing.T) {
	s := openTestStore(t)

	for years := 5; years <= 7; years++ {
		in := model.RentVsBuyInput{
			MonthlyRent:     1500,
			HomePrice:       200000,
			MortgageRatePct: 4.0,
			InflationPct:    2.0,
			DownPayment:     40000,
			Years:           years,
		}
		res, err := calc.RentVsBuy(in)
		if err != nil {
			t.Fatalf("RentVsBuy: %v", err)
		}
		if _, err := s.SaveRentVsBuy(in, res); err != nil {
			t.Fatalf("SaveRentVsBuy: %v", err)
		}
	}

	recent, err := s.RecentRentVsBuy(2)
	if err != nil {
		t.Fatalf("RecentRentVsBuy: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(recent))
	}
	// Newest first: last inserted had Years == 7.
	if recent[0].Input.Years != 7 || recent[1].Input.Years != 6 {
		t.Errorf("order = [%d, %d], want [7, 6]", recent[0].Input.Years, recent[1].Input.Years)
	}

	roi, rentbuy, err := s.Counts()
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if roi != 0 || rentbuy != 3 {
		t.Errorf("Counts = (%d, %d), want (0, 3)", roi, rentbuy)
	}
}
