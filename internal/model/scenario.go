// Package model defines the input and result types shared by the
// calculation engines, the store, the HTTP API, and the TUI.
package model

import "time"

// ROIInput holds the parameters for a return-on-investment projection.
// Amounts are currency units, rates are plain percentages (3.0 = 3%).
type ROIInput struct {
	PurchasePrice   float64
	DownPayment     float64
	MonthlyRent     float64
	AnnualExpenses  float64
	AppreciationPct float64
	Years           int
}

// ROIResult holds the projection produced by the ROI engine.
// PropertyValues and Equities always have Years+1 entries, one per
// year from the start of the projection (index 0) through the horizon.
type ROIResult struct {
	ROIPct         float64
	TotalCashFlow  float64
	PropertyValues []float64
	Equities       []float64
	CashOnCashPct  float64
	BreakEvenYears float64 // +Inf when cash flow alone never repays the down payment
}

// RentVsBuyInput holds the parameters for a rent-versus-buy comparison.
type RentVsBuyInput struct {
	MonthlyRent     float64
	HomePrice       float64
	MortgageRatePct float64
	Years           int
	InflationPct    float64
	DownPayment     float64
}

// RentVsBuyResult holds the cumulative cost comparison.
// BreakEvenYear is nil when buying never catches up within the horizon.
type RentVsBuyResult struct {
	TotalRentPaid  float64
	TotalHomeCost  float64
	MonthlyPayment float64 // 0 when the purchase is unfinanced
	BreakEvenYear  *int
}

// ROIScenario is a persisted ROI calculation: inputs plus headline outputs.
type ROIScenario struct {
	ID        int64
	CreatedAt time.Time
	Input     ROIInput

	ROIPct         float64
	TotalCashFlow  float64
	FinalValue     float64
	FinalEquity    float64
	CashOnCashPct  float64
	BreakEvenYears float64
}

// RentVsBuyScenario is a persisted rent-vs-buy calculation.
type RentVsBuyScenario struct {
	ID        int64
	CreatedAt time.Time
	Input     RentVsBuyInput

	TotalRentPaid  float64
	TotalHomeCost  float64
	MonthlyPayment float64
	BreakEvenYear  *int
}
