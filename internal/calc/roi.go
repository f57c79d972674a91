// Package calc implements the two investment calculators: the ROI
// projection and the rent-versus-buy comparison. Both are pure
// functions over validated numeric inputs; formatting and charting
// belong to the callers.
package calc

import (
	"errors"
	"fmt"
	"math"

	"homeburn/internal/model"
)

// ErrInvalidInput marks a rejected calculation input. Callers branch
// with errors.Is; the wrapped message names the offending field.
var ErrInvalidInput = errors.New("invalid input")

// ROI projects property value and equity growth year by year and
// derives aggregate return metrics.
//
// Cash flow is straight-line (no discounting); appreciation compounds
// annually; the loan balance is treated as static, so equity is the
// current value minus the original loan principal. A zero-year horizon
// yields single-element series holding the starting values.
func ROI(in model.ROIInput) (model.ROIResult, error) {
	if in.DownPayment <= 0 {
		return model.ROIResult{}, fmt.Errorf("%w: down payment must be positive, got %.2f", ErrInvalidInput, in.DownPayment)
	}
	if in.PurchasePrice < 0 {
		return model.ROIResult{}, fmt.Errorf("%w: purchase price must not be negative", ErrInvalidInput)
	}
	if in.MonthlyRent < 0 {
		return model.ROIResult{}, fmt.Errorf("%w: monthly rent must not be negative", ErrInvalidInput)
	}
	if in.AnnualExpenses < 0 {
		return model.ROIResult{}, fmt.Errorf("%w: annual expenses must not be negative", ErrInvalidInput)
	}
	if in.AppreciationPct < 0 {
		return model.ROIResult{}, fmt.Errorf("%w: appreciation rate must not be negative", ErrInvalidInput)
	}
	if in.Years < 0 {
		return model.ROIResult{}, fmt.Errorf("%w: years must not be negative, got %d", ErrInvalidInput, in.Years)
	}

	annualCashFlow := in.MonthlyRent*12 - in.AnnualExpenses
	totalCashFlow := annualCashFlow * float64(in.Years)

	growth := 1 + in.AppreciationPct/100
	loanPrincipal := in.PurchasePrice - in.DownPayment

	values := make([]float64, in.Years+1)
	equities := make([]float64, in.Years+1)
	for i := 0; i <= in.Years; i++ {
		values[i] = in.PurchasePrice * math.Pow(growth, float64(i))
		equities[i] = values[i] - loanPrincipal
	}

	breakEven := math.Inf(1)
	if annualCashFlow > 0 {
		breakEven = in.DownPayment / annualCashFlow
	}

	return model.ROIResult{
		ROIPct:         (totalCashFlow + equities[in.Years] - in.DownPayment) / in.DownPayment * 100,
		TotalCashFlow:  totalCashFlow,
		PropertyValues: values,
		Equities:       equities,
		CashOnCashPct:  annualCashFlow / in.DownPayment * 100,
		BreakEvenYears: breakEven,
	}, nil
}
