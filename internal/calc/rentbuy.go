package calc

import (
	"fmt"
	"math"

	"homeburn/internal/model"
)

// RentVsBuy compares the cumulative cost of renting against buying
// over the horizon and finds the first year buying pulls even.
//
// Rent inflates annually; buying uses the standard fixed-rate
// fully-amortizing monthly payment. With no financing (zero mortgage
// rate) the total home cost is simply the purchase price, so the
// comparison measures rent against the flat price of the home.
func RentVsBuy(in model.RentVsBuyInput) (model.RentVsBuyResult, error) {
	if in.Years < 1 {
		return model.RentVsBuyResult{}, fmt.Errorf("%w: years must be at least 1, got %d", ErrInvalidInput, in.Years)
	}
	if in.MonthlyRent < 0 {
		return model.RentVsBuyResult{}, fmt.Errorf("%w: monthly rent must not be negative", ErrInvalidInput)
	}
	if in.HomePrice < 0 {
		return model.RentVsBuyResult{}, fmt.Errorf("%w: home price must not be negative", ErrInvalidInput)
	}
	if in.MortgageRatePct < 0 {
		return model.RentVsBuyResult{}, fmt.Errorf("%w: mortgage rate must not be negative", ErrInvalidInput)
	}
	if in.InflationPct < 0 {
		return model.RentVsBuyResult{}, fmt.Errorf("%w: inflation rate must not be negative", ErrInvalidInput)
	}
	if in.DownPayment < 0 {
		return model.RentVsBuyResult{}, fmt.Errorf("%w: down payment must not be negative", ErrInvalidInput)
	}
	if in.MortgageRatePct > 0 && in.DownPayment > in.HomePrice {
		return model.RentVsBuyResult{}, fmt.Errorf("%w: down payment %.2f exceeds home price %.2f", ErrInvalidInput, in.DownPayment, in.HomePrice)
	}

	inflation := 1 + in.InflationPct/100

	var totalRent float64
	for i := 0; i < in.Years; i++ {
		totalRent += in.MonthlyRent * math.Pow(inflation, float64(i)) * 12
	}

	var monthlyPayment, totalHomeCost float64
	if in.MortgageRatePct > 0 {
		loan := in.HomePrice - in.DownPayment
		monthlyRate := in.MortgageRatePct / 100 / 12
		numPayments := in.Years * 12
		monthlyPayment = loan * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(numPayments)))
		totalHomeCost = monthlyPayment*float64(numPayments) + in.DownPayment
	} else {
		totalHomeCost = in.HomePrice
	}

	// First year the cumulative cost of buying no longer exceeds the
	// cumulative cost of renting. Stops at the first hit.
	var breakEven *int
	cumulativeRent := 0.0
	cumulativeBuy := in.DownPayment
	for t := 1; t <= in.Years; t++ {
		cumulativeRent += in.MonthlyRent * math.Pow(inflation, float64(t-1)) * 12
		if in.MortgageRatePct > 0 {
			cumulativeBuy += monthlyPayment * 12
		}
		if cumulativeBuy <= cumulativeRent {
			year := t
			breakEven = &year
			break
		}
	}

	return model.RentVsBuyResult{
		TotalRentPaid:  totalRent,
		TotalHomeCost:  totalHomeCost,
		MonthlyPayment: monthlyPayment,
		BreakEvenYear:  breakEven,
	}, nil
}
