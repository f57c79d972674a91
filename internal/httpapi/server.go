// Package httpapi exposes the calculators over HTTP for headless use:
// submit inputs as JSON, receive the computed result.
package httpapi

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"homeburn/internal/calc"
	"homeburn/internal/model"
	"homeburn/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Server handles calculator requests. The store is optional; when set,
// computed scenarios are appended to history.
type Server struct {
	log     zerolog.Logger
	history *store.Store
}

// NewServer creates a Server. history may be nil to disable persistence.
func NewServer(log zerolog.Logger, history *store.Store) *Server {
	return &Server{log: log, history: history}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/roi", s.handleROI)
		r.Post("/rent-vs-buy", s.handleRentVsBuy)
		r.Get("/history", s.handleHistory)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ROIRequest is the JSON body for POST /api/v1/roi.
type ROIRequest struct {
	PurchasePrice   float64 `json:"purchase_price"`
	DownPayment     float64 `json:"down_payment"`
	MonthlyRent     float64 `json:"monthly_rent"`
	AnnualExpenses  float64 `json:"annual_expenses"`
	AppreciationPct float64 `json:"appreciation_pct"`
	Years           int     `json:"years"`
}

// ROIResponse is the JSON result of an ROI projection. BreakEvenYears
// is null when cash flow alone never repays the down payment.
type ROIResponse struct {
	ROIPct         float64   `json:"roi_pct"`
	TotalCashFlow  float64   `json:"total_cash_flow"`
	PropertyValues []float64 `json:"property_values"`
	Equities       []float64 `json:"equities"`
	CashOnCashPct  float64   `json:"cash_on_cash_pct"`
	BreakEvenYears *float64  `json:"break_even_years"`
}

// RentVsBuyRequest is the JSON body for POST /api/v1/rent-vs-buy.
type RentVsBuyRequest struct {
	MonthlyRent     float64 `json:"monthly_rent"`
	HomePrice       float64 `json:"home_price"`
	MortgageRatePct float64 `json:"mortgage_rate_pct"`
	Years           int     `json:"years"`
	InflationPct    float64 `json:"inflation_pct"`
	DownPayment     float64 `json:"down_payment"`
}

// RentVsBuyResponse is the JSON result of a rent-vs-buy comparison.
type RentVsBuyResponse struct {
	TotalRentPaid  float64 `json:"total_rent_paid"`
	TotalHomeCost  float64 `json:"total_home_cost"`
	MonthlyPayment float64 `json:"monthly_payment"`
	BreakEvenYear  *int    `json:"break_even_year"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleROI(w http.ResponseWriter, r *http.Request) {
	var req ROIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	in := model.ROIInput{
		PurchasePrice:   req.PurchasePrice,
		DownPayment:     req.DownPayment,
		MonthlyRent:     req.MonthlyRent,
		AnnualExpenses:  req.AnnualExpenses,
		AppreciationPct: req.AppreciationPct,
		Years:           req.Years,
	}

	res, err := calc.ROI(in)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}

	if s.history != nil {
		if _, err := s.history.SaveROI(in, res); err != nil {
			s.log.Warn().Err(err).Msg("saving roi scenario")
		}
	}

	// JSON has no Inf; "never" is null.
	var breakEven *float64
	if !math.IsInf(res.BreakEvenYears, 1) {
		breakEven = &res.BreakEvenYears
	}

	writeJSON(w, http.StatusOK, ROIResponse{
		ROIPct:         res.ROIPct,
		TotalCashFlow:  res.TotalCashFlow,
		PropertyValues: res.PropertyValues,
		Equities:       res.Equities,
		CashOnCashPct:  res.CashOnCashPct,
		BreakEvenYears: breakEven,
	})
}

func (s *Server) handleRentVsBuy(w http.ResponseWriter, r *http.Request) {
	var req RentVsBuyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	in := model.RentVsBuyInput{
		MonthlyRent:     req.MonthlyRent,
		HomePrice:       req.HomePrice,
		MortgageRatePct: req.MortgageRatePct,
		Years:           req.Years,
		InflationPct:    req.InflationPct,
		DownPayment:     req.DownPayment,
	}

	res, err := calc.RentVsBuy(in)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}

	if s.history != nil {
		if _, err := s.history.SaveRentVsBuy(in, res); err != nil {
			s.log.Warn().Err(err).Msg("saving rent-vs-buy scenario")
		}
	}

	writeJSON(w, http.StatusOK, RentVsBuyResponse{
		TotalRentPaid:  res.TotalRentPaid,
		TotalHomeCost:  res.TotalHomeCost,
		MonthlyPayment: res.MonthlyPayment,
		BreakEvenYear:  res.BreakEvenYear,
	})
}

// ROIHistoryItem is one persisted ROI scenario. BreakEvenYears is null
// for scenarios that never break even (stored as +Inf internally).
type ROIHistoryItem struct {
	ID             int64      `json:"id"`
	CreatedAt      time.Time  `json:"created_at"`
	Input          ROIRequest `json:"input"`
	ROIPct         float64    `json:"roi_pct"`
	TotalCashFlow  float64    `json:"total_cash_flow"`
	FinalValue     float64    `json:"final_value"`
	FinalEquity    float64    `json:"final_equity"`
	CashOnCashPct  float64    `json:"cash_on_cash_pct"`
	BreakEvenYears *float64   `json:"break_even_years"`
}

// RentVsBuyHistoryItem is one persisted rent-vs-buy scenario.
type RentVsBuyHistoryItem struct {
	ID             int64            `json:"id"`
	CreatedAt      time.Time        `json:"created_at"`
	Input          RentVsBuyRequest `json:"input"`
	TotalRentPaid  float64          `json:"total_rent_paid"`
	TotalHomeCost  float64          `json:"total_home_cost"`
	MonthlyPayment float64          `json:"monthly_payment"`
	BreakEvenYear  *int             `json:"break_even_year"`
}

// HistoryResponse lists recently computed scenarios, newest first.
type HistoryResponse struct {
	ROI       []ROIHistoryItem       `json:"roi"`
	RentVsBuy []RentVsBuyHistoryItem `json:"rent_vs_buy"`
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "history disabled"})
		return
	}

	roi, err := s.history.RecentROI(20)
	if err != nil {
		s.log.Error().Err(err).Msg("loading roi history")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "history unavailable"})
		return
	}
	rentbuy, err := s.history.RecentRentVsBuy(20)
	if err != nil {
		s.log.Error().Err(err).Msg("loading rent-vs-buy history")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "history unavailable"})
		return
	}

	resp := HistoryResponse{
		ROI:       make([]ROIHistoryItem, 0, len(roi)),
		RentVsBuy: make([]RentVsBuyHistoryItem, 0, len(rentbuy)),
	}
	for _, sc := range roi {
		item := ROIHistoryItem{
			ID:        sc.ID,
			CreatedAt: sc.CreatedAt,
			Input: ROIRequest{
				PurchasePrice:   sc.Input.PurchasePrice,
				DownPayment:     sc.Input.DownPayment,
				MonthlyRent:     sc.Input.MonthlyRent,
				AnnualExpenses:  sc.Input.AnnualExpenses,
				AppreciationPct: sc.Input.AppreciationPct,
				Years:           sc.Input.Years,
			},
			ROIPct:        sc.ROIPct,
			TotalCashFlow: sc.TotalCashFlow,
			FinalValue:    sc.FinalValue,
			FinalEquity:   sc.FinalEquity,
			CashOnCashPct: sc.CashOnCashPct,
		}
		if !math.IsInf(sc.BreakEvenYears, 1) {
			be := sc.BreakEvenYears
			item.BreakEvenYears = &be
		}
		resp.ROI = append(resp.ROI, item)
	}
	for _, sc := range rentbuy {
		resp.RentVsBuy = append(resp.RentVsBuy, RentVsBuyHistoryItem{
			ID:        sc.ID,
			CreatedAt: sc.CreatedAt,
			Input: RentVsBuyRequest{
				MonthlyRent:     sc.Input.MonthlyRent,
				HomePrice:       sc.Input.HomePrice,
				MortgageRatePct: sc.Input.MortgageRatePct,
				Years:           sc.Input.Years,
				InflationPct:    sc.Input.InflationPct,
				DownPayment:     sc.Input.DownPayment,
			},
			TotalRentPaid:  sc.TotalRentPaid,
			TotalHomeCost:  sc.TotalHomeCost,
			MonthlyPayment: sc.MonthlyPayment,
			BreakEvenYear:  sc.BreakEvenYear,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeCalcError(w http.ResponseWriter, err error) {
	if errors.Is(err, calc.ErrInvalidInput) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	s.log.Error().Err(err).Msg("calculation failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
