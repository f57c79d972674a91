package httpapi

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"homeburn/internal/store"

	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T, withHistory bool) *Server {
	t.Helper()
	var history *store.Store
	if withHistory {
		var err error
		history, err = store.Open(filepath.Join(t.TempDir(), "history.db"))
		if err != nil {
			t.Fatalf("opening test store: %v", err)
		}
		t.Cleanup(func() { _ = history.Close() })
	}
	return NewServer(zerolog.Nop(), history)
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleROI(t *testing.T) {
	router := newTestServer(t, false).Router()

	rec := postJSON(t, router, "/api/v1/roi", ROIRequest{
		PurchasePrice:   200000,
		DownPayment:     40000,
		MonthlyRent:     1500,
		AnnualExpenses:  5000,
		AppreciationPct: 3.0,
		Years:           10,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp ROIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if math.Abs(resp.ROIPct-496.96) > 0.01 {
		t.Errorf("roi_pct = %.2f, want ~496.96", resp.ROIPct)
	}
	if len(resp.PropertyValues) != 11 {
		t.Errorf("len(property_values) = %d, want 11", len(resp.PropertyValues))
	}
	if resp.BreakEvenYears == nil {
		t.Fatal("break_even_years is null, want ~3.08")
	}
	if math.Abs(*resp.BreakEvenYears-3.0769) > 0.001 {
		t.Errorf("break_even_years = %.4f, want ~3.0769", *resp.BreakEvenYears)
	}
}

func TestHandleROI_NeverBreaksEvenIsNull(t *testing.T) {
	router := newTestServer(t, false).Router()

	rec := postJSON(t, router, "/api/v1/roi", ROIRequest{
		PurchasePrice:  100000,
		DownPayment:    20000,
		MonthlyRent:    100,
		AnnualExpenses: 5000,
		Years:          5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp ROIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.BreakEvenYears != nil {
		t.Errorf("break_even_years = %v, want null", *resp.BreakEvenYears)
	}
}

func TestHandleROI_InvalidInput(t *testing.T) {
	router := newTestServer(t, false).Router()

	rec := postJSON(t, router, "/api/v1/roi", ROIRequest{
		PurchasePrice: 200000,
		DownPayment:   0,
		Years:         10,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected an error message in the body")
	}
}

func TestHandleROI_MalformedBody(t *testing.T) {
	router := newTestServer(t, false).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/roi", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRentVsBuy(t *testing.T) {
	router := newTestServer(t, false).Router()

	rec := postJSON(t, router, "/api/v1/rent-vs-buy", RentVsBuyRequest{
		MonthlyRent:     2000,
		HomePrice:       100000,
		MortgageRatePct: 1.0,
		Years:           10,
		DownPayment:     10000,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp RentVsBuyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.BreakEvenYear == nil || *resp.BreakEvenYear != 1 {
		t.Errorf("break_even_year = %v, want 1", resp.BreakEvenYear)
	}
	if resp.MonthlyPayment <= 0 {
		t.Errorf("monthly_payment = %.2f, want > 0", resp.MonthlyPayment)
	}
}

func TestHandleRentVsBuy_ZeroYearsRejected(t *testing.T) {
	router := newTestServer(t, false).Router()

	rec := postJSON(t, router, "/api/v1/rent-vs-buy", RentVsBuyRequest{
		MonthlyRent: 1500,
		HomePrice:   200000,
		Years:       0,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestHandleHistory(t *testing.T) {
	srv := newTestServer(t, true)
	router := srv.Router()

	// Two successful calculations land in history; the invalid one doesn't.
	postJSON(t, router, "/api/v1/roi", ROIRequest{
		PurchasePrice: 200000, DownPayment: 40000, MonthlyRent: 1500,
		AnnualExpenses: 5000, AppreciationPct: 3.0, Years: 10,
	})
	postJSON(t, router, "/api/v1/rent-vs-buy", RentVsBuyRequest{
		MonthlyRent: 1500, HomePrice: 200000, MortgageRatePct: 4.0,
		Years: 10, InflationPct: 2.0, DownPayment: 40000,
	})
	postJSON(t, router, "/api/v1/roi", ROIRequest{DownPayment: 0, Years: 1})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp HistoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.ROI) != 1 {
		t.Errorf("len(roi) = %d, want 1", len(resp.ROI))
	}
	if len(resp.RentVsBuy) != 1 {
		t.Errorf("len(rent_vs_buy) = %d, want 1", len(resp.RentVsBuy))
	}
}

func TestHandleHistory_Disabled(t *testing.T) {
	router := newTestServer(t, false).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestServer(t, false).Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
