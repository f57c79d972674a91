// Package store provides a SQLite-backed history of computed scenarios.
package store

import (
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"homeburn/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store persists computed scenarios for the history command and tab.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant history database path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "homeburn", "history.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "homeburn", "history.db")
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the history database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveROI appends an ROI scenario and returns its row ID.
func (s *Store) SaveROI(in model.ROIInput, res model.ROIResult) (int64, error) {
	// +Inf means "never breaks even"; stored as NULL.
	var breakEven sql.NullFloat64
	if !math.IsInf(res.BreakEvenYears, 1) {
		breakEven = sql.NullFloat64{Float64: res.BreakEvenYears, Valid: true}
	}

	r, err := s.db.Exec(`INSERT INTO roi_scenarios
		(created_at, purchase_price, down_payment, monthly_rent, annual_expenses,
		 appreciation_pct, years, roi_pct, total_cash_flow, final_value,
		 final_equity, cash_on_cash_pct, break_even_years)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		in.PurchasePrice, in.DownPayment, in.MonthlyRent, in.AnnualExpenses,
		in.AppreciationPct, in.Years,
		res.ROIPct, res.TotalCashFlow,
		res.PropertyValues[len(res.PropertyValues)-1],
		res.Equities[len(res.Equities)-1],
		res.CashOnCashPct, breakEven,
	)
	if err != nil {
		return 0, err
	}
	return r.LastInsertId()
}

// SaveRentVsBuy appends a rent-vs-buy scenario and returns its row ID.
func (s *Store) SaveRentVsBuy(in model.RentVsBuyInput, res model.RentVsBuyResult) (int64, error) {
	var breakEven sql.NullInt64
	if res.BreakEvenYear != nil {
		breakEven = sql.NullInt64{Int64: int64(*res.BreakEvenYear), Valid: true}
	}

	r, err := s.db.Exec(`INSERT INTO rentbuy_scenarios
		(created_at, monthly_rent, home_price, mortgage_rate_pct, inflation_pct,
		 down_payment, years, total_rent_paid, total_home_cost, monthly_payment,
		 break_even_year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		in.MonthlyRent, in.HomePrice, in.MortgageRatePct, in.InflationPct,
		in.DownPayment, in.Years,
		res.TotalRentPaid, res.TotalHomeCost, res.MonthlyPayment, breakEven,
	)
	if err != nil {
		return 0, err
	}
	return r.LastInsertId()
}

// RecentROI returns the most recent ROI scenarios, newest first.
func (s *Store) RecentROI(limit int) ([]model.ROIScenario, error) {
	rows, err := s.db.Query(`SELECT
		id, created_at, purchase_price, down_payment, monthly_rent,
		annual_expenses, appreciation_pct, years, roi_pct, total_cash_flow,
		final_value, final_equity, cash_on_cash_pct, break_even_years
		FROM roi_scenarios ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scenarios []model.ROIScenario
	for rows.Next() {
		var sc model.ROIScenario
		var createdAt string
		var breakEven sql.NullFloat64

		err := rows.Scan(
			&sc.ID, &createdAt,
			&sc.Input.PurchasePrice, &sc.Input.DownPayment, &sc.Input.MonthlyRent,
			&sc.Input.AnnualExpenses, &sc.Input.AppreciationPct, &sc.Input.Years,
			&sc.ROIPct, &sc.TotalCashFlow, &sc.FinalValue, &sc.FinalEquity,
			&sc.CashOnCashPct, &breakEven,
		)
		if err != nil {
			return nil, err
		}

		sc.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if breakEven.Valid {
			sc.BreakEvenYears = breakEven.Float64
		} else {
			sc.BreakEvenYears = math.Inf(1)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, rows.Err()
}

// RecentRentVsBuy returns the most recent rent-vs-buy scenarios, newest first.
func (s *Store) RecentRentVsBuy(limit int) ([]model.RentVsBuyScenario, error) {
	rows, err := s.db.Query(`SELECT
		id, created_at, monthly_rent, home_price, mortgage_rate_pct,
		inflation_pct, down_payment, years, total_rent_paid, total_home_cost,
		monthly_payment, break_even_year
		FROM rentbuy_scenarios ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scenarios []model.RentVsBuyScenario
	for rows.Next() {
		var sc model.RentVsBuyScenario
		var createdAt string
		var breakEven sql.NullInt64

		err := rows.Scan(
			&sc.ID, &createdAt,
			&sc.Input.MonthlyRent, &sc.Input.HomePrice, &sc.Input.MortgageRatePct,
			&sc.Input.InflationPct, &sc.Input.DownPayment, &sc.Input.Years,
			&sc.TotalRentPaid, &sc.TotalHomeCost, &sc.MonthlyPayment, &breakEven,
		)
		if err != nil {
			return nil, err
		}

		sc.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if breakEven.Valid {
			year := int(breakEven.Int64)
			sc.BreakEvenYear = &year
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, rows.Err()
}

// Counts returns how many scenarios of each kind are stored.
func (s *Store) Counts() (roi, rentbuy int, err error) {
	if err = s.db.QueryRow("SELECT COUNT(*) FROM roi_scenarios").Scan(&roi); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRow("SELECT COUNT(*) FROM rentbuy_scenarios").Scan(&rentbuy); err != nil {
		return 0, 0, err
	}
	return roi, rentbuy, nil
}
