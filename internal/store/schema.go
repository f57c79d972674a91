package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS roi_scenarios (
    id                INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at        TEXT NOT NULL,
    purchase_price    REAL NOT NULL,
    down_payment      REAL NOT NULL,
    monthly_rent      REAL NOT NULL,
    annual_expenses   REAL NOT NULL,
    appreciation_pct  REAL NOT NULL,
    years             INTEGER NOT NULL,
    roi_pct           REAL NOT NULL,
    total_cash_flow   REAL NOT NULL,
    final_value       REAL NOT NULL,
    final_equity      REAL NOT NULL,
    cash_on_cash_pct  REAL NOT NULL,
    break_even_years  REAL
);

CREATE TABLE IF NOT EXISTS rentbuy_scenarios (
    id                INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at        TEXT NOT NULL,
    monthly_rent      REAL NOT NULL,
    home_price        REAL NOT NULL,
    mortgage_rate_pct REAL NOT NULL,
    inflation_pct     REAL NOT NULL,
    down_payment      REAL NOT NULL,
    years             INTEGER NOT NULL,
    total_rent_paid   REAL NOT NULL,
    total_home_cost   REAL NOT NULL,
    monthly_payment   REAL NOT NULL,
    break_even_year   INTEGER
);

CREATE INDEX IF NOT EXISTS idx_roi_created ON roi_scenarios(created_at);
CREATE INDEX IF NOT EXISTS idx_rentbuy_created ON rentbuy_scenarios(created_at);
`
