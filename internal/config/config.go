// Package config handles homeburn configuration: scenario input
// defaults, appearance, and server settings, stored as TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"homeburn/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all homeburn configuration.
type Config struct {
	General    GeneralConfig     `toml:"general"`
	Appearance AppearanceConfig  `toml:"appearance"`
	ROI        ROIDefaults       `toml:"roi"`
	RentVsBuy  RentVsBuyDefaults `toml:"rent_vs_buy"`
	Server     ServerConfig      `toml:"server"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultYears int    `toml:"default_years"`
	Autosave     bool   `toml:"autosave"`
	HistoryPath  string `toml:"history_path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ROIDefaults pre-fills the ROI calculator inputs.
type ROIDefaults struct {
	PurchasePrice   float64 `toml:"purchase_price"`
	DownPayment     float64 `toml:"down_payment"`
	MonthlyRent     float64 `toml:"monthly_rent"`
	AnnualExpenses  float64 `toml:"annual_expenses"`
	AppreciationPct float64 `toml:"appreciation_pct"`
}

// RentVsBuyDefaults pre-fills the rent-vs-buy calculator inputs.
type RentVsBuyDefaults struct {
	MonthlyRent     float64 `toml:"monthly_rent"`
	HomePrice       float64 `toml:"home_price"`
	MortgageRatePct float64 `toml:"mortgage_rate_pct"`
	InflationPct    float64 `toml:"inflation_pct"`
	DownPayment     float64 `toml:"down_payment"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	ListenAddr string `toml:"listen_addr,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultYears: 10,
			Autosave:     true,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		ROI: ROIDefaults{
			PurchasePrice:   200000,
			DownPayment:     40000,
			MonthlyRent:     1500,
			AnnualExpenses:  5000,
			AppreciationPct: 3.0,
		},
		RentVsBuy: RentVsBuyDefaults{
			MonthlyRent:     1500,
			HomePrice:       200000,
			MortgageRatePct: 4.0,
			InflationPct:    2.0,
			DownPayment:     40000,
		},
		Server: ServerConfig{
			ListenAddr: ":8480",
		},
	}
}

// DefaultROIInput builds an ROI input from the configured defaults.
func (c Config) DefaultROIInput() model.ROIInput {
	return model.ROIInput{
		PurchasePrice:   c.ROI.PurchasePrice,
		DownPayment:     c.ROI.DownPayment,
		MonthlyRent:     c.ROI.MonthlyRent,
		AnnualExpenses:  c.ROI.AnnualExpenses,
		AppreciationPct: c.ROI.AppreciationPct,
		Years:           c.General.DefaultYears,
	}
}

// DefaultRentVsBuyInput builds a rent-vs-buy input from the configured defaults.
func (c Config) DefaultRentVsBuyInput() model.RentVsBuyInput {
	return model.RentVsBuyInput{
		MonthlyRent:     c.RentVsBuy.MonthlyRent,
		HomePrice:       c.RentVsBuy.HomePrice,
		MortgageRatePct: c.RentVsBuy.MortgageRatePct,
		InflationPct:    c.RentVsBuy.InflationPct,
		DownPayment:     c.RentVsBuy.DownPayment,
		Years:           c.General.DefaultYears,
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "homeburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "homeburn")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
