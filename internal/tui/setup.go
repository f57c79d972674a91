package tui

import (
	"homeburn/internal/config"
	"homeburn/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run wizard answers.
type setupValues struct {
	Years    int
	Theme    string
	Autosave bool
}

func defaultSetupValues(cfg config.Config) setupValues {
	return setupValues{
		Years:    cfg.General.DefaultYears,
		Theme:    cfg.Appearance.Theme,
		Autosave: cfg.General.Autosave,
	}
}

// newSetupForm builds the first-run huh form.
func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to homeburn").
				Description("A real estate investment calculator for your terminal.\nLet's set a few defaults."),
			huh.NewSelect[int]().
				Title("Default projection horizon").
				Options(
					huh.NewOption("5 years", 5),
					huh.NewOption("10 years", 10),
					huh.NewOption("20 years", 20),
					huh.NewOption("30 years", 30),
				).
				Value(&vals.Years),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewConfirm().
				Title("Save calculations to history automatically?").
				Value(&vals.Autosave),
		),
	)
}

// applySetup persists the wizard answers and re-seeds the calculators.
func (a *App) applySetup() {
	a.cfg.General.DefaultYears = a.setupVals.Years
	a.cfg.General.Autosave = a.setupVals.Autosave
	a.cfg.Appearance.Theme = a.setupVals.Theme
	theme.SetActive(a.cfg.Appearance.Theme)

	a.settings.saveErr = config.Save(a.cfg)

	a.roi = newROIState(a.cfg.DefaultROIInput())
	a.roi.recompute()
	a.rentBuy = newRentBuyState(a.cfg.DefaultRentVsBuyInput())
	a.rentBuy.recompute()
}
