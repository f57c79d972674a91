package tui

import (
	"fmt"

	"homeburn/internal/calc"
	"homeburn/internal/cli"
	"homeburn/internal/model"
	"homeburn/internal/tui/components"
	"homeburn/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	rbFieldRent = iota
	rbFieldHomePrice
	rbFieldRate
	rbFieldInflation
	rbFieldDown
	rbFieldYears
)

// rentBuyState tracks the rent-vs-buy calculator tab.
type rentBuyState struct {
	fields  []field
	cursor  int
	editing bool
	editor  textinput.Model
	res     model.RentVsBuyResult
	err     error
}

func newRentBuyState(in model.RentVsBuyInput) rentBuyState {
	return rentBuyState{
		fields: []field{
			{label: "Monthly rent", value: in.MonthlyRent, step: 50, kind: fieldCurrency},
			{label: "Home price", value: in.HomePrice, step: 5000, kind: fieldCurrency},
			{label: "Mortgage rate", value: in.MortgageRatePct, step: 0.25, kind: fieldPercent},
			{label: "Rent inflation", value: in.InflationPct, step: 0.25, kind: fieldPercent},
			{label: "Down payment", value: in.DownPayment, step: 5000, kind: fieldCurrency},
			{label: "Years", value: float64(in.Years), step: 1, kind: fieldYears},
		},
	}
}

func (s rentBuyState) input() model.RentVsBuyInput {
	return model.RentVsBuyInput{
		MonthlyRent:     s.fields[rbFieldRent].value,
		HomePrice:       s.fields[rbFieldHomePrice].value,
		MortgageRatePct: s.fields[rbFieldRate].value,
		InflationPct:    s.fields[rbFieldInflation].value,
		DownPayment:     s.fields[rbFieldDown].value,
		Years:           int(s.fields[rbFieldYears].value),
	}
}

func (s *rentBuyState) recompute() {
	s.res, s.err = calc.RentVsBuy(s.input())
}

func (a App) updateRentBuyKeys(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.rentBuy.cursor < len(a.rentBuy.fields)-1 {
			a.rentBuy.cursor++
		}
		return true, a, nil
	case "k", "up":
		if a.rentBuy.cursor > 0 {
			a.rentBuy.cursor--
		}
		return true, a, nil
	case "enter":
		a.rentBuy.editing = true
		a.rentBuy.editor = newFieldInput(a.rentBuy.fields[a.rentBuy.cursor])
		return true, a, a.rentBuy.editor.Cursor.BlinkCmd()
	case "+", "=":
		nudgeField(&a.rentBuy.fields[a.rentBuy.cursor], 1)
		a.rentBuy.recompute()
		return true, a, nil
	case "-", "_":
		nudgeField(&a.rentBuy.fields[a.rentBuy.cursor], -1)
		a.rentBuy.recompute()
		return true, a, nil
	case "s":
		cmd := a.saveScenario()
		return true, a, cmd
	case "d":
		a.rentBuy = newRentBuyState(a.cfg.DefaultRentVsBuyInput())
		a.rentBuy.recompute()
		return true, a, nil
	}
	return false, a, nil
}

func (a App) updateRentBuyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		applyFieldInput(&a.rentBuy.fields[a.rentBuy.cursor], a.rentBuy.editor.Value())
		a.rentBuy.editing = false
		a.rentBuy.recompute()
		return a, nil
	case "esc":
		a.rentBuy.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.rentBuy.editor, cmd = a.rentBuy.editor.Update(msg)
	return a, cmd
}

func (a App) renderRentBuyTab(cw int) string {
	t := theme.Active

	inputW, resultW := inputCardWidth(cw)
	inputs := components.ContentCard("Inputs",
		renderFields(a.rentBuy.fields, a.rentBuy.cursor, a.rentBuy.editing, a.rentBuy.editor), inputW)

	if a.rentBuy.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		errCard := components.ContentCard("Result", errStyle.Render(a.rentBuy.err.Error()), resultW)
		return components.CardRow([]string{inputs, errCard})
	}

	res := a.rentBuy.res
	in := a.rentBuy.input()

	verdict := "Renting stays cheaper"
	if res.BreakEvenYear != nil {
		verdict = fmt.Sprintf("Buying wins by year %d", *res.BreakEvenYear)
	}

	metrics := components.MetricCardRow([]struct{ Label, Value, Caption string }{
		{"Total rent", cli.FormatCurrency(res.TotalRentPaid), fmt.Sprintf("over %d years", in.Years)},
		{"Total buy cost", cli.FormatCurrency(res.TotalHomeCost), "payments + down payment"},
		{"Monthly payment", cli.FormatCurrency(res.MonthlyPayment), fmt.Sprintf("%.2f%% mortgage", in.MortgageRatePct)},
		{"Break-even", cli.FormatBreakEvenYear(res.BreakEvenYear), verdict},
	}, cw)

	dist := components.DistBar(
		"Rent", res.TotalRentPaid,
		"Buy", res.TotalHomeCost,
		components.CardInnerWidth(resultW))
	distCard := components.ContentCard("Cumulative cost share", dist, resultW)

	return metrics + "\n" +
		components.CardRow([]string{inputs, distCard})
}
