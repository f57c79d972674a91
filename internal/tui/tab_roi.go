package tui

import (
	"fmt"
	"strconv"

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
	roiFieldPrice = iota
	roiFieldDown
	roiFieldRent
	roiFieldExpenses
	roiFieldAppreciation
	roiFieldYears
)

// roiState tracks the ROI calculator tab.
type roiState struct {
	fields  []field
	cursor  int
	editing bool
	editor  textinput.Model
	res     model.ROIResult
	err     error
}

func newROIState(in model.ROIInput) roiState {
	return roiState{
		fields: []field{
			{label: "Purchase price", value: in.PurchasePrice, step: 5000, kind: fieldCurrency},
			{label: "Down payment", value: in.DownPayment, step: 5000, kind: fieldCurrency},
			{label: "Monthly rent", value: in.MonthlyRent, step: 50, kind: fieldCurrency},
			{label: "Annual expenses", value: in.AnnualExpenses, step: 250, kind: fieldCurrency},
			{label: "Appreciation", value: in.AppreciationPct, step: 0.25, kind: fieldPercent},
			{label: "Years", value: float64(in.Years), step: 1, kind: fieldYears},
		},
	}
}

func (s roiState) input() model.ROIInput {
	return model.ROIInput{
		PurchasePrice:   s.fields[roiFieldPrice].value,
		DownPayment:     s.fields[roiFieldDown].value,
		MonthlyRent:     s.fields[roiFieldRent].value,
		AnnualExpenses:  s.fields[roiFieldExpenses].value,
		AppreciationPct: s.fields[roiFieldAppreciation].value,
		Years:           int(s.fields[roiFieldYears].value),
	}
}

func (s *roiState) recompute() {
	s.res, s.err = calc.ROI(s.input())
}

func (a App) updateROIKeys(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.roi.cursor < len(a.roi.fields)-1 {
			a.roi.cursor++
		}
		return true, a, nil
	case "k", "up":
		if a.roi.cursor > 0 {
			a.roi.cursor--
		}
		return true, a, nil
	case "enter":
		a.roi.editing = true
		a.roi.editor = newFieldInput(a.roi.fields[a.roi.cursor])
		return true, a, a.roi.editor.Cursor.BlinkCmd()
	case "+", "=":
		nudgeField(&a.roi.fields[a.roi.cursor], 1)
		a.roi.recompute()
		return true, a, nil
	case "-", "_":
		nudgeField(&a.roi.fields[a.roi.cursor], -1)
		a.roi.recompute()
		return true, a, nil
	case "s":
		cmd := a.saveScenario()
		return true, a, cmd
	case "d":
		a.roi = newROIState(a.cfg.DefaultROIInput())
		a.roi.recompute()
		return true, a, nil
	}
	return false, a, nil
}

func (a App) updateROIInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		applyFieldInput(&a.roi.fields[a.roi.cursor], a.roi.editor.Value())
		a.roi.editing = false
		a.roi.recompute()
		return a, nil
	case "esc":
		a.roi.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.roi.editor, cmd = a.roi.editor.Update(msg)
	return a, cmd
}

func (a App) renderROITab(cw int) string {
	t := theme.Active

	inputW, resultW := inputCardWidth(cw)
	inputs := components.ContentCard("Inputs",
		renderFields(a.roi.fields, a.roi.cursor, a.roi.editing, a.roi.editor), inputW)

	if a.roi.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		errCard := components.ContentCard("Result", errStyle.Render(a.roi.err.Error()), resultW)
		return components.CardRow([]string{inputs, errCard})
	}

	res := a.roi.res
	in := a.roi.input()

	metrics := components.MetricCardRow([]struct{ Label, Value, Caption string }{
		{"ROI", cli.FormatPercent(res.ROIPct), fmt.Sprintf("over %d years", in.Years)},
		{"Cash-on-cash", cli.FormatPercent(res.CashOnCashPct), "annual"},
		{"Total cash flow", cli.FormatCurrency(res.TotalCashFlow), "rent minus expenses"},
		{"Break-even", cli.FormatYears(res.BreakEvenYears), "cash flow vs down payment"},
	}, cw)

	labels := make([]string, len(res.PropertyValues))
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	chartH := 10
	chart := components.BarChart(res.PropertyValues, labels, t.Blue,
		components.CardInnerWidth(resultW), chartH)
	chartCard := components.ContentCard("Property value by year", chart, resultW)

	finalEquity := 0.0
	if n := len(res.Equities); n > 0 {
		finalEquity = res.Equities[n-1]
	}
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	equityBody := components.Sparkline(res.Equities, t.Green) + "\n" +
		mutedStyle.Render("Final equity: ") + valueStyle.Render(cli.FormatCurrency(finalEquity)) +
		mutedStyle.Render("   Final value: ") + valueStyle.Render(cli.FormatCurrency(res.PropertyValues[len(res.PropertyValues)-1]))
	equityCard := components.ContentCard("Equity", equityBody, cw)

	return metrics + "\n" +
		components.CardRow([]string{inputs, chartCard}) + "\n" +
		equityCard
}
