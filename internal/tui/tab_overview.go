package tui

import (
	"fmt"
	"strings"

	"homeburn/internal/cli"
	"homeburn/internal/tui/components"
	"homeburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(titleStyle.Render("◈ homeburn"))
	b.WriteString(mutedStyle.Render(" · Real Estate Investment Calculator"))
	b.WriteString("\n\n")

	// Headline numbers for the current scenarios on both calculator tabs
	if a.roi.err == nil {
		in := a.roi.input()
		b.WriteString(components.MetricCardRow([]struct{ Label, Value, Caption string }{
			{"ROI", cli.FormatPercent(a.roi.res.ROIPct),
				fmt.Sprintf("%s over %d years", cli.FormatCompactCurrency(in.PurchasePrice), in.Years)},
			{"Cash-on-cash", cli.FormatPercent(a.roi.res.CashOnCashPct), "annual"},
			{"Break-even", cli.FormatYears(a.roi.res.BreakEvenYears), "cash flow vs down payment"},
		}, cw))
		b.WriteString("\n")
	}

	if a.rentBuy.err == nil {
		res := a.rentBuy.res
		verdict := "renting stays cheaper"
		if res.BreakEvenYear != nil {
			verdict = fmt.Sprintf("buying wins by year %d", *res.BreakEvenYear)
		}
		b.WriteString(components.MetricCardRow([]struct{ Label, Value, Caption string }{
			{"Total rent", cli.FormatCompactCurrency(res.TotalRentPaid), verdict},
			{"Total buy cost", cli.FormatCompactCurrency(res.TotalHomeCost), "payments + down payment"},
			{"Monthly payment", cli.FormatCurrency(res.MonthlyPayment), "amortizing mortgage"},
		}, cw))
		b.WriteString("\n")
	}

	var info strings.Builder
	info.WriteString(mutedStyle.Render("Jump to the ") + valueStyle.Render("[r]OI") +
		mutedStyle.Render(" or ") + valueStyle.Render("Rent vs [b]uy") +
		mutedStyle.Render(" tab to adjust a scenario.") + "\n")
	if a.history != nil {
		info.WriteString(mutedStyle.Render(fmt.Sprintf("History: %d ROI and %d rent-vs-buy scenarios saved.",
			len(a.hist.roi), len(a.hist.rentBuy))))
	} else {
		info.WriteString(mutedStyle.Render("History is disabled."))
	}
	b.WriteString(components.ContentCard("", info.String(), cw))

	return b.String()
}
