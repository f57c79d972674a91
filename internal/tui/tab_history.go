package tui

import (
	"fmt"
	"strings"

	"homeburn/internal/cli"
	"homeburn/internal/model"
	"homeburn/internal/tui/components"
	"homeburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// historyState holds the recently saved scenarios shown on the history tab.
type historyState struct {
	roi     []model.ROIScenario
	rentBuy []model.RentVsBuyScenario
	loaded  bool
	err     error
}

func (a App) renderHistoryTab(cw int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if a.history == nil {
		return components.ContentCard("History",
			mutedStyle.Render("History is disabled (no database configured)."), cw)
	}
	if a.hist.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return components.ContentCard("History",
			errStyle.Render(fmt.Sprintf("Could not load history: %s", a.hist.err)), cw)
	}
	if !a.hist.loaded {
		return components.ContentCard("History", mutedStyle.Render("Loading..."), cw)
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("ROI scenarios", a.renderROIHistory(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Rent vs buy scenarios", a.renderRentBuyHistory(), cw))
	return b.String()
}

func (a App) renderROIHistory() string {
	t := theme.Active
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.hist.roi) == 0 {
		return dimStyle.Render("No scenarios saved yet. Press [s] on the ROI tab.")
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("  %-12s %12s %12s %8s %9s %10s",
		"When", "Price", "Down", "Years", "ROI", "Break-even")))
	b.WriteString("\n")
	for _, sc := range a.hist.roi {
		b.WriteString(rowStyle.Render(fmt.Sprintf("  %-12s %12s %12s %8d %8.1f%% %10s",
			sc.CreatedAt.Local().Format("Jan 2 15:04"),
			cli.FormatCompactCurrency(sc.Input.PurchasePrice),
			cli.FormatCompactCurrency(sc.Input.DownPayment),
			sc.Input.Years,
			sc.ROIPct,
			cli.FormatYears(sc.BreakEvenYears))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderRentBuyHistory() string {
	t := theme.Active
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.hist.rentBuy) == 0 {
		return dimStyle.Render("No scenarios saved yet. Press [s] on the Rent vs Buy tab.")
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("  %-12s %10s %12s %8s %12s %12s %10s",
		"When", "Rent", "Price", "Years", "Total rent", "Total buy", "Break-even")))
	b.WriteString("\n")
	for _, sc := range a.hist.rentBuy {
		b.WriteString(rowStyle.Render(fmt.Sprintf("  %-12s %10s %12s %8d %12s %12s %10s",
			sc.CreatedAt.Local().Format("Jan 2 15:04"),
			cli.FormatCurrency(sc.Input.MonthlyRent),
			cli.FormatCompactCurrency(sc.Input.HomePrice),
			sc.Input.Years,
			cli.FormatCompactCurrency(sc.TotalRentPaid),
			cli.FormatCompactCurrency(sc.TotalHomeCost),
			cli.FormatBreakEvenYear(sc.BreakEvenYear))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
