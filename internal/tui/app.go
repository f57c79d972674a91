// Package tui provides the interactive Bubble Tea dashboard for homeburn.
package tui

import (
	"fmt"
	"strings"

	"homeburn/internal/config"
	"homeburn/internal/model"
	"homeburn/internal/store"
	"homeburn/internal/tui/components"
	"homeburn/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HistoryLoadedMsg is sent when recent scenarios finish loading.
type HistoryLoadedMsg struct {
	ROI       []model.ROIScenario
	RentVsBuy []model.RentVsBuyScenario
	Err       error
}

// App is the root Bubble Tea model.
type App struct {
	cfg     config.Config
	history *store.Store // nil when persistence is disabled

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	statusMsg string // transient feedback line

	// Per-tab state
	roi      roiState
	rentBuy  rentBuyState
	hist     historyState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	tabOverview = iota
	tabROI
	tabRentBuy
	tabHistory
	tabSettings
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates the dashboard model. history may be nil.
func NewApp(cfg config.Config, history *store.Store) App {
	theme.SetActive(cfg.Appearance.Theme)

	a := App{
		cfg:       cfg,
		history:   history,
		needSetup: !config.Exists(),
		roi:       newROIState(cfg.DefaultROIInput()),
		rentBuy:   newRentBuyState(cfg.DefaultRentVsBuyInput()),
	}
	a.roi.recompute()
	a.rentBuy.recompute()

	if a.needSetup {
		a.setupVals = defaultSetupValues(cfg)
		a.setupForm = newSetupForm(&a.setupVals)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{loadHistoryCmd(a.history)}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case HistoryLoadedMsg:
		a.hist.roi = msg.ROI
		a.hist.rentBuy = msg.RentVsBuy
		a.hist.err = msg.Err
		a.hist.loaded = true
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Active text inputs intercept all keys
	if a.activeTab == tabROI && a.roi.editing {
		return a.updateROIInput(msg)
	}
	if a.activeTab == tabRentBuy && a.rentBuy.editing {
		return a.updateRentBuyInput(msg)
	}
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if key == "q" {
		return a, tea.Quit
	}

	a.statusMsg = ""

	// Calculator tabs share field navigation keys
	switch a.activeTab {
	case tabROI:
		if handled, m, cmd := a.updateROIKeys(key); handled {
			return m, cmd
		}
	case tabRentBuy:
		if handled, m, cmd := a.updateRentBuyKeys(key); handled {
			return m, cmd
		}
	case tabSettings:
		if handled, m, cmd := a.updateSettingsKeys(key); handled {
			return m, cmd
		}
	}

	// Tab navigation
	switch key {
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				if idx == tabHistory {
					return a, loadHistoryCmd(a.history)
				}
			}
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveScenario persists the current tab's calculation to history.
func (a *App) saveScenario() tea.Cmd {
	if a.history == nil {
		a.statusMsg = "history disabled"
		return nil
	}

	var err error
	switch a.activeTab {
	case tabROI:
		if a.roi.err != nil {
			a.statusMsg = "fix inputs before saving"
			return nil
		}
		_, err = a.history.SaveROI(a.roi.input(), a.roi.res)
	case tabRentBuy:
		if a.rentBuy.err != nil {
			a.statusMsg = "fix inputs before saving"
			return nil
		}
		_, err = a.history.SaveRentVsBuy(a.rentBuy.input(), a.rentBuy.res)
	default:
		return nil
	}

	if err != nil {
		a.statusMsg = fmt.Sprintf("save failed: %s", err)
		return nil
	}
	a.statusMsg = "saved to history"
	return loadHistoryCmd(a.history)
}

func loadHistoryCmd(history *store.Store) tea.Cmd {
	if history == nil {
		return nil
	}
	return func() tea.Msg {
		roi, err := history.RecentROI(20)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		rentBuy, err := history.RecentRentVsBuy(20)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		return HistoryLoadedMsg{ROI: roi, RentVsBuy: rentBuy}
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  homeburn needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o r b h x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate fields"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Calculators"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Enter", "Edit field / Confirm"},
		{"+ -", "Nudge field value"},
		{"Esc", "Cancel edit"},
		{"s", "Save scenario to history"},
		{"d", "Reset to configured defaults"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab)

	right := "autosave off"
	if a.cfg.General.Autosave && a.history != nil {
		right = "autosave on"
	}
	if a.statusMsg != "" {
		right = a.statusMsg
	}
	statusBar := components.RenderStatusBar(w, right)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabROI:
		content = a.renderROITab(cw)
	case tabRentBuy:
		content = a.renderRentBuyTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
