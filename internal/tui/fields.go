package tui

import (
	"fmt"
	"strconv"
	"strings"

	"homeburn/internal/cli"
	"homeburn/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// fieldKind controls how a field value is displayed and nudged.
type fieldKind int

const (
	fieldCurrency fieldKind = iota
	fieldPercent
	fieldYears
)

// field is one editable calculator input.
type field struct {
	label string
	value float64
	step  float64 // +/- increment
	kind  fieldKind
}

func (f field) display() string {
	switch f.kind {
	case fieldCurrency:
		return cli.FormatCurrency(f.value)
	case fieldPercent:
		return fmt.Sprintf("%.2f%%", f.value)
	default:
		return strconv.Itoa(int(f.value))
	}
}

// editValue is the raw string loaded into the text input.
func (f field) editValue() string {
	switch f.kind {
	case fieldYears:
		return strconv.Itoa(int(f.value))
	default:
		return strconv.FormatFloat(f.value, 'f', -1, 64)
	}
}

func newFieldInput(f field) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 20
	ti.SetValue(f.editValue())
	ti.Focus()
	return ti
}

// applyFieldInput parses the edited value back into the field.
// Invalid entries leave the field unchanged.
func applyFieldInput(f *field, raw string) {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "$"))
	raw = strings.ReplaceAll(raw, ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return
	}
	if f.kind == fieldYears {
		v = float64(int(v))
	}
	f.value = v
}

// nudgeField moves a field by its step. Values never go below zero.
func nudgeField(f *field, dir int) {
	f.value += float64(dir) * f.step
	if f.value < 0 {
		f.value = 0
	}
}

// renderFields renders an editable field list with cursor highlight,
// matching the settings tab row style.
func renderFields(fields []field, cursor int, editing bool, input textinput.Model) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	selectedValueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	var b strings.Builder
	for i, f := range fields {
		if editing && i == cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-16s ", f.label)))
			b.WriteString(input.View())
			b.WriteString("\n")
			continue
		}

		if i == cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-16s ", f.label)))
			b.WriteString(selectedValueStyle.Render(f.display()))
		} else {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-16s ", f.label)))
			b.WriteString(valueStyle.Render(f.display()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("[j/k] field  [Enter] edit  [+/-] nudge  [s]ave  [d]efaults"))

	return b.String()
}

// inputCardWidth splits the content width into the input column and the
// results column for the calculator tabs.
func inputCardWidth(cw int) (inputW, resultW int) {
	inputW = cw * 2 / 5
	if inputW < 34 {
		inputW = 34
	}
	if inputW > 48 {
		inputW = 48
	}
	resultW = cw - inputW
	if resultW < 20 {
		resultW = 20
	}
	return inputW, resultW
}
