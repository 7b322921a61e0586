package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/talgya/backlot-mogul/internal/consequence"
	"github.com/talgya/backlot-mogul/internal/ledger"
)

// Color palette
var (
	colorGold  = lipgloss.Color("#E9C46A") // Headlines, hits
	colorRed   = lipgloss.Color("#E76F51") // Warnings, flops
	colorTeal  = lipgloss.Color("#2A9D8F") // Callbacks, muses
	colorMuted = lipgloss.Color("#8D99AE") // Detail text
	colorText  = lipgloss.Color("#F1FAEE")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGold).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorMuted)

	headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	warningStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	callbackStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	textStyle     = lipgloss.NewStyle().Foreground(colorText)
	quoteStyle    = lipgloss.NewStyle().Italic(true).Foreground(colorText).PaddingLeft(2)
)

// kindStyle picks the style for a consequence title.
func kindStyle(k consequence.Kind) lipgloss.Style {
	switch k {
	case consequence.KindWarning, consequence.KindWalkout:
		return warningStyle
	case consequence.KindCallback, consequence.KindMuse, consequence.KindUpgrade:
		return callbackStyle
	}
	return headlineStyle
}

func verdictStyle(v ledger.Verdict) lipgloss.Style {
	switch v {
	case ledger.VerdictFlop:
		return warningStyle
	case ledger.VerdictHit, ledger.VerdictBlockbuster:
		return headlineStyle
	case ledger.VerdictCult:
		return callbackStyle
	}
	return textStyle
}
