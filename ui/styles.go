package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	timeStyle     lipgloss.Style
	dateStyle     lipgloss.Style
	ruleStyle     lipgloss.Style
	statusStyle   lipgloss.Style
	speakingStyle lipgloss.Style
	advisoryStyle lipgloss.Style
	helpStyle     lipgloss.Style
	spinnerStyle  lipgloss.Style
)

func init() {
	// The Bengali glyphs carry the screen; color stays restrained and
	// follows the terminal background.
	if termenv.HasDarkBackground() {
		timeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
		dateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		ruleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("247"))
		speakingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		advisoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Italic(true)
		helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		return
	}

	timeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28"))
	dateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("235"))
	ruleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	speakingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("166"))
	advisoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Italic(true)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("166"))
}
