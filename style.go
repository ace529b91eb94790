package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

var keywordStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"}).
	Bold(true)

func keyword(s string) string {
	return keywordStyle.Render(s)
}

// paragraph formats help text for cobra's Long and Example fields.
func paragraph(s string) string {
	s = strings.TrimSpace(s)
	s = wordwrap.String(s, 78)
	return "\n" + indent.String(s, 2)
}
