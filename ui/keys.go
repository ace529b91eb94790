package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Speak key.Binding
	Copy  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Speak: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space", "speak the time"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy the phrase"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
