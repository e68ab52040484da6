package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	ClearFilter key.Binding
	Backspace   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc", "ctrl+u"),
			key.WithHelp("esc", "clear filter"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("⌫", "edit filter"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.ClearFilter}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Backspace}}
}
