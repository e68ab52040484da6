package ui

import (
	"unicode"

	"github.com/atomicstack/tmux-stackbar/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	filter := m.composer.LegendFilter()
	switch {
	case keyMsg.Type == tea.KeyCtrlC:
		return m.quit("interrupt")
	case key.Matches(keyMsg, m.keys.ClearFilter):
		if filter != "" {
			m.setFilter("")
			events.Filter.Cleared()
			return nil
		}
		if keyMsg.Type == tea.KeyEsc {
			return m.quit("escape")
		}
		return nil
	case key.Matches(keyMsg, m.keys.Quit) && filter == "":
		return m.quit("key")
	case key.Matches(keyMsg, m.keys.Backspace):
		m.removeFilterRune()
		return nil
	}
	m.handleTextInput(keyMsg)
	return nil
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	filter := m.composer.LegendFilter() + text
	m.setFilter(filter)
	events.Filter.Append(filter)
	return true
}

func (m *Model) removeFilterRune() bool {
	runes := []rune(m.composer.LegendFilter())
	if len(runes) == 0 {
		return false
	}
	filter := string(runes[:len(runes)-1])
	m.setFilter(filter)
	events.Filter.Backspace(filter)
	return true
}

// setFilter narrows the legend. The highlight is kept; only legend rows are
// filtered, never bar segments.
func (m *Model) setFilter(filter string) {
	m.composer.SetLegendFilter(filter)
}

func (m *Model) quit(reason string) tea.Cmd {
	events.UI.Quit(reason)
	return tea.Quit
}
