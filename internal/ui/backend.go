package ui

import (
	"github.com/atomicstack/tmux-stackbar/internal/backend"
	"github.com/atomicstack/tmux-stackbar/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent feeds a reload into the chart store. A failed reload
// keeps the charts on screen and only reports the error.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if evt.Err != nil {
		m.errMsg = logging.Errorf("reload %s: %w", evt.Path, evt.Err).Error()
		return
	}
	m.errMsg = ""
	if res.BarHeightChanged && m.barHeight <= 0 {
		m.composer.SetBarThickness(m.charts.BarHeight())
	}
	if res.ChartsUpdated {
		m.composer.SetSeries(m.charts.Series(), nil)
	}
}
