package ui

import (
	"github.com/atomicstack/tmux-stackbar/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Action {
	case tea.MouseActionMotion:
		m.pointerAt(mouse.X, mouse.Y)
	case tea.MouseActionPress:
		if mouse.Button == tea.MouseButtonLeft {
			m.clickAt(mouse.X, mouse.Y)
		}
	}
	return nil
}

// pointerAt hit-tests the last render pass. The tooltip box keeps the current
// highlight; segments take precedence over legend rows; anything else ends
// the highlight.
func (m *Model) pointerAt(x, y int) {
	ctrl := m.composer.Controller()
	if m.canvas == nil {
		ctrl.Leave()
		return
	}
	if m.canvas.TooltipAt(x, y) {
		return
	}
	if g, ok := m.canvas.SegmentAt(x, y); ok {
		ctrl.Hover(g.Label, g.Value, g.Color)
		return
	}
	if idx, ok := m.canvas.LegendAt(x, y); ok && idx < len(m.frame.Legend) {
		m.frame.Legend[idx].OnHover()
		return
	}
	ctrl.Leave()
}

func (m *Model) clickAt(x, y int) {
	if m.canvas == nil || m.canvas.TooltipAt(x, y) {
		return
	}
	if idx, ok := m.canvas.LegendAt(x, y); ok && idx < len(m.frame.Legend) {
		entry := m.frame.Legend[idx]
		entry.OnSelect()
		events.UI.LegendSelect(entry.Title, entry.SeriesIndex)
		return
	}
	m.pointerAt(x, y)
}
