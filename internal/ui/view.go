package ui

import (
	"strings"

	"github.com/atomicstack/tmux-stackbar/internal/render/terminal"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const emptyMessage = "no charts loaded"

// View renders the output of the last pass.
func (m *Model) View() string {
	return m.rendered
}

func (m *Model) compose(canvas *terminal.Canvas) string {
	body := canvas.Lines()
	if len(body) == 0 {
		body = []string{render(styles.Info, emptyMessage)}
	}

	var tail []string
	if m.errMsg != "" {
		tail = append(tail, render(styles.Error, m.truncate(m.errMsg)))
	}
	if filter := m.composer.LegendFilter(); filter != "" {
		style := styles.Filter
		if len(m.frame.Legend) == 0 {
			style = styles.FilterPending
		}
		tail = append(tail, render(styles.FilterPrompt, "filter: ")+render(style, filter))
	}
	if m.showFooter {
		tail = append(tail, render(styles.Footer, m.help.View(m.keys)))
	}

	if m.height > 0 {
		room := m.height - len(tail)
		if room < 0 {
			room = 0
		}
		if len(body) > room {
			body = body[:room]
		}
		if len(tail) > m.height {
			tail = tail[len(tail)-m.height:]
		}
	}
	return strings.Join(append(body, tail...), "\n")
}

func (m *Model) truncate(s string) string {
	width := m.width
	if width <= 0 {
		width = m.canvas.Width()
	}
	return ansi.Truncate(s, width, "…")
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
