package events

import "github.com/atomicstack/tmux-stackbar/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) LegendSelect(title string, series int) {
	logging.Trace("ui.legend.select", map[string]interface{}{"title": title, "series": series})
}

func (UITracer) Quit(reason string) {
	logging.Trace("ui.quit", map[string]interface{}{"reason": reason})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}
