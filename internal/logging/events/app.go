package events

import "github.com/atomicstack/tmux-stackbar/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Export(path, format string, charts int) {
	logging.Trace("app.export", map[string]interface{}{"path": path, "format": format, "charts": charts})
}
