package events

import "github.com/atomicstack/tmux-stackbar/internal/logging"

type ChartTracer struct{}

var Chart = ChartTracer{}

func (ChartTracer) Hover(key string, value float64, anchored bool) {
	logging.Trace("chart.hover", map[string]interface{}{"key": key, "value": value, "anchored": anchored})
}

func (ChartTracer) Leave(key string) {
	logging.Trace("chart.leave", map[string]interface{}{"key": key})
}

func (ChartTracer) Compose(series, segments, legend int) {
	logging.Trace("chart.compose", map[string]interface{}{"series": series, "segments": segments, "legend": legend})
}

func (ChartTracer) Reload(path string, charts int) {
	logging.Trace("chart.reload", map[string]interface{}{"path": path, "charts": charts})
}

func (ChartTracer) ReloadError(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("chart.reload.error", map[string]interface{}{"path": path, "error": err.Error()})
}
