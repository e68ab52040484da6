package dispatcher

import (
	"github.com/atomicstack/tmux-stackbar/internal/backend"
	"github.com/atomicstack/tmux-stackbar/internal/chart"
	"github.com/atomicstack/tmux-stackbar/internal/logging/events"
	"github.com/atomicstack/tmux-stackbar/internal/state"
)

type Result struct {
	ChartsUpdated    bool
	BarHeightChanged bool
}

type Dispatcher struct {
	charts state.ChartStore
}

func New(charts state.ChartStore) *Dispatcher {
	return &Dispatcher{charts: charts}
}

// Handle applies a backend event to the chart store. Failed loads leave the
// previous document in place.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Chart.ReloadError(evt.Path, evt.Err)
		return res
	}
	switch evt.Kind {
	case backend.KindDocument:
		doc, ok := evt.Data.(chart.Document)
		if !ok {
			return res
		}
		d.charts.SetSeries(doc.Charts)
		if doc.BarHeight != d.charts.BarHeight() {
			d.charts.SetBarHeight(doc.BarHeight)
			res.BarHeightChanged = true
		}
		res.ChartsUpdated = true
		events.Chart.Reload(evt.Path, len(doc.Charts))
	}
	return res
}
