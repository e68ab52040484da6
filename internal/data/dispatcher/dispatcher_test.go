package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/tmux-stackbar/internal/backend"
	"github.com/atomicstack/tmux-stackbar/internal/chart"
	"github.com/atomicstack/tmux-stackbar/internal/state"
)

func TestHandleDocumentUpdatesStore(t *testing.T) {
	store := state.NewChartStore()
	d := New(store)
	doc := chart.Document{
		BarHeight: 32,
		Charts:    []chart.Series{{Title: "a", Segments: []chart.Segment{{Label: "x", Value: 1}}}},
	}
	res := d.Handle(backend.Event{Kind: backend.KindDocument, Path: "charts.yaml", Data: doc})
	if !res.ChartsUpdated || !res.BarHeightChanged {
		t.Fatalf("unexpected result %#v", res)
	}
	if got := store.Series(); len(got) != 1 || got[0].Title != "a" {
		t.Fatalf("unexpected store contents %#v", got)
	}
	if store.BarHeight() != 32 {
		t.Fatalf("unexpected bar height %d", store.BarHeight())
	}

	res = d.Handle(backend.Event{Kind: backend.KindDocument, Path: "charts.yaml", Data: doc})
	if res.BarHeightChanged {
		t.Fatalf("expected unchanged bar height on second load")
	}
}

func TestHandleErrorKeepsPreviousDocument(t *testing.T) {
	store := state.NewChartStore()
	store.SetSeries([]chart.Series{{Title: "kept"}})
	d := New(store)
	res := d.Handle(backend.Event{Kind: backend.KindDocument, Err: errors.New("bad yaml")})
	if res.ChartsUpdated {
		t.Fatalf("expected no update on error")
	}
	if got := store.Series(); len(got) != 1 || got[0].Title != "kept" {
		t.Fatalf("expected previous series kept, got %#v", got)
	}
}

func TestStoreClonesSeries(t *testing.T) {
	store := state.NewChartStore()
	series := []chart.Series{{Segments: []chart.Segment{{Label: "x", Value: 1}}}}
	store.SetSeries(series)
	series[0].Segments[0].Value = 99
	if got := store.Series()[0].Segments[0].Value; got != 1 {
		t.Fatalf("expected store isolated from caller mutation, got %v", got)
	}
}
