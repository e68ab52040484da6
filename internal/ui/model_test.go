package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-stackbar/internal/backend"
	"github.com/atomicstack/tmux-stackbar/internal/chart"
	"github.com/atomicstack/tmux-stackbar/internal/interaction"
	"github.com/atomicstack/tmux-stackbar/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func usageSeries() []chart.Series {
	return []chart.Series{{
		Title: "Usage",
		Segments: []chart.Segment{
			{Label: "a", Value: 20},
			{Label: "b", Value: 30},
			{Label: "c", Value: 50},
		},
	}}
}

func newTestModel(series []chart.Series) *Model {
	return NewModel(Options{Width: 20, Series: series}, nil)
}

func TestNewModelRendersInitialPass(t *testing.T) {
	m := newTestModel(usageSeries())
	frame := m.Frame()
	if len(frame.Layouts) != 1 || len(frame.Legend) != 3 {
		t.Fatalf("unexpected frame %d layouts %d legend", len(frame.Layouts), len(frame.Legend))
	}
	if frame.Registry.Len() != 3 {
		t.Fatalf("expected 3 registered segments, got %d", frame.Registry.Len())
	}
	if !strings.Contains(m.View(), "Usage") {
		t.Fatalf("expected title in view, got %q", m.View())
	}
}

func TestEmptyModelShowsMessage(t *testing.T) {
	m := newTestModel(nil)
	if !strings.Contains(m.View(), emptyMessage) {
		t.Fatalf("expected empty message, got %q", m.View())
	}
}

func TestHandlerForUnknownMessage(t *testing.T) {
	m := newTestModel(usageSeries())
	if h := m.handlerFor(struct{}{}); h != nil {
		t.Fatalf("expected no handler for unknown message")
	}
	if h := m.handlerFor(&tea.WindowSizeMsg{}); h == nil {
		t.Fatalf("expected pointer messages to resolve to value handlers")
	}
	if _, cmd := m.Update(nil); cmd != nil {
		t.Fatalf("expected nil command for nil message")
	}
}

func TestWindowSizeRespectsFixedWidth(t *testing.T) {
	m := newTestModel(usageSeries())
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	if m.canvas.Width() != 20 {
		t.Fatalf("expected fixed width 20, got %d", m.canvas.Width())
	}

	free := NewModel(Options{Series: usageSeries()}, nil)
	free.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	if free.canvas.Width() != 60 {
		t.Fatalf("expected width 60 after resize, got %d", free.canvas.Width())
	}
}

func TestHeightLimitsView(t *testing.T) {
	m := NewModel(Options{Width: 20, Height: 2, Series: usageSeries()}, nil)
	if n := len(strings.Split(m.View(), "\n")); n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
}

func TestBackendReloadResetsHighlight(t *testing.T) {
	m := newTestModel(usageSeries())
	m.composer.Controller().Hover("a", 20, "#00bcf2")

	doc := chart.Document{Charts: []chart.Series{{
		Title:    "Next",
		Segments: []chart.Segment{{Label: "x", Value: 1}, {Label: "y", Value: 3}},
	}}}
	m.Update(backendEventMsg{event: backend.Event{Kind: backend.KindDocument, Path: "charts.yaml", Data: doc}})

	if m.Frame().State.Phase != interaction.Idle {
		t.Fatalf("expected highlight dropped on reload")
	}
	if got := m.Frame().Layouts[0].Title; got != "Next" {
		t.Fatalf("expected reloaded series, got %q", got)
	}
	if m.errMsg != "" {
		t.Fatalf("expected no error, got %q", m.errMsg)
	}
}

func TestBackendReloadAppliesBarHeight(t *testing.T) {
	m := newTestModel(usageSeries())
	doc := chart.Document{BarHeight: 40, Charts: usageSeries()}
	m.Update(backendEventMsg{event: backend.Event{Kind: backend.KindDocument, Data: doc}})
	if got := m.composer.Options().BarThickness; got != 40 {
		t.Fatalf("expected bar thickness 40, got %d", got)
	}

	fixed := NewModel(Options{Width: 20, BarHeight: 16, Series: usageSeries()}, nil)
	fixed.Update(backendEventMsg{event: backend.Event{Kind: backend.KindDocument, Data: doc}})
	if got := fixed.composer.Options().BarThickness; got != 16 {
		t.Fatalf("expected flag bar thickness to win, got %d", got)
	}
}

func TestBackendErrorKeepsCharts(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "stackbar.log")
	logging.Configure(logPath)
	t.Cleanup(func() { logging.Configure("") })

	m := newTestModel(usageSeries())
	m.Update(backendEventMsg{event: backend.Event{Kind: backend.KindDocument, Path: "charts.yaml", Err: errors.New("boom")}})
	if len(m.Frame().Layouts) != 1 || m.Frame().Layouts[0].Title != "Usage" {
		t.Fatalf("expected previous charts kept")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Fatalf("expected error in view, got %q", m.View())
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "reload charts.yaml: boom") {
		t.Fatalf("expected reload error logged, got %q", string(data))
	}
}

func TestBackendDoneClearsWatcher(t *testing.T) {
	w := backend.NewWatcher("missing.yaml", 0, nil)
	defer w.Stop()
	m := NewModel(Options{Width: 20}, w)
	m.Update(backendDoneMsg{})
	if m.backend != nil {
		t.Fatalf("expected backend cleared")
	}
	if m.Init() != nil {
		t.Fatalf("expected no wait command without a backend")
	}
}
