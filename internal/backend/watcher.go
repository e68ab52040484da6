package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/tmux-stackbar/internal/chart"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindDocument Kind = iota
)

// Event conveys a freshly loaded document or the error that prevented it.
type Event struct {
	Kind Kind
	Path string
	Data interface{}
	Err  error
}

// Loader reads the chart document at path.
type Loader func(path string) (chart.Document, error)

// Watcher polls a chart data file and publishes an event whenever its
// modification time or size changes.
type Watcher struct {
	path     string
	interval time.Duration
	load     Loader

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts polling path every interval. The first poll always
// emits, so consumers receive the initial document without a separate load.
func NewWatcher(path string, interval time.Duration, load Loader) *Watcher {
	if load == nil {
		load = chart.LoadFile
	}
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		load:     load,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.startDocumentPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Stop cancels the watcher. The poller exits after its current load
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

type fileStamp struct {
	modTime time.Time
	size    int64
	missing bool
}

func (w *Watcher) stamp() fileStamp {
	info, err := os.Stat(w.path)
	if err != nil {
		return fileStamp{missing: true}
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size()}
}

func (w *Watcher) startDocumentPoller() {
	throttle := newThrottle(w.interval / 2)
	var last fileStamp
	first := true
	w.wg.Add(1)
	go w.poll(KindDocument, func(ctx context.Context) (interface{}, bool, error) {
		if !throttle.wait(ctx) {
			return nil, false, nil
		}
		current := w.stamp()
		if !first && current == last {
			return nil, false, nil
		}
		first = false
		last = current
		doc, err := w.load(w.path)
		return doc, true, err
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, bool, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, changed, err := fetch(w.ctx)
		if !changed {
			return true
		}
		evt := Event{Kind: kind, Path: w.path, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
