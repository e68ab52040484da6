package ui

import (
	"reflect"

	"github.com/atomicstack/tmux-stackbar/internal/backend"
	"github.com/atomicstack/tmux-stackbar/internal/chart"
	"github.com/atomicstack/tmux-stackbar/internal/compose"
	"github.com/atomicstack/tmux-stackbar/internal/data/dispatcher"
	"github.com/atomicstack/tmux-stackbar/internal/logging/events"
	"github.com/atomicstack/tmux-stackbar/internal/render/terminal"
	"github.com/atomicstack/tmux-stackbar/internal/state"
	"github.com/atomicstack/tmux-stackbar/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the UI model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	// BarHeight overrides the document's bar thickness when > 0.
	BarHeight int
	Series    []chart.Series
	Palette   theme.Palette
	Picker    chart.Picker
}

// Model implements the Bubble Tea model for the chart viewer.
type Model struct {
	composer *compose.Composer
	canvas   *terminal.Canvas
	frame    compose.Frame
	rendered string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	barHeight   int
	showFooter  bool
	errMsg      string

	keys keyMap
	help help.Model

	handlers map[reflect.Type]msgHandler

	backend    *backend.Watcher
	charts     state.ChartStore
	dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the UI state. A nil watcher renders opts.Series only.
func NewModel(opts Options, watcher *backend.Watcher) *Model {
	palette := opts.Palette
	if palette.Entries == nil {
		palette = theme.DefaultPalette()
	}
	charts := state.NewChartStore()
	charts.SetSeries(opts.Series)
	m := &Model{
		composer: compose.New(compose.Options{
			BarThickness: opts.BarHeight,
			Series:       charts.Series(),
			Palette:      palette,
			Picker:       opts.Picker,
		}, nil),
		barHeight:  opts.BarHeight,
		showFooter: opts.ShowFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
		backend:    watcher,
		charts:     charts,
		dispatcher: dispatcher.New(charts),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	m.refresh()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	handler := m.handlerFor(msg)
	if handler == nil {
		return m, nil
	}
	cmd := handler(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	events.UI.Resize(size.Width, size.Height)
	return nil
}

// refresh runs a render pass so hit-testing and View see the same frame.
func (m *Model) refresh() {
	canvas := terminal.New(m.width, styles, m.composer.Options().Palette)
	m.frame = m.composer.Render(canvas)
	m.canvas = canvas
	m.rendered = m.compose(canvas)
}

// Composer exposes the chart composer.
func (m *Model) Composer() *compose.Composer {
	return m.composer
}

// Frame returns the most recent render pass.
func (m *Model) Frame() compose.Frame {
	return m.frame
}
