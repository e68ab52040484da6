// Package compose runs one render pass of the stacked bar charts: it lays out
// every series, hands the geometry to a Renderer, records the element each
// segment was drawn as, builds the shared legend and, when a highlight is
// active, asks the renderer for the tooltip.
//
// The Registry of drawn elements is created fresh for each pass and bound to
// the interaction controller once the pass has drawn every segment, so hover
// lookups always resolve against the most recent pass.
package compose

import (
	"github.com/atomicstack/tmux-stackbar/internal/chart"
	"github.com/atomicstack/tmux-stackbar/internal/interaction"
	"github.com/atomicstack/tmux-stackbar/internal/logging/events"
	"github.com/atomicstack/tmux-stackbar/internal/theme"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultBarThickness is the bar thickness in pixels when none is configured.
const DefaultBarThickness = 16

// Header is the per-series line drawn above a bar.
type Header struct {
	Title        string
	Display      chart.Display
	BarThickness int
	HasData      bool
}

// Highlight tells the renderer how a segment relates to the active highlight.
type Highlight struct {
	// Active is set for every segment while any highlight is showing.
	Active bool
	// Selected is set for the segments whose label is the active key.
	Selected bool
}

// Dimmed reports whether the segment should be drawn de-emphasised.
func (h Highlight) Dimmed() bool {
	return h.Active && !h.Selected
}

// Tooltip is the content shown next to the active element.
type Tooltip struct {
	Key   string
	Value float64
	Color string
}

// Text returns the formatted value.
func (t Tooltip) Text() string {
	return chart.FormatValue(t.Value)
}

// Renderer is the drawing surface the composer targets.
type Renderer interface {
	DrawSeries(index int, header Header)
	DrawSegment(index int, g chart.Geometry, h Highlight) interaction.Element
	DrawLegend(entries []chart.LegendEntry)
	DrawTooltip(anchor interaction.Element, tip Tooltip)
}

// Options configures a Composer.
type Options struct {
	BarThickness int
	Series       []chart.Series
	// Suppress holds the per-series compact display flags aligned by index.
	// When nil the flags carried by Series are used.
	Suppress []bool
	Palette  theme.Palette
	Picker   chart.Picker
}

// Frame is the outcome of a render pass.
type Frame struct {
	Layouts  []chart.Layout
	Legend   []chart.LegendEntry
	Registry *interaction.Registry
	State    interaction.State
}

// Composer orchestrates layout, legend and tooltip for a set of series.
type Composer struct {
	opts       Options
	assigner   *chart.Assigner
	controller *interaction.Controller
	filter     string
}

// New creates a composer. A nil controller gets a fresh one.
func New(opts Options, controller *interaction.Controller) *Composer {
	if controller == nil {
		controller = interaction.NewController()
	}
	c := &Composer{controller: controller}
	c.configure(opts)
	return c
}

func (c *Composer) configure(opts Options) {
	if opts.BarThickness <= 0 {
		opts.BarThickness = DefaultBarThickness
	}
	if opts.Palette.Entries == nil && opts.Palette.Neutral == "" {
		opts.Palette = theme.DefaultPalette()
	}
	c.opts = opts
	c.assigner = chart.NewAssigner(opts.Palette.Candidates(), opts.Picker)
}

// Controller exposes the interaction controller for event dispatch.
func (c *Composer) Controller() *interaction.Controller {
	return c.controller
}

// Options returns the effective configuration.
func (c *Composer) Options() Options {
	return c.opts
}

// SetSeries replaces the data. The active highlight is dropped since its key
// may no longer exist.
func (c *Composer) SetSeries(series []chart.Series, suppress []bool) {
	opts := c.opts
	opts.Series = series
	opts.Suppress = suppress
	c.configure(opts)
	c.controller.Reset()
}

// SetBarThickness updates the bar thickness; non-positive values restore the default.
func (c *Composer) SetBarThickness(px int) {
	opts := c.opts
	opts.BarThickness = px
	c.configure(opts)
}

// SetLegendFilter limits the drawn legend to entries fuzzy-matching filter.
func (c *Composer) SetLegendFilter(filter string) {
	c.filter = filter
}

// LegendFilter returns the active legend filter.
func (c *Composer) LegendFilter() string {
	return c.filter
}

func (c *Composer) suppressFlags() []bool {
	if c.opts.Suppress != nil {
		return c.opts.Suppress
	}
	return chart.SuppressFlags(c.opts.Series)
}

// Render performs one pass against r.
func (c *Composer) Render(r Renderer) Frame {
	layouts := chart.ComputeAll(c.opts.Series, c.suppressFlags(), c.assigner, c.opts.Palette.Neutral)
	state := c.controller.State()

	segments := 0
	for _, l := range layouts {
		segments += len(l.Geometries)
	}
	registry := interaction.NewRegistry(segments)

	for _, l := range layouts {
		r.DrawSeries(l.Index, Header{
			Title:        l.Title,
			Display:      l.Display,
			BarThickness: c.opts.BarThickness,
			HasData:      l.HasData(),
		})
		for _, g := range l.Geometries {
			h := Highlight{}
			if !g.Placeholder {
				h.Active = state.Active()
				h.Selected = h.Active && g.Label == state.Key
			}
			el := r.DrawSegment(l.Index, g, h)
			if !g.Placeholder {
				registry.Add(g.Label, el)
			}
		}
	}

	legend := filterLegend(chart.BuildLegend(layouts, c.controller), c.filter)
	r.DrawLegend(legend)

	c.controller.Bind(registry)
	state = c.controller.State()
	if state.Active() && state.Anchor != nil {
		r.DrawTooltip(state.Anchor, Tooltip{Key: state.Key, Value: state.Value, Color: state.Color})
	}

	events.Chart.Compose(len(layouts), segments, len(legend))
	return Frame{
		Layouts:  layouts,
		Legend:   legend,
		Registry: registry,
		State:    state,
	}
}

func filterLegend(entries []chart.LegendEntry, filter string) []chart.LegendEntry {
	if filter == "" || len(entries) == 0 {
		return entries
	}
	out := make([]chart.LegendEntry, 0, len(entries))
	for _, e := range entries {
		if fuzzy.MatchFold(filter, e.Title) {
			out = append(out, e)
		}
	}
	return out
}
