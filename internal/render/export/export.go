// Package export draws a composer pass onto a go-chart renderer so the bars
// and legend can be written out as SVG or PNG.
//
// Draw calls are recorded first and replayed once the pass is complete,
// because go-chart renderers need their final canvas size up front.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/tmux-stackbar/internal/chart"
	"github.com/atomicstack/tmux-stackbar/internal/compose"
	"github.com/atomicstack/tmux-stackbar/internal/interaction"
	"github.com/atomicstack/tmux-stackbar/internal/logging/events"
	"github.com/atomicstack/tmux-stackbar/internal/theme"
	colorful "github.com/lucasb-eyer/go-colorful"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format selects the output encoding.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat validates a format name. An empty name defaults to SVG.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want svg or png)", name)
	}
}

// FormatForPath infers the format from a file extension, falling back to def.
func FormatForPath(path string, def Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return SVG
	case ".png":
		return PNG
	default:
		return def
	}
}

const (
	margin       = 16
	headerHeight = 20
	seriesGap    = 12
	legendGap    = 8
	legendRow    = 18
	swatchSize   = 10
	fontSize     = 10.0
	textColor    = "#323130"
)

type opKind int

const (
	opRect opKind = iota
	opText
	opTextRight
)

type op struct {
	kind  opKind
	x, y  int
	w, h  int
	color string
	text  string
}

// Surface records draw calls from a composer pass.
type Surface struct {
	width   int
	palette theme.Palette
	ops     []op
	y       int
	barY    int
	barH    int
}

// NewSurface creates a surface width pixels wide.
func NewSurface(width int, palette theme.Palette) *Surface {
	if width < 4*margin {
		width = 4 * margin
	}
	return &Surface{width: width, palette: palette, y: margin}
}

func (s *Surface) plotWidth() int {
	return s.width - 2*margin
}

// DrawSeries writes the title and compact display above the next bar.
func (s *Surface) DrawSeries(index int, h compose.Header) {
	if index > 0 {
		s.y += seriesGap
	}
	display := h.Display.Text()
	if h.Title != "" || display != "" {
		baseline := s.y + headerHeight - 6
		if h.Title != "" {
			s.ops = append(s.ops, op{kind: opText, x: margin, y: baseline, color: textColor, text: h.Title})
		}
		if display != "" {
			s.ops = append(s.ops, op{kind: opTextRight, x: s.width - margin, y: baseline, color: textColor, text: display})
		}
		s.y += headerHeight
	}
	s.barY = s.y
	s.barH = h.BarThickness
	if s.barH <= 0 {
		s.barH = compose.DefaultBarThickness
	}
	s.y += s.barH
}

// DrawSegment records the segment rectangle and returns its op index.
func (s *Surface) DrawSegment(index int, g chart.Geometry, h compose.Highlight) interaction.Element {
	plot := float64(s.plotWidth())
	x0 := margin + int(g.StartPercent/100*plot+0.5)
	x1 := margin + int(g.End()/100*plot+0.5)
	s.ops = append(s.ops, op{
		kind:  opRect,
		x:     x0,
		y:     s.barY,
		w:     x1 - x0,
		h:     s.barH,
		color: s.color(g.Color),
	})
	return len(s.ops) - 1
}

// DrawLegend records a swatch and label per entry.
func (s *Surface) DrawLegend(entries []chart.LegendEntry) {
	if len(entries) == 0 {
		return
	}
	s.y += legendGap
	for _, e := range entries {
		s.ops = append(s.ops, op{
			kind:  opRect,
			x:     margin,
			y:     s.y + (legendRow-swatchSize)/2,
			w:     swatchSize,
			h:     swatchSize,
			color: s.color(e.Color),
		})
		s.ops = append(s.ops, op{
			kind:  opText,
			x:     margin + swatchSize + 6,
			y:     s.y + legendRow - 5,
			color: textColor,
			text:  e.Title + "  " + chart.FormatValue(e.Value),
		})
		s.y += legendRow
	}
}

// DrawTooltip is a no-op; exported images carry no hover state.
func (s *Surface) DrawTooltip(interaction.Element, compose.Tooltip) {}

// Height returns the canvas height needed for the recorded ops.
func (s *Surface) Height() int {
	return s.y + margin
}

func (s *Surface) color(c string) string {
	if _, err := colorful.Hex(c); err == nil {
		return c
	}
	if _, err := colorful.Hex(s.palette.Neutral); err == nil {
		return s.palette.Neutral
	}
	return textColor
}

// Save replays the recorded ops on a go-chart renderer and encodes the result.
func (s *Surface) Save(w io.Writer, format Format) error {
	provider := gochart.SVG
	if format == PNG {
		provider = gochart.PNG
	}
	r, err := provider(s.width, s.Height())
	if err != nil {
		return fmt.Errorf("create %s renderer: %w", format, err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	r.SetFont(font)
	r.SetFontSize(fontSize)

	for _, o := range s.ops {
		c := drawing.ColorFromHex(strings.TrimPrefix(o.color, "#"))
		switch o.kind {
		case opRect:
			if o.w <= 0 || o.h <= 0 {
				continue
			}
			r.SetFillColor(c)
			r.SetStrokeColor(c)
			r.SetStrokeWidth(0)
			r.MoveTo(o.x, o.y)
			r.LineTo(o.x+o.w, o.y)
			r.LineTo(o.x+o.w, o.y+o.h)
			r.LineTo(o.x, o.y+o.h)
			r.Close()
			r.Fill()
		case opText, opTextRight:
			r.SetFontColor(c)
			x := o.x
			if o.kind == opTextRight {
				x -= r.MeasureText(o.text).Width()
			}
			r.Text(o.text, x, o.y)
		}
		r.ResetStyle()
		r.SetFont(font)
		r.SetFontSize(fontSize)
	}
	if err := r.Save(w); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// Write renders one pass of c and encodes it to w.
func Write(w io.Writer, c *compose.Composer, width int, format Format) error {
	surface := NewSurface(width, c.Options().Palette)
	c.Render(surface)
	return surface.Save(w, format)
}

// WriteFile renders one pass of c into path.
func WriteFile(path string, c *compose.Composer, width int, format Format) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", cerr)
		}
	}()
	if err := Write(f, c, width, format); err != nil {
		return err
	}
	events.App.Export(path, string(format), len(c.Options().Series))
	return nil
}
