package terminal

import (
	"math"
	"strings"

	"github.com/atomicstack/tmux-stackbar/internal/chart"
	"github.com/atomicstack/tmux-stackbar/internal/compose"
	"github.com/atomicstack/tmux-stackbar/internal/format/table"
	"github.com/atomicstack/tmux-stackbar/internal/interaction"
	"github.com/atomicstack/tmux-stackbar/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth = 80
	// cellHeightPx approximates one terminal row in pixels when converting
	// the configured bar thickness.
	cellHeightPx = 16
	legendSwatch = "■"
	dimAmount    = 0.6
)

// Rect is a cell rectangle on the canvas. It is the element handle returned
// for drawn segments.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type segmentHit struct {
	rect     Rect
	geometry chart.Geometry
}

type bar struct {
	y      int
	rows   []strings.Builder
	cursor int
}

type tooltipOp struct {
	tip  compose.Tooltip
	box  []string
	area Rect
}

// Canvas renders one composer pass into terminal lines and keeps the cell
// rectangles needed to hit-test mouse events against it.
type Canvas struct {
	width   int
	styles  *theme.Styles
	palette theme.Palette

	lines    []string
	current  *bar
	segments []segmentHit

	legend      []chart.LegendEntry
	legendStart int
	tooltip     *tooltipOp
}

// New creates a canvas width cells wide. Nil styles use the theme defaults.
func New(width int, styles *theme.Styles, palette theme.Palette) *Canvas {
	if width <= 0 {
		width = defaultWidth
	}
	if styles == nil {
		styles = theme.Default()
	}
	return &Canvas{width: width, styles: styles, palette: palette, legendStart: -1}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// RowsFor converts a bar thickness in pixels to terminal rows.
func RowsFor(px int) int {
	rows := (px + cellHeightPx - 1) / cellHeightPx
	if rows < 1 {
		return 1
	}
	return rows
}

// DrawSeries starts a new bar, writing its header line first.
func (c *Canvas) DrawSeries(index int, header compose.Header) {
	c.flushBar()
	if index > 0 {
		c.lines = append(c.lines, "")
	}
	if line := c.headerLine(header); line != "" {
		c.lines = append(c.lines, line)
	}
	c.current = &bar{
		y:    len(c.lines),
		rows: make([]strings.Builder, RowsFor(header.BarThickness)),
	}
}

func (c *Canvas) headerLine(h compose.Header) string {
	display := h.Display.Text()
	if h.Title == "" && display == "" {
		return ""
	}
	displayW := lipgloss.Width(display)
	titleRoom := c.width - displayW - 1
	if display == "" {
		titleRoom = c.width
	}
	title := h.Title
	if titleRoom < 1 {
		title = ""
	} else if lipgloss.Width(title) > titleRoom {
		title = truncate.StringWithTail(title, uint(titleRoom), "…")
	}
	gap := c.width - lipgloss.Width(title) - displayW
	if gap < 1 {
		gap = 1
	}
	out := render(c.styles.Title, title)
	if display != "" {
		out += strings.Repeat(" ", gap) + render(c.styles.Display, display)
	}
	return out
}

// DrawSegment fills the segment's columns on every row of the current bar.
func (c *Canvas) DrawSegment(index int, g chart.Geometry, h compose.Highlight) interaction.Element {
	if c.current == nil {
		c.DrawSeries(index, compose.Header{BarThickness: cellHeightPx})
	}
	b := c.current
	x0 := c.column(g.StartPercent)
	x1 := c.column(g.End())
	if x0 < b.cursor {
		x0 = b.cursor
	}
	if x1 < x0 {
		x1 = x0
	}
	w := x1 - x0

	color := g.Color
	if h.Dimmed() {
		color = blend(color, c.palette.Background, dimAmount)
	}
	style := lipgloss.NewStyle().Background(lipgloss.Color(color))
	fill := ""
	if w > 0 {
		fill = style.Render(strings.Repeat(" ", w))
	}
	pad := strings.Repeat(" ", x0-b.cursor)
	for i := range b.rows {
		b.rows[i].WriteString(pad)
		b.rows[i].WriteString(fill)
	}
	b.cursor = x1

	rect := Rect{X: x0, Y: b.y, W: w, H: len(b.rows)}
	if !g.Placeholder {
		c.segments = append(c.segments, segmentHit{rect: rect, geometry: g})
	}
	return rect
}

// column maps a percentage to a cell column, rounding to the nearest edge so
// adjacent segments tile without gaps.
func (c *Canvas) column(percent float64) int {
	col := int(math.Round(percent / 100 * float64(c.width)))
	if col < 0 {
		return 0
	}
	if col > c.width {
		return c.width
	}
	return col
}

func (c *Canvas) flushBar() {
	if c.current == nil {
		return
	}
	for i := range c.current.rows {
		c.lines = append(c.lines, c.current.rows[i].String())
	}
	c.current = nil
}

// DrawLegend records the legend entries; they are laid out one per row below
// the bars when the canvas is rendered.
func (c *Canvas) DrawLegend(entries []chart.LegendEntry) {
	c.flushBar()
	c.legend = entries
	if len(entries) == 0 {
		c.legendStart = -1
		return
	}
	c.lines = append(c.lines, "")
	c.legendStart = len(c.lines)
	for range entries {
		c.lines = append(c.lines, "")
	}
}

// DrawTooltip records the tooltip overlay anchored under a segment. Anchors
// that are not canvas rectangles are ignored. When the box would sit on the
// legend it moves right of the legend text if there is room.
func (c *Canvas) DrawTooltip(anchor interaction.Element, tip compose.Tooltip) {
	rect, ok := anchor.(Rect)
	if !ok {
		return
	}
	content := render(c.styles.TooltipKey, tip.Key) + "\n" + render(c.styles.TooltipValue, tip.Text())
	box := strings.Split(render(c.styles.TooltipBox, content), "\n")
	boxW := 0
	for _, l := range box {
		if w := lipgloss.Width(l); w > boxW {
			boxW = w
		}
	}
	area := Rect{X: rect.X, Y: rect.Y + rect.H, W: boxW, H: len(box)}
	if area.X+boxW > c.width {
		area.X = c.width - boxW
	}
	if area.X < 0 {
		area.X = 0
	}
	if c.overlapsLegend(area) {
		if lx := c.legendWidth() + 1; area.X < lx && lx+boxW <= c.width {
			area.X = lx
		}
	}
	c.tooltip = &tooltipOp{tip: tip, box: box, area: area}
}

func (c *Canvas) overlapsLegend(r Rect) bool {
	if c.legendStart < 0 {
		return false
	}
	return r.Y < c.legendStart+len(c.legend) && r.Y+r.H > c.legendStart
}

func (c *Canvas) legendWidth() int {
	width := 0
	for _, row := range c.legendRows("") {
		if w := lipgloss.Width(row); w > width {
			width = w
		}
	}
	return width
}

// TooltipAt reports whether (x, y) lies on the tooltip box. The box covers
// whatever was drawn beneath it, so SegmentAt and LegendAt miss there too.
func (c *Canvas) TooltipAt(x, y int) bool {
	return c.tooltip != nil && c.tooltip.area.Contains(x, y)
}

// SegmentAt returns the geometry of the real segment covering (x, y).
func (c *Canvas) SegmentAt(x, y int) (chart.Geometry, bool) {
	if c.TooltipAt(x, y) {
		return chart.Geometry{}, false
	}
	for _, s := range c.segments {
		if s.rect.Contains(x, y) {
			return s.geometry, true
		}
	}
	return chart.Geometry{}, false
}

// LegendAt returns the index of the legend entry on row y.
func (c *Canvas) LegendAt(x, y int) (int, bool) {
	if c.legendStart < 0 || x < 0 || x >= c.width || c.TooltipAt(x, y) {
		return 0, false
	}
	idx := y - c.legendStart
	if idx < 0 || idx >= len(c.legend) {
		return 0, false
	}
	return idx, true
}

// Height returns the number of lines rendered so far.
func (c *Canvas) Height() int {
	c.flushBar()
	return len(c.lines)
}

// Lines returns the finished lines, including legend rows and the tooltip
// overlay.
func (c *Canvas) Lines() []string {
	c.flushBar()
	lines := append([]string(nil), c.lines...)
	activeKey := ""
	if c.tooltip != nil {
		activeKey = c.tooltip.tip.Key
	}
	for i, row := range c.legendRows(activeKey) {
		lines[c.legendStart+i] = row
	}
	if c.tooltip != nil {
		lines = c.overlayTooltip(lines, *c.tooltip)
	}
	return lines
}

// String joins the rendered lines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

func (c *Canvas) legendRows(activeKey string) []string {
	if len(c.legend) == 0 {
		return nil
	}
	rows := make([][]string, len(c.legend))
	for i, e := range c.legend {
		rows[i] = []string{e.Title, chart.FormatValue(e.Value)}
	}
	text := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	out := make([]string, len(text))
	room := c.width - lipgloss.Width(legendSwatch) - 1
	for i, e := range c.legend {
		titleStyle, valueStyle := c.styles.LegendTitle, c.styles.LegendValue
		if activeKey != "" && e.Title == activeKey {
			titleStyle, valueStyle = c.styles.LegendActive, c.styles.LegendActive
		}
		body := text[i]
		value := rows[i][1]
		var styled string
		switch {
		case room > 0 && lipgloss.Width(body) > room:
			styled = render(titleStyle, truncate.StringWithTail(body, uint(room), "…"))
		case strings.HasSuffix(body, value):
			styled = render(titleStyle, strings.TrimSuffix(body, value)) + render(valueStyle, value)
		default:
			styled = render(titleStyle, body)
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render(legendSwatch)
		out[i] = swatch + " " + styled
	}
	return out
}

func (c *Canvas) overlayTooltip(lines []string, op tooltipOp) []string {
	x, y, boxW := op.area.X, op.area.Y, op.area.W
	for len(lines) < y+len(op.box) {
		lines = append(lines, "")
	}
	for i, boxLine := range op.box {
		row := lines[y+i]
		if w := lipgloss.Width(row); w < x+boxW {
			row += strings.Repeat(" ", x+boxW-w)
		}
		lines[y+i] = ansi.Truncate(row, x, "") + boxLine + ansi.TruncateLeft(row, x+boxW, "")
	}
	return lines
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
