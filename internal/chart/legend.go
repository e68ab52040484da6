package chart

// Hoverer receives highlight events from legend entries.
type Hoverer interface {
	Hover(key string, value float64, color string) bool
	Leave() bool
}

// LegendEntry is one row of the shared legend.
type LegendEntry struct {
	Title       string
	Color       string
	Value       float64
	SeriesIndex int

	OnHover    func()
	OnHoverEnd func()
	// OnSelect fires on click and highlights like a hover.
	OnSelect func()
}

// BuildLegend derives legend entries from computed layouts in series order
// then segment order. Labels are not de-duplicated across series.
func BuildLegend(layouts []Layout, h Hoverer) []LegendEntry {
	var entries []LegendEntry
	for _, l := range layouts {
		if !l.Policy.LegendPerSegment {
			continue
		}
		for _, seg := range l.Segments {
			entries = append(entries, newLegendEntry(l.Index, seg, h))
		}
	}
	return entries
}

func newLegendEntry(series int, seg ResolvedSegment, h Hoverer) LegendEntry {
	label, value, color := seg.Label, seg.Value, seg.Color
	entry := LegendEntry{
		Title:       label,
		Color:       color,
		Value:       value,
		SeriesIndex: series,
	}
	if h == nil {
		entry.OnHover = func() {}
		entry.OnHoverEnd = func() {}
		entry.OnSelect = func() {}
		return entry
	}
	hover := func() { h.Hover(label, value, color) }
	entry.OnHover = hover
	entry.OnSelect = hover
	entry.OnHoverEnd = func() { h.Leave() }
	return entry
}
