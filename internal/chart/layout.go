package chart

import "math"

// Compute lays out a series as proportional segment geometry.
//
// Segments are placed left to right in input order with each start at the
// running sum of the previous widths. A series without segments, or whose
// values total zero, yields a single full-width placeholder in the neutral
// color. Negative and non-finite values count as zero everywhere, including
// the legend and compact display. Widths are not corrected for floating point
// drift.
func Compute(s Series, suppress bool, assign *Assigner, neutral string) Layout {
	segments := assign.ResolveSeries(s)
	total := 0.0
	for i := range segments {
		segments[i].Value = clampValue(segments[i].Value)
		total += segments[i].Value
	}
	out := Layout{
		Title:    s.Title,
		Segments: segments,
		Total:    total,
		Policy:   PolicyFor(len(segments), suppress),
	}
	if len(segments) == 0 || total <= 0 {
		out.Geometries = []Geometry{placeholder(neutral)}
		return out
	}
	out.Geometries = make([]Geometry, len(segments))
	start := 0.0
	for i, seg := range segments {
		width := seg.Value / total * 100
		out.Geometries[i] = Geometry{
			Label:        seg.Label,
			Value:        seg.Value,
			StartPercent: start,
			WidthPercent: width,
			Color:        seg.Color,
		}
		start += width
	}
	out.Display = displayFor(out.Policy, segments, total)
	return out
}

// ComputeAll lays out every series, pairing each with its suppression flag.
func ComputeAll(series []Series, suppress []bool, assign *Assigner, neutral string) []Layout {
	layouts := make([]Layout, len(series))
	for i, s := range series {
		layouts[i] = Compute(s, SuppressFlag(suppress, i), assign, neutral)
		layouts[i].Index = i
	}
	return layouts
}

func placeholder(neutral string) Geometry {
	return Geometry{
		StartPercent: 0,
		WidthPercent: 100,
		Color:        neutral,
		Placeholder:  true,
	}
}

func clampValue(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
