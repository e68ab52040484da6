package chart

import "github.com/dustin/go-humanize"

// DisplayKind selects the compact figure shown beside a bar's title.
type DisplayKind int

const (
	DisplayNone DisplayKind = iota
	DisplayRatio
	DisplayNumber
)

// Display is the compact figure of a series: "value/total" or "value".
type Display struct {
	Kind  DisplayKind
	Value float64
	Total float64
}

// Text renders the display, or "" when nothing is shown.
func (d Display) Text() string {
	switch d.Kind {
	case DisplayRatio:
		return FormatValue(d.Value) + "/" + FormatValue(d.Total)
	case DisplayNumber:
		return FormatValue(d.Value)
	default:
		return ""
	}
}

// FormatValue formats a data value with thousands separators and no
// trailing zeros.
func FormatValue(v float64) string {
	return humanize.Commaf(v)
}

func displayFor(p Policy, segments []ResolvedSegment, total float64) Display {
	switch {
	case p.ShowRatio && len(segments) == 2:
		return Display{Kind: DisplayRatio, Value: segments[0].Value, Total: total}
	case p.ShowNumber && len(segments) == 1:
		return Display{Kind: DisplayNumber, Value: segments[0].Value}
	default:
		return Display{}
	}
}
