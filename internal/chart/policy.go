package chart

// Policy decides what compact display and legend detail a series gets.
type Policy struct {
	LegendPerSegment bool
	ShowRatio        bool
	ShowNumber       bool
}

// legendThreshold is the segment count from which every segment is listed in
// the legend regardless of the suppression flag.
const legendThreshold = 3

type policyKey struct {
	count    int
	suppress bool
}

// policyTable covers the counts below legendThreshold; everything at or above
// it resolves to fullLegend.
var policyTable = map[policyKey]Policy{
	{0, false}: {},
	{0, true}:  {LegendPerSegment: true},
	{1, false}: {ShowNumber: true},
	{1, true}:  {LegendPerSegment: true},
	{2, false}: {ShowRatio: true},
	{2, true}:  {LegendPerSegment: true},
}

var fullLegend = Policy{LegendPerSegment: true}

// PolicyFor returns the display policy for a series with count segments.
func PolicyFor(count int, suppress bool) Policy {
	if count >= legendThreshold {
		return fullLegend
	}
	if count < 0 {
		count = 0
	}
	return policyTable[policyKey{count: count, suppress: suppress}]
}
