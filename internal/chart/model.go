package chart

// Segment is one weighted slice of a bar.
type Segment struct {
	Label string  `yaml:"legend" json:"legend"`
	Value float64 `yaml:"value" json:"value"`
	Color string  `yaml:"color" json:"color"`
}

// Series is one bar's worth of data.
type Series struct {
	Title    string    `yaml:"title" json:"title"`
	Segments []Segment `yaml:"data" json:"data"`
	Suppress bool      `yaml:"hideRatio" json:"hideRatio"`
}

// ResolvedSegment is a segment after value defaulting and color resolution.
type ResolvedSegment struct {
	Label string
	Value float64
	Color string
}

// Geometry positions a segment along its bar in percent of the bar width.
type Geometry struct {
	Label        string
	Value        float64
	StartPercent float64
	WidthPercent float64
	Color        string
	Placeholder  bool
}

// End returns the right edge of the geometry in percent.
func (g Geometry) End() float64 {
	return g.StartPercent + g.WidthPercent
}

// Layout is the computed form of a single series.
type Layout struct {
	Index      int
	Title      string
	Segments   []ResolvedSegment
	Geometries []Geometry
	Total      float64
	Policy     Policy
	Display    Display
}

// HasData reports whether the layout carries real segment geometry.
func (l Layout) HasData() bool {
	return len(l.Geometries) > 0 && !l.Geometries[0].Placeholder
}

// SuppressFlag returns the flag for index i, treating missing entries as false.
func SuppressFlag(flags []bool, i int) bool {
	if i < 0 || i >= len(flags) {
		return false
	}
	return flags[i]
}

// SuppressFlags extracts the per-series flags in series order.
func SuppressFlags(series []Series) []bool {
	if len(series) == 0 {
		return nil
	}
	flags := make([]bool, len(series))
	for i, s := range series {
		flags[i] = s.Suppress
	}
	return flags
}
