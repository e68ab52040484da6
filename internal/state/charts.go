package state

import "github.com/atomicstack/tmux-stackbar/internal/chart"

type ChartStore interface {
	Series() []chart.Series
	SetSeries([]chart.Series)
	BarHeight() int
	SetBarHeight(int)
}

type chartStore struct {
	series    []chart.Series
	barHeight int
}

func NewChartStore() ChartStore {
	return &chartStore{}
}

func (s *chartStore) Series() []chart.Series {
	return cloneSeries(s.series)
}

func (s *chartStore) SetSeries(series []chart.Series) {
	s.series = cloneSeries(series)
}

func (s *chartStore) BarHeight() int {
	return s.barHeight
}

func (s *chartStore) SetBarHeight(px int) {
	s.barHeight = px
}

func cloneSeries(series []chart.Series) []chart.Series {
	if len(series) == 0 {
		return nil
	}
	dup := make([]chart.Series, len(series))
	for i, s := range series {
		dup[i] = s
		if len(s.Segments) > 0 {
			dup[i].Segments = append([]chart.Segment(nil), s.Segments...)
		}
	}
	return dup
}
