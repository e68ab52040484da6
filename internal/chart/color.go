package chart

import (
	"math/rand"
	"sync"
	"time"
)

// Picker chooses an index in [0, n) for the segment at position index.
type Picker interface {
	Pick(index, n int) int
}

// IndexPicker cycles through the candidates by segment position.
type IndexPicker struct{}

func (IndexPicker) Pick(index, n int) int {
	if n <= 0 {
		return 0
	}
	if index < 0 {
		index = -index
	}
	return index % n
}

// RandomPicker picks uniformly at random, ignoring the segment position.
// Output is not reproducible between passes.
type RandomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker seeds a picker. A zero seed uses the current time.
func NewRandomPicker(seed int64) *RandomPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPicker) Pick(_ int, n int) int {
	if n <= 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

// Assigner resolves display colors for segments without an explicit color.
type Assigner struct {
	candidates []string
	picker     Picker
}

// NewAssigner builds an assigner over the candidate palette. A nil picker
// defaults to IndexPicker.
func NewAssigner(candidates []string, picker Picker) *Assigner {
	if picker == nil {
		picker = IndexPicker{}
	}
	return &Assigner{
		candidates: append([]string(nil), candidates...),
		picker:     picker,
	}
}

// Resolve returns the segment's own color when set, otherwise a candidate.
func (a *Assigner) Resolve(seg Segment, index int) string {
	if seg.Color != "" {
		return seg.Color
	}
	if a == nil || len(a.candidates) == 0 {
		return ""
	}
	return a.candidates[a.picker.Pick(index, len(a.candidates))]
}

// ResolveSeries resolves every segment of s in order.
func (a *Assigner) ResolveSeries(s Series) []ResolvedSegment {
	if len(s.Segments) == 0 {
		return nil
	}
	out := make([]ResolvedSegment, len(s.Segments))
	for i, seg := range s.Segments {
		out[i] = ResolvedSegment{
			Label: seg.Label,
			Value: seg.Value,
			Color: a.Resolve(seg, i),
		}
	}
	return out
}
