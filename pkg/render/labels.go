package render

// LabelPlacer reserves angular intervals for text labels. Placement is
// greedy: the first feature to claim an interval keeps it, and every later
// label must clear all previously accepted intervals across every track.
type LabelPlacer struct {
	width  float64
	placed []Arc
}

// NewLabelPlacer creates a placer reserving intervals of the given angular
// width, or LabelAngleWidth when width is zero.
func NewLabelPlacer(width float64) *LabelPlacer {
	if width == 0 {
		width = LabelAngleWidth
	}
	return &LabelPlacer{width: width}
}

// TryPlace attempts to reserve an interval of the configured width centered
// on mid. The reservation fails when the interval overlaps any previously
// accepted one, including comparisons shifted by ±2π for wraparound.
func (p *LabelPlacer) TryPlace(mid float64) (Arc, bool) {
	a := Arc{Start: mid - p.width/2, End: mid + p.width/2}
	for _, q := range p.placed {
		if a.Overlaps(q) {
			return Arc{}, false
		}
	}
	p.placed = append(p.placed, a)
	return a, true
}

// Placed returns all accepted intervals in acceptance order.
func (p *LabelPlacer) Placed() []Arc {
	return p.placed
}

// Reset clears all reservations.
func (p *LabelPlacer) Reset() {
	p.placed = p.placed[:0]
}
