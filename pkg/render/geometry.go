// Package render implements the circular genome map core: the polar geometry
// engine, concentric track layout, level-of-detail policy, label placement,
// and two render backends (a retained scene graph and an SVG emitter) that
// draw path-equivalent output from the same primitives.
package render

import (
	"fmt"
	"math"

	"github.com/ha1tch/genomap/pkg/genome"
)

// Geometry constants. Angles are radians; zero is at twelve o'clock and
// angles increase clockwise.
const (
	// MinAngleWidth is the narrowest angular span a feature may render at,
	// so single-base features stay visible at any genome length.
	MinAngleWidth = 0.005

	// GapRatio scales the separation gap carved from both ends of a
	// feature arc, clamped to [MinGapAngle, MaxGapAngle].
	GapRatio    = 0.1
	MinGapAngle = 0.0005
	MaxGapAngle = 0.01

	MinTrackHeight = 10.0
	MaxTrackHeight = 40.0
	TrackSpacing   = 4.0

	// LabelAngleWidth is the fixed angular interval reserved per label.
	LabelAngleWidth = 0.05
)

// AngleForPosition maps a genomic position to its angle: 2π·pos/length.
// The genome length must be positive.
func AngleForPosition(pos, length float64) float64 {
	return 2 * math.Pi * pos / length
}

// PositionForAngle is the inverse of AngleForPosition. The angle is
// normalized into [0, 2π) first.
func PositionForAngle(angle, length float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a * length / (2 * math.Pi)
}

// Arc is an angular interval in radians.
type Arc struct {
	Start float64
	End   float64
}

// Width returns the angular width of the arc.
func (a Arc) Width() float64 {
	return a.End - a.Start
}

// Mid returns the angular midpoint of the arc.
func (a Arc) Mid() float64 {
	return (a.Start + a.End) / 2
}

// Overlaps reports whether two arcs overlap, accounting for wraparound by
// also comparing after shifting the other arc by ±2π.
func (a Arc) Overlaps(b Arc) bool {
	for _, shift := range [3]float64{0, 2 * math.Pi, -2 * math.Pi} {
		if a.Start < b.End+shift && b.Start+shift < a.End {
			return true
		}
	}
	return false
}

// BaseArc computes the angular span of a feature, widened to exactly
// MinAngleWidth around its midpoint when narrower.
func BaseArc(f *genome.Feature, length float64) Arc {
	a := Arc{
		Start: AngleForPosition(float64(f.Start), length),
		End:   AngleForPosition(float64(f.End), length),
	}
	if a.Width() < MinAngleWidth {
		mid := a.Mid()
		a.Start = mid - MinAngleWidth/2
		a.End = mid + MinAngleWidth/2
	}
	return a
}

// FeatureArc computes the rendered angular span of a feature: the base arc
// shrunk at both ends by the separation gap. The second return value is
// false when the gap consumes the whole arc, in which case the feature is
// simply not drawn.
func FeatureArc(f *genome.Feature, length float64) (Arc, bool) {
	a := BaseArc(f, length)
	gap := a.Width() * GapRatio
	if gap < MinGapAngle {
		gap = MinGapAngle
	}
	if gap > MaxGapAngle {
		gap = MaxGapAngle
	}
	a.Start += gap
	a.End -= gap
	if a.Width() <= 0 {
		return Arc{}, false
	}
	return a, true
}

// PointAt returns the cartesian point at the given angle and radius about
// (cx, cy). Zero angle is at twelve o'clock, increasing clockwise.
func PointAt(cx, cy, angle, radius float64) (x, y float64) {
	return cx + radius*math.Sin(angle), cy - radius*math.Cos(angle)
}

// AngleAt returns the angle in [0, 2π) of the point (x, y) about (cx, cy),
// inverting PointAt.
func AngleAt(cx, cy, x, y float64) float64 {
	a := math.Atan2(x-cx, cy-y)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// SectorPath renders the annulus-sector primitive as SVG path data:
//
//	M x1 y1 A R R 0 laf 1 x2 y2 L x3 y3 A r r 0 laf 0 x4 y4 Z
//
// an outer arc from startAngle to endAngle, a line in to the inner radius,
// the inner arc reversed, and a close. Both backends derive their sector
// output from this formula so their drawings stay path-equivalent.
func SectorPath(cx, cy, outer, inner, startAngle, endAngle float64) string {
	laf := 0
	if endAngle-startAngle > math.Pi {
		laf = 1
	}
	x1, y1 := PointAt(cx, cy, startAngle, outer)
	x2, y2 := PointAt(cx, cy, endAngle, outer)
	x3, y3 := PointAt(cx, cy, endAngle, inner)
	x4, y4 := PointAt(cx, cy, startAngle, inner)
	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z",
		x1, y1, outer, outer, laf, x2, y2, x3, y3, inner, inner, laf, x4, y4)
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
