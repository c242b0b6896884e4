package render

import (
	"math"

	"github.com/ha1tch/genomap/pkg/genome"
)

// Hit is the result of resolving a screen point back into the genome.
type Hit struct {
	Feature  *genome.Feature
	Track    *genome.Track
	Band     *Band
	Position float64 // genomic position under the point
}

// HitTester inverts the view transform and the radial layout to map screen
// points to tracks and features.
type HitTester struct {
	layout *Layout
}

// NewHitTester creates a tester over a computed layout.
func NewHitTester(l *Layout) *HitTester {
	return &HitTester{layout: l}
}

// HitAt resolves a screen point under the given view transform. It returns
// nil when no track band contains the point or the band holds no features.
//
// The band's feature lists are scanned linearly rather than consulting the
// interval index; with per-track feature counts this stays cheap and avoids
// keeping the index in sync with visibility toggles.
func (h *HitTester) HitAt(screenX, screenY float64, v View) *Hit {
	l := h.layout
	if l == nil || l.Genome == nil || l.Genome.Length <= 0 {
		return nil
	}

	wx, wy := v.ScreenToWorld(screenX, screenY)
	dx := wx - l.CenterX
	dy := wy - l.CenterY
	dist := math.Hypot(dx, dy)

	band := l.BandFor(dist)
	if band == nil {
		return nil
	}

	angle := AngleAt(l.CenterX, l.CenterY, wx, wy)
	pos := PositionForAngle(angle, float64(l.Genome.Length))

	var best *genome.Feature
	var bestTrack *genome.Track
	bestDist := 0.0
	for _, t := range band.Tracks {
		for _, f := range t.Features {
			d := l.Genome.CircularDistance(pos, f.Center())
			if best == nil || d < bestDist {
				best, bestTrack, bestDist = f, t, d
			}
		}
	}
	if best == nil {
		return nil
	}
	return &Hit{Feature: best, Track: bestTrack, Band: band, Position: pos}
}
