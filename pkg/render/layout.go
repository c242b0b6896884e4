package render

import (
	"math"

	"github.com/ha1tch/genomap/pkg/genome"
)

// Band is one concentric radial band. Regular and gc_content bands hold a
// single track; the merged GC skew band holds both skew tracks.
type Band struct {
	Tracks []*genome.Track
	Outer  float64
	Inner  float64
}

// Track returns the band's primary track.
func (b *Band) Track() *genome.Track {
	if len(b.Tracks) == 0 {
		return nil
	}
	return b.Tracks[0]
}

// Contains reports whether a radial distance falls inside the band.
func (b *Band) Contains(dist float64) bool {
	return dist >= b.Inner && dist <= b.Outer
}

// Baseline returns the radial midline of the band, the reference line that
// GC bars deviate from.
func (b *Band) Baseline() float64 {
	return (b.Inner + b.Outer) / 2
}

// Layout is the computed radial placement of a genome's visible tracks.
// Bands are ordered outer to inner: regular tracks first, then gc_content,
// then the merged gc_skew band.
type Layout struct {
	Genome      *genome.Genome
	CenterX     float64
	CenterY     float64
	OuterRadius float64
	TrackHeight float64
	Bands       []*Band
}

// NewLayout stacks the genome's visible tracks into concentric bands inside
// outerRadius, each consuming trackHeight plus spacing walking inward.
func NewLayout(g *genome.Genome, cx, cy, outerRadius float64) *Layout {
	l := &Layout{
		Genome:      g,
		CenterX:     cx,
		CenterY:     cy,
		OuterRadius: outerRadius,
	}
	if g == nil {
		return l
	}

	var regular, gcContent []*genome.Track
	var gcSkew []*genome.Track
	for _, t := range g.VisibleTracks() {
		switch t.Type {
		case genome.TypeGCContent:
			gcContent = append(gcContent, t)
		case genome.TypeGCSkewPlus, genome.TypeGCSkewMinus:
			gcSkew = append(gcSkew, t)
		default:
			regular = append(regular, t)
		}
	}

	count := len(regular) + len(gcContent) + len(gcSkew)
	if count == 0 {
		return l
	}
	l.TrackHeight = clamp(outerRadius/float64(count+2), MinTrackHeight, MaxTrackHeight)

	r := outerRadius
	place := func(tracks []*genome.Track) {
		b := &Band{Tracks: tracks, Outer: r, Inner: r - l.TrackHeight}
		l.Bands = append(l.Bands, b)
		r -= l.TrackHeight + TrackSpacing
	}
	for _, t := range regular {
		place([]*genome.Track{t})
	}
	for _, t := range gcContent {
		place([]*genome.Track{t})
	}
	if len(gcSkew) > 0 {
		// Plus and minus skew share one radial band.
		place(gcSkew)
	}
	return l
}

// BandFor returns the band containing the given radial distance, searching
// from the innermost band outward; the first match wins. Returns nil when no
// band contains the distance.
func (l *Layout) BandFor(dist float64) *Band {
	for i := len(l.Bands) - 1; i >= 0; i-- {
		if l.Bands[i].Contains(dist) {
			return l.Bands[i]
		}
	}
	return nil
}

// BandOf returns the band holding the given track, or nil.
func (l *Layout) BandOf(t *genome.Track) *Band {
	for _, b := range l.Bands {
		for _, bt := range b.Tracks {
			if bt == t {
				return b
			}
		}
	}
	return nil
}

// BarRadii computes the radial extent of a GC bar for the given value within
// a band. gc_content values deviate from the 50% baseline, scaled per 20
// percentage points; skew values scale against 0.5. Bars grow outward from
// the band baseline for gc_content above 50 and for plus skew, inward
// otherwise.
func BarRadii(trackType string, b *Band, value float64) (inner, outer float64) {
	base := b.Baseline()
	h := b.Outer - b.Inner
	switch trackType {
	case genome.TypeGCContent:
		dev := math.Abs(value-50) / 20 * h * 0.8
		if value > 50 {
			return base, base + dev
		}
		return base - dev, base
	case genome.TypeGCSkewPlus:
		return base, base + math.Abs(value)/0.5*h*0.8
	case genome.TypeGCSkewMinus:
		return base - math.Abs(value)/0.5*h*0.8, base
	}
	return b.Inner, b.Outer
}
