// Package genome provides the core data model for circular genome maps:
// genomes, tracks, and annotated features with 1-based inclusive coordinates.
package genome

import (
	"strconv"

	"github.com/google/uuid"
)

// Strand indicates which strand a feature lies on.
type Strand string

const (
	StrandForward Strand = "+"
	StrandReverse Strand = "-"
	StrandNone    Strand = "."
)

// Track types with bar-chart render semantics. All other types render as
// filled arc sectors.
const (
	TypeGCContent  = "gc_content"
	TypeGCSkewPlus = "gc_skew_plus"
	TypeGCSkewMinus = "gc_skew_minus"
)

// Feature is a single annotated interval on the genome. Coordinates are
// 1-based and inclusive; Start <= End always holds after construction.
type Feature struct {
	ID         string            `json:"id"`
	Name       string            `json:"name,omitempty"`
	Type       string            `json:"type"`
	Start      int               `json:"start"`
	End        int               `json:"end"`
	Strand     Strand            `json:"strand"`
	Attributes map[string]string `json:"attributes,omitempty"`

	// TrackID names the owning track. It is assigned when the feature is
	// added to a track and resolved through the genome's track list rather
	// than a back-pointer.
	TrackID string `json:"-"`
}

// NewFeature creates a feature, swapping start and end if reversed and
// generating an id when none is given.
func NewFeature(id, name, typ string, start, end int, strand Strand) *Feature {
	if start > end {
		start, end = end, start
	}
	if id == "" {
		id = uuid.NewString()
	}
	if strand == "" {
		strand = StrandNone
	}
	return &Feature{
		ID:         id,
		Name:       name,
		Type:       typ,
		Start:      start,
		End:        end,
		Strand:     strand,
		Attributes: make(map[string]string),
	}
}

// Length returns the feature span in bases (inclusive of both ends).
func (f *Feature) Length() int {
	return f.End - f.Start + 1
}

// Center returns the midpoint of the feature in base coordinates.
func (f *Feature) Center() float64 {
	return (float64(f.Start) + float64(f.End)) / 2
}

// Contains reports whether pos falls within the feature.
func (f *Feature) Contains(pos int) bool {
	return pos >= f.Start && pos <= f.End
}

// Overlaps reports whether the feature overlaps the inclusive range [start, end].
func (f *Feature) Overlaps(start, end int) bool {
	return f.End >= start && f.Start <= end
}

// NumericAttr returns the named attribute parsed as a float. GC tracks store
// their per-window measurement under "value".
func (f *Feature) NumericAttr(key string) (float64, bool) {
	s, ok := f.Attributes[key]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Value is shorthand for NumericAttr("value"), defaulting to 0.
func (f *Feature) Value() float64 {
	v, _ := f.NumericAttr("value")
	return v
}

// Track is an ordered, colored layer of same-category features rendered as
// one concentric band. Feature order is insertion order, not positional.
type Track struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Color    string     `json:"color"`
	Visible  bool       `json:"visible"`
	Height   float64    `json:"height"`
	Features []*Feature `json:"features"`
}

// NewTrack creates a visible track with a generated id when none is given.
func NewTrack(id, name, typ, color string) *Track {
	if id == "" {
		id = uuid.NewString()
	}
	return &Track{
		ID:      id,
		Name:    name,
		Type:    typ,
		Color:   color,
		Visible: true,
		Height:  1,
	}
}

// AddFeature appends a feature and records the track id on it.
func (t *Track) AddFeature(f *Feature) {
	f.TrackID = t.ID
	t.Features = append(t.Features, f)
}

// IsGC reports whether the track uses bar-chart render semantics.
func (t *Track) IsGC() bool {
	switch t.Type {
	case TypeGCContent, TypeGCSkewPlus, TypeGCSkewMinus:
		return true
	}
	return false
}

// Sequence contributes only its length to the genome; sequence content is
// handled by external tooling.
type Sequence struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// Genome is an ordered collection of tracks over a circular sequence space.
type Genome struct {
	Name      string      `json:"name,omitempty"`
	Length    int         `json:"length"`
	Tracks    []*Track    `json:"tracks"`
	Sequences []*Sequence `json:"sequences,omitempty"`
}

// New creates an empty genome of the given length.
func New(name string, length int) *Genome {
	return &Genome{Name: name, Length: length}
}

// AddTrack appends a track.
func (g *Genome) AddTrack(t *Track) {
	g.Tracks = append(g.Tracks, t)
}

// AddSequence appends a sequence and extends the genome length if the new
// sequence is longer.
func (g *Genome) AddSequence(s *Sequence) {
	g.Sequences = append(g.Sequences, s)
	if s.Length > g.Length {
		g.Length = s.Length
	}
}

// TrackByID returns the track with the given id, or nil.
func (g *Genome) TrackByID(id string) *Track {
	for _, t := range g.Tracks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// TrackOf resolves a feature's owning track through its TrackID.
func (g *Genome) TrackOf(f *Feature) *Track {
	return g.TrackByID(f.TrackID)
}

// VisibleTracks returns the visible tracks in declaration order.
func (g *Genome) VisibleTracks() []*Track {
	var out []*Track
	for _, t := range g.Tracks {
		if t.Visible {
			out = append(out, t)
		}
	}
	return out
}

// FeatureCount returns the total number of features across all tracks.
func (g *Genome) FeatureCount() int {
	n := 0
	for _, t := range g.Tracks {
		n += len(t.Features)
	}
	return n
}

// CircularDistance returns the shortest distance between two positions on
// the circular genome.
func (g *Genome) CircularDistance(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	if alt := float64(g.Length) - d; alt < d {
		return alt
	}
	return d
}
