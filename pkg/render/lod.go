package render

import (
	"math"
	"sort"

	"github.com/ha1tch/genomap/pkg/genome"
)

// labelMinPixels is the projected width below which a feature's label is
// culled regardless of the LOD bucket.
const labelMinPixels = 30

// LODLevel is one zoom-range bucket of the level-of-detail table.
type LODLevel struct {
	MinZoom      float64
	MaxZoom      float64 // math.Inf(1) for the open-ended final bucket
	Detail       int
	ShowFeatures bool
	ShowLabels   bool
	// FeatureDensity is an advisory hint carried in the table; the culling
	// logic does not consult it. Kept for compatibility with existing
	// configuration, see DESIGN.md.
	FeatureDensity float64
}

// LOD is an ordered table of zoom buckets controlling feature and label
// culling.
type LOD struct {
	levels []LODLevel
}

// defaultLevels spans zoom 0 to infinity with no gaps.
func defaultLevels() []LODLevel {
	return []LODLevel{
		{MinZoom: 0, MaxZoom: 0.1, Detail: 0, ShowFeatures: true, ShowLabels: false, FeatureDensity: 0.1},
		{MinZoom: 0.1, MaxZoom: 0.5, Detail: 1, ShowFeatures: true, ShowLabels: false, FeatureDensity: 0.25},
		{MinZoom: 0.5, MaxZoom: 1, Detail: 2, ShowFeatures: true, ShowLabels: false, FeatureDensity: 0.5},
		{MinZoom: 1, MaxZoom: 2, Detail: 3, ShowFeatures: true, ShowLabels: true, FeatureDensity: 0.75},
		{MinZoom: 2, MaxZoom: 5, Detail: 4, ShowFeatures: true, ShowLabels: true, FeatureDensity: 0.9},
		{MinZoom: 5, MaxZoom: math.Inf(1), Detail: 5, ShowFeatures: true, ShowLabels: true, FeatureDensity: 1},
	}
}

// NewLOD creates a policy with the default six-bucket table.
func NewLOD() *LOD {
	return &LOD{levels: defaultLevels()}
}

// Levels returns the current table.
func (l *LOD) Levels() []LODLevel {
	return l.levels
}

// For returns the bucket with MinZoom <= zoom < MaxZoom, falling back to the
// last bucket when none matches.
func (l *LOD) For(zoom float64) LODLevel {
	for _, lv := range l.levels {
		if zoom >= lv.MinZoom && zoom < lv.MaxZoom {
			return lv
		}
	}
	return l.levels[len(l.levels)-1]
}

// Add inserts a bucket and re-sorts the table ascending by MinZoom.
func (l *LOD) Add(lv LODLevel) {
	l.levels = append(l.levels, lv)
	sort.SliceStable(l.levels, func(i, j int) bool {
		return l.levels[i].MinZoom < l.levels[j].MinZoom
	})
}

// Reset restores the default table.
func (l *LOD) Reset() {
	l.levels = defaultLevels()
}

// ShouldRenderFeature reports whether features draw at the given zoom. Only
// the bucket's ShowFeatures flag is consulted.
func (l *LOD) ShouldRenderFeature(zoom float64) bool {
	return l.For(zoom).ShowFeatures
}

// ShouldRenderLabel reports whether the feature's label draws at the given
// zoom: the bucket must allow labels and the feature's projected width must
// reach labelMinPixels.
func (l *LOD) ShouldRenderLabel(f *genome.Feature, zoom float64) bool {
	if !l.For(zoom).ShowLabels {
		return false
	}
	return float64(f.End-f.Start)*zoom >= labelMinPixels
}
