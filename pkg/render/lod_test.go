package render

import (
	"math"
	"testing"

	"github.com/ha1tch/genomap/pkg/genome"
)

func TestDefaultLevelsCoverAllZooms(t *testing.T) {
	lod := NewLOD()
	levels := lod.Levels()

	if levels[0].MinZoom != 0 {
		t.Errorf("First bucket should start at zoom 0, got %.2f", levels[0].MinZoom)
	}
	for i := 1; i < len(levels); i++ {
		if levels[i].MinZoom != levels[i-1].MaxZoom {
			t.Errorf("Gap between buckets %d and %d: %.2f != %.2f",
				i-1, i, levels[i-1].MaxZoom, levels[i].MinZoom)
		}
	}
	if !math.IsInf(levels[len(levels)-1].MaxZoom, 1) {
		t.Errorf("Last bucket should be open-ended")
	}
}

func TestForSelectsHalfOpenBuckets(t *testing.T) {
	lod := NewLOD()

	cases := []struct {
		zoom   float64
		detail int
	}{
		{0.05, 0},
		{0.1, 1}, // boundary belongs to the higher bucket
		{0.3, 1},
		{1.5, 3},
		{2, 4},
		{100, 5},
	}
	for _, c := range cases {
		if got := lod.For(c.zoom).Detail; got != c.detail {
			t.Errorf("For(%.2f).Detail = %d, want %d", c.zoom, got, c.detail)
		}
	}
}

func TestShouldRenderLabel(t *testing.T) {
	lod := NewLOD()
	long := genome.NewFeature("l", "", "CDS", 1000, 2000, genome.StrandForward)
	short := genome.NewFeature("s", "", "CDS", 1000, 1010, genome.StrandForward)

	// Labels are off entirely below zoom 1.
	if lod.ShouldRenderLabel(long, 0.5) {
		t.Errorf("Labels should be culled at zoom 0.5")
	}
	// At zoom 1, the long feature projects to 1000 px, the short to 10 px.
	if !lod.ShouldRenderLabel(long, 1) {
		t.Errorf("Wide feature should label at zoom 1")
	}
	if lod.ShouldRenderLabel(short, 1) {
		t.Errorf("10 px projection is under the label threshold")
	}
	// Zooming in 3x pushes the short feature over the threshold.
	if !lod.ShouldRenderLabel(short, 3) {
		t.Errorf("30 px projection should label")
	}
}

func TestAddKeepsTableSorted(t *testing.T) {
	lod := NewLOD()
	lod.Add(LODLevel{MinZoom: 0.75, MaxZoom: 0.9, Detail: 9, ShowFeatures: true})

	levels := lod.Levels()
	for i := 1; i < len(levels); i++ {
		if levels[i].MinZoom < levels[i-1].MinZoom {
			t.Fatalf("Table not sorted after Add")
		}
	}
	lod.Reset()
	if len(lod.Levels()) != 6 {
		t.Errorf("Reset should restore the 6 default buckets, got %d", len(lod.Levels()))
	}
}
