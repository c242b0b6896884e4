package render

import (
	"math"
	"strings"
	"testing"

	"github.com/ha1tch/genomap/pkg/genome"
)

func TestAngleForPosition(t *testing.T) {
	length := 4000.0

	cases := []struct {
		pos, want float64
	}{
		{0, 0},
		{1000, math.Pi / 2},
		{2000, math.Pi},
		{3000, 3 * math.Pi / 2},
		{4000, 2 * math.Pi},
	}
	for _, c := range cases {
		if got := AngleForPosition(c.pos, length); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("AngleForPosition(%.0f) = %.4f, want %.4f", c.pos, got, c.want)
		}
	}
}

func TestPositionForAngleInverse(t *testing.T) {
	length := 2686.0
	for _, pos := range []float64{0, 1, 500, 1343, 2685} {
		a := AngleForPosition(pos, length)
		if got := PositionForAngle(a, length); math.Abs(got-pos) > 1e-6 {
			t.Errorf("Round trip of position %.0f gave %.4f", pos, got)
		}
	}
}

func TestPositionForAngleNormalizes(t *testing.T) {
	length := 1000.0

	if got := PositionForAngle(-math.Pi/2, length); math.Abs(got-750) > 1e-6 {
		t.Errorf("Negative angle should normalize, got position %.2f", got)
	}
	if got := PositionForAngle(2*math.Pi+math.Pi, length); math.Abs(got-500) > 1e-6 {
		t.Errorf("Angle past a full turn should normalize, got position %.2f", got)
	}
}

func TestPointAtTwelveOClock(t *testing.T) {
	// Zero angle points straight up; clockwise puts π/2 at three o'clock.
	x, y := PointAt(100, 100, 0, 50)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Errorf("PointAt angle 0 = (%.2f, %.2f), want (100, 50)", x, y)
	}
	x, y = PointAt(100, 100, math.Pi/2, 50)
	if math.Abs(x-150) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Errorf("PointAt angle π/2 = (%.2f, %.2f), want (150, 100)", x, y)
	}
}

func TestAngleAtInvertsPointAt(t *testing.T) {
	for _, a := range []float64{0, 0.7, math.Pi / 2, math.Pi, 4.5, 2*math.Pi - 0.01} {
		x, y := PointAt(200, 150, a, 80)
		if got := AngleAt(200, 150, x, y); math.Abs(got-a) > 1e-9 {
			t.Errorf("AngleAt round trip of %.4f gave %.4f", a, got)
		}
	}
}

func TestBaseArcWidensNarrowFeatures(t *testing.T) {
	// A single-base feature on a large genome is far below MinAngleWidth.
	f := genome.NewFeature("f", "", "CDS", 1000, 1000, genome.StrandForward)
	a := BaseArc(f, 4641652)

	if math.Abs(a.Width()-MinAngleWidth) > 1e-12 {
		t.Errorf("Narrow arc width = %.6f, want MinAngleWidth %.6f", a.Width(), MinAngleWidth)
	}
	want := AngleForPosition(1000, 4641652)
	if math.Abs(a.Mid()-want) > 1e-9 {
		t.Errorf("Widening moved the midpoint: %.6f, want %.6f", a.Mid(), want)
	}
}

func TestFeatureArcGap(t *testing.T) {
	// A quarter-circle feature: gap clamps to MaxGapAngle at both ends.
	f := genome.NewFeature("f", "", "CDS", 0, 1000, genome.StrandForward)
	a, ok := FeatureArc(f, 4000)
	if !ok {
		t.Fatalf("Wide feature should render")
	}
	base := BaseArc(f, 4000)
	wantWidth := base.Width() - 2*MaxGapAngle
	if math.Abs(a.Width()-wantWidth) > 1e-9 {
		t.Errorf("Arc width = %.6f, want %.6f", a.Width(), wantWidth)
	}
}

func TestFeatureArcNeverVanishesWhenWidened(t *testing.T) {
	// Widened minimum arc: gap is width·0.1 = 0.0005, leaving 0.004.
	f := genome.NewFeature("f", "", "CDS", 5, 5, genome.StrandForward)
	a, ok := FeatureArc(f, 1000000)
	if !ok {
		t.Fatalf("Minimum-width feature should still render")
	}
	if math.Abs(a.Width()-(MinAngleWidth-2*MinGapAngle)) > 1e-9 {
		t.Errorf("Minimum arc width = %.6f", a.Width())
	}
}

func TestArcOverlapsWraparound(t *testing.T) {
	near := Arc{Start: 2*math.Pi - 0.02, End: 2*math.Pi - 0.01}
	past := Arc{Start: 0.001, End: 0.02}

	if near.Overlaps(past) {
		t.Errorf("Disjoint arcs across the origin should not overlap")
	}
	touching := Arc{Start: -0.005, End: 0.005}
	wrapped := Arc{Start: 2*math.Pi - 0.002, End: 2 * math.Pi}
	if !touching.Overlaps(wrapped) {
		t.Errorf("Arcs meeting across the origin should overlap")
	}
}

func TestSectorPathGrammar(t *testing.T) {
	p := SectorPath(400, 300, 200, 160, 0, math.Pi/2)

	if !strings.HasPrefix(p, "M ") || !strings.HasSuffix(p, " Z") {
		t.Errorf("Path should be M ... Z, got %q", p)
	}
	// Quarter circle: small-arc flag on both arcs.
	if !strings.Contains(p, "A 200.00 200.00 0 0 1") {
		t.Errorf("Outer arc segment wrong: %q", p)
	}
	if !strings.Contains(p, "A 160.00 160.00 0 0 0") {
		t.Errorf("Inner arc segment wrong: %q", p)
	}
}

func TestSectorPathLargeArcFlag(t *testing.T) {
	p := SectorPath(400, 300, 200, 160, 0, 3*math.Pi/2)

	if !strings.Contains(p, "A 200.00 200.00 0 1 1") {
		t.Errorf("Span over π should set the large-arc flag: %q", p)
	}
}
