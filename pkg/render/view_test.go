package render

import (
	"math"
	"testing"
)

func TestZoomToKeepsAnchorFixed(t *testing.T) {
	c := NewController(800, 600, 0.1, 10)

	// World point under the anchor before zooming.
	ax, ay := 250.0, 180.0
	wx, wy := c.View().ScreenToWorld(ax, ay)

	c.ZoomTo(2.5, ax, ay)

	gx, gy := c.View().WorldToScreen(wx, wy)
	if math.Abs(gx-ax) > 1e-9 || math.Abs(gy-ay) > 1e-9 {
		t.Errorf("Anchor moved to (%.4f, %.4f)", gx, gy)
	}
	if c.Zoom() != 2.5 {
		t.Errorf("Zoom = %.2f, want 2.5", c.Zoom())
	}
}

func TestZoomToAnchorHoldsAcrossSteps(t *testing.T) {
	c := NewController(800, 600, 0.1, 10)
	ax, ay := 400.0, 300.0

	c.ZoomTo(2, ax, ay)
	wx, wy := c.View().ScreenToWorld(ax, ay)
	c.ZoomTo(5, ax, ay)

	gx, gy := c.View().WorldToScreen(wx, wy)
	if math.Abs(gx-ax) > 1e-9 || math.Abs(gy-ay) > 1e-9 {
		t.Errorf("Anchor drifted after second zoom: (%.4f, %.4f)", gx, gy)
	}
}

func TestZoomClamped(t *testing.T) {
	c := NewController(800, 600, 0.1, 10)

	c.ZoomCentered(100)
	if c.Zoom() != 10 {
		t.Errorf("Zoom above max should clamp to 10, got %.2f", c.Zoom())
	}
	c.ZoomCentered(0.001)
	if c.Zoom() != 0.1 {
		t.Errorf("Zoom below min should clamp to 0.1, got %.2f", c.Zoom())
	}
}

func TestPanAccumulates(t *testing.T) {
	c := NewController(800, 600, 0.1, 10)

	c.PanBy(10, -5)
	c.PanBy(10, -5)

	v := c.View()
	if v.OffsetX != 20 || v.OffsetY != -10 {
		t.Errorf("Offset = (%.1f, %.1f), want (20, -10)", v.OffsetX, v.OffsetY)
	}
}

func TestPanThenZoomAnchor(t *testing.T) {
	c := NewController(800, 600, 0.1, 10)
	c.PanBy(37, -12)

	ax, ay := 100.0, 500.0
	wx, wy := c.View().ScreenToWorld(ax, ay)
	c.ZoomTo(3, ax, ay)

	gx, gy := c.View().WorldToScreen(wx, wy)
	if math.Abs(gx-ax) > 1e-9 || math.Abs(gy-ay) > 1e-9 {
		t.Errorf("Anchor moved after pan+zoom: (%.4f, %.4f)", gx, gy)
	}
}

func TestReset(t *testing.T) {
	c := NewController(800, 600, 0.1, 10)
	c.ZoomTo(4, 100, 100)
	c.PanBy(50, 50)

	c.Reset()

	v := c.View()
	if v.Zoom != 1 || v.OffsetX != 0 || v.OffsetY != 0 {
		t.Errorf("Reset left view %+v", v)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	v := View{Zoom: 2.5, OffsetX: -40, OffsetY: 75}

	wx, wy := v.ScreenToWorld(123, 456)
	sx, sy := v.WorldToScreen(wx, wy)
	if math.Abs(sx-123) > 1e-9 || math.Abs(sy-456) > 1e-9 {
		t.Errorf("Round trip gave (%.4f, %.4f)", sx, sy)
	}
}
