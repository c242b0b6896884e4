package render

import (
	"math"
	"testing"
)

func TestTryPlaceRejectsOverlap(t *testing.T) {
	p := NewLabelPlacer(0)

	if _, ok := p.TryPlace(1.0); !ok {
		t.Fatalf("First label should always place")
	}
	// Within half a label width of the first: collision.
	if _, ok := p.TryPlace(1.0 + LabelAngleWidth/2); ok {
		t.Errorf("Overlapping label should be rejected")
	}
	// One full width away: clear.
	if _, ok := p.TryPlace(1.0 + 2*LabelAngleWidth); !ok {
		t.Errorf("Non-overlapping label should place")
	}
	if len(p.Placed()) != 2 {
		t.Errorf("Expected 2 reservations, got %d", len(p.Placed()))
	}
}

func TestTryPlaceWraparound(t *testing.T) {
	p := NewLabelPlacer(0)

	// Label just before the origin.
	if _, ok := p.TryPlace(2*math.Pi - 0.01); !ok {
		t.Fatalf("First label should place")
	}
	// Label just past the origin collides across the seam.
	if _, ok := p.TryPlace(0.01); ok {
		t.Errorf("Labels across the origin should collide")
	}
	// A label on the far side is fine.
	if _, ok := p.TryPlace(math.Pi); !ok {
		t.Errorf("Distant label should place")
	}
}

func TestLabelPlacerIsGlobal(t *testing.T) {
	// Reservations are not per track: a second caller sharing the placer
	// contends for the same intervals.
	p := NewLabelPlacer(0)
	p.TryPlace(0.5)

	if _, ok := p.TryPlace(0.5); ok {
		t.Errorf("Same midpoint should collide regardless of origin track")
	}

	p.Reset()
	if _, ok := p.TryPlace(0.5); !ok {
		t.Errorf("Reset should release all reservations")
	}
}

func TestCustomWidth(t *testing.T) {
	p := NewLabelPlacer(0.2)
	p.TryPlace(1.0)

	if _, ok := p.TryPlace(1.15); ok {
		t.Errorf("Labels 0.15 apart should collide at width 0.2")
	}
	if _, ok := p.TryPlace(1.25); !ok {
		t.Errorf("Labels 0.25 apart should clear at width 0.2")
	}
}
