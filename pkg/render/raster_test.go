package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"
)

func TestRasterizeSize(t *testing.T) {
	s := NewScene(120, 90, color.RGBA{255, 255, 255, 255})
	img := s.Rasterize()

	b := img.Bounds()
	if b.Dx() != 120 || b.Dy() != 90 {
		t.Errorf("Rasterized size = %dx%d, want 120x90", b.Dx(), b.Dy())
	}
	// Background fill.
	if c := img.RGBAAt(5, 5); c.R < 200 {
		t.Errorf("Background pixel = %v, want near white", c)
	}
}

func TestRasterizeSector(t *testing.T) {
	s := NewScene(100, 100, color.RGBA{255, 255, 255, 255})
	s.BeginLayer(LayerFeatures)
	// Full-height sector on the right half of the circle.
	s.Sector(50, 50, 40, 10, 0, math.Pi, color.RGBA{255, 0, 0, 255})

	img := s.Rasterize()

	// A point at three o'clock, radius 25, inside the sector.
	if c := img.RGBAAt(75, 50); c.R < 150 || c.G > 120 {
		t.Errorf("Sector interior pixel = %v, want red", c)
	}
	// The mirror point at nine o'clock is outside the sector.
	if c := img.RGBAAt(25, 50); c.R < 200 || c.G < 200 {
		t.Errorf("Pixel outside sector = %v, want background", c)
	}
}

func TestEncodePNGDecodes(t *testing.T) {
	s := NewScene(60, 40, color.RGBA{255, 255, 255, 255})
	s.BeginLayer(LayerGrid)
	s.Circle(30, 20, 15, color.RGBA{}, color.RGBA{0, 0, 0, 255}, 1)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output did not decode as PNG: %v", err)
	}
	if img.Bounds().Dx() != 60 {
		t.Errorf("Decoded width = %d", img.Bounds().Dx())
	}
}

func TestAngleInSectorWraparound(t *testing.T) {
	if !angleInSector(0.1, 2*math.Pi-0.2, 2*math.Pi+0.2) {
		t.Errorf("Angle past the seam should fall inside a wrapping sector")
	}
	if angleInSector(math.Pi, 0, math.Pi/2) {
		t.Errorf("Angle outside the sector matched")
	}
}
