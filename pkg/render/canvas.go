package render

import "image/color"

// Layer identifies a z-ordered drawing layer. Layers draw in ascending
// order: grid under features under labels under scale, with the legend on
// top and excluded from pan/zoom.
type Layer int

const (
	LayerGrid Layer = iota
	LayerFeatures
	LayerLabels
	LayerScale
	LayerLegend
)

// TextAnchor controls horizontal text alignment relative to its position.
type TextAnchor int

const (
	AnchorStart TextAnchor = iota
	AnchorMiddle
	AnchorEnd
)

// Canvas is the small drawing-primitive interface both backends implement.
// All layout and geometry math stays backend-agnostic in the Painter; a
// backend only needs to realize these calls on its own surface.
type Canvas interface {
	// BeginLayer directs subsequent primitives to the given layer.
	BeginLayer(l Layer)

	// Sector fills the annulus sector bounded by two radii and two angles
	// about (cx, cy).
	Sector(cx, cy, outer, inner, startAngle, endAngle float64, fill color.RGBA)

	// Bar fills a radial bar. Geometrically identical to Sector; kept as a
	// separate primitive so backends may style GC bars differently.
	Bar(cx, cy, outer, inner, startAngle, endAngle float64, fill color.RGBA)

	// Circle draws a circle outline, optionally filled when fill has
	// nonzero alpha.
	Circle(cx, cy, r float64, fill, stroke color.RGBA, strokeWidth float64)

	// Line draws a straight segment.
	Line(x1, y1, x2, y2 float64, stroke color.RGBA, width float64)

	// Text draws a string at (x, y) with the given point size and anchor.
	Text(x, y float64, s string, size float64, fill color.RGBA, anchor TextAnchor)
}
