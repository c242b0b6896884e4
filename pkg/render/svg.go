package render

import (
	"fmt"
	"html"
	"image/color"
	"strings"
)

// SVGCanvas is the declarative vector backend. Primitives accumulate per
// layer and String() assembles the final document: the grid, feature, label,
// and scale layers live inside one scene group whose transform carries the
// current pan/zoom, while the legend sits outside it.
type SVGCanvas struct {
	width      int
	height     int
	view       View
	background string

	layers  map[Layer]*strings.Builder
	current Layer
}

// NewSVGCanvas creates an empty SVG canvas.
func NewSVGCanvas(width, height int, background string) *SVGCanvas {
	return &SVGCanvas{
		width:      width,
		height:     height,
		view:       IdentityView(),
		background: background,
		layers:     make(map[Layer]*strings.Builder),
	}
}

// SetView sets the scene-group transform. Only the emitted transform
// attribute changes; retained layer content is untouched.
func (s *SVGCanvas) SetView(v View) {
	s.view = v
}

// Reset discards all accumulated primitives.
func (s *SVGCanvas) Reset() {
	s.layers = make(map[Layer]*strings.Builder)
}

func (s *SVGCanvas) layer(l Layer) *strings.Builder {
	b, ok := s.layers[l]
	if !ok {
		b = &strings.Builder{}
		s.layers[l] = b
	}
	return b
}

// BeginLayer implements Canvas.
func (s *SVGCanvas) BeginLayer(l Layer) {
	s.current = l
}

// Sector implements Canvas using the shared annulus-sector path formula.
func (s *SVGCanvas) Sector(cx, cy, outer, inner, startAngle, endAngle float64, fill color.RGBA) {
	fmt.Fprintf(s.layer(s.current), "<path d=\"%s\" fill=\"%s\"/>\n",
		SectorPath(cx, cy, outer, inner, startAngle, endAngle), HexColor(fill))
}

// Bar implements Canvas. Bars share the sector path formula; the class
// marks them for styling.
func (s *SVGCanvas) Bar(cx, cy, outer, inner, startAngle, endAngle float64, fill color.RGBA) {
	fmt.Fprintf(s.layer(s.current), "<path d=\"%s\" fill=\"%s\" class=\"bar\"/>\n",
		SectorPath(cx, cy, outer, inner, startAngle, endAngle), HexColor(fill))
}

// Circle implements Canvas.
func (s *SVGCanvas) Circle(cx, cy, r float64, fill, stroke color.RGBA, strokeWidth float64) {
	fillAttr := "none"
	if fill.A > 0 {
		fillAttr = HexColor(fill)
	}
	fmt.Fprintf(s.layer(s.current), "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%.2f\"/>\n",
		cx, cy, r, fillAttr, HexColor(stroke), strokeWidth)
}

// Line implements Canvas.
func (s *SVGCanvas) Line(x1, y1, x2, y2 float64, stroke color.RGBA, width float64) {
	fmt.Fprintf(s.layer(s.current), "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"%.2f\"/>\n",
		x1, y1, x2, y2, HexColor(stroke), width)
}

// Text implements Canvas.
func (s *SVGCanvas) Text(x, y float64, txt string, size float64, fill color.RGBA, anchor TextAnchor) {
	an := "start"
	switch anchor {
	case AnchorMiddle:
		an = "middle"
	case AnchorEnd:
		an = "end"
	}
	fmt.Fprintf(s.layer(s.current), "<text x=\"%.2f\" y=\"%.2f\" font-family=\"sans-serif\" font-size=\"%.1fpx\" fill=\"%s\" text-anchor=\"%s\">%s</text>\n",
		x, y, size, HexColor(fill), an, html.EscapeString(txt))
}

// String assembles the SVG document.
func (s *SVGCanvas) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		s.width, s.height, s.width, s.height)
	fmt.Fprintf(&sb, "<rect width=\"%d\" height=\"%d\" fill=\"%s\"/>\n", s.width, s.height, s.background)

	fmt.Fprintf(&sb, "<g transform=\"translate(%.2f %.2f) scale(%.4f)\">\n",
		s.view.OffsetX, s.view.OffsetY, s.view.Zoom)
	for _, l := range [4]Layer{LayerGrid, LayerFeatures, LayerLabels, LayerScale} {
		if b, ok := s.layers[l]; ok {
			sb.WriteString(b.String())
		}
	}
	sb.WriteString("</g>\n")

	if b, ok := s.layers[LayerLegend]; ok {
		sb.WriteString(b.String())
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}
