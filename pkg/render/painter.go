package render

import (
	"fmt"
	"image/color"
	"math"
)

// Painter walks a layout and issues drawing primitives on a Canvas. Both
// backends are fed by this single walk, which is what keeps their output
// path-equivalent.
type Painter struct {
	Layout *Layout
	LOD    *LOD
	Opts   Options
}

// NewPainter creates a painter over a computed layout.
func NewPainter(l *Layout, lod *LOD, opts Options) *Painter {
	return &Painter{Layout: l, LOD: lod, Opts: opts}
}

var (
	gridColor  = color.RGBA{220, 220, 220, 255}
	scaleColor = color.RGBA{90, 90, 90, 255}
	labelColor = color.RGBA{40, 40, 40, 255}
)

// Paint draws the full map at the given zoom level in fixed z-order:
// grid < features < labels < scale < legend.
func (p *Painter) Paint(c Canvas, zoom float64) {
	l := p.Layout
	if l == nil || l.Genome == nil || l.Genome.Length <= 0 {
		return
	}

	p.paintGrid(c)
	p.paintFeatures(c, zoom)
	if p.Opts.ShowLabels {
		p.paintLabels(c, zoom)
	}
	if p.Opts.ShowScale {
		p.paintScale(c)
	}
	if p.Opts.ShowLegend {
		p.paintLegend(c)
	}
}

func (p *Painter) paintGrid(c Canvas) {
	l := p.Layout
	c.BeginLayer(LayerGrid)
	c.Circle(l.CenterX, l.CenterY, l.OuterRadius, color.RGBA{}, gridColor, 1)
	for _, b := range l.Bands {
		c.Circle(l.CenterX, l.CenterY, b.Inner, color.RGBA{}, gridColor, 0.5)
	}
}

func (p *Painter) paintFeatures(c Canvas, zoom float64) {
	l := p.Layout
	c.BeginLayer(LayerFeatures)
	length := float64(l.Genome.Length)
	showFeatures := p.LOD.ShouldRenderFeature(zoom)

	for i, b := range l.Bands {
		// Background annulus, drawn as two half sectors so the arc
		// endpoints stay distinct over the full circle.
		bg := Lighten(ParseColor(b.Track().Color, i), 0.85)
		c.Sector(l.CenterX, l.CenterY, b.Outer, b.Inner, 0, math.Pi, bg)
		c.Sector(l.CenterX, l.CenterY, b.Outer, b.Inner, math.Pi, 2*math.Pi, bg)

		if !showFeatures {
			continue
		}
		for _, t := range b.Tracks {
			fill := ParseColor(t.Color, i)
			for _, f := range t.Features {
				arc, ok := FeatureArc(f, length)
				if !ok {
					continue
				}
				if t.IsGC() {
					inner, outer := BarRadii(t.Type, b, f.Value())
					c.Bar(l.CenterX, l.CenterY, outer, inner, arc.Start, arc.End, fill)
				} else {
					c.Sector(l.CenterX, l.CenterY, b.Outer, b.Inner, arc.Start, arc.End, fill)
				}
			}
		}
	}
}

func (p *Painter) paintLabels(c Canvas, zoom float64) {
	l := p.Layout
	c.BeginLayer(LayerLabels)
	length := float64(l.Genome.Length)
	placer := NewLabelPlacer(LabelAngleWidth)

	// Outer tracks get first claim on label space.
	for _, b := range l.Bands {
		for _, t := range b.Tracks {
			for _, f := range t.Features {
				if !p.LOD.ShouldRenderLabel(f, zoom) {
					continue
				}
				name := f.Name
				if name == "" {
					name = f.ID
				}
				arc := BaseArc(f, length)
				if _, ok := placer.TryPlace(arc.Mid()); !ok {
					continue
				}
				mid := arc.Mid()
				x, y := PointAt(l.CenterX, l.CenterY, mid, b.Outer+6)
				anchor := AnchorStart
				if mid > math.Pi {
					anchor = AnchorEnd
				}
				c.Text(x, y, name, p.Opts.FontSize, labelColor, anchor)
			}
		}
	}
}

func (p *Painter) paintScale(c Canvas) {
	l := p.Layout
	c.BeginLayer(LayerScale)
	length := l.Genome.Length
	step := tickStep(length)
	for pos := 0; pos < length; pos += step {
		a := AngleForPosition(float64(pos), float64(length))
		x1, y1 := PointAt(l.CenterX, l.CenterY, a, l.OuterRadius+2)
		x2, y2 := PointAt(l.CenterX, l.CenterY, a, l.OuterRadius+8)
		c.Line(x1, y1, x2, y2, scaleColor, 1)
		tx, ty := PointAt(l.CenterX, l.CenterY, a, l.OuterRadius+18)
		c.Text(tx, ty, formatPosition(pos), p.Opts.FontSize-2, scaleColor, AnchorMiddle)
	}
}

func (p *Painter) paintLegend(c Canvas) {
	l := p.Layout
	c.BeginLayer(LayerLegend)
	x := float64(p.Opts.Width) - 140
	y := 24.0
	for i, b := range l.Bands {
		for _, t := range b.Tracks {
			col := ParseColor(t.Color, i)
			c.Circle(x, y-3, 5, col, col, 1)
			c.Text(x+12, y, t.Name, p.Opts.FontSize-2, labelColor, AnchorStart)
			y += 18
		}
	}
}

// tickStep picks a round base-pair step yielding roughly a dozen scale
// ticks around the circle.
func tickStep(length int) int {
	raw := float64(length) / 12
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * mag
	for _, m := range [4]float64{1, 2, 5, 10} {
		if raw <= m*mag {
			step = m * mag
			break
		}
	}
	if step < 1 {
		return 1
	}
	return int(step)
}

// formatPosition renders a base position compactly: 1500 -> "1.5 kb",
// 2000000 -> "2 Mb".
func formatPosition(pos int) string {
	switch {
	case pos >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(pos)/1_000_000)) + " Mb"
	case pos >= 1_000:
		return trimZero(fmt.Sprintf("%.1f", float64(pos)/1_000)) + " kb"
	default:
		return fmt.Sprintf("%d", pos)
	}
}

func trimZero(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
