package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// transform is the composed translate-then-scale of nested groups.
// screen = point·scale + offset.
type transform struct {
	scale  float64
	tx, ty float64
}

func (t transform) apply(x, y float64) (float64, float64) {
	return x*t.scale + t.tx, y*t.scale + t.ty
}

func (t transform) compose(g *Group) transform {
	return transform{
		scale: t.scale * g.Scale,
		tx:    t.tx + g.TX*t.scale,
		ty:    t.ty + g.TY*t.scale,
	}
}

// rasterContext carries the target image and a font face cache keyed by
// pixel size.
type rasterContext struct {
	img   *image.RGBA
	fnt   *opentype.Font
	faces map[int]font.Face
}

func newRasterContext(img *image.RGBA) *rasterContext {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // embedded font, cannot fail
	}
	return &rasterContext{img: img, fnt: fnt, faces: make(map[int]font.Face)}
}

func (rc *rasterContext) face(size float64) font.Face {
	px := int(math.Round(size))
	if px < 6 {
		px = 6
	}
	if f, ok := rc.faces[px]; ok {
		return f
	}
	f, err := opentype.NewFace(rc.fnt, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		panic(err)
	}
	rc.faces[px] = f
	return f
}

const rasterSupersample = 2

// Rasterize renders the scene to an RGBA image, supersampled and
// downsampled for smooth arcs.
func (s *Scene) Rasterize() *image.RGBA {
	ss := rasterSupersample
	big := image.NewRGBA(image.Rect(0, 0, s.Width*ss, s.Height*ss))
	rc := newRasterContext(big)

	bg := s.background
	if bg.A == 0 {
		bg = color.RGBA{255, 255, 255, 255}
	}
	for y := 0; y < big.Rect.Dy(); y++ {
		for x := 0; x < big.Rect.Dx(); x++ {
			big.SetRGBA(x, y, bg)
		}
	}

	root := transform{scale: float64(ss)}
	rasterGroup(rc, s.Root, root)

	out := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), xdraw.Over, nil)
	return out
}

// EncodePNG rasterizes the scene and writes it as PNG.
func (s *Scene) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.Rasterize())
}

func rasterGroup(rc *rasterContext, n Node, t transform) {
	switch nd := n.(type) {
	case *Group:
		ct := t.compose(nd)
		for _, c := range nd.Children {
			rasterGroup(rc, c, ct)
		}
	case *SectorNode:
		cx, cy := t.apply(nd.CX, nd.CY)
		fillSector(rc.img, cx, cy, nd.Outer*t.scale, nd.Inner*t.scale, nd.Start, nd.End, nd.Fill)
	case *CircleNode:
		cx, cy := t.apply(nd.CX, nd.CY)
		drawCircle(rc.img, cx, cy, nd.R*t.scale, nd.Fill, nd.Stroke, nd.StrokeWidth*t.scale)
	case *LineNode:
		x1, y1 := t.apply(nd.X1, nd.Y1)
		x2, y2 := t.apply(nd.X2, nd.Y2)
		drawThickLine(rc.img, x1, y1, x2, y2, nd.Stroke, nd.Width*t.scale)
	case *TextNode:
		x, y := t.apply(nd.X, nd.Y)
		drawText(rc, x, y, nd.Text, nd.Size*t.scale, nd.Fill, nd.Anchor)
	}
}

// angleInSector tests angular membership allowing sector bounds slightly
// outside [0, 2π).
func angleInSector(a, start, end float64) bool {
	if a >= start && a <= end {
		return true
	}
	if a2 := a - 2*math.Pi; a2 >= start && a2 <= end {
		return true
	}
	if a2 := a + 2*math.Pi; a2 >= start && a2 <= end {
		return true
	}
	return false
}

// fillSector fills an annulus sector with a direct polar coverage test over
// the sector's bounding box.
func fillSector(img *image.RGBA, cx, cy, outer, inner, start, end float64, c color.RGBA) {
	if outer < inner {
		outer, inner = inner, outer
	}
	if outer <= 0 || end <= start {
		return
	}
	b := img.Bounds()
	x0 := maxInt(int(cx-outer)-1, b.Min.X)
	x1 := minInt(int(cx+outer)+1, b.Max.X-1)
	y0 := maxInt(int(cy-outer)-1, b.Min.Y)
	y1 := minInt(int(cy+outer)+1, b.Max.Y-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Hypot(dx, dy)
			if d < inner || d > outer {
				continue
			}
			if angleInSector(AngleAt(cx, cy, float64(x)+0.5, float64(y)+0.5), start, end) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func drawCircle(img *image.RGBA, cx, cy, r float64, fill, stroke color.RGBA, width float64) {
	if r <= 0 {
		return
	}
	if fill.A > 0 {
		b := img.Bounds()
		x0 := maxInt(int(cx-r)-1, b.Min.X)
		x1 := minInt(int(cx+r)+1, b.Max.X-1)
		y0 := maxInt(int(cy-r)-1, b.Min.Y)
		y1 := minInt(int(cy+r)+1, b.Max.Y-1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= r {
					img.SetRGBA(x, y, fill)
				}
			}
		}
	}
	if stroke.A == 0 || width <= 0 {
		return
	}
	// Step the circumference finely enough to leave no gaps.
	steps := int(2 * math.Pi * r * 2)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i <= steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		px := cx + r*math.Sin(a)
		py := cy - r*math.Cos(a)
		setDisc(img, px, py, width/2, stroke)
	}
}

func drawThickLine(img *image.RGBA, x1, y1, x2, y2 float64, c color.RGBA, width float64) {
	if c.A == 0 {
		return
	}
	if width < 1 {
		width = 1
	}
	dist := math.Hypot(x2-x1, y2-y1)
	steps := int(dist) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		setDisc(img, x1+(x2-x1)*t, y1+(y2-y1)*t, width/2, c)
	}
}

func setDisc(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	if r < 0.5 {
		r = 0.5
	}
	b := img.Bounds()
	x0 := maxInt(int(cx-r), b.Min.X)
	x1 := minInt(int(cx+r)+1, b.Max.X-1)
	y0 := maxInt(int(cy-r), b.Min.Y)
	y1 := minInt(int(cy+r)+1, b.Max.Y-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func drawText(rc *rasterContext, x, y float64, s string, size float64, c color.RGBA, anchor TextAnchor) {
	if s == "" {
		return
	}
	face := rc.face(size)
	width := font.MeasureString(face, s).Ceil()
	switch anchor {
	case AnchorMiddle:
		x -= float64(width) / 2
	case AnchorEnd:
		x -= float64(width)
	}
	d := &font.Drawer{
		Dst:  rc.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(int(x)), Y: fixed.I(int(y))},
	}
	d.DrawString(s)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
