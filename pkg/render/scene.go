package render

import "image/color"

// Node is a retained scene-graph element. The graph persists between frames:
// pan and zoom mutate only the scene group's transform, leaving every leaf
// untouched.
type Node interface {
	isNode()
}

// Group is an interior node applying a translate-then-scale transform to its
// children.
type Group struct {
	Name     string
	TX, TY   float64
	Scale    float64
	Children []Node
}

func (*Group) isNode() {}

// Add appends a child node.
func (g *Group) Add(n Node) {
	g.Children = append(g.Children, n)
}

// SectorNode is a filled annulus sector. Bar marks GC bars, which share the
// sector geometry.
type SectorNode struct {
	CX, CY       float64
	Outer, Inner float64
	Start, End   float64
	Fill         color.RGBA
	Bar          bool
}

func (*SectorNode) isNode() {}

// CircleNode is a circle outline with optional fill.
type CircleNode struct {
	CX, CY      float64
	R           float64
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
}

func (*CircleNode) isNode() {}

// LineNode is a straight stroked segment.
type LineNode struct {
	X1, Y1, X2, Y2 float64
	Stroke         color.RGBA
	Width          float64
}

func (*LineNode) isNode() {}

// TextNode is an anchored text run.
type TextNode struct {
	X, Y   float64
	Text   string
	Size   float64
	Fill   color.RGBA
	Anchor TextAnchor
}

func (*TextNode) isNode() {}

// Scene is the retained-mode backend: a node tree with one pannable scene
// group holding the grid, feature, label, and scale layers, and a legend
// group outside it that never pans or zooms.
type Scene struct {
	Width  int
	Height int

	Root       *Group
	sceneGroup *Group
	legend     *Group
	layers     map[Layer]*Group
	current    *Group

	background color.RGBA
}

// NewScene creates an empty scene of the given pixel size.
func NewScene(width, height int, background color.RGBA) *Scene {
	s := &Scene{
		Width:      width,
		Height:     height,
		background: background,
		layers:     make(map[Layer]*Group),
	}
	s.Root = &Group{Name: "root", Scale: 1}
	s.sceneGroup = &Group{Name: "scene", Scale: 1}
	s.legend = &Group{Name: "legend", Scale: 1}
	for _, l := range [4]Layer{LayerGrid, LayerFeatures, LayerLabels, LayerScale} {
		g := &Group{Name: layerName(l), Scale: 1}
		s.layers[l] = g
		s.sceneGroup.Add(g)
	}
	s.layers[LayerLegend] = s.legend
	s.Root.Add(s.sceneGroup)
	s.Root.Add(s.legend)
	s.current = s.layers[LayerGrid]
	return s
}

func layerName(l Layer) string {
	switch l {
	case LayerGrid:
		return "grid"
	case LayerFeatures:
		return "features"
	case LayerLabels:
		return "labels"
	case LayerScale:
		return "scale"
	case LayerLegend:
		return "legend"
	}
	return "layer"
}

// SetView applies the pan/zoom transform to the scene group. This is the
// interactive fast path: no nodes are rebuilt or re-traversed.
func (s *Scene) SetView(v View) {
	s.sceneGroup.TX = v.OffsetX
	s.sceneGroup.TY = v.OffsetY
	s.sceneGroup.Scale = v.Zoom
}

// View returns the scene group's current transform.
func (s *Scene) View() View {
	return View{Zoom: s.sceneGroup.Scale, OffsetX: s.sceneGroup.TX, OffsetY: s.sceneGroup.TY}
}

// Reset discards all retained leaf nodes, keeping the layer structure.
func (s *Scene) Reset() {
	for _, g := range s.layers {
		g.Children = nil
	}
}

// NodeCount returns the number of leaf nodes in the scene.
func (s *Scene) NodeCount() int {
	n := 0
	var walk func(Node)
	walk = func(nd Node) {
		if g, ok := nd.(*Group); ok {
			for _, c := range g.Children {
				walk(c)
			}
			return
		}
		n++
	}
	walk(s.Root)
	return n
}

// Layer returns the group node backing a layer.
func (s *Scene) Layer(l Layer) *Group {
	return s.layers[l]
}

// BeginLayer implements Canvas.
func (s *Scene) BeginLayer(l Layer) {
	s.current = s.layers[l]
}

// Sector implements Canvas.
func (s *Scene) Sector(cx, cy, outer, inner, startAngle, endAngle float64, fill color.RGBA) {
	s.current.Add(&SectorNode{CX: cx, CY: cy, Outer: outer, Inner: inner, Start: startAngle, End: endAngle, Fill: fill})
}

// Bar implements Canvas.
func (s *Scene) Bar(cx, cy, outer, inner, startAngle, endAngle float64, fill color.RGBA) {
	s.current.Add(&SectorNode{CX: cx, CY: cy, Outer: outer, Inner: inner, Start: startAngle, End: endAngle, Fill: fill, Bar: true})
}

// Circle implements Canvas.
func (s *Scene) Circle(cx, cy, r float64, fill, stroke color.RGBA, strokeWidth float64) {
	s.current.Add(&CircleNode{CX: cx, CY: cy, R: r, Fill: fill, Stroke: stroke, StrokeWidth: strokeWidth})
}

// Line implements Canvas.
func (s *Scene) Line(x1, y1, x2, y2 float64, stroke color.RGBA, width float64) {
	s.current.Add(&LineNode{X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: stroke, Width: width})
}

// Text implements Canvas.
func (s *Scene) Text(x, y float64, txt string, size float64, fill color.RGBA, anchor TextAnchor) {
	s.current.Add(&TextNode{X: x, Y: y, Text: txt, Size: size, Fill: fill, Anchor: anchor})
}
