package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/ha1tch/genomap/pkg/genome"
)

func paintGenome() *genome.Genome {
	g := genome.New("plasmid", 5000)

	genes := genome.NewTrack("genes", "Genes", "feature", "#3366cc")
	genes.AddFeature(genome.NewFeature("geneA", "geneA", "CDS", 1000, 2000, genome.StrandForward))
	genes.AddFeature(genome.NewFeature("geneB", "geneB", "CDS", 3000, 3800, genome.StrandReverse))
	g.AddTrack(genes)

	gc := genome.NewTrack("gc", "GC content", genome.TypeGCContent, "#888888")
	for i := 0; i < 10; i++ {
		f := genome.NewFeature("", "", genome.TypeGCContent, i*500+1, (i+1)*500, genome.StrandNone)
		f.Attributes = map[string]string{"value": "55"}
		gc.AddFeature(f)
	}
	g.AddTrack(gc)
	return g
}

func paintSetup(g *genome.Genome) (*Painter, *Layout) {
	opts := DefaultOptions()
	l := NewLayout(g, 400, 300, 240)
	return NewPainter(l, NewLOD(), opts), l
}

func TestPaintZOrder(t *testing.T) {
	p, _ := paintSetup(paintGenome())
	s := NewScene(800, 600, color.RGBA{255, 255, 255, 255})

	p.Paint(s, 1)

	if len(s.Layer(LayerGrid).Children) == 0 {
		t.Errorf("Grid layer is empty")
	}
	if len(s.Layer(LayerFeatures).Children) == 0 {
		t.Errorf("Feature layer is empty")
	}
	if len(s.Layer(LayerScale).Children) == 0 {
		t.Errorf("Scale layer is empty")
	}
	if len(s.Layer(LayerLegend).Children) == 0 {
		t.Errorf("Legend layer is empty")
	}
}

func TestPaintCullsFeatureDetail(t *testing.T) {
	// Labels are off below zoom 1, but bands and features still draw.
	p, _ := paintSetup(paintGenome())
	s := NewScene(800, 600, color.RGBA{})

	p.Paint(s, 0.05)

	if len(s.Layer(LayerLabels).Children) != 0 {
		t.Errorf("Labels should be culled at zoom 0.05, got %d", len(s.Layer(LayerLabels).Children))
	}
	if len(s.Layer(LayerFeatures).Children) == 0 {
		t.Errorf("Features should still draw at minimum zoom")
	}
}

func TestPaintLabelsAtHighZoom(t *testing.T) {
	p, _ := paintSetup(paintGenome())
	s := NewScene(800, 600, color.RGBA{})

	// geneA spans 1000 positions; at zoom 1 it projects well past the
	// label threshold.
	p.Paint(s, 1)

	var texts []string
	for _, n := range s.Layer(LayerLabels).Children {
		if tn, ok := n.(*TextNode); ok {
			texts = append(texts, tn.Text)
		}
	}
	found := false
	for _, name := range texts {
		if name == "geneA" {
			found = true
		}
	}
	if !found {
		t.Errorf("geneA label missing, labels: %v", texts)
	}
}

func TestPaintGCTracksUseBars(t *testing.T) {
	p, _ := paintSetup(paintGenome())
	s := NewScene(800, 600, color.RGBA{})

	p.Paint(s, 1)

	bars, sectors := 0, 0
	for _, n := range s.Layer(LayerFeatures).Children {
		if sn, ok := n.(*SectorNode); ok {
			if sn.Bar {
				bars++
			} else {
				sectors++
			}
		}
	}
	if bars != 10 {
		t.Errorf("Expected 10 GC bars, got %d", bars)
	}
	// 2 gene sectors plus 2 background half-annuli per band.
	if sectors != 2+2*2 {
		t.Errorf("Expected 6 plain sectors, got %d", sectors)
	}
}

func TestBackendsEmitSamePrimitives(t *testing.T) {
	g := paintGenome()
	p, _ := paintSetup(g)

	s := NewScene(800, 600, color.RGBA{})
	p.Paint(s, 1)

	c := NewSVGCanvas(800, 600, "#ffffff")
	p.Paint(c, 1)
	doc := c.String()

	// Same painter walk feeds both backends, so element counts must agree
	// with the scene's leaf count.
	elements := strings.Count(doc, "<path") + strings.Count(doc, "<circle") +
		strings.Count(doc, "<line") + strings.Count(doc, "<text")
	if elements != s.NodeCount() {
		t.Errorf("SVG emitted %d elements, scene retained %d nodes", elements, s.NodeCount())
	}
}

func TestSVGDocumentStructure(t *testing.T) {
	p, _ := paintSetup(paintGenome())
	c := NewSVGCanvas(800, 600, "#ffffff")
	p.Paint(c, 1)
	c.SetView(View{Zoom: 2, OffsetX: -100, OffsetY: 50})
	doc := c.String()

	if !strings.HasPrefix(doc, "<?xml") {
		t.Errorf("Missing XML declaration")
	}
	if !strings.Contains(doc, `viewBox="0 0 800 600"`) {
		t.Errorf("Missing viewBox")
	}
	if !strings.Contains(doc, `transform="translate(-100.00 50.00) scale(2.0000)"`) {
		t.Errorf("Scene group transform missing or wrong:\n%s", doc[:200])
	}
	// Legend stays outside the transformed group.
	gEnd := strings.Index(doc, "</g>")
	legend := strings.Index(doc, "Genes")
	if legend == -1 || legend < gEnd {
		t.Errorf("Legend should come after the scene group")
	}
}

func TestSVGEscapesText(t *testing.T) {
	g := genome.New("x", 1000)
	tr := genome.NewTrack("t", "A <&> track", "feature", "")
	tr.AddFeature(genome.NewFeature("f", "5' UTR <x>", "CDS", 1, 900, genome.StrandForward))
	g.AddTrack(tr)

	opts := DefaultOptions()
	l := NewLayout(g, 400, 300, 240)
	c := NewSVGCanvas(800, 600, "#ffffff")
	NewPainter(l, NewLOD(), opts).Paint(c, 1)
	doc := c.String()

	if strings.Contains(doc, "<x>") {
		t.Errorf("Text content not escaped")
	}
	if !strings.Contains(doc, "&lt;x&gt;") {
		t.Errorf("Expected escaped label in document")
	}
}

func TestTickStep(t *testing.T) {
	cases := []struct {
		length, want int
	}{
		{2686, 500},
		{10000, 1000},
		{4641652, 500000},
		{10, 1},
	}
	for _, c := range cases {
		if got := tickStep(c.length); got != c.want {
			t.Errorf("tickStep(%d) = %d, want %d", c.length, got, c.want)
		}
	}
}

func TestFormatPosition(t *testing.T) {
	cases := []struct {
		pos  int
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1500, "1.5 kb"},
		{2000, "2 kb"},
		{2000000, "2 Mb"},
		{2500000, "2.5 Mb"},
	}
	for _, c := range cases {
		if got := formatPosition(c.pos); got != c.want {
			t.Errorf("formatPosition(%d) = %q, want %q", c.pos, got, c.want)
		}
	}
}

func TestSceneSetViewTouchesOnlyTransform(t *testing.T) {
	p, _ := paintSetup(paintGenome())
	s := NewScene(800, 600, color.RGBA{})
	p.Paint(s, 1)

	before := s.NodeCount()
	s.SetView(View{Zoom: 3, OffsetX: 10, OffsetY: 20})

	if s.NodeCount() != before {
		t.Errorf("SetView changed the node count: %d -> %d", before, s.NodeCount())
	}
	v := s.View()
	if v.Zoom != 3 || v.OffsetX != 10 || v.OffsetY != 20 {
		t.Errorf("Scene view = %+v", v)
	}
}

func TestSceneResetKeepsLayers(t *testing.T) {
	p, _ := paintSetup(paintGenome())
	s := NewScene(800, 600, color.RGBA{})
	p.Paint(s, 1)
	s.SetView(View{Zoom: 2, OffsetX: 1, OffsetY: 2})

	s.Reset()

	if s.NodeCount() != 0 {
		t.Errorf("Reset left %d nodes", s.NodeCount())
	}
	if s.Layer(LayerGrid) == nil {
		t.Errorf("Reset dropped the layer structure")
	}
	// The transform survives a rebuild.
	if s.View().Zoom != 2 {
		t.Errorf("Reset should not touch the view transform")
	}
}

func TestPaintEmptyGenomeIsNoOp(t *testing.T) {
	opts := DefaultOptions()
	p := NewPainter(NewLayout(nil, 400, 300, 240), NewLOD(), opts)
	s := NewScene(800, 600, color.RGBA{})

	p.Paint(s, 1)

	if s.NodeCount() != 0 {
		t.Errorf("Painting without a genome emitted %d nodes", s.NodeCount())
	}
}
