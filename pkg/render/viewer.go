package render

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/ha1tch/genomap/pkg/genome"
	"github.com/ha1tch/genomap/pkg/interval"
)

// maxRenderRetries bounds deferred re-render attempts when the backend
// surface has not appeared yet.
const maxRenderRetries = 3

// Viewer owns the full pipeline: data, layout, LOD policy, spatial index,
// view transform, hit-testing, events, and the active render backend.
//
// Interactive zoom and pan touch only the view transform. A re-layout and
// repaint happen only on data changes, track visibility toggles, resize,
// renderer switches, and zoom movements that cross an LOD bucket boundary.
type Viewer struct {
	opts Options
	log  *log.Logger

	genome *genome.Genome
	layout *Layout
	lod    *LOD
	index  *interval.Tree
	events *Emitter
	ctrl   *Controller
	hit    *HitTester

	scene    *Scene
	renderer string

	// generation guards deferred renders: a SetGenome call supersedes any
	// render still pending from an earlier call.
	generation int
	retries    int

	// schedule defers a callback to the next turn of the host event loop.
	// The default runs inline; interactive hosts and tests may replace it.
	schedule func(func())

	initialized bool
	lastDetail  int
}

// NewViewer creates a viewer with the given options. Zero-valued option
// fields are filled from DefaultOptions. logger may be nil.
func NewViewer(opts Options, logger *log.Logger) *Viewer {
	v := &Viewer{
		opts:     opts.withDefaults(),
		log:      logger,
		lod:      NewLOD(),
		index:    interval.New(),
		events:   NewEmitter(),
		schedule: func(fn func()) { fn() },
	}
	v.ctrl = NewController(float64(v.opts.Width), float64(v.opts.Height), v.opts.MinZoom, v.opts.MaxZoom)

	switch v.opts.Renderer {
	case RendererScene, RendererSVG:
		v.renderer = v.opts.Renderer
	default:
		// Degrade to a bare non-interactive surface rather than failing.
		if v.log != nil {
			v.log.Warn("unknown renderer, falling back to non-interactive scene surface", "renderer", v.opts.Renderer)
		}
		v.renderer = RendererScene
		v.opts.ZoomEnabled = false
		v.opts.PanEnabled = false
	}

	// Backend init completes through the scheduler so hosts see the same
	// one-shot initialized signal an async surface would give them.
	v.schedule(func() {
		v.scene = NewScene(v.opts.Width, v.opts.Height, ParseColor(v.opts.Background, 0))
		v.initialized = true
		v.events.Emit(Event{Type: EventInitialized})
	})
	return v
}

// SetScheduler replaces the deferred-callback hook. Interactive hosts pass
// their event-loop post function.
func (v *Viewer) SetScheduler(fn func(func())) {
	if fn != nil {
		v.schedule = fn
	}
}

// Events returns the viewer's event emitter.
func (v *Viewer) Events() *Emitter {
	return v.events
}

// Options returns the effective configuration.
func (v *Viewer) Options() Options {
	return v.opts
}

// Genome returns the attached genome, or nil.
func (v *Viewer) Genome() *genome.Genome {
	return v.genome
}

// Layout returns the current radial layout, or nil before SetGenome.
func (v *Viewer) Layout() *Layout {
	return v.layout
}

// LOD returns the level-of-detail policy table.
func (v *Viewer) LOD() *LOD {
	return v.lod
}

// Index returns the interval index, rebuilt on every SetGenome.
func (v *Viewer) Index() *interval.Tree {
	return v.index
}

// View returns the current pan/zoom transform.
func (v *Viewer) View() View {
	return v.ctrl.View()
}

// Scene returns the retained scene graph, or nil until backend init
// completes.
func (v *Viewer) Scene() *Scene {
	return v.scene
}

// Renderer returns the active renderer type name.
func (v *Viewer) Renderer() string {
	return v.renderer
}

// SetGenome attaches a genome, recomputes the layout, rebuilds the interval
// index, and schedules a render. A later SetGenome supersedes any render
// still pending from this one.
func (v *Viewer) SetGenome(g *genome.Genome) {
	v.generation++
	gen := v.generation
	v.genome = g
	v.relayout()
	v.index.Rebuild(g)
	v.events.Emit(Event{Type: EventDataLoaded})
	v.schedule(func() { v.renderGeneration(gen) })
}

func (v *Viewer) relayout() {
	cx := float64(v.opts.Width) / 2
	cy := float64(v.opts.Height) / 2
	outer := math.Min(cx, cy) - v.opts.OuterPadding
	v.layout = NewLayout(v.genome, cx, cy, outer)
	v.hit = NewHitTester(v.layout)
	v.lastDetail = v.lod.For(v.ctrl.Zoom()).Detail
}

// renderGeneration renders if gen is still current; stale generations are
// dropped. When the backend surface has not appeared yet the render is
// re-scheduled a bounded number of times, then abandoned with a warning.
func (v *Viewer) renderGeneration(gen int) {
	if gen != v.generation {
		return
	}
	if v.scene == nil {
		if v.retries >= maxRenderRetries {
			if v.log != nil {
				v.log.Warn("render surface never appeared, giving up", "retries", v.retries)
			}
			return
		}
		v.retries++
		v.schedule(func() { v.renderGeneration(gen) })
		return
	}
	v.retries = 0
	v.Render()
}

// Render repaints the retained scene from the current genome and view.
// Missing genome or surface means there is nothing to draw; that is not an
// error.
func (v *Viewer) Render() {
	if v.scene == nil || v.genome == nil || v.layout == nil {
		return
	}
	v.scene.Reset()
	p := NewPainter(v.layout, v.lod, v.opts)
	p.Paint(v.scene, v.ctrl.Zoom())
	v.scene.SetView(v.ctrl.View())
}

// SVG paints the current state through the vector backend and returns the
// markup. Both backends consume the same painter walk, so the document is
// path-equivalent to the scene raster.
func (v *Viewer) SVG() string {
	c := NewSVGCanvas(v.opts.Width, v.opts.Height, v.opts.Background)
	if v.genome != nil && v.layout != nil {
		p := NewPainter(v.layout, v.lod, v.opts)
		p.Paint(c, v.ctrl.Zoom())
	}
	c.SetView(v.ctrl.View())
	return c.String()
}

// WritePNG rasterizes the scene backend and encodes it as PNG.
func (v *Viewer) WritePNG(w io.Writer) error {
	if v.scene == nil {
		v.scene = NewScene(v.opts.Width, v.opts.Height, ParseColor(v.opts.Background, 0))
		v.initialized = true
	}
	v.Render()
	return v.scene.EncodePNG(w)
}

// ZoomTo zooms to level anchored at the screen point (x, y): the genomic
// location under the anchor stays put. Crossing into a different LOD bucket
// triggers a repaint since feature culling may change.
func (v *Viewer) ZoomTo(level, x, y float64) {
	if !v.opts.ZoomEnabled {
		return
	}
	old := v.ctrl.Zoom()
	v.ctrl.ZoomTo(level, x, y)
	v.afterZoom(old, x, y)
}

// ZoomCentered zooms anchored at the canvas midpoint.
func (v *Viewer) ZoomCentered(level float64) {
	if !v.opts.ZoomEnabled {
		return
	}
	old := v.ctrl.Zoom()
	v.ctrl.ZoomCentered(level)
	v.afterZoom(old, float64(v.opts.Width)/2, float64(v.opts.Height)/2)
}

func (v *Viewer) afterZoom(old, x, y float64) {
	if v.scene != nil {
		v.scene.SetView(v.ctrl.View())
	}
	if d := v.lod.For(v.ctrl.Zoom()).Detail; d != v.lastDetail {
		v.lastDetail = d
		v.Render()
	}
	v.events.Emit(Event{Type: EventZoom, Delta: v.ctrl.Zoom() - old, X: x, Y: y})
}

// Pan shifts the scene by a cumulative screen-space delta.
func (v *Viewer) Pan(dx, dy float64) {
	if !v.opts.PanEnabled {
		return
	}
	v.ctrl.PanBy(dx, dy)
	if v.scene != nil {
		v.scene.SetView(v.ctrl.View())
	}
	v.events.Emit(Event{Type: EventPan, X: dx, Y: dy})
}

// ResetView restores the identity transform.
func (v *Viewer) ResetView() {
	v.ctrl.Reset()
	if v.scene != nil {
		v.scene.SetView(v.ctrl.View())
	}
	if d := v.lod.For(v.ctrl.Zoom()).Detail; d != v.lastDetail {
		v.lastDetail = d
		v.Render()
	}
}

// HitTest resolves a screen point to a feature, or nil.
func (v *Viewer) HitTest(x, y float64) *Hit {
	if v.hit == nil {
		return nil
	}
	return v.hit.HitAt(x, y, v.ctrl.View())
}

// Click hit-tests and emits a click event.
func (v *Viewer) Click(x, y float64) *Hit {
	h := v.HitTest(x, y)
	ev := Event{Type: EventClick, X: x, Y: y}
	if h != nil {
		ev.Feature = h.Feature
	}
	v.events.Emit(ev)
	return h
}

// Hover hit-tests and emits a hover event whose Feature is nil when nothing
// is under the pointer.
func (v *Viewer) Hover(x, y float64) *Hit {
	h := v.HitTest(x, y)
	ev := Event{Type: EventHover, X: x, Y: y}
	if h != nil {
		ev.Feature = h.Feature
	}
	v.events.Emit(ev)
	return h
}

// SetRenderer switches the active renderer type and repaints.
func (v *Viewer) SetRenderer(name string) {
	if name != RendererScene && name != RendererSVG {
		if v.log != nil {
			v.log.Warn("ignoring unknown renderer", "renderer", name)
		}
		return
	}
	if name == v.renderer {
		return
	}
	v.renderer = name
	v.events.Emit(Event{Type: EventRendererTypeChanged, Renderer: name})
	v.Render()
}

// SetTrackVisible toggles a track and re-stacks the layout, since band
// radii depend on the visible track count.
func (v *Viewer) SetTrackVisible(trackID string, visible bool) {
	if v.genome == nil {
		return
	}
	t := v.genome.TrackByID(trackID)
	if t == nil || t.Visible == visible {
		return
	}
	t.Visible = visible
	v.relayout()
	v.Render()
}

// Resize changes the canvas size and recomputes the layout.
func (v *Viewer) Resize(width, height int) {
	v.opts.Width = width
	v.opts.Height = height
	v.ctrl.Resize(float64(width), float64(height))
	if v.scene != nil {
		v.scene = NewScene(width, height, ParseColor(v.opts.Background, 0))
	}
	v.relayout()
	v.Render()
}
