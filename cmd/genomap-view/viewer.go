package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/genomap/pkg/genome"
	"github.com/ha1tch/genomap/pkg/render"
)

const (
	sidebarWidth = 32
	zoomStep     = 1.25

	// A terminal cell is roughly twice as tall as it is wide, so one cell
	// spans two logical pixels vertically.
	cellAspect = 2
)

type viewerUI struct {
	screen tcell.Screen
	viewer *render.Viewer
	genome *genome.Genome
	path   string

	hovered *render.Hit
	status  string

	dragging   bool
	lastMouseX int
	lastMouseY int

	trackColors map[string]tcell.Color
}

func newViewerUI(screen tcell.Screen, g *genome.Genome, path string) *viewerUI {
	w, h := screen.Size()
	opts := render.DefaultOptions()
	opts.Width = canvasCols(w)
	opts.Height = (h - 2) * cellAspect

	v := render.NewViewer(opts, nil)

	ui := &viewerUI{
		screen:      screen,
		viewer:      v,
		genome:      g,
		path:        path,
		trackColors: make(map[string]tcell.Color),
	}
	for i, t := range g.Tracks {
		c := render.ParseColor(t.Color, i)
		ui.trackColors[t.ID] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	v.Events().On(render.EventHover, func(ev render.Event) {
		if ev.Feature == nil {
			ui.status = ""
		}
	})
	v.SetGenome(g)
	ui.status = "loaded " + filepath.Base(path)
	return ui
}

func canvasCols(screenCols int) int {
	c := screenCols - sidebarWidth - 1
	if c < 20 {
		c = 20
	}
	return c
}

// cellToScreen maps a terminal cell to the viewer's logical pixel space.
func cellToScreen(x, y int) (float64, float64) {
	return float64(x) + 0.5, (float64(y) + 0.5) * cellAspect
}

func (ui *viewerUI) run() {
	for {
		ui.draw()
		ui.screen.Show()

		switch ev := ui.screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ui.screen.Size()
			ui.viewer.Resize(canvasCols(w), (h-2)*cellAspect)
			ui.screen.Sync()
		case *tcell.EventKey:
			if ui.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			ui.handleMouse(ev)
		}
	}
}

func (ui *viewerUI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		ui.viewer.Pan(0, 8)
	case tcell.KeyDown:
		ui.viewer.Pan(0, -8)
	case tcell.KeyLeft:
		ui.viewer.Pan(8, 0)
	case tcell.KeyRight:
		ui.viewer.Pan(-8, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case '+', '=':
			ui.viewer.ZoomCentered(ui.viewer.View().Zoom * zoomStep)
		case '-':
			ui.viewer.ZoomCentered(ui.viewer.View().Zoom / zoomStep)
		case '0':
			ui.viewer.ResetView()
		case 'r':
			next := render.RendererSVG
			if ui.viewer.Renderer() == render.RendererSVG {
				next = render.RendererScene
			}
			ui.viewer.SetRenderer(next)
			ui.status = "renderer: " + ui.viewer.Renderer()
		case 's':
			ui.saveSVG()
		}
	}
	return false
}

func (ui *viewerUI) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	sx, sy := cellToScreen(x, y)

	if buttons&tcell.WheelUp != 0 {
		ui.viewer.ZoomTo(ui.viewer.View().Zoom*zoomStep, sx, sy)
		return
	}
	if buttons&tcell.WheelDown != 0 {
		ui.viewer.ZoomTo(ui.viewer.View().Zoom/zoomStep, sx, sy)
		return
	}

	if buttons&tcell.Button1 != 0 {
		if ui.dragging {
			dx := float64(x-ui.lastMouseX)
			dy := float64(y-ui.lastMouseY) * cellAspect
			if dx != 0 || dy != 0 {
				ui.viewer.Pan(dx, dy)
			}
		}
		ui.dragging = true
		ui.lastMouseX = x
		ui.lastMouseY = y
		return
	}
	ui.dragging = false

	ui.hovered = ui.viewer.Hover(sx, sy)
	if ui.hovered != nil {
		name := ui.hovered.Feature.Name
		if name == "" {
			name = ui.hovered.Feature.ID
		}
		ui.status = name
	}
}

func (ui *viewerUI) saveSVG() {
	out := strings.TrimSuffix(ui.path, filepath.Ext(ui.path)) + ".svg"
	if err := os.WriteFile(out, []byte(ui.viewer.SVG()), 0644); err != nil {
		ui.status = "save failed: " + err.Error()
		return
	}
	ui.status = "saved " + filepath.Base(out)
}
