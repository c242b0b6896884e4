package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/genomap/pkg/render"
)

var (
	styleDefault  = tcell.StyleDefault
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSidebarH = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSidebar  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleBand     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

func (ui *viewerUI) draw() {
	ui.screen.Clear()
	w, h := ui.screen.Size()
	canvasW := canvasCols(w)
	canvasH := h - 2

	ui.drawMap(canvasW, canvasH)

	// Divider
	for y := 0; y < canvasH; y++ {
		ui.screen.SetContent(canvasW, y, '│', nil, styleBorder)
	}

	ui.drawSidebar(canvasW+2, w, canvasH)
	ui.drawStatusBar(w, h)
}

// drawMap projects the circular map into terminal cells: each cell is
// inverse-transformed through the current view into polar coordinates, then
// resolved against the radial layout and the interval index.
func (ui *viewerUI) drawMap(canvasW, canvasH int) {
	layout := ui.viewer.Layout()
	if layout == nil || ui.genome == nil {
		return
	}
	view := ui.viewer.View()
	length := float64(ui.genome.Length)

	for cy := 0; cy < canvasH; cy++ {
		for cx := 0; cx < canvasW; cx++ {
			sx, sy := cellToScreen(cx, cy)
			wx, wy := view.ScreenToWorld(sx, sy)
			dist := math.Hypot(wx-layout.CenterX, wy-layout.CenterY)

			band := layout.BandFor(dist)
			if band == nil {
				continue
			}

			angle := render.AngleAt(layout.CenterX, layout.CenterY, wx, wy)
			pos := int(render.PositionForAngle(angle, length))

			ch, style := '░', styleBand
			for _, f := range ui.viewer.Index().Query(pos, pos) {
				onBand := false
				for _, t := range band.Tracks {
					if f.TrackID == t.ID {
						onBand = true
						break
					}
				}
				if !onBand {
					continue
				}
				ch = '█'
				if c, ok := ui.trackColors[f.TrackID]; ok {
					style = styleDefault.Foreground(c)
				}
				break
			}
			ui.screen.SetContent(cx, cy, ch, nil, style)
		}
	}
}

func (ui *viewerUI) drawSidebar(x0, w, h int) {
	y := 0
	put := func(s string, style tcell.Style) {
		if y >= h {
			return
		}
		for i, r := range s {
			if x0+i >= w {
				break
			}
			ui.screen.SetContent(x0+i, y, r, nil, style)
		}
		y++
	}

	name := ui.genome.Name
	if name == "" {
		name = "genome"
	}
	put(name, styleSidebarH)
	put(fmt.Sprintf("%d bp, %d tracks", ui.genome.Length, len(ui.genome.Tracks)), styleSidebar)
	put(fmt.Sprintf("zoom %.2f", ui.viewer.View().Zoom), styleSidebar)
	y++

	put("Tracks", styleSidebarH)
	for _, t := range ui.genome.Tracks {
		marker := ' '
		if ui.hovered != nil && ui.hovered.Track == t {
			marker = '>'
		}
		put(fmt.Sprintf("%c %s (%d)", marker, t.Name, len(t.Features)), styleSidebar)
	}
	y++

	if ui.hovered != nil {
		f := ui.hovered.Feature
		put("Feature", styleSidebarH)
		if f.Name != "" {
			put(f.Name, styleSidebar)
		}
		put(f.ID, styleSidebar)
		put(fmt.Sprintf("%s %d..%d (%s)", f.Type, f.Start, f.End, f.Strand), styleSidebar)
		if v, ok := f.NumericAttr("value"); ok {
			put(fmt.Sprintf("value %.3f", v), styleSidebar)
		}
		put(fmt.Sprintf("at %d bp", int(ui.hovered.Position)), styleSidebar)
	}
}

func (ui *viewerUI) drawStatusBar(w, h int) {
	msg := ui.status
	if msg == "" {
		msg = "drag=pan wheel=zoom s=save q=quit"
	}
	for x := 0; x < w; x++ {
		ui.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	for i, r := range msg {
		if i >= w {
			break
		}
		ui.screen.SetContent(i, h-1, r, nil, styleStatus)
	}
}
