// Command genomap-view is an interactive terminal viewer for circular
// genome maps: drag to pan, wheel to zoom at the pointer, hover to inspect
// features.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/genomap/pkg/genome"
)

const usage = `genomap-view - interactive circular genome map viewer

Usage:
  genomap-view <genome.json>

Keys:
  + / -       zoom in / out (centered)
  arrow keys  pan
  0           reset view
  r           toggle renderer type
  s           save current view as SVG next to the input file
  q / Esc     quit

Mouse:
  drag        pan
  wheel       zoom anchored at the pointer
  move        hover feature info in the sidebar
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	g, err := genome.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()

	vw := newViewerUI(screen, g, os.Args[1])
	vw.run()

	screen.Fini()
}
