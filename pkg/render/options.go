package render

// Renderer type names accepted by Options.Renderer.
const (
	RendererScene = "scene"
	RendererSVG   = "svg"
)

// Options configures a viewer. Callers set only the fields they care about;
// zero values are filled from DefaultOptions before use.
type Options struct {
	Width    int
	Height   int
	Renderer string

	ZoomEnabled bool
	PanEnabled  bool

	ShowLabels bool
	ShowScale  bool
	ShowLegend bool

	// OuterPadding is the gap between the canvas edge and the outermost
	// band, leaving room for the scale ring and labels.
	OuterPadding float64

	MinZoom  float64
	MaxZoom  float64
	FontSize float64

	Background string
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       600,
		Renderer:     RendererScene,
		ZoomEnabled:  true,
		PanEnabled:   true,
		ShowLabels:   true,
		ShowScale:    true,
		ShowLegend:   true,
		OuterPadding: 60,
		MinZoom:      0.1,
		MaxZoom:      10,
		FontSize:     12,
		Background:   "#ffffff",
	}
}

// withDefaults fills zero-valued numeric and string fields from
// DefaultOptions. Callers normally start from DefaultOptions() and override
// fields, so boolean toggles are taken as given.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.Renderer == "" {
		o.Renderer = d.Renderer
	}
	if o.OuterPadding == 0 {
		o.OuterPadding = d.OuterPadding
	}
	if o.MinZoom == 0 {
		o.MinZoom = d.MinZoom
	}
	if o.MaxZoom == 0 {
		o.MaxZoom = d.MaxZoom
	}
	if o.FontSize == 0 {
		o.FontSize = d.FontSize
	}
	if o.Background == "" {
		o.Background = d.Background
	}
	return o
}
