package render

// View is the transform applied to the scene group: a screen-space offset
// followed by a uniform scale. screen = world·Zoom + Offset.
type View struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

// IdentityView returns the untransformed view.
func IdentityView() View {
	return View{Zoom: 1}
}

// ScreenToWorld inverts the view transform for a screen point.
func (v View) ScreenToWorld(x, y float64) (wx, wy float64) {
	return (x - v.OffsetX) / v.Zoom, (y - v.OffsetY) / v.Zoom
}

// WorldToScreen applies the view transform to a world point.
func (v View) WorldToScreen(x, y float64) (sx, sy float64) {
	return x*v.Zoom + v.OffsetX, y*v.Zoom + v.OffsetY
}

// Controller maintains the zoom level and pan offset of the scene group.
// Zooming and panning mutate only the view transform; no re-layout happens
// here.
type Controller struct {
	view    View
	width   float64
	height  float64
	minZoom float64
	maxZoom float64
}

// NewController creates a controller over a canvas of the given size.
func NewController(width, height, minZoom, maxZoom float64) *Controller {
	return &Controller{
		view:    IdentityView(),
		width:   width,
		height:  height,
		minZoom: minZoom,
		maxZoom: maxZoom,
	}
}

// View returns the current transform.
func (c *Controller) View() View {
	return c.view
}

// Zoom returns the current zoom level.
func (c *Controller) Zoom() float64 {
	return c.view.Zoom
}

// Resize updates the canvas size used for centered zooms.
func (c *Controller) Resize(width, height float64) {
	c.width = width
	c.height = height
}

// ZoomTo sets the zoom level anchored at the screen point (px, py): the
// world coordinate under the anchor before the zoom stays under it after.
func (c *Controller) ZoomTo(level, px, py float64) {
	level = clamp(level, c.minZoom, c.maxZoom)
	wx, wy := c.view.ScreenToWorld(px, py)
	c.view.OffsetX = px - wx*level
	c.view.OffsetY = py - wy*level
	c.view.Zoom = level
}

// ZoomCentered zooms anchored at the canvas midpoint.
func (c *Controller) ZoomCentered(level float64) {
	c.ZoomTo(level, c.width/2, c.height/2)
}

// PanBy shifts the scene group by a screen-space delta. Pan is cumulative:
// the delta adds to the current offset.
func (c *Controller) PanBy(dx, dy float64) {
	c.view.OffsetX += dx
	c.view.OffsetY += dy
}

// Reset restores the identity view.
func (c *Controller) Reset() {
	c.view = IdentityView()
}
