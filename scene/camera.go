package scene

import "math"

// Zoom limits for Camera.ZoomBy.
const (
	MinZoom = 0.1
	MaxZoom = 8.0
)

// Camera maps world coordinates (origin at the center, y up) onto the
// screen (origin at the top-left, y down).
type Camera struct {
	ScreenWidth  float64
	ScreenHeight float64
	X, Y         float64 // World point shown at the screen center
	Zoom         float64
}

// NewCamera returns a camera centered on the world origin at zoom 1.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		ScreenWidth:  float64(screenWidth),
		ScreenHeight: float64(screenHeight),
		Zoom:         1,
	}
}

// WorldToScreen converts a world point to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	sx := c.ScreenWidth/2 + (x-c.X)*c.Zoom
	sy := c.ScreenHeight/2 - (y-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen pixels back to a world point.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	x := (sx-c.ScreenWidth/2)/c.Zoom + c.X
	y := (c.ScreenHeight/2-sy)/c.Zoom + c.Y
	return x, y
}

// Scale converts a world length to screen pixels.
func (c *Camera) Scale(l float64) float64 {
	return l * c.Zoom
}

// Pan moves the camera along the world axes (x right, y up) by a delta
// given in screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
}

// ZoomBy multiplies the zoom by factor, keeping it within [MinZoom, MaxZoom].
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom = math.Max(MinZoom, math.Min(MaxZoom, c.Zoom*factor))
}

// Reset recenters the camera at zoom 1.
func (c *Camera) Reset() {
	c.X, c.Y, c.Zoom = 0, 0, 1
}

// Visible reports whether a world rectangle overlaps the screen.
func (c *Camera) Visible(r Rect) bool {
	left, top := c.WorldToScreen(r.CX-r.W/2, r.CY+r.H/2)
	w, h := c.Scale(r.W), c.Scale(r.H)
	return left+w >= 0 && top+h >= 0 && left <= c.ScreenWidth && top <= c.ScreenHeight
}
