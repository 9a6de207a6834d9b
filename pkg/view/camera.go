package view

// Camera follows the car with a lag. It never rotates; the car sits at
// AnchorY of the screen height so more road is visible ahead.
type Camera struct {
	X, Y     float64
	SmoothX  float64
	SmoothY  float64
	AnchorY  float64
	attached bool
}

func NewCamera() *Camera {
	return &Camera{
		SmoothX: 0.1,
		SmoothY: 0.25,
		AnchorY: 0.7,
	}
}

// Follow eases the camera toward (x, y). The first call snaps.
func (c *Camera) Follow(x, y float64) {
	if !c.attached {
		c.X, c.Y, c.attached = x, y, true
		return
	}
	c.X += (x - c.X) * c.SmoothX
	c.Y += (y - c.Y) * c.SmoothY
}

// Reset detaches the camera so the next Follow snaps.
func (c *Camera) Reset() {
	c.attached = false
}

// WorldToScreen maps a world point onto a w×h screen.
func (c *Camera) WorldToScreen(wx, wy float64, w, h int) (float64, float64) {
	return wx - c.X + float64(w)/2, wy - c.Y + float64(h)*c.AnchorY
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float64, w, h int) (float64, float64) {
	return sx + c.X - float64(w)/2, sy + c.Y - float64(h)*c.AnchorY
}

// VisibleY returns the world Y span shown on a screen of height h.
func (c *Camera) VisibleY(h int) (top, bottom float64) {
	_, top = c.ScreenToWorld(0, 0, 0, h)
	_, bottom = c.ScreenToWorld(0, float64(h), 0, h)
	return top, bottom
}
