package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/swerve/pkg/background"
	"github.com/golangdaddy/swerve/pkg/entity"
	"github.com/golangdaddy/swerve/pkg/sim"
	"github.com/golangdaddy/swerve/pkg/vehicle"
	"github.com/golangdaddy/swerve/pkg/view"
)

// vergeSeed fixes the roadside scenery so it looks the same every run.
const vergeSeed = 0x5eed

var (
	colorTarmac   = color.RGBA{70, 70, 75, 255}
	colorKerb     = color.RGBA{220, 220, 220, 255}
	colorDivider  = color.RGBA{240, 230, 140, 255}
	colorBox      = color.RGBA{190, 120, 50, 255}
	colorWall     = color.RGBA{150, 150, 160, 255}
	colorCyclist  = color.RGBA{40, 120, 220, 255}
	colorDowned   = color.RGBA{120, 40, 40, 255}
	colorPowerUp  = color.RGBA{80, 220, 255, 255}
	colorParticle = color.RGBA{200, 20, 20, 255}
)

const (
	dashLength = 40.0
	dashGap    = 30.0
)

// drawFunc draws one entity kind.
type drawFunc func(r *Renderer, dst *ebiten.Image, e entity.Entity, cam *view.Camera)

var drawTable = map[entity.Kind]drawFunc{
	entity.KindBoxObstacle: drawBox,
	entity.KindWallSegment: drawWall,
	entity.KindCyclist:     drawCyclist,
	entity.KindPowerUp:     drawPowerUp,
}

// spriteCache holds images that depend on the screen size or car shape.
// Resize empties it.
type spriteCache struct {
	background *ebiten.Image
	car        *ebiten.Image
	carW, carH int
}

func (c *spriteCache) invalidate() {
	if c.background != nil {
		c.background.Deallocate()
		c.background = nil
	}
	if c.car != nil {
		c.car.Deallocate()
		c.car = nil
	}
}

// Renderer draws a session from the camera's point of view.
type Renderer struct {
	carColor color.Color
	pixel    *ebiten.Image
	cache    spriteCache
	w, h     int
}

func NewRenderer(carColor string) *Renderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Renderer{
		carColor: paintColor(carColor),
		pixel:    pixel,
		w:        ScreenWidth,
		h:        ScreenHeight,
	}
}

// Resize is called on layout changes and drops every cached sprite.
func (r *Renderer) Resize(width, height int) {
	if width == r.w && height == r.h {
		return
	}
	r.w, r.h = width, height
	r.cache.invalidate()
}

// Draw renders road, entities and car.
func (r *Renderer) Draw(screen *ebiten.Image, s *sim.Session, cam *view.Camera) {
	r.drawVerge(screen, cam)
	r.drawRoad(screen, s, cam)

	for _, e := range s.Manager().Entities() {
		if !e.Active() {
			continue
		}
		if draw, ok := drawTable[e.Kind()]; ok {
			draw(r, screen, e, cam)
		}
	}
	r.drawCar(screen, s.Car(), cam)
}

// drawVerge tiles the screen-sized scenery image, scrolled with the camera.
func (r *Renderer) drawVerge(screen *ebiten.Image, cam *view.Camera) {
	if r.cache.background == nil {
		tile := background.NewGenerator(r.w, r.h).GenerateVerge(vergeSeed)
		r.cache.background = ebiten.NewImageFromImage(tile)
	}
	ox, oy := cam.WorldToScreen(0, 0, r.w, r.h)
	ox = math.Mod(ox, float64(r.w))
	oy = math.Mod(oy, float64(r.h))
	if ox > 0 {
		ox -= float64(r.w)
	}
	if oy > 0 {
		oy -= float64(r.h)
	}
	for dx := 0.0; dx <= float64(r.w); dx += float64(r.w) {
		for dy := 0.0; dy <= float64(r.h); dy += float64(r.h) {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(ox+dx, oy+dy)
			screen.DrawImage(r.cache.background, op)
		}
	}
}

func (r *Renderer) drawRoad(screen *ebiten.Image, s *sim.Session, cam *view.Camera) {
	rd := s.Manager().Road()
	left, _ := cam.WorldToScreen(rd.Left(), 0, r.w, r.h)
	right, _ := cam.WorldToScreen(rd.Right(), 0, r.w, r.h)
	vector.DrawFilledRect(screen, float32(left), 0, float32(right-left), float32(r.h), colorTarmac, false)
	vector.DrawFilledRect(screen, float32(left-4), 0, 4, float32(r.h), colorKerb, false)
	vector.DrawFilledRect(screen, float32(right), 0, 4, float32(r.h), colorKerb, false)

	// Dashes are fixed in world space so they scroll past.
	top, bottom := cam.VisibleY(r.h)
	period := dashLength + dashGap
	start := math.Floor(top/period) * period
	for _, x := range rd.Dividers() {
		sx, _ := cam.WorldToScreen(x, 0, r.w, r.h)
		for y := start; y < bottom; y += period {
			_, sy := cam.WorldToScreen(0, y, r.w, r.h)
			vector.StrokeLine(screen, float32(sx), float32(sy), float32(sx), float32(sy+dashLength), 3, colorDivider, false)
		}
	}
}

// drawRect paints a rotated filled rectangle by stretching a single pixel.
func (r *Renderer) drawRect(dst *ebiten.Image, cam *view.Camera, x, y, w, h, rotation float64, clr color.Color) {
	sx, sy := cam.WorldToScreen(x, y, r.w, r.h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(r.pixel, op)
}

func drawBox(r *Renderer, dst *ebiten.Image, e entity.Entity, cam *view.Camera) {
	b := e.(*entity.BoxObstacle).Rect()
	p := b.Position()
	r.drawRect(dst, cam, p.X, p.Y, b.Width(), b.Height(), b.Rotation(), colorBox)
	r.drawRect(dst, cam, p.X, p.Y, b.Width()*0.6, b.Height()*0.6, b.Rotation(), color.RGBA{150, 90, 40, 255})
}

func drawWall(r *Renderer, dst *ebiten.Image, e entity.Entity, cam *view.Camera) {
	w := e.(*entity.WallSegment).Rect()
	p := w.Position()
	r.drawRect(dst, cam, p.X, p.Y, w.Width(), w.Height(), 0, colorWall)
	r.drawRect(dst, cam, p.X, p.Y-w.Height()/2+2, w.Width(), 4, 0, colorKerb)
}

func drawCyclist(r *Renderer, dst *ebiten.Image, e entity.Entity, cam *view.Camera) {
	c := e.(*entity.Cyclist)
	b := c.Rect()
	p := b.Position()
	if c.Hit() {
		// Knocked flat.
		r.drawRect(dst, cam, p.X, p.Y, b.Height(), b.Width(), 0, colorDowned)
	} else {
		r.drawRect(dst, cam, p.X, p.Y, b.Width(), b.Height(), 0, colorCyclist)
		r.drawRect(dst, cam, p.X, p.Y-b.Height()/4, b.Width()*0.8, b.Width()*0.8, 0, color.RGBA{240, 200, 160, 255})
	}
	for _, pt := range c.Particles() {
		sx, sy := cam.WorldToScreen(pt.X, pt.Y, r.w, r.h)
		clr := color.NRGBA{colorParticle.R, colorParticle.G, colorParticle.B, uint8(255 * pt.Fade())}
		vector.DrawFilledRect(dst, float32(sx-pt.Size/2), float32(sy-pt.Size/2), float32(pt.Size), float32(pt.Size), clr, false)
	}
}

func drawPowerUp(r *Renderer, dst *ebiten.Image, e entity.Entity, cam *view.Camera) {
	p := e.(*entity.PowerUp)
	c := p.Circle()
	pos := c.Position()
	sx, sy := cam.WorldToScreen(pos.X, pos.Y, r.w, r.h)
	glow := color.NRGBA{colorPowerUp.R, colorPowerUp.G, colorPowerUp.B, uint8(60 + 80*p.Pulse())}
	vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(c.Radius()*(1.3+0.3*p.Pulse())), glow, true)
	vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(c.Radius()), colorPowerUp, true)
	vector.StrokeCircle(dst, float32(sx), float32(sy), float32(c.Radius()), 2, color.White, true)
}

func (r *Renderer) drawCar(dst *ebiten.Image, car *vehicle.Car, cam *view.Camera) {
	sprite := r.carSprite(car)
	w, h := float64(sprite.Bounds().Dx()), float64(sprite.Bounds().Dy())
	sx, sy := cam.WorldToScreen(car.X(), car.Y(), r.w, r.h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(car.Rotation())
	op.GeoM.Translate(sx, sy)
	if car.IsCrashed() {
		op.ColorScale.Scale(1, 0.4, 0.4, 1)
	}
	dst.DrawImage(sprite, op)
}

// carSprite redraws the car when its size changes (size effects).
func (r *Renderer) carSprite(car *vehicle.Car) *ebiten.Image {
	w, h := max(1, int(math.Round(car.Width()))), max(1, int(math.Round(car.Height())))
	if r.cache.car != nil && r.cache.carW == w && r.cache.carH == h {
		return r.cache.car
	}
	if r.cache.car != nil {
		r.cache.car.Deallocate()
	}
	img := ebiten.NewImage(w, h)
	img.Fill(r.carColor)
	border := color.RGBA{30, 30, 30, 255}
	vector.StrokeRect(img, 0.5, 0.5, float32(w)-1, float32(h)-1, 1, border, false)

	// Windscreen, headlights at the front (top), taillights at the back.
	vector.DrawFilledRect(img, 2, float32(h)*0.25, float32(w)-4, float32(h)*0.15, color.RGBA{60, 80, 110, 255}, false)
	lampW := float32(w) / 4
	vector.DrawFilledRect(img, 1, 0, lampW, 2, color.RGBA{255, 255, 100, 255}, false)
	vector.DrawFilledRect(img, float32(w)-1-lampW, 0, lampW, 2, color.RGBA{255, 255, 100, 255}, false)
	vector.DrawFilledRect(img, 1, float32(h)-2, lampW, 2, color.RGBA{255, 0, 0, 255}, false)
	vector.DrawFilledRect(img, float32(w)-1-lampW, float32(h)-2, lampW, 2, color.RGBA{255, 0, 0, 255}, false)

	r.cache.car, r.cache.carW, r.cache.carH = img, w, h
	return img
}

// paintColor maps catalogue colour names onto RGB.
func paintColor(name string) color.Color {
	switch name {
	case "red":
		return color.RGBA{200, 40, 40, 255}
	case "blue":
		return color.RGBA{40, 80, 200, 255}
	case "black":
		return color.RGBA{30, 30, 35, 255}
	case "yellow":
		return color.RGBA{230, 200, 40, 255}
	case "silver":
		return color.RGBA{180, 180, 190, 255}
	default:
		return color.RGBA{235, 235, 235, 255}
	}
}
