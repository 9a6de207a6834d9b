package entity

import (
	"math"

	"github.com/golangdaddy/swerve/pkg/geom"
	"github.com/golangdaddy/swerve/pkg/vehicle"
)

// Cyclist weaves across a stretch of road. Hitting one scores points and
// grows the car; the cyclist stays on the road but stops moving.
type Cyclist struct {
	base
	rect       *geom.Rectangle
	minX, maxX float64
	speed      float64 // world units per second
	dir        float64 // +1 right, -1 left
	hit        bool

	scoreBonus    int
	sizeBonus     float64
	particleCount int
	particleLife  float64
	burst         Burst
	rng           Rand
}

// CyclistOptions are the tunables a cyclist is built with.
type CyclistOptions struct {
	Width, Height  float64
	MinX, MaxX     float64
	Speed          float64
	ScoreBonus     int
	SizeBonus      float64
	ParticleCount  int
	ParticleLifeMs float64
}

func NewCyclist(x, y float64, opts CyclistOptions, rng Rand) *Cyclist {
	if rng == nil {
		rng = globalRand{}
	}
	minX, maxX := math.Min(opts.MinX, opts.MaxX), math.Max(opts.MinX, opts.MaxX)
	x = math.Max(minX, math.Min(maxX, x))
	dir := 1.0
	if rng.Float64() < 0.5 {
		dir = -1
	}
	return &Cyclist{
		base:          newBase(),
		rect:          geom.NewRectangle(x, y, opts.Width, opts.Height, 0),
		minX:          minX,
		maxX:          maxX,
		speed:         opts.Speed,
		dir:           dir,
		scoreBonus:    opts.ScoreBonus,
		sizeBonus:     opts.SizeBonus,
		particleCount: opts.ParticleCount,
		particleLife:  opts.ParticleLifeMs,
		rng:           rng,
	}
}

func (c *Cyclist) Kind() Kind            { return KindCyclist }
func (c *Cyclist) Shape() geom.Shape     { return c.rect }
func (c *Cyclist) Rect() *geom.Rectangle { return c.rect }
func (c *Cyclist) Hit() bool             { return c.hit }
func (c *Cyclist) Direction() float64    { return c.dir }
func (c *Cyclist) Particles() []Particle { return c.burst.P }

// Update pedals between the bounds, turning round at either end. The
// particles keep ageing after a hit.
func (c *Cyclist) Update(dtMs float64) {
	c.burst.Update(dtMs)
	if c.hit || !(dtMs > 0) {
		return
	}
	pos := c.rect.Position()
	x := pos.X + c.dir*c.speed*dtMs/1000
	if x >= c.maxX {
		x, c.dir = c.maxX, -1
	} else if x <= c.minX {
		x, c.dir = c.minX, 1
	}
	c.rect.SetPosition(x, pos.Y)
}

// OnHit only counts the first contact.
func (c *Cyclist) OnHit(v vehicle.Vehicle) {
	if c.hit {
		return
	}
	c.hit = true
	v.ApplyEffect(vehicle.ScoreBonus(c.scoreBonus))
	v.ApplyEffect(vehicle.Grow(c.sizeBonus))
	pos := c.rect.Position()
	c.burst.Emit(pos.X, pos.Y, c.particleCount, c.particleLife, c.rng)
}
