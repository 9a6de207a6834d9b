package entity

import (
	"math"

	"github.com/golangdaddy/swerve/pkg/geom"
	"github.com/golangdaddy/swerve/pkg/vehicle"
)

// PowerUp is a one-time pickup granting a timed effect.
type PowerUp struct {
	base
	circle *geom.Circle
	effect vehicle.Effect
	phase  float64 // radians, drives the pulse animation
}

func NewPowerUp(x, y, radius float64, effect vehicle.Effect) *PowerUp {
	return &PowerUp{
		base:   newBase(),
		circle: geom.NewCircle(x, y, radius),
		effect: effect,
	}
}

func (p *PowerUp) Kind() Kind             { return KindPowerUp }
func (p *PowerUp) Shape() geom.Shape      { return p.circle }
func (p *PowerUp) Circle() *geom.Circle   { return p.circle }
func (p *PowerUp) Effect() vehicle.Effect { return p.effect }

// Pulse is a 0..1 value for drawing a throbbing glow.
func (p *PowerUp) Pulse() float64 {
	return 0.5 + 0.5*math.Sin(p.phase)
}

func (p *PowerUp) Update(dtMs float64) {
	p.phase = math.Mod(p.phase+dtMs/1000*2*math.Pi, 2*math.Pi)
}

// OnHit hands the effect to the vehicle and removes the pickup.
func (p *PowerUp) OnHit(v vehicle.Vehicle) {
	if !p.active {
		return
	}
	v.ApplyEffect(p.effect)
	p.active = false
}
