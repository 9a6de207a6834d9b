package entity

import "math"

// Particle is one speck of a burst. Life counts up to MaxLife in ms.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Life    float64
	MaxLife float64
}

// Fade is 1 for a fresh particle and 0 for a dead one.
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, 1-p.Life/p.MaxLife)
}

// Burst is a short-lived particle spray.
type Burst struct {
	P []Particle
}

const (
	burstSpeedMin = 40.0
	burstSpeedMax = 160.0
	burstDrag     = 3.0 // velocity decay rate per second
)

// Emit adds count particles at (x, y) flying out in random directions.
func (b *Burst) Emit(x, y float64, count int, lifeMs float64, r Rand) {
	for i := 0; i < count; i++ {
		angle := rangeF(r, 0, 2*math.Pi)
		speed := rangeF(r, burstSpeedMin, burstSpeedMax)
		b.P = append(b.P, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Size:    rangeF(r, 1.5, 3.5),
			MaxLife: lifeMs * rangeF(r, 0.6, 1),
		})
	}
}

// Update ages and moves every particle, dropping the dead ones.
func (b *Burst) Update(dtMs float64) {
	if len(b.P) == 0 || !(dtMs > 0) {
		return
	}
	s := dtMs / 1000
	decay := math.Exp(-burstDrag * s)
	live := b.P[:0]
	for _, p := range b.P {
		p.Life += dtMs
		if p.Life >= p.MaxLife {
			continue
		}
		p.X += p.VX * s
		p.Y += p.VY * s
		p.VX *= decay
		p.VY *= decay
		live = append(live, p)
	}
	b.P = live
}

// Alive is the number of particles still showing.
func (b *Burst) Alive() int {
	return len(b.P)
}
