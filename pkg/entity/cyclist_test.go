package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/swerve/pkg/vehicle"
)

func testCyclist() *Cyclist {
	return NewCyclist(0, -50, CyclistOptions{
		Width:          10,
		Height:         24,
		MinX:           -30,
		MaxX:           30,
		Speed:          60,
		ScoreBonus:     50,
		SizeBonus:      4,
		ParticleCount:  20,
		ParticleLifeMs: 500,
	}, seeded(7))
}

func TestCyclistOscillates(t *testing.T) {
	c := testCyclist()
	turns := 0
	dir := c.Direction()
	for i := 0; i < 500; i++ {
		c.Update(16)
		x := c.Rect().Position().X
		require.GreaterOrEqual(t, x, -30.0)
		require.LessOrEqual(t, x, 30.0)
		if c.Direction() != dir {
			turns++
			dir = c.Direction()
		}
	}
	assert.GreaterOrEqual(t, turns, 2)
}

func TestCyclistHitIsIdempotent(t *testing.T) {
	c := testCyclist()
	car := vehicle.NewCar(vehicle.DefaultStats())
	score := 0
	car.SetScoreHandler(func(points int) { score += points })
	height := car.Height()

	c.OnHit(car)
	c.OnHit(car)
	c.OnHit(car)

	assert.True(t, c.Hit())
	assert.True(t, c.Active())
	assert.Equal(t, 50, score)
	assert.Equal(t, height+4, car.Height())
	assert.Len(t, c.Particles(), 20)
	assert.False(t, car.IsCrashed())
}

func TestCyclistStopsButParticlesAge(t *testing.T) {
	c := testCyclist()
	c.OnHit(vehicle.NewCar(vehicle.DefaultStats()))
	pos := c.Rect().Position()

	c.Update(100)
	assert.Equal(t, pos, c.Rect().Position())
	require.NotEmpty(t, c.Particles())
	for _, p := range c.Particles() {
		assert.Equal(t, 100.0, p.Life)
		assert.Less(t, p.Fade(), 1.0)
	}

	for i := 0; i < 10; i++ {
		c.Update(100)
	}
	assert.Empty(t, c.Particles())
}

func TestBurstIgnoresBadDelta(t *testing.T) {
	var b Burst
	b.Emit(0, 0, 5, 100, fixedRand(0.5))
	b.Update(-10)
	require.Equal(t, 5, b.Alive())
	assert.Equal(t, 0.0, b.P[0].Life)
	assert.Equal(t, 1.0, b.P[0].Fade())
}
