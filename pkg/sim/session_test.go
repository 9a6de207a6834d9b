package sim

import (
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/swerve/pkg/config"
	"github.com/golangdaddy/swerve/pkg/entity"
	"github.com/golangdaddy/swerve/pkg/logging"
	"github.com/golangdaddy/swerve/pkg/vehicle"
)

func emptyRoad() config.Config {
	return config.New(func(c *config.Config) { c.Spawn.InitialSpawnY = -1e12 })
}

func newTestSession(cfg config.Config) *Session {
	return NewSession(cfg, vehicle.DefaultStats(), NewRand(1), logging.Nop())
}

func TestSessionClampsDelta(t *testing.T) {
	s := newTestSession(emptyRoad())
	s.Update(vehicle.Controls{Up: true}, 1000)
	assert.Equal(t, config.DefaultMaxFrameMs, s.Elapsed())
	assert.Equal(t, config.DefaultMaxFrameMs, s.Car().Clock())

	for _, dt := range []float64{0, -1, math.NaN()} {
		s.Update(vehicle.Controls{Up: true}, dt)
	}
	assert.Equal(t, 1, s.Ticks())
}

func TestSessionDistanceScore(t *testing.T) {
	s := newTestSession(emptyRoad())
	for i := 0; i < 200; i++ {
		s.Update(vehicle.Controls{Up: true}, 16)
	}
	require.Greater(t, s.Distance(), 0.0)
	assert.Equal(t, int(s.Distance()/config.DefaultDistancePerPoint), s.Score())

	// Reversing does not take points away.
	best := s.Distance()
	for i := 0; i < 300; i++ {
		s.Update(vehicle.Controls{Down: true}, 16)
	}
	assert.Equal(t, best, s.Distance())
}

func TestSessionBonusFromCyclist(t *testing.T) {
	s := newTestSession(emptyRoad())
	cfg := s.Config().Cyclists
	s.Manager().Add(entity.NewCyclist(0, 0, entity.CyclistOptions{
		Width:      cfg.Width,
		Height:     cfg.Height,
		MinX:       -1,
		MaxX:       1,
		ScoreBonus: cfg.ScoreBonus,
		SizeBonus:  cfg.SizeBonus,
	}, NewRand(2)))

	s.Update(vehicle.Controls{}, 16)
	assert.Equal(t, cfg.ScoreBonus, s.Bonus())
	assert.Equal(t, cfg.ScoreBonus, s.Score())
	assert.False(t, s.GameOver())
}

func TestSessionGameOverAndRestart(t *testing.T) {
	s := newTestSession(emptyRoad())
	s.Manager().Add(entity.NewBoxObstacle(0, -200, 60, 30, 0))

	for i := 0; i < 1000 && !s.GameOver(); i++ {
		s.Update(vehicle.Controls{Up: true}, 16)
	}
	require.True(t, s.GameOver())
	require.True(t, s.Car().IsCrashed())

	ticks, y := s.Ticks(), s.Car().Y()
	s.Update(vehicle.Controls{Up: true}, 16)
	assert.Equal(t, ticks, s.Ticks())
	assert.Equal(t, y, s.Car().Y())

	s.Restart()
	assert.False(t, s.GameOver())
	assert.False(t, s.Car().IsCrashed())
	assert.Equal(t, 0, s.Score())
	assert.Empty(t, s.Manager().Entities())
	assert.Equal(t, 0.0, s.Car().Y())
}

func TestSessionSettleClampsDelta(t *testing.T) {
	s := newTestSession(emptyRoad())
	c := entity.NewCyclist(0, 0, entity.CyclistOptions{
		Width:          10,
		Height:         24,
		MinX:           -1,
		MaxX:           1,
		ParticleCount:  20,
		ParticleLifeMs: 500,
	}, NewRand(3))
	s.Manager().Add(c)

	// Settling does nothing while the run is live.
	s.Settle(16)
	assert.Empty(t, c.Particles())

	s.Car().Crash()
	s.Update(vehicle.Controls{}, 16)
	require.True(t, s.GameOver())
	require.True(t, c.Hit())
	require.Len(t, c.Particles(), 20)

	// A long stall ages the burst by one capped frame, not the whole stall.
	s.Settle(10_000)
	require.Len(t, c.Particles(), 20)
	for _, p := range c.Particles() {
		assert.Equal(t, config.DefaultMaxFrameMs, p.Life)
	}

	s.Settle(math.NaN())
	assert.Equal(t, config.DefaultMaxFrameMs, c.Particles()[0].Life)
}

func TestSessionSpawnsAsItDrives(t *testing.T) {
	s := newTestSession(config.Default())
	s.Update(vehicle.Controls{}, 16)
	assert.NotEmpty(t, s.Manager().Entities())
}

func TestSeedFromPhrase(t *testing.T) {
	assert.Equal(t, uint64(42), SeedFromPhrase("42"))
	assert.Equal(t, xxhash.Sum64String("sunday drive"), SeedFromPhrase("sunday drive"))
	assert.Equal(t, SeedFromPhrase("x"), SeedFromPhrase("x"))

	a, b := NewRand(9), NewRand(9)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestCarStats(t *testing.T) {
	assert.Equal(t, vehicle.DefaultStats(), CarStats("nope"))
	assert.Greater(t, CarStats("Mustang").MaxSpeed, vehicle.DefaultStats().MaxSpeed)
}
