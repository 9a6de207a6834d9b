package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/swerve/pkg/config"
	"github.com/golangdaddy/swerve/pkg/vehicle"
)

// quietConfig pushes the spawn cursor out of reach so tests control
// exactly what is on the road.
func quietConfig() config.Config {
	return config.New(func(c *config.Config) { c.Spawn.InitialSpawnY = -1e12 })
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestSpawnFillsLookahead(t *testing.T) {
	cfg := config.Default()
	m := NewManager(cfg, seeded(1), nil)

	m.Spawn(0)
	require.NotEmpty(t, m.Entities())
	assert.Less(t, m.NextSpawnY(), -cfg.Spawn.LookaheadAhead)

	for _, e := range m.Entities() {
		y := e.Shape().Position().Y
		assert.GreaterOrEqual(t, y, -cfg.Spawn.LookaheadAhead)
		assert.LessOrEqual(t, y, cfg.Spawn.InitialSpawnY)
	}

	// The cursor never moves back.
	cursor := m.NextSpawnY()
	m.Spawn(500)
	assert.Equal(t, cursor, m.NextSpawnY())
}

func TestCullingWindow(t *testing.T) {
	cfg := quietConfig()
	m := NewManager(cfg, seeded(2), nil)
	ahead, behind := cfg.Spawn.LookaheadAhead, cfg.Spawn.LookaheadBehind

	inside := []Entity{
		NewBoxObstacle(0, -ahead, 10, 10, 0),
		NewBoxObstacle(0, 0, 10, 10, 0),
		NewBoxObstacle(0, behind, 10, 10, 0),
	}
	outside := []Entity{
		NewBoxObstacle(0, -ahead-1, 10, 10, 0),
		NewBoxObstacle(0, behind+1, 10, 10, 0),
	}
	spent := NewPowerUp(0, 0, 5, vehicle.SpeedBoost(2, 1000))
	spent.OnHit(vehicle.NewCar(vehicle.DefaultStats()))

	for _, e := range append(append(inside, outside...), spent) {
		m.Add(e)
	}
	m.Cull(0)

	require.Len(t, m.Entities(), len(inside))
	for i, e := range m.Entities() {
		assert.Equal(t, inside[i].ID(), e.ID())
	}

	// Driving on leaves everything behind.
	m.Cull(-ahead - behind - 100)
	assert.Empty(t, m.Entities())
}

func TestCullingWindowWhileDriving(t *testing.T) {
	cfg := config.Default()
	m := NewManager(cfg, seeded(5), nil)
	ahead, behind := cfg.Spawn.LookaheadAhead, cfg.Spawn.LookaheadBehind

	carY, seen := 0.0, 0
	for tick := 0; tick < 600; tick++ {
		carY -= 12
		m.Update(carY, 16)

		assert.Less(t, m.NextSpawnY(), carY-ahead, "tick %d", tick)
		for _, e := range m.Entities() {
			y := e.Shape().Position().Y
			require.GreaterOrEqual(t, y, carY-ahead, "tick %d %s", tick, e.Kind())
			require.LessOrEqual(t, y, carY+behind, "tick %d %s", tick, e.Kind())
		}
		seen = max(seen, len(m.Entities()))
	}
	assert.Positive(t, seen)
}

func TestHeadOnObstacle(t *testing.T) {
	m := NewManager(quietConfig(), seeded(3), nil)
	car := vehicle.NewCar(vehicle.DefaultStats())
	box := NewBoxObstacle(0, -300, 40, 40, 0)
	m.Add(box)

	crashed := false
	for i := 0; i < 10000 && car.Y() > box.Rect().Position().Y; i++ {
		car.Update(vehicle.Controls{Up: true}, 16)
		m.Update(car.Y(), 16)
		m.CheckCollisions(car)
		if car.IsCrashed() {
			crashed = true
			break
		}
	}
	require.True(t, crashed)
	assert.True(t, box.Active(), "obstacles stay put after a hit")
}

func TestPowerUpPickup(t *testing.T) {
	m := NewManager(quietConfig(), seeded(4), nil)
	car := vehicle.NewCar(vehicle.DefaultStats())
	p := NewPowerUp(car.X(), car.Y(), 10, vehicle.SpeedBoost(1.5, 5000))
	m.Add(p)

	m.Update(car.Y(), 16)
	require.Equal(t, 1, m.CheckCollisions(car))

	assert.False(t, p.Active())
	assert.Greater(t, car.EffectiveMaxSpeed(), car.Stats().MaxSpeed)

	// Spent pickups are gone next tick and cannot be collected twice.
	m.Update(car.Y(), 16)
	assert.Empty(t, m.Entities())
	assert.Zero(t, m.CheckCollisions(car))
}

func TestWallTransition(t *testing.T) {
	cfg := config.Default()
	m := NewManager(cfg, seeded(5), nil)
	y := -(cfg.Obstacles.WallTransitionScore + 1)

	walls := 0
	for i := 0; i < 2000; i++ {
		out := m.GenerateRandomEntity(y)
		require.NotEmpty(t, out)
		for _, e := range out {
			require.NotEqual(t, KindBoxObstacle, e.Kind())
		}
		if out[0].Kind() == KindWallSegment {
			require.Len(t, out, 2)
			walls++

			left := out[0].(*WallSegment).Rect()
			right := out[1].(*WallSegment).Rect()
			gap := (right.Position().X - right.Width()/2) - (left.Position().X + left.Width()/2)
			assert.GreaterOrEqual(t, gap, cfg.Obstacles.WallGapMin-1e-9)
			assert.LessOrEqual(t, gap, cfg.Obstacles.WallGapMax+1e-9)
			assert.Equal(t, SideLeft, out[0].(*WallSegment).Side())
		}
	}
	assert.Greater(t, walls, 0)
}

func TestBoxesBeforeTransition(t *testing.T) {
	cfg := config.Default()
	m := NewManager(cfg, seeded(6), nil)
	boxes := 0
	for i := 0; i < 500; i++ {
		for _, e := range m.GenerateRandomEntity(-100) {
			require.NotEqual(t, KindWallSegment, e.Kind())
			if b, ok := e.(*BoxObstacle); ok {
				boxes++
				assert.LessOrEqual(t, b.Rect().Rotation(), cfg.Obstacles.MaxTilt)
				assert.True(t, m.Road().Contains(b.Rect().Position().X))
			}
		}
	}
	assert.Greater(t, boxes, 0)
}

func TestSpawnProbabilitiesGrowAndCap(t *testing.T) {
	cfg := config.Default()
	m := NewManager(cfg, nil, nil)

	p0, c0 := m.SpawnProbabilities(0)
	assert.Equal(t, cfg.PowerUps.Base, p0)
	assert.Equal(t, cfg.Cyclists.Base, c0)

	p1, c1 := m.SpawnProbabilities(2000)
	assert.Greater(t, p1, p0)
	assert.Greater(t, c1, c0)

	pMax, cMax := m.SpawnProbabilities(1e9)
	assert.Equal(t, cfg.PowerUps.Max, pMax)
	assert.Equal(t, cfg.Cyclists.Max, cMax)
}

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestGenerateRollOrder(t *testing.T) {
	cfg := config.Default()

	out := NewManager(cfg, fixedRand(0), nil).GenerateRandomEntity(-10)
	require.Len(t, out, 1)
	assert.Equal(t, KindPowerUp, out[0].Kind())

	out = NewManager(cfg, fixedRand(cfg.PowerUps.Base+0.01), nil).GenerateRandomEntity(0)
	require.Len(t, out, 1)
	assert.Equal(t, KindCyclist, out[0].Kind())

	out = NewManager(cfg, fixedRand(0.99), nil).GenerateRandomEntity(0)
	require.Len(t, out, 1)
	assert.Equal(t, KindBoxObstacle, out[0].Kind())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "wall", KindWallSegment.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}
