package entity

import (
	"math"

	"go.uber.org/zap"

	"github.com/golangdaddy/swerve/pkg/config"
	"github.com/golangdaddy/swerve/pkg/road"
	"github.com/golangdaddy/swerve/pkg/vehicle"
)

// Manager spawns entities ahead of the car, ages them, culls the ones that
// leave the window around the car and resolves collisions.
type Manager struct {
	cfg  config.Config
	road road.Road
	rng  Rand
	log  *zap.Logger

	entities   []Entity
	nextSpawnY float64
}

// NewManager builds an empty manager. A nil rng uses the process-wide
// source and a nil logger discards output.
func NewManager(cfg config.Config, rng Rand, log *zap.Logger) *Manager {
	if rng == nil {
		rng = globalRand{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		cfg:        cfg,
		road:       road.New(cfg.Road.Width, cfg.Road.Lanes),
		rng:        rng,
		log:        log,
		nextSpawnY: cfg.Spawn.InitialSpawnY,
	}
}

func (m *Manager) Road() road.Road       { return m.road }
func (m *Manager) NextSpawnY() float64   { return m.nextSpawnY }
func (m *Manager) Entities() []Entity    { return m.entities }
func (m *Manager) Config() config.Config { return m.cfg }

// Add places an entity on the road outside the spawn schedule.
func (m *Manager) Add(e Entity) {
	m.entities = append(m.entities, e)
}

// Update spawns up to the lookahead, advances every entity and culls.
func (m *Manager) Update(carY, dtMs float64) {
	m.Spawn(carY)
	for _, e := range m.entities {
		e.Update(dtMs)
	}
	m.Cull(carY)
}

// Spawn fills the road ahead of carY. The cursor only ever moves toward -Y.
func (m *Manager) Spawn(carY float64) {
	spacing := math.Max(m.cfg.Spawn.ObstacleSpacing, 1)
	for m.nextSpawnY >= carY-m.cfg.Spawn.LookaheadAhead {
		for _, e := range m.GenerateRandomEntity(m.nextSpawnY) {
			m.log.Debug("spawn",
				zap.Stringer("kind", e.Kind()),
				zap.Stringer("id", e.ID()),
				zap.Float64("y", m.nextSpawnY),
			)
			m.entities = append(m.entities, e)
		}
		m.nextSpawnY -= spacing
	}
}

// Cull drops inactive entities and those outside
// [carY - lookaheadAhead, carY + lookaheadBehind].
func (m *Manager) Cull(carY float64) {
	top := carY - m.cfg.Spawn.LookaheadAhead
	bottom := carY + m.cfg.Spawn.LookaheadBehind
	kept := m.entities[:0]
	for _, e := range m.entities {
		y := e.Shape().Position().Y
		if e.Active() && y >= top && y <= bottom {
			kept = append(kept, e)
		}
	}
	if dropped := len(m.entities) - len(kept); dropped > 0 {
		m.log.Debug("cull", zap.Int("dropped", dropped), zap.Int("remaining", len(kept)))
	}
	// Clear the tail so culled entities can be collected.
	for i := len(kept); i < len(m.entities); i++ {
		m.entities[i] = nil
	}
	m.entities = kept
}

// CheckCollisions calls OnHit on every active entity touching v and
// returns how many were hit.
func (m *Manager) CheckCollisions(v vehicle.Vehicle) int {
	shape := v.Shape()
	hits := 0
	for _, e := range m.entities {
		if !e.Active() || !e.Shape().CollidesWith(shape) {
			continue
		}
		e.OnHit(v)
		hits++
		m.log.Debug("hit", zap.Stringer("kind", e.Kind()), zap.Stringer("id", e.ID()))
	}
	return hits
}

// SpawnProbabilities returns the power-up and cyclist odds at distance d.
func (m *Manager) SpawnProbabilities(d float64) (powerUp, cyclist float64) {
	p, c := m.cfg.PowerUps, m.cfg.Cyclists
	powerUp = math.Min(p.Max, p.Base+d*p.Growth)
	cyclist = math.Min(c.Max, c.Base+d*c.Growth)
	return powerUp, cyclist
}

// GenerateRandomEntity rolls what appears at y. Past the wall transition
// distance plain boxes are replaced by a wall pair, so the result may hold
// two entities.
func (m *Manager) GenerateRandomEntity(y float64) []Entity {
	d := math.Abs(y)
	pPower, pCyclist := m.SpawnProbabilities(d)
	roll := m.rng.Float64()
	switch {
	case roll < pPower:
		return []Entity{m.newPowerUp(y)}
	case roll < pPower+pCyclist:
		return []Entity{m.newCyclist(y)}
	case d > m.cfg.Obstacles.WallTransitionScore:
		left, right := m.newWallPair(y)
		return []Entity{left, right}
	default:
		return []Entity{m.newBox(y)}
	}
}

func (m *Manager) newPowerUp(y float64) *PowerUp {
	p := m.cfg.PowerUps
	x := rangeF(m.rng, m.road.Left()+p.Radius, m.road.Right()-p.Radius)
	return NewPowerUp(x, y, p.Radius, vehicle.SpeedBoost(p.Multiplier, p.DurationMs))
}

func (m *Manager) newCyclist(y float64) *Cyclist {
	c := m.cfg.Cyclists
	x := m.road.LaneCenterX(intN(m.rng, m.road.Lanes))
	margin := c.Width / 2
	opts := CyclistOptions{
		Width:          c.Width,
		Height:         c.Height,
		MinX:           m.road.Clamp(x-c.Range/2, margin),
		MaxX:           m.road.Clamp(x+c.Range/2, margin),
		Speed:          c.Speed,
		ScoreBonus:     c.ScoreBonus,
		SizeBonus:      c.SizeBonus,
		ParticleCount:  c.ParticleCount,
		ParticleLifeMs: c.ParticleLifeMs,
	}
	return NewCyclist(x, y, opts, m.rng)
}

func (m *Manager) newBox(y float64) *BoxObstacle {
	o := m.cfg.Obstacles
	w := rangeF(m.rng, o.MinSize, o.MaxSize)
	h := rangeF(m.rng, o.MinSize, o.MaxSize)
	x := rangeF(m.rng, m.road.Left()+w/2, m.road.Right()-w/2)
	rot := rangeF(m.rng, -o.MaxTilt, o.MaxTilt)
	return NewBoxObstacle(x, y, w, h, rot)
}

// newWallPair closes the road at y apart from one gap. The walls run past
// the road edges so the gap is the only way through.
func (m *Manager) newWallPair(y float64) (*WallSegment, *WallSegment) {
	o := m.cfg.Obstacles
	gap := rangeF(m.rng, o.WallGapMin, o.WallGapMax)
	lo := m.road.Left() + gap/2 + o.WallThickness
	hi := m.road.Right() - gap/2 - o.WallThickness
	centre := 0.0
	if hi > lo {
		centre = rangeF(m.rng, lo, hi)
	}
	overhang := m.road.Width / 2
	left := NewWallSegment(m.road.Left()-overhang, centre-gap/2, y, o.WallThickness, SideLeft)
	right := NewWallSegment(centre+gap/2, m.road.Right()+overhang, y, o.WallThickness, SideRight)
	return left, right
}
