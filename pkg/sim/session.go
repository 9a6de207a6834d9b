package sim

import (
	"math"

	"go.uber.org/zap"

	"github.com/golangdaddy/swerve/pkg/config"
	"github.com/golangdaddy/swerve/pkg/entity"
	"github.com/golangdaddy/swerve/pkg/vehicle"
)

// Session is one run down the road: a car, the entities around it and
// the score.
type Session struct {
	cfg   config.Config
	stats vehicle.Stats
	rng   entity.Rand
	log   *zap.Logger

	car      *vehicle.Car
	manager  *entity.Manager
	bonus    int
	distance float64
	elapsed  float64
	ticks    int
	gameOver bool
}

// NewSession starts a run. A nil rng uses the process-wide source and a
// nil logger discards output.
func NewSession(cfg config.Config, stats vehicle.Stats, rng entity.Rand, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		cfg:   cfg,
		stats: stats,
		rng:   rng,
		log:   log,
	}
	s.Restart()
	return s
}

// Restart throws away the car and every entity and starts again.
func (s *Session) Restart() {
	s.car = vehicle.NewCar(s.stats)
	s.car.SetScoreHandler(func(points int) {
		s.bonus += points
		s.log.Debug("bonus", zap.Int("points", points), zap.Int("bonus", s.bonus))
	})
	s.manager = entity.NewManager(s.cfg, s.rng, s.log)
	s.bonus = 0
	s.distance = 0
	s.elapsed = 0
	s.ticks = 0
	s.gameOver = false
}

func (s *Session) Car() *vehicle.Car        { return s.car }
func (s *Session) Manager() *entity.Manager { return s.manager }
func (s *Session) Config() config.Config    { return s.cfg }
func (s *Session) GameOver() bool           { return s.gameOver }
func (s *Session) Ticks() int               { return s.ticks }
func (s *Session) Elapsed() float64         { return s.elapsed }
func (s *Session) Bonus() int               { return s.bonus }
func (s *Session) Distance() float64        { return s.distance }

// Score is distance points plus bonus points.
func (s *Session) Score() int {
	return int(s.distance/s.cfg.Session.DistancePerPoint) + s.bonus
}

// clampFrame caps dtMs at the configured frame limit. ok is false for a
// step that should not run at all.
func (s *Session) clampFrame(dtMs float64) (float64, bool) {
	if !(dtMs > 0) {
		return 0, false
	}
	return math.Min(dtMs, s.cfg.Session.MaxFrameMs), true
}

// Settle ages the entities once the run is over so effects such as blood
// bursts can play out. The car and score stay frozen.
func (s *Session) Settle(dtMs float64) {
	dtMs, ok := s.clampFrame(dtMs)
	if !s.gameOver || !ok {
		return
	}
	for _, e := range s.manager.Entities() {
		e.Update(dtMs)
	}
}

// Update runs one tick. dtMs is capped at the configured frame limit.
func (s *Session) Update(ctl vehicle.Controls, dtMs float64) {
	dtMs, ok := s.clampFrame(dtMs)
	if s.gameOver || !ok {
		return
	}
	s.ticks++
	s.elapsed += dtMs

	s.car.Update(ctl, dtMs)
	s.manager.Update(s.car.Y(), dtMs)
	s.manager.CheckCollisions(s.car)

	// Only forward progress counts.
	s.distance = math.Max(s.distance, -s.car.Y())

	if s.car.IsCrashed() {
		s.gameOver = true
		s.log.Info("game over",
			zap.Int("score", s.Score()),
			zap.Float64("distance", s.distance),
			zap.Int("ticks", s.ticks),
		)
	}
}
