package view

import (
	"fmt"

	"github.com/golangdaddy/swerve/pkg/sim"
	"github.com/golangdaddy/swerve/pkg/vehicle"
)

// KmhPerUnit converts world units per second into the km/h shown to players.
const KmhPerUnit = 1.0 / 3

// HUD is the read-only snapshot the overlay draws.
type HUD struct {
	Score          int
	Bonus          int
	Distance       float64
	Speed          float64 // km/h
	Steering       float64
	Boost          float64 // live speed multiplier, 1 when none
	BoostRemaining float64 // ms
	Crashed        bool
}

// HUDFor snapshots s.
func HUDFor(s *sim.Session) HUD {
	car := s.Car()
	h := HUD{
		Score:    s.Score(),
		Bonus:    s.Bonus(),
		Distance: s.Distance(),
		Speed:    car.Velocity() * KmhPerUnit,
		Steering: car.SteeringAngle(),
		Boost:    car.SpeedMultiplier(),
		Crashed:  car.IsCrashed(),
	}
	for _, e := range car.ActiveEffects() {
		if e.Kind == vehicle.EffectSpeedMultiplier && e.Magnitude == h.Boost {
			h.BoostRemaining = max(h.BoostRemaining, e.Remaining(car.Clock()))
		}
	}
	return h
}

// Lines renders the HUD as text rows, top to bottom.
func (h HUD) Lines() []string {
	lines := []string{
		fmt.Sprintf("SCORE %d", h.Score),
		fmt.Sprintf("SPEED %.0f km/h", h.Speed),
		fmt.Sprintf("DIST  %.0f m", h.Distance/10),
	}
	if h.Boost > 1 {
		lines = append(lines, fmt.Sprintf("BOOST x%.1f %.1fs", h.Boost, h.BoostRemaining/1000))
	}
	if h.Crashed {
		lines = append(lines, "CRASHED")
	}
	return lines
}
