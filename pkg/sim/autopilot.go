package sim

import (
	"math"

	"github.com/golangdaddy/swerve/pkg/entity"
	"github.com/golangdaddy/swerve/pkg/geom"
	"github.com/golangdaddy/swerve/pkg/vehicle"
)

// Autopilot is a simple driver for headless runs. It holds the throttle
// and steers for the nearest hazard ahead: through the gap of a wall,
// round a box on the roomier side.
type Autopilot struct {
	LookAhead float64 // how far ahead hazards are considered
	Margin    float64 // clearance kept from box edges
	MaxAngle  float64 // largest heading it will aim for, radians
	Deadband  float64 // heading error tolerated before steering
}

// NewAutopilot returns an autopilot with working defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		LookAhead: 450,
		Margin:    12,
		MaxAngle:  0.5,
		Deadband:  0.04,
	}
}

// Controls decides the input for the next tick of s.
func (a *Autopilot) Controls(s *Session) vehicle.Controls {
	car := s.Car()
	ctl := vehicle.Controls{Up: true}
	if car.IsCrashed() {
		return ctl
	}

	targetX, distance := a.target(car, s.Manager())
	desired := math.Atan2(targetX-car.X(), math.Max(distance, 1))
	desired = math.Max(-a.MaxAngle, math.Min(a.MaxAngle, desired))

	switch diff := desired - car.Rotation(); {
	case diff > a.Deadband:
		ctl.Right = true
	case diff < -a.Deadband:
		ctl.Left = true
	}
	return ctl
}

// target picks the x to aim for and how far ahead it is.
func (a *Autopilot) target(car *vehicle.Car, m *entity.Manager) (float64, float64) {
	rd := m.Road()
	carBox := car.Shape().AABB()
	halfCar := carBox.Width() / 2

	var (
		nearest  []entity.Entity
		nearestY = math.Inf(-1)
	)
	for _, e := range m.Entities() {
		if !e.Active() || !hazard(e) {
			continue
		}
		y := e.Shape().Position().Y
		if y >= carBox.Min.Y || y < car.Y()-a.LookAhead {
			continue
		}
		switch {
		case y > nearestY:
			nearest, nearestY = []entity.Entity{e}, y
		case y == nearestY:
			nearest = append(nearest, e)
		}
	}
	if nearest == nil {
		return rd.Clamp(0, halfCar), a.LookAhead
	}
	distance := car.Y() - nearestY

	// A wall pair shares its y; aim for the middle of the gap.
	if gapLo, gapHi, ok := wallGap(nearest); ok {
		return (gapLo + gapHi) / 2, distance
	}

	// Otherwise dodge the blocking boxes at that row.
	for _, e := range nearest {
		box := e.Shape().AABB()
		if box.Max.X+halfCar+a.Margin < car.X() || box.Min.X-halfCar-a.Margin > car.X() {
			continue
		}
		left := box.Min.X - halfCar - a.Margin
		right := box.Max.X + halfCar + a.Margin
		if left-rd.Left() > rd.Right()-right {
			return rd.Clamp(left, halfCar), distance
		}
		return rd.Clamp(right, halfCar), distance
	}
	return car.X(), distance
}

func hazard(e entity.Entity) bool {
	switch e.Kind() {
	case entity.KindBoxObstacle, entity.KindWallSegment:
		return true
	}
	return false
}

// wallGap returns the open span between a left and right wall segment.
func wallGap(row []entity.Entity) (float64, float64, bool) {
	var left, right geom.AABB
	var haveLeft, haveRight bool
	for _, e := range row {
		w, ok := e.(*entity.WallSegment)
		if !ok {
			continue
		}
		if w.Side() == entity.SideLeft {
			left, haveLeft = w.Shape().AABB(), true
		} else {
			right, haveRight = w.Shape().AABB(), true
		}
	}
	if !haveLeft || !haveRight {
		return 0, 0, false
	}
	return left.Max.X, right.Min.X, true
}
