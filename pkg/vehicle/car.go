package vehicle

import (
	"math"

	"github.com/golangdaddy/swerve/pkg/geom"
)

const epsilon = 1e-6

// Car is the player vehicle. Rotation 0 faces up the screen (-Y) and
// positive rotation is clockwise, so steering right is positive.
type Car struct {
	stats Stats

	x, y            float64
	rotation        float64
	velocity        float64
	lateralVelocity float64
	steeringAngle   float64
	angularVelocity float64
	width, height   float64

	clock   float64 // ms of simulated time
	effects []ActiveEffect
	crashed bool

	shape   *geom.Rectangle
	onScore func(points int)
}

// NewCar builds a stationary car at the origin.
func NewCar(stats Stats) *Car {
	c := &Car{
		stats:  stats,
		width:  stats.Width,
		height: stats.Height,
	}
	c.shape = geom.NewRectangle(0, 0, c.width, c.height, 0)
	return c
}

// SetScoreHandler registers the callback that receives score effects.
func (c *Car) SetScoreHandler(fn func(points int)) {
	c.onScore = fn
}

func (c *Car) Stats() Stats             { return c.stats }
func (c *Car) X() float64               { return c.x }
func (c *Car) Y() float64               { return c.y }
func (c *Car) Position() geom.Vec2      { return geom.Vec2{X: c.x, Y: c.y} }
func (c *Car) Rotation() float64        { return c.rotation }
func (c *Car) Velocity() float64        { return c.velocity }
func (c *Car) LateralVelocity() float64 { return c.lateralVelocity }
func (c *Car) SteeringAngle() float64   { return c.steeringAngle }
func (c *Car) AngularVelocity() float64 { return c.angularVelocity }
func (c *Car) Width() float64           { return c.width }
func (c *Car) Height() float64          { return c.height }
func (c *Car) Clock() float64           { return c.clock }
func (c *Car) IsCrashed() bool          { return c.crashed }

// Shape returns the collision rectangle, kept in sync with the pose.
func (c *Car) Shape() geom.Shape { return c.shape }

// Bounds is Shape without the interface, for callers that need corners.
func (c *Car) Bounds() *geom.Rectangle { return c.shape }

// Wheelbase is the axle distance, which follows the car length.
func (c *Car) Wheelbase() float64 {
	return c.height * c.stats.WheelbaseRatio
}

// Crash stops all further simulation. It cannot be undone.
func (c *Car) Crash() {
	c.crashed = true
}

// ApplyEffect records e against the current clock. Score and size effects
// take hold immediately; score effects are not kept.
func (c *Car) ApplyEffect(e Effect) {
	switch e.Kind {
	case EffectScore:
		if c.onScore != nil {
			c.onScore(int(math.Round(e.Magnitude)))
		}
		return
	case EffectSize:
		c.height += e.Magnitude
		c.shape.SetSize(c.width, c.height)
	}
	c.effects = append(c.effects, ActiveEffect{Effect: e, Start: c.clock})
}

// ActiveEffects returns the effects that have not yet expired.
func (c *Car) ActiveEffects() []ActiveEffect {
	out := make([]ActiveEffect, 0, len(c.effects))
	for _, e := range c.effects {
		if !e.Expired(c.clock) {
			out = append(out, e)
		}
	}
	return out
}

// SpeedMultiplier is the largest live speed multiplier, or 1.
func (c *Car) SpeedMultiplier() float64 {
	m := 1.0
	for _, e := range c.effects {
		if e.Kind == EffectSpeedMultiplier && !e.Expired(c.clock) && e.Magnitude > m {
			m = e.Magnitude
		}
	}
	return m
}

// EffectiveMaxSpeed is the base max speed scaled by live effects.
func (c *Car) EffectiveMaxSpeed() float64 {
	return c.stats.MaxSpeed * c.SpeedMultiplier()
}

// TurnRadius is the geometric radius for the current steering angle.
func (c *Car) TurnRadius() float64 {
	return c.Wheelbase() / (math.Sin(math.Abs(c.steeringAngle)) + epsilon)
}

// Update advances the car by dtMs milliseconds.
func (c *Car) Update(ctl Controls, dtMs float64) {
	if c.crashed || !(dtMs > 0) || math.IsInf(dtMs, 0) {
		return
	}
	s := dtMs / 1000
	c.clock += dtMs
	c.pruneEffects()

	c.updateSteering(ctl, s)
	c.updateSpeed(ctl, s)

	// Bicycle model with a grip ceiling on lateral acceleration.
	L := math.Max(c.Wheelbase(), epsilon)
	rawTurn := math.Tan(c.steeringAngle)
	effTurn := rawTurn
	lateral := c.velocity * c.velocity * math.Abs(rawTurn) / L
	if grip := c.stats.gripLimit(c.velocity); lateral > grip && lateral > epsilon {
		effTurn *= grip / lateral
	}

	if ratio := math.Abs(c.velocity) / math.Max(c.stats.MaxSpeed, epsilon); ratio > c.stats.HighSpeedThreshold {
		over := (ratio - c.stats.HighSpeedThreshold) / math.Max(c.stats.HighSpeedBand, epsilon)
		effTurn *= 1 - c.stats.HighSpeedSteerLoss*math.Min(over, 1)
	}

	// Cornering scrubs speed.
	if c.velocity != 0 {
		scrub := c.stats.TurnDrag * math.Abs(effTurn) * math.Abs(c.velocity) * s
		if scrub >= math.Abs(c.velocity) {
			c.velocity = 0
		} else {
			c.velocity -= math.Copysign(scrub, c.velocity)
		}
	}

	// Steering the tyres could not deliver turns into a sideways slide
	// toward the outside of the turn.
	lost := math.Abs(rawTurn) - math.Abs(effTurn)
	target := -math.Copysign(1, c.steeringAngle) * c.stats.DriftFactor * math.Abs(c.velocity) * lost
	if limit := math.Abs(c.velocity) * 0.5; math.Abs(target) > limit {
		target = math.Copysign(limit, target)
	}
	c.lateralVelocity += (target - c.lateralVelocity) * math.Min(1, c.stats.DriftResponse*s)

	slip := math.Atan(c.stats.RearAxleRatio * effTurn)
	heading := c.rotation + slip
	c.x += (math.Sin(heading)*c.velocity + math.Cos(c.rotation)*c.lateralVelocity) * s
	c.y += (-math.Cos(heading)*c.velocity + math.Sin(c.rotation)*c.lateralVelocity) * s

	c.angularVelocity = c.velocity * math.Cos(slip) * effTurn / L
	c.rotation += c.angularVelocity * s

	c.syncShape()
}

func (c *Car) updateSteering(ctl Controls, s float64) {
	step := c.stats.SteeringRate * s
	maxAngle := c.stats.MaxSteeringAngle
	switch {
	case ctl.Left && !ctl.Right:
		c.steeringAngle = math.Max(c.steeringAngle-step, -maxAngle)
	case ctl.Right && !ctl.Left:
		c.steeringAngle = math.Min(c.steeringAngle+step, maxAngle)
	default:
		// Return to centre without overshooting.
		if c.steeringAngle > 0 {
			c.steeringAngle = math.Max(c.steeringAngle-step, 0)
		} else if c.steeringAngle < 0 {
			c.steeringAngle = math.Min(c.steeringAngle+step, 0)
		}
	}
}

func (c *Car) updateSpeed(ctl Controls, s float64) {
	vmax := c.EffectiveMaxSpeed()
	switch {
	case ctl.Down:
		if c.velocity > 0 {
			c.velocity = math.Max(c.velocity-c.stats.Brake*s, 0)
		} else {
			limit := -vmax * c.stats.ReverseRatio
			c.velocity = math.Max(c.velocity-c.stats.ReverseAcceleration*s, limit)
		}
	case ctl.Up:
		if c.velocity > vmax {
			// A boost just ran out; bleed back down to the cap.
			c.velocity = math.Max(c.velocity*math.Exp(-c.stats.Drag*s), vmax)
		} else if c.velocity < 0 {
			c.velocity = math.Min(c.velocity+c.stats.Brake*s, 0)
		} else {
			accel := c.stats.Acceleration * (1 - 0.8*c.velocity/math.Max(vmax, epsilon))
			c.velocity = math.Min(c.velocity+accel*s, vmax)
		}
	default:
		c.velocity *= math.Exp(-c.stats.Drag * s)
		if math.Abs(c.velocity) < c.stats.StopEpsilon {
			c.velocity = 0
		}
	}
}

func (c *Car) pruneEffects() {
	live := c.effects[:0]
	for _, e := range c.effects {
		if !e.Expired(c.clock) {
			live = append(live, e)
		}
	}
	c.effects = live
}

func (c *Car) syncShape() {
	c.shape.SetTransform(c.x, c.y, c.rotation)
}
