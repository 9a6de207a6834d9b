package car

import (
	"fmt"
	"math"

	"github.com/golangdaddy/swerve/pkg/vehicle"
)

// Brakes represents the braking system of a car
type Brakes struct {
	Type          string
	Condition     float64 // 0.0 to 1.0
	Performance   float64 // 0.0 to 1.0
	StoppingPower float64 // 0.0 to 1.0
}

// Efficiency combines condition, performance and stopping power.
func (b Brakes) Efficiency() float64 {
	return b.Condition * b.Performance * b.StoppingPower
}

// Car is a catalogue entry the player can pick in the garage.
type Car struct {
	Make         string
	Model        string
	Year         int
	Weight       float64 // in kg
	TopSpeed     float64 // in km/h
	Acceleration float64 // 0-100 km/h in seconds
	Handling     float64 // 0.0 to 1.0
	Color        string
	Brakes       Brakes
}

const (
	baseWeight       = 1500.0 // reference weight in kg
	baseTopSpeed     = 200.0  // km/h that maps onto the stock max speed
	baseAcceleration = 8.0    // 0-100 time that maps onto the stock acceleration
	baseEfficiency   = 0.5
	baseHandling     = 0.5
)

// NewCar creates a new car with default brakes and ratings
func NewCar(manufacturer, model string, year int, weight float64) *Car {
	return &Car{
		Make:         manufacturer,
		Model:        model,
		Year:         year,
		Weight:       weight,
		TopSpeed:     baseTopSpeed,
		Acceleration: baseAcceleration,
		Handling:     baseHandling,
		Color:        "white",
		Brakes: Brakes{
			Type:          "disc",
			Condition:     0.9,
			Performance:   0.8,
			StoppingPower: 0.7,
		},
	}
}

// Name is the display name used by the garage.
func (c *Car) Name() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Make, c.Model)
}

// weightFactor: lighter cars brake and turn better. Capped to 0.5..1.5.
func (c *Car) weightFactor() float64 {
	if c.Weight <= 0 {
		return 1
	}
	return clamp(baseWeight/c.Weight, 0.5, 1.5)
}

// BrakeDeceleration returns the braking rate in world units per second².
// Physics: deceleration scales with braking efficiency and inversely with
// weight, held between half and one and a half times the stock rate.
func (c *Car) BrakeDeceleration() float64 {
	stock := vehicle.DefaultStats().Brake
	ratio := (c.Brakes.Efficiency() / baseEfficiency) * c.weightFactor()
	return stock * clamp(ratio, 0.5, 1.5)
}

// Stats converts the catalogue ratings into physics tuning.
func (c *Car) Stats() vehicle.Stats {
	s := vehicle.DefaultStats()
	if c.TopSpeed > 0 {
		s.MaxSpeed *= c.TopSpeed / baseTopSpeed
	}
	if c.Acceleration > 0 {
		s.Acceleration *= baseAcceleration / c.Acceleration
		s.ReverseAcceleration = s.Acceleration / 2
	}
	s.Brake = c.BrakeDeceleration()

	// Handling 0.5 is stock grip; the weight nudges it a little.
	handling := clamp(c.Handling, 0, 1)
	s.Handling = (0.6 + 0.8*handling) * math.Sqrt(c.weightFactor())
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
