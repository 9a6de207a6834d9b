package vehicle

import "math"

// Stats are the tuning parameters of a car. Distances are world units,
// times are seconds unless noted.
type Stats struct {
	Width          float64
	Height         float64
	WheelbaseRatio float64 // wheelbase as a fraction of Height
	RearAxleRatio  float64 // rear axle offset over wheelbase

	MaxSpeed            float64
	Acceleration        float64
	Brake               float64
	ReverseAcceleration float64
	ReverseRatio        float64 // reverse cap as a fraction of max speed
	Drag                float64 // exponential decay rate with no input
	StopEpsilon         float64

	MaxSteeringAngle float64
	SteeringRate     float64

	Handling           float64
	GripLowSpeed       float64
	GripFloor          float64
	GripFalloff        float64
	HighSpeedThreshold float64
	HighSpeedBand      float64
	HighSpeedSteerLoss float64
	TurnDrag           float64
	DriftFactor        float64
	DriftResponse      float64
}

// DefaultStats returns the stock tuning.
func DefaultStats() Stats {
	return Stats{
		Width:          20,
		Height:         40,
		WheelbaseRatio: 0.75,
		RearAxleRatio:  0.5,

		MaxSpeed:            600,
		Acceleration:        320,
		Brake:               700,
		ReverseAcceleration: 160,
		ReverseRatio:        0.5,
		Drag:                0.8,
		StopEpsilon:         2,

		MaxSteeringAngle: math.Pi / 4,
		SteeringRate:     3,

		Handling:           1,
		GripLowSpeed:       2400,
		GripFloor:          900,
		GripFalloff:        300,
		HighSpeedThreshold: 0.7,
		HighSpeedBand:      0.3,
		HighSpeedSteerLoss: 0.4,
		TurnDrag:           0.6,
		DriftFactor:        0.35,
		DriftResponse:      4,
	}
}

// gripLimit is the lateral acceleration the tyres hold at speed v.
func (s Stats) gripLimit(v float64) float64 {
	base := s.GripFloor + (s.GripLowSpeed-s.GripFloor)*math.Exp(-math.Abs(v)/math.Max(s.GripFalloff, epsilon))
	return base * s.Handling
}
