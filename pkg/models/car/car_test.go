package car

import (
	"testing"

	"github.com/golangdaddy/swerve/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrakeDecelerationClamped(t *testing.T) {
	stock := vehicle.DefaultStats().Brake

	light := NewCar("Test", "Feather", 2020, 100)
	light.Brakes = Brakes{Condition: 1, Performance: 1, StoppingPower: 1}
	assert.InDelta(t, stock*1.5, light.BrakeDeceleration(), 1e-9)

	heavy := NewCar("Test", "Truck", 2020, 9000)
	heavy.Brakes = Brakes{Condition: 0.1, Performance: 0.1, StoppingPower: 0.1}
	assert.InDelta(t, stock*0.5, heavy.BrakeDeceleration(), 1e-9)
}

func TestLighterCarBrakesHarder(t *testing.T) {
	a := NewCar("Test", "A", 2020, 1200)
	b := NewCar("Test", "B", 2020, 1800)
	assert.Greater(t, a.BrakeDeceleration(), b.BrakeDeceleration())
}

func TestStatsFromRatings(t *testing.T) {
	stock := vehicle.DefaultStats()

	c := NewCar("Test", "Stock", 2020, baseWeight)
	s := c.Stats()
	assert.InDelta(t, stock.MaxSpeed, s.MaxSpeed, 1e-9)
	assert.InDelta(t, stock.Acceleration, s.Acceleration, 1e-9)
	assert.InDelta(t, 1.0, s.Handling, 1e-9)

	c.TopSpeed = 2 * baseTopSpeed
	c.Acceleration = baseAcceleration / 2
	c.Handling = 1
	s = c.Stats()
	assert.InDelta(t, stock.MaxSpeed*2, s.MaxSpeed, 1e-9)
	assert.InDelta(t, stock.Acceleration*2, s.Acceleration, 1e-9)
	assert.InDelta(t, s.Acceleration/2, s.ReverseAcceleration, 1e-9)
	assert.Greater(t, s.Handling, 1.0)
}

func TestStatsSurviveZeroRatings(t *testing.T) {
	c := &Car{Make: "Test", Model: "Empty"}
	s := c.Stats()
	require.Greater(t, s.MaxSpeed, 0.0)
	require.Greater(t, s.Acceleration, 0.0)
	require.Greater(t, s.Brake, 0.0)
	assert.Equal(t, "0 Test Empty", c.Name())
}

func TestNewCarFields(t *testing.T) {
	c := NewCar("Honda", "Civic", 2021, 1350)
	assert.Equal(t, "Honda", c.Make)
	assert.Equal(t, "Civic", c.Model)
	assert.Equal(t, "2021 Honda Civic", c.Name())
	assert.Equal(t, 1350.0, c.Weight)
}
