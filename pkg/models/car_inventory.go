package models

import (
	"strings"

	"github.com/golangdaddy/swerve/pkg/models/car"
)

// CarInventory is the catalogue shown in the garage.
var CarInventory = &carInventory{
	cars: []*car.Car{
		tune(car.NewCar("Toyota", "Corolla", 2020, 1400), 180, 9.5, 0.5),
		tune(car.NewCar("Honda", "Civic", 2021, 1350), 200, 8.0, 0.6),
		tune(car.NewCar("Ford", "Mustang", 2019, 1600), 250, 5.5, 0.4),
		tune(car.NewCar("BMW", "3 Series", 2022, 1500), 230, 6.0, 0.7),
		tune(car.NewCar("Audi", "A4", 2021, 1550), 220, 6.5, 0.65),
	},
}

func tune(c *car.Car, topSpeed, accel, handling float64) *car.Car {
	c.TopSpeed = topSpeed
	c.Acceleration = accel
	c.Handling = handling
	return c
}

type carInventory struct {
	cars []*car.Car
}

// GetAllCars returns all available cars
func (ci *carInventory) GetAllCars() []*car.Car {
	return ci.cars
}

// Get returns the car at index i, wrapping around in both directions.
func (ci *carInventory) Get(i int) *car.Car {
	n := len(ci.cars)
	return ci.cars[((i%n)+n)%n]
}

// Find looks a car up by model name, ignoring case.
func (ci *carInventory) Find(model string) (*car.Car, bool) {
	for _, c := range ci.cars {
		if strings.EqualFold(c.Model, model) {
			return c, true
		}
	}
	return nil, false
}
