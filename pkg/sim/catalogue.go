package sim

import (
	"github.com/golangdaddy/swerve/pkg/models"
	"github.com/golangdaddy/swerve/pkg/vehicle"
)

// CarStats looks model up in the catalogue, falling back to stock tuning.
func CarStats(model string) vehicle.Stats {
	if c, ok := models.CarInventory.Find(model); ok {
		return c.Stats()
	}
	return vehicle.DefaultStats()
}
