package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/swerve/pkg/models"
	"github.com/golangdaddy/swerve/pkg/models/car"
)

// GarageScreen represents the car selection screen
type GarageScreen struct {
	selectedCarIndex int
	onCarSelected    func(*car.Car) // Callback when car is selected
}

// NewGarageScreen creates a new garage selection screen, preselecting model.
func NewGarageScreen(model string, onCarSelected func(*car.Car)) *GarageScreen {
	gs := &GarageScreen{onCarSelected: onCarSelected}
	for i, c := range models.CarInventory.GetAllCars() {
		if c.Model == model {
			gs.selectedCarIndex = i
		}
	}
	return gs
}

// Update handles input for the garage screen
func (gs *GarageScreen) Update() error {
	cars := models.CarInventory.GetAllCars()
	if len(cars) == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		gs.selectedCarIndex--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		gs.selectedCarIndex++
	}
	selected := models.CarInventory.Get(gs.selectedCarIndex)
	gs.selectedCarIndex = indexOf(cars, selected)

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if gs.onCarSelected != nil {
			gs.onCarSelected(selected)
		}
	}
	return nil
}

func indexOf(cars []*car.Car, c *car.Car) int {
	for i := range cars {
		if cars[i] == c {
			return i
		}
	}
	return 0
}

// Draw renders the garage screen
func (gs *GarageScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(colorBackground)

	centerX := float64(width) / 2
	DrawText(screen, "SELECT CAR", centerX, 60, 64, colorTitle)

	cars := models.CarInventory.GetAllCars()
	if len(cars) == 0 {
		DrawText(screen, "No cars available", centerX, float64(height)/2, 24, colorText)
		return
	}

	const (
		startY       = 130.0
		carSpacing   = 80.0
		buttonWidth  = 640.0
		buttonHeight = 60.0
	)
	buttonX := centerX - buttonWidth/2
	for i, c := range cars {
		bg := colorButton
		if i == gs.selectedCarIndex {
			bg = colorSelected
		}
		DrawButton(screen, formatCarInfo(c), buttonX, startY+float64(i)*carSpacing, buttonWidth, buttonHeight, bg, colorText)
	}

	DrawText(screen, "Arrow Keys: Navigate | Enter: Select", centerX, float64(height)-50, 20, colorHint)
}

// formatCarInfo formats car information for display
func formatCarInfo(c *car.Car) string {
	s := c.Stats()
	return fmt.Sprintf("%s %s (%d) - %.0f km/h | Grip %.2f | Brakes %.0f",
		c.Make, c.Model, c.Year, c.TopSpeed, s.Handling, s.Brake)
}
