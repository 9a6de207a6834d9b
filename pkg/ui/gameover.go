package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScreen shows the final score and offers a restart.
type GameOverScreen struct {
	score     int
	distance  float64
	best      int
	onRestart func()
	onMenu    func()
	menu      menu
}

// NewGameOverScreen creates the screen shown after a crash.
func NewGameOverScreen(score int, distance float64, best int, onRestart, onMenu func()) *GameOverScreen {
	return &GameOverScreen{
		score:     score,
		distance:  distance,
		best:      best,
		onRestart: onRestart,
		onMenu:    onMenu,
		menu:      menu{options: []string{"Drive Again", "Back to Garage"}},
	}
}

// Update handles input for the game over screen
func (gs *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		gs.menu.move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		gs.menu.move(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gs.onMenu != nil {
			gs.onMenu()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch gs.menu.selected {
		case 0:
			if gs.onRestart != nil {
				gs.onRestart()
			}
		default:
			if gs.onMenu != nil {
				gs.onMenu()
			}
		}
	}
	return nil
}

// Draw renders the game over screen
func (gs *GameOverScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{40, 20, 25, 255})

	centerX := float64(width) / 2
	DrawText(screen, "CRASHED", centerX, 90, 64, color.RGBA{255, 80, 60, 255})

	DrawText(screen, fmt.Sprintf("Score: %d", gs.score), centerX, 170, 24, colorText)
	DrawText(screen, fmt.Sprintf("Distance: %.0f m", gs.distance/10), centerX, 205, 18, colorText)
	best := fmt.Sprintf("Best: %d", gs.best)
	if gs.score >= gs.best && gs.score > 0 {
		best = "New best!"
	}
	DrawText(screen, best, centerX, 240, 18, colorTitle)

	gs.menu.draw(screen, centerX, 290)
	DrawText(screen, "Escape: Garage", centerX, float64(height)-40, 16, colorHint)
}
