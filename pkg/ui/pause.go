package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseOverlay is drawn over a frozen game until the player resumes.
type PauseOverlay struct {
	menu     menu
	onResume func()
	onQuit   func()
}

func NewPauseOverlay(onResume, onQuit func()) *PauseOverlay {
	return &PauseOverlay{
		menu:     menu{options: []string{"Resume", "Quit to Garage"}},
		onResume: onResume,
		onQuit:   onQuit,
	}
}

// Update handles input for the pause menu
func (po *PauseOverlay) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		po.menu.move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		po.menu.move(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if po.onResume != nil {
			po.onResume()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if po.menu.selected == 0 {
			if po.onResume != nil {
				po.onResume()
			}
		} else if po.onQuit != nil {
			po.onQuit()
		}
	}
	return nil
}

// Draw dims whatever is underneath and shows the menu.
func (po *PauseOverlay) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), color.RGBA{0, 0, 0, 160}, false)

	centerX := float64(width) / 2
	DrawText(screen, "PAUSED", centerX, float64(height)/3, 48, colorTitle)
	po.menu.draw(screen, centerX, float64(height)/3+60)
}
