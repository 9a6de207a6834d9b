package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing title, 1.0 to 1.1 scale
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := math.Min(1.0, 0.9+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	DrawText(screen, "SWERVE", centerX, centerY, 128*pulse, titleColor)
	DrawText(screen, "Dodge, drift, don't crash", centerX, centerY+100, 32, color.RGBA{180, 180, 200, 255})

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		DrawText(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 24, color.RGBA{150, 200, 255, 255})
	}

	drawRoadStripes(screen, width, height, elapsed)
}

// drawRoadStripes scrolls two columns of lane markings down the screen edges.
func drawRoadStripes(screen *ebiten.Image, width, height int, elapsed float64) {
	const (
		stripeLength = 40.0
		stripeGap    = 30.0
	)
	stripeColor := color.RGBA{50, 60, 80, 160}
	offset := math.Mod(elapsed*240, stripeLength+stripeGap)
	for _, x := range []float64{float64(width) / 8, float64(width) * 7 / 8} {
		for y := offset - stripeLength; y < float64(height); y += stripeLength + stripeGap {
			vector.DrawFilledRect(screen, float32(x-2), float32(y), 4, stripeLength, stripeColor, false)
		}
	}
}
