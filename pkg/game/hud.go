package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/swerve/pkg/ui"
	"github.com/golangdaddy/swerve/pkg/view"
)

func drawHUD(screen *ebiten.Image, h view.HUD, autopilot bool) {
	const lineHeight = 22.0
	y := 12.0
	for _, line := range h.Lines() {
		ui.DrawTextAt(screen, line, 14, y, 18, color.White)
		y += lineHeight
	}
	if autopilot {
		ui.DrawTextAt(screen, "AUTOPILOT (A)", 14, y, 14, color.RGBA{150, 200, 255, 255})
	}
	drawSteeringIndicator(screen, h.Steering)
}

// drawSteeringIndicator draws a steering wheel in the bottom-right corner
func drawSteeringIndicator(screen *ebiten.Image, steering float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx := float32(width - 80)
	cy := float32(height - 80)
	const radius = 30

	vector.StrokeCircle(screen, cx, cy, radius, 4, color.RGBA{100, 100, 100, 255}, true)
	vector.DrawFilledCircle(screen, cx, cy, 4, color.RGBA{200, 200, 200, 255}, true)

	// Red when turned, green when centred
	indicator := color.RGBA{50, 255, 50, 255}
	if math.Abs(steering) > 0.1 {
		indicator = color.RGBA{255, 50, 50, 255}
	}
	// Full lock shows as a quarter turn of the wheel.
	angle := steering / (math.Pi / 4) * (math.Pi / 2)
	length := float64(radius - 5)
	ex := cx + float32(length*math.Sin(angle))
	ey := cy - float32(length*math.Cos(angle))
	vector.StrokeLine(screen, cx, cy, ex, ey, 4, indicator, true)
}
