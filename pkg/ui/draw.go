package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Face is the bitmap font every screen draws with. Its glyphs are 16px tall.
var Face = text.NewGoXFace(bitmapfont.Face)

const glyphHeight = 16.0

var (
	colorBackground = color.RGBA{20, 20, 30, 255}
	colorTitle      = color.RGBA{255, 200, 50, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
	colorHint       = color.RGBA{150, 150, 150, 255}
	colorButton     = color.RGBA{40, 40, 60, 255}
	colorSelected   = color.RGBA{60, 100, 140, 255}
	colorBorder     = color.RGBA{80, 80, 100, 255}
)

// DrawButton draws a bordered button with its label centred.
func DrawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bgColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, colorBorder, false)
	DrawText(screen, label, x+width/2, y+height/2, glyphHeight, textColor)
}

// DrawText draws str centred on (centerX, centerY) at the given pixel size.
func DrawText(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color) {
	scale := size / glyphHeight
	width := text.Advance(str, Face) * scale
	DrawTextAt(screen, str, centerX-width/2, centerY-size/2, size, clr)
}

// DrawTextAt draws str with its top-left corner at (x, y).
func DrawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / glyphHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, Face, op)
}

// menu is a vertical list of options navigated with the arrow keys.
type menu struct {
	options  []string
	selected int
}

func (m *menu) move(delta int) {
	n := len(m.options)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

func (m *menu) draw(screen *ebiten.Image, centerX, startY float64) {
	const (
		buttonWidth   = 320.0
		buttonHeight  = 48.0
		buttonSpacing = 64.0
	)
	for i, opt := range m.options {
		bg := color.Color(colorButton)
		if i == m.selected {
			bg = colorSelected
		}
		DrawButton(screen, opt, centerX-buttonWidth/2, startY+float64(i)*buttonSpacing, buttonWidth, buttonHeight, bg, colorText)
	}
}
