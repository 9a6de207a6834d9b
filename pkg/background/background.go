package background

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
)

// Generator paints roadside verge textures. Tiles wrap vertically so they
// can be stacked endlessly as the road scrolls.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  max(1, width),
		Height: max(1, height),
	}
}

// GenerateVerge creates a grass tile dotted with trees and bushes.
func (g *Generator) GenerateVerge(seed uint64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewPCG(seed, seed+1))

	// Base grass layer
	base := color.RGBA{30, 100, 30, 255}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, base)
		}
	}
	for i := 0; i < g.Width*g.Height/10; i++ {
		shade := uint8(80 + rng.IntN(60))
		img.SetRGBA(rng.IntN(g.Width), rng.IntN(g.Height), color.RGBA{30, shade, 30, 255})
	}

	// Vegetation, top to bottom so lower plants overlap higher ones.
	for y := 0; y < g.Height; y += 10 {
		density := 0.5 + 0.3*math.Sin(float64(y)*2*math.Pi/float64(g.Height))
		for x := 0; x < g.Width; x += 5 + rng.IntN(15) {
			if rng.Float64() > density {
				continue
			}
			px := x + rng.IntN(10) - 5
			py := y + rng.IntN(10) - 5
			if rng.Float64() < 0.3 {
				g.drawTree(img, px, py, rng)
			} else {
				g.drawBush(img, px, py, rng)
			}
		}
	}
	return img
}

// set writes one pixel, clipping x and wrapping y.
func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || x >= g.Width {
		return
	}
	y = ((y % g.Height) + g.Height) % g.Height
	img.SetRGBA(x, y, c)
}

// drawTree draws a simple pine seen from above: trunk then three tiers.
func (g *Generator) drawTree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 40 + rng.IntN(30)
	width := 20 + rng.IntN(15)

	trunk := color.RGBA{60, 40, 20, 255}
	trunkW := 4 + rng.IntN(4)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			g.set(img, x+tx, y-ty, trunk)
		}
	}

	leaves := color.RGBA{
		uint8(20 + rng.IntN(30)),
		uint8(80 + rng.IntN(60)),
		uint8(20 + rng.IntN(30)),
		255,
	}
	tier := height / 3
	for l := 0; l < 3; l++ {
		tierY := y - tier - l*height/4
		tierW := max(5, width-l*5)
		for ly := 0; ly < tier; ly++ {
			rowW := tierW * (tier - ly) / tier
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.set(img, x+lx, tierY-ly, leaves)
			}
		}
	}
}

// drawBush draws a round bush
func (g *Generator) drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 5 + rng.IntN(10)
	c := color.RGBA{
		uint8(40 + rng.IntN(40)),
		uint8(100 + rng.IntN(50)),
		uint8(40 + rng.IntN(40)),
		255,
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}
