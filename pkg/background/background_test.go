package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerge(t *testing.T) {
	g := NewGenerator(120, 200)
	a := g.GenerateVerge(3)
	require.Equal(t, 120, a.Bounds().Dx())
	require.Equal(t, 200, a.Bounds().Dy())

	// Same seed, same tile.
	assert.Equal(t, a.Pix, g.GenerateVerge(3).Pix)
	assert.NotEqual(t, a.Pix, g.GenerateVerge(4).Pix)

	for i := 3; i < len(a.Pix); i += 4 {
		require.Equal(t, uint8(255), a.Pix[i], "tile must be opaque")
	}
}

func TestGeneratorClampsSize(t *testing.T) {
	g := NewGenerator(0, -5)
	img := g.GenerateVerge(1)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
}
