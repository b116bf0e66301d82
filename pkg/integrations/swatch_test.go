package integrations

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/maniverse/pkg/data"
)

func catalogColor(t *testing.T, id string) data.NailColor {
	t.Helper()
	c, ok := data.ColorByID(id)
	require.True(t, ok, "color %s", id)
	return c
}

func TestRenderSwatchIsDeterministic(t *testing.T) {
	for _, c := range data.Colors() {
		t.Run(c.ID, func(t *testing.T) {
			first := RenderSwatch(c)
			second := RenderSwatch(c)
			assert.Equal(t, first.Bounds(), second.Bounds())
			assert.True(t, bytes.Equal(first.Pix, second.Pix), "pixels differ between renders")
		})
	}
}

func TestRenderSwatchSize(t *testing.T) {
	img := RenderSwatch(catalogColor(t, "mint"))
	assert.Equal(t, SwatchWidth, img.Bounds().Dx())
	assert.Equal(t, SwatchHeight, img.Bounds().Dy())
}

func TestSolidAndMatteHaveNoOverlay(t *testing.T) {
	for _, id := range []string{"pastel-pink", "matte-black"} {
		t.Run(id, func(t *testing.T) {
			c := catalogColor(t, id)
			base, ok := ParseHex(c.Hex)
			require.True(t, ok)

			img := RenderSwatch(c)
			for y := 0; y < SwatchHeight; y++ {
				for x := 0; x < SwatchWidth; x++ {
					if img.RGBAAt(x, y) != base {
						t.Fatalf("pixel (%d,%d) = %v, want flat %v", x, y, img.RGBAAt(x, y), base)
					}
				}
			}
		})
	}
}

func TestPastelPinkScenario(t *testing.T) {
	c := catalogColor(t, "pastel-pink")
	img := RenderSwatch(c)

	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xD1, B: 0xDC, A: 0xFF}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xD1, B: 0xDC, A: 0xFF}, img.RGBAAt(5, 5))
	assert.Equal(t, "Classic glossy finish", c.Type.Description())
}

func TestGlitterSpeckleGrid(t *testing.T) {
	c := catalogColor(t, "glitter-gold")
	base, _ := ParseHex(c.Hex)
	img := RenderSwatch(c)

	// Speckles cover the first 10px of every 20px cell.
	speckled := [][2]int{{0, 0}, {5, 5}, {25, 5}, {385, 285}}
	plain := [][2]int{{15, 15}, {15, 5}, {5, 15}, {399, 299}}

	for _, p := range speckled {
		px := img.RGBAAt(p[0], p[1])
		assert.NotEqual(t, base, px, "expected speckle at %v", p)
		assert.GreaterOrEqual(t, px.G, base.G)
		assert.Greater(t, px.B, base.B)
	}
	for _, p := range plain {
		assert.Equal(t, base, img.RGBAAt(p[0], p[1]), "expected base fill at %v", p)
	}

	assert.Equal(t, img.RGBAAt(5, 5), img.RGBAAt(45, 65), "speckles repeat with a fixed period")
	assert.Equal(t, "Sparkly finish with reflective particles", c.Type.Description())
}

func TestPearlGradient(t *testing.T) {
	c := data.NailColor{ID: "pearl-test", Hex: "#000000", Type: data.FinishPearl}
	img := RenderSwatch(c)

	start := img.RGBAAt(0, 0)
	end := img.RGBAAt(SwatchWidth-1, SwatchHeight-1)

	assert.InDelta(t, 0.8*255, float64(start.R), 3)
	assert.InDelta(t, 0.2*255, float64(end.R), 3)
	assert.Greater(t, start.R, img.RGBAAt(200, 150).R)
	assert.Greater(t, img.RGBAAt(200, 150).R, end.R)
}

func TestUnparseableHexFallsBack(t *testing.T) {
	c := data.NailColor{ID: "broken", Hex: "pink", Type: data.FinishSolid}

	_, ok := ParseHex(c.Hex)
	assert.False(t, ok)

	var img = RenderSwatch(c)
	assert.Equal(t, fallbackBase, img.RGBAAt(10, 10))
}

func TestEncodeSwatchPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeSwatchPNG(&buf, catalogColor(t, "glitter-silver")))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, SwatchWidth, decoded.Bounds().Dx())
	assert.Equal(t, SwatchHeight, decoded.Bounds().Dy())
}
