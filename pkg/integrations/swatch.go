package integrations

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/kerbaras/maniverse/pkg/data"
)

const (
	SwatchWidth  = 400
	SwatchHeight = 300

	glitterCell  = 20
	glitterSpeck = 10
)

var (
	glitterSpeckle = color.NRGBA{R: 255, G: 255, B: 255, A: 77} // 30% white
	fallbackBase   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// ParseHex converts a "#RRGGBB" value. Anything unparseable comes back as mid grey.
func ParseHex(hex string) (color.RGBA, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackBase, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

// RenderSwatch paints the preview tile for c. It depends on nothing but c,
// so equal colors always produce identical pixels.
func RenderSwatch(c data.NailColor) *image.RGBA {
	base, _ := ParseHex(c.Hex)

	img := image.NewRGBA(image.Rect(0, 0, SwatchWidth, SwatchHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(base), image.Point{}, draw.Src)

	switch c.Type {
	case data.FinishGlitter:
		speck := image.NewUniform(glitterSpeckle)
		for x := 0; x < SwatchWidth; x += glitterCell {
			for y := 0; y < SwatchHeight; y += glitterCell {
				r := image.Rect(x, y, x+glitterSpeck, y+glitterSpeck)
				draw.Draw(img, r, speck, image.Point{}, draw.Over)
			}
		}
	case data.FinishPearl:
		draw.Draw(img, img.Bounds(), pearlOverlay(img.Bounds()), image.Point{}, draw.Over)
	}

	return img
}

// pearlOverlay is a white wash fading from 80% opacity at the top-left
// corner to 20% at the bottom-right.
func pearlOverlay(bounds image.Rectangle) *image.NRGBA {
	overlay := image.NewNRGBA(bounds)

	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	length := w*w + h*h

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := float64(x-bounds.Min.X) + 0.5
			py := float64(y-bounds.Min.Y) + 0.5
			t := (px*w + py*h) / length
			t = math.Max(0, math.Min(1, t))

			alpha := 0.8 + (0.2-0.8)*t
			overlay.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(alpha * 255))})
		}
	}

	return overlay
}

func EncodeSwatchPNG(w io.Writer, c data.NailColor) error {
	if err := png.Encode(w, RenderSwatch(c)); err != nil {
		return fmt.Errorf("failed to encode swatch: %w", err)
	}
	return nil
}
