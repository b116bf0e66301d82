package components

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Thumbnail renders img as width x height terminal cells. Each cell is a
// half block carrying two vertically stacked pixels.
func Thumbnail(img image.Image, width, height int) string {
	if img == nil || width <= 0 || height <= 0 {
		return ""
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height*2))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder
	for row := 0; row < height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			top, _ := colorful.MakeColor(scaled.At(x, row*2))
			bottom, _ := colorful.MakeColor(scaled.At(x, row*2+1))
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex()))
			b.WriteString(cell.Render("▀"))
		}
	}
	return b.String()
}
