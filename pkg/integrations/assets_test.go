package integrations

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/maniverse/pkg/data"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestShapeImageLoadsAsset(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "almond.png"), 32, 48)

	loader := NewAssetLoader(dir, nil)
	shape, _ := data.ShapeByID("almond")

	img := loader.ShapeImage(shape)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestShapeImageMissingFallsBack(t *testing.T) {
	loader := NewAssetLoader(t.TempDir(), nil)
	shape, _ := data.ShapeByID("stiletto")

	img := loader.ShapeImage(shape)
	assert.Equal(t, Placeholder().Bounds(), img.Bounds())
	assert.Equal(t, placeholderBackground, color.RGBAModel.Convert(img.At(1, 1)))
}

func TestShapeImageCorruptFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "square.jpeg"), []byte("not an image"), 0644))

	loader := NewAssetLoader(dir, nil)
	shape, _ := data.ShapeByID("square")

	var img image.Image
	assert.NotPanics(t, func() { img = loader.ShapeImage(shape) })
	assert.Equal(t, Placeholder().Bounds(), img.Bounds())
}

func TestShapeImageIsCached(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "round.png")
	writePNG(t, path, 10, 10)

	loader := NewAssetLoader(dir, nil)
	shape, _ := data.ShapeByID("round")
	first := loader.ShapeImage(shape)

	require.NoError(t, os.Remove(path))
	assert.Equal(t, first, loader.ShapeImage(shape))
}

func TestShapeImageNoDirectory(t *testing.T) {
	loader := NewAssetLoader("", nil)
	img := loader.ShapeImage(data.NailShape{ID: "oval"})
	assert.Equal(t, Placeholder().Bounds(), img.Bounds())
}
