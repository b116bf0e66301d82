package integrations

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"

	"github.com/kerbaras/maniverse/pkg/data"
	"github.com/kerbaras/maniverse/pkg/logging"
)

var assetExtensions = []string{".jpeg", ".jpg", ".png"}

// AssetLoader finds shape card pictures named <id>.<ext> in a directory.
// Shapes without a readable picture get the placeholder.
type AssetLoader struct {
	dir         string
	log         *log.Logger
	cache       map[string]image.Image
	placeholder image.Image
}

func NewAssetLoader(dir string, logger *log.Logger) *AssetLoader {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AssetLoader{
		dir:         dir,
		log:         logger,
		cache:       make(map[string]image.Image),
		placeholder: Placeholder(),
	}
}

func (a *AssetLoader) ShapeImage(shape data.NailShape) image.Image {
	if img, ok := a.cache[shape.ID]; ok {
		return img
	}

	img := a.load(shape.ID)
	if img == nil {
		img = a.placeholder
	}
	a.cache[shape.ID] = img
	return img
}

func (a *AssetLoader) load(id string) image.Image {
	if a.dir == "" || id == "" {
		return nil
	}

	for _, ext := range assetExtensions {
		path := filepath.Join(a.dir, id+ext)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			a.log.Debug("skipping unreadable shape asset", "path", path, "err", err)
			continue
		}
		return img
	}

	a.log.Debug("no asset for shape, using placeholder", "id", id)
	return nil
}

var (
	placeholderBackground = color.RGBA{R: 0xFA, G: 0xF0, B: 0xE6, A: 255}
	placeholderNail       = color.RGBA{R: 0xE8, G: 0xC4, B: 0xA2, A: 255}
)

// Placeholder is a linen card with a plain nail-shaped block in the middle.
func Placeholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 120, 120))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBackground), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(40, 30, 80, 90), image.NewUniform(placeholderNail), image.Point{}, draw.Src)
	return img
}
