package integrations

import (
	"fmt"
	"html"
	"strings"

	"github.com/kerbaras/maniverse/pkg/data"
)

const (
	skinFill   = "#FFDFC4"
	skinStroke = "#E8C4A2"

	palmPath   = "M150,400 C100,380 80,300 80,250 C80,200 100,150 150,100 C200,50 250,50 300,100 C350,150 350,200 300,250 C250,300 200,380 150,400 Z"
	thumbPath  = "M80,250 C60,230 50,200 60,170 C70,140 90,120 110,130 C130,140 140,170 130,200 C120,230 100,240 80,250 Z"
	fingerPath = "M0,0 C10,-10 30,-10 40,0 C50,20 50,80 40,100 C30,110 10,110 0,100 C-10,80 -10,20 0,0 Z"
	shinePath  = "M10,10 C15,5 25,5 30,10 L25,15 C20,10 15,10 10,15 Z"

	roundNailPath = "M0,10 C0,0 10,0 20,0 C30,0 40,0 40,10 L40,60 L0,60 Z"
)

// One outline per catalog shape, drawn in a 40x60 box.
var nailPaths = map[string]string{
	"almond":   "M0,20 C0,5 10,0 20,0 C30,0 40,5 40,20 L40,60 L0,60 Z",
	"stiletto": "M0,20 L20,0 L40,20 L40,60 L0,60 Z",
	"square":   "M0,0 L40,0 L40,60 L0,60 Z",
	"oval":     roundNailPath,
	"coffin":   "M0,0 L40,0 L35,20 L5,20 L0,0 Z M0,20 L5,20 L5,60 L0,60 Z M35,20 L40,20 L40,60 L35,60 Z M5,60 L35,60 L35,20 L5,20 Z",
	"round":    roundNailPath,
}

type fingerPlacement struct {
	x, y     int
	rotation int
	scale    float64
}

// index, middle, ring, pinky
var fingers = []fingerPlacement{
	{x: 150, y: 100, rotation: -10, scale: 0.9},
	{x: 190, y: 80, rotation: -5, scale: 1},
	{x: 230, y: 85, rotation: 0, scale: 0.95},
	{x: 270, y: 100, rotation: 5, scale: 0.8},
}

// NailPath returns the outline for a shape id. Ids the renderer does not
// know get the round outline.
func NailPath(shapeID string) string {
	if p, ok := nailPaths[shapeID]; ok {
		return p
	}
	return roundNailPath
}

// NailFill is the SVG fill for c: a pattern reference for textured finishes,
// the plain hex otherwise.
func NailFill(c data.NailColor) string {
	switch c.Type {
	case data.FinishGlitter:
		return "url(#glitterPattern)"
	case data.FinishPearl:
		return "url(#pearlPattern)"
	default:
		return html.EscapeString(c.Hex)
	}
}

// RenderIllustration draws a hand whose four nails use shape and c.
func RenderIllustration(shape data.NailShape, c data.NailColor) string {
	var b strings.Builder

	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="500" height="500" viewBox="0 0 500 500">` + "\n")
	writeDefs(&b, c, 2)

	b.WriteString(`<g transform="translate(100, 50)">` + "\n")
	b.WriteString(fmt.Sprintf(`<path d="%s" fill="%s" stroke="%s" stroke-width="2"/>`+"\n", palmPath, skinFill, skinStroke))
	b.WriteString(fmt.Sprintf(`<path d="%s" fill="%s" stroke="%s" stroke-width="2"/>`+"\n", thumbPath, skinFill, skinStroke))

	for _, f := range fingers {
		b.WriteString(fmt.Sprintf(`<g transform="translate(%d, %d) rotate(%d) scale(%g)">`+"\n", f.x, f.y, f.rotation, f.scale))
		b.WriteString(fmt.Sprintf(`<path d="%s" fill="%s" stroke="%s" stroke-width="2"/>`+"\n", fingerPath, skinFill, skinStroke))
		b.WriteString(`<g transform="translate(0, -5) scale(0.5)">` + "\n")
		writeNail(&b, shape, c)
		b.WriteString("</g>\n</g>\n")
	}

	b.WriteString("</g>\n</svg>\n")
	return b.String()
}

// RenderNail draws a single nail, as shown on the summary card.
func RenderNail(shape data.NailShape, c data.NailColor) string {
	var b strings.Builder

	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="120" height="120" viewBox="0 0 120 120">` + "\n")
	writeDefs(&b, c, 1)
	b.WriteString(`<g transform="translate(40, 30)">` + "\n")
	writeNail(&b, shape, c)
	b.WriteString("</g>\n</svg>\n")

	return b.String()
}

func writeNail(b *strings.Builder, shape data.NailShape, c data.NailColor) {
	b.WriteString(fmt.Sprintf(`<path d="%s" fill="%s" stroke="#00000033" stroke-width="1" filter="url(#shadow)"/>`+"\n", NailPath(shape.ID), NailFill(c)))
	b.WriteString(fmt.Sprintf(`<path d="%s" fill="white" opacity="0.3"/>`+"\n", shinePath))
}

func writeDefs(b *strings.Builder, c data.NailColor, shadow int) {
	hex := html.EscapeString(c.Hex)

	b.WriteString("<defs>\n")
	switch c.Type {
	case data.FinishGlitter:
		b.WriteString(`<pattern id="glitterPattern" patternUnits="userSpaceOnUse" width="10" height="10" patternTransform="rotate(45)">` + "\n")
		b.WriteString(fmt.Sprintf(`<rect width="10" height="10" fill="%s"/>`+"\n", hex))
		for _, p := range [][2]int{{5, 5}, {0, 0}, {10, 10}} {
			b.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="1" fill="white" opacity="0.5"/>`+"\n", p[0], p[1]))
		}
		b.WriteString("</pattern>\n")
	case data.FinishPearl:
		b.WriteString(`<linearGradient id="pearlPattern" x1="0%" y1="0%" x2="100%" y2="100%">` + "\n")
		b.WriteString(`<stop offset="0%" stop-color="white" stop-opacity="0.8"/>` + "\n")
		b.WriteString(fmt.Sprintf(`<stop offset="50%%" stop-color="%s" stop-opacity="0.9"/>`+"\n", hex))
		b.WriteString(`<stop offset="100%" stop-color="white" stop-opacity="0.6"/>` + "\n")
		b.WriteString("</linearGradient>\n")
	}
	b.WriteString(fmt.Sprintf(`<filter id="shadow" x="-20%%" y="-20%%" width="140%%" height="140%%"><feDropShadow dx="%d" dy="%d" stdDeviation="%d" flood-color="#00000033"/></filter>`+"\n", shadow, shadow, shadow))
	b.WriteString("</defs>\n")
}
