package circuit

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/aretw0/bloch/pkg/gate"
)

const (
	width  = 320
	height = 120
	scale  = 4

	wireY         = height / 2
	wireThickness = 2
	wireStart     = 48
	wireEnd       = width - 16
	labelX        = 16

	boxSize   = 56
	boxBorder = 2
	boxX      = (wireStart+wireEnd)/2 - boxSize/2
	boxY      = wireY - boxSize/2
)

var (
	ink = color.NRGBA{A: 0xff}

	// Box fills follow the "clifford" palette used by common circuit drawers.
	familyFill = map[gate.Family]color.NRGBA{
		gate.FamilyPauli:       {R: 0x05, G: 0xba, B: 0xb6, A: 0xff},
		gate.FamilyClifford:    {R: 0x6f, G: 0xa4, B: 0xff, A: 0xff},
		gate.FamilyNonClifford: {R: 0xbb, G: 0x8b, B: 0xff, A: 0xff},
	}
)

// Draw renders the diagram for sym onto a transparent canvas.
func Draw(sym gate.Symbol) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	glyphH := len(font['q']) * scale
	drawGlyph(img, 'q', labelX, wireY-glyphH/2, ink)
	fill(img, image.Rect(wireStart, wireY-wireThickness/2, wireEnd, wireY+wireThickness/2), ink)

	entry := gate.MustLookup(sym)
	bg, ok := familyFill[entry.Family]
	if !ok {
		return img
	}

	outer := image.Rect(boxX, boxY, boxX+boxSize, boxY+boxSize)
	fill(img, outer, ink)
	fill(img, outer.Inset(boxBorder), bg)

	r := rune(sym[0])
	gw, gh := glyphWidth*scale, len(font[r])*scale
	drawGlyph(img, r, boxX+(boxSize-gw)/2, boxY+(boxSize-gh)/2, ink)
	return img
}

// Encode writes the PNG diagram for sym to w.
func Encode(w io.Writer, sym gate.Symbol) error {
	if err := png.Encode(w, Draw(sym)); err != nil {
		return fmt.Errorf("encode circuit png: %w", err)
	}
	return nil
}

// PNG returns the encoded PNG diagram for sym.
func PNG(sym gate.Symbol) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, sym); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawGlyph(img draw.Image, r rune, x, y int, c color.Color) {
	rows, ok := font[r]
	if !ok {
		return
	}
	for row, line := range rows {
		for col, px := range line {
			if px != '#' {
				continue
			}
			x0, y0 := x+col*scale, y+row*scale
			fill(img, image.Rect(x0, y0, x0+scale, y0+scale), c)
		}
	}
}
