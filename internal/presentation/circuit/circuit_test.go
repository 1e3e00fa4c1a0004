package circuit

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/aretw0/bloch/pkg/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	assert.Equal(t, "q: ──[H]──", Text(gate.H))
	assert.Equal(t, "q: ───────", Text(gate.I))
	assert.Equal(t, len([]rune(Text(gate.X))), len([]rune(Text(gate.I))))
}

func TestFontCoversCatalog(t *testing.T) {
	for _, sym := range gate.All() {
		rows, ok := font[rune(sym[0])]
		require.True(t, ok, "missing glyph for %s", sym)
		for _, row := range rows {
			assert.Len(t, row, glyphWidth)
		}
	}
}

func TestPNG_TransparentBackground(t *testing.T) {
	for _, sym := range gate.All() {
		t.Run(sym.String(), func(t *testing.T) {
			data, err := PNG(sym)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, width, img.Bounds().Dx())
			assert.Equal(t, height, img.Bounds().Dy())

			_, _, _, a := img.At(0, 0).RGBA()
			assert.Zero(t, a, "corner must be transparent")
			_, _, _, a = img.At(width-1, height-1).RGBA()
			assert.Zero(t, a, "corner must be transparent")

			// The wire is always drawn.
			_, _, _, a = img.At(wireStart+2, wireY).RGBA()
			assert.NotZero(t, a)
		})
	}
}

func TestDraw_GateBox(t *testing.T) {
	inside := func(sym gate.Symbol) (r, g, b, a uint32) {
		return Draw(sym).At(boxX+boxBorder+1, boxY+boxBorder+1).RGBA()
	}

	_, _, _, a := inside(gate.I)
	assert.Zero(t, a, "identity has no gate box")

	want := familyFill[gate.FamilyClifford]
	got := Draw(gate.H).NRGBAAt(boxX+boxBorder+1, boxY+boxBorder+1)
	assert.Equal(t, want, got)

	assert.Equal(t, familyFill[gate.FamilyPauli], Draw(gate.X).NRGBAAt(boxX+boxBorder+1, boxY+boxBorder+1))
	assert.Equal(t, familyFill[gate.FamilyNonClifford], Draw(gate.T).NRGBAAt(boxX+boxBorder+1, boxY+boxBorder+1))
	assert.Equal(t, ink, Draw(gate.T).NRGBAAt(boxX, boxY), "box border")
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, gate.Z))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}
