package font5x7

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is a monospace 5x7 bitmap font with a 6-pixel advance, covering
// printable ASCII plus the selection arrow '→'.
//
// It implements tinyfont.Fonter. Concurrent access is not safe due to
// internal glyph reuse.
var Font tinyfont.Fonter = &font5x7{}

const (
	glyphWidth   = 5
	glyphHeight  = 7
	glyphAdvance = 6
)

type font5x7 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	base := glyphIndex(g.r) * glyphWidth
	for col := 0; col < glyphWidth; col++ {
		b := glyphData[base+col]
		// Columns are stored bottom-up in a byte: bit0 = top pixel row.
		for row := 0; row < glyphHeight; row++ {
			if b&(1<<uint(row)) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(glyphHeight-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    glyphWidth,
		Height:   glyphHeight,
		XAdvance: glyphAdvance,
		XOffset:  0,
		YOffset:  -glyphHeight,
	}
}

func (f *font5x7) GetYAdvance() uint8 { return 8 }

func (f *font5x7) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func glyphIndex(r rune) int {
	switch {
	case r >= 0x20 && r <= 0x7e:
		return int(r) - 0x20
	case r == '→':
		return arrowIndex
	default:
		return int('?') - 0x20
	}
}
