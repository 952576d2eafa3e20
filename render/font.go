package render

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Glyph cells are 5x7 bits, scaled up by digitScale on draw.
const (
	glyphCols  = 5
	glyphRows  = 7
	digitScale = 4

	// DigitHeight is the drawn height of a glyph in pixels.
	DigitHeight = glyphRows * digitScale
	// DigitAdvance is the pen advance per glyph in pixels.
	DigitAdvance = (glyphCols + 1) * digitScale
)

// Digits is a blocky scoreboard font: 0-9, space, '-' and the letters of
// "PAUSED" and "PANIC". Other runes draw as blanks.
//
// Concurrent access is not safe due to internal glyph reuse.
var Digits tinyfont.Fonter = &digitFont{}

// Rows are stored as 0b000xxxxx (bit4 = leftmost pixel).
var digitGlyphs = map[rune][glyphRows]uint8{
	'0': {0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E},
	'1': {0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'2': {0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F},
	'3': {0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E},
	'4': {0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02},
	'5': {0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E},
	'6': {0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E},
	'7': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08},
	'8': {0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E},
	'9': {0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C},
	'-': {0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00},
	'A': {0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'C': {0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E},
	'D': {0x1C, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1C},
	'E': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F},
	'I': {0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'N': {0x11, 0x11, 0x19, 0x15, 0x13, 0x11, 0x11},
	'P': {0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10},
	'S': {0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E},
	'U': {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
}

type digitFont struct {
	g digitGlyph
}

type digitGlyph struct {
	r rune
}

// Draw paints the glyph with its baseline at y.
func (g *digitGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	rows, ok := digitGlyphs[g.r]
	if !ok {
		return
	}

	top := y - DigitHeight + 1
	for row := 0; row < glyphRows; row++ {
		bits := rows[row]
		for col := 0; col < glyphCols; col++ {
			if bits&(0x10>>col) == 0 {
				continue
			}
			x0 := x + int16(col*digitScale)
			y0 := top + int16(row*digitScale)
			for dy := int16(0); dy < digitScale; dy++ {
				for dx := int16(0); dx < digitScale; dx++ {
					display.SetPixel(x0+dx, y0+dy, c)
				}
			}
		}
	}
}

func (g *digitGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    glyphCols * digitScale,
		Height:   DigitHeight,
		XAdvance: DigitAdvance,
		XOffset:  0,
		YOffset:  -(DigitHeight - 1),
	}
}

func (f *digitFont) GetYAdvance() uint8 { return DigitHeight + digitScale }

func (f *digitFont) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}
