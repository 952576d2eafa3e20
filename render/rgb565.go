package render

import (
	"math"

	"paddleball/pong"
)

// Color is an opaque RGB color in 8-bit channels.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

var (
	Black = RGB(0, 0, 0)
	White = RGB(0xFF, 0xFF, 0xFF)
	Gray  = RGB(0x80, 0x80, 0x80)
)

// Pack encodes c as rrrrrggggggbbbbb.
func Pack(c Color) uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

// RGB565 renders into a little-endian RGB565 buffer.
//
// FillRect paints with Ink, which makes the target usable as a pong.Surface.
type RGB565 struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int

	Ink Color
}

var _ pong.Surface = (*RGB565)(nil)

func (t *RGB565) Size() (w, h int) { return t.W, t.H }

func (t *RGB565) ok() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565) Clear(c Color) {
	if !t.ok() {
		return
	}
	t.fill(0, 0, t.W, t.H, Pack(c))
}

func (t *RGB565) SetPixel(x, y int, c Color) {
	if !t.ok() {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	t.put(y*t.Stride+x*2, Pack(c))
}

// At returns the packed pixel at (x, y), or 0 outside the target.
func (t *RGB565) At(x, y int) uint16 {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0
	}
	off := y*t.Stride + x*2
	if off+1 >= len(t.Buf) {
		return 0
	}
	return uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8
}

// FillRect paints the pixels covered by the rectangle, edges rounded to the
// nearest pixel and clipped to the target.
func (t *RGB565) FillRect(x, y, w, h float64) {
	if !t.ok() {
		return
	}
	t.Fill(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
		t.Ink,
	)
}

// Fill paints the half-open pixel box [x0, x1) x [y0, y1).
func (t *RGB565) Fill(x0, y0, x1, y1 int, c Color) {
	if !t.ok() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > t.W {
		x1 = t.W
	}
	if y1 > t.H {
		y1 = t.H
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}
	t.fill(x0, y0, x1, y1, Pack(c))
}

func (t *RGB565) fill(x0, y0, x1, y1 int, p uint16) {
	for y := y0; y < y1; y++ {
		row := y * t.Stride
		for x := x0; x < x1; x++ {
			t.put(row+x*2, p)
		}
	}
}

func (t *RGB565) put(off int, p uint16) {
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}
