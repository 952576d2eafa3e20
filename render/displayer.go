package render

import (
	"image/color"

	"tinygo.org/x/drivers"
)

type displayer struct {
	t *RGB565
}

// Displayer exposes t as a drivers.Displayer so tinyfont can draw into it.
func Displayer(t *RGB565) drivers.Displayer {
	return displayer{t: t}
}

func (d displayer) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	return int16(d.t.W), int16(d.t.H)
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), Color{R: c.R, G: c.G, B: c.B})
}

func (d displayer) Display() error { return nil }
