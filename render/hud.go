package render

import (
	"image/color"
	"strconv"

	"paddleball/pong"

	"tinygo.org/x/tinyfont"
)

const (
	netWidth = 4
	netDash  = 20

	scoreTop = 16
	scoreGap = 40
)

// DrawHUD paints the center net, both scores and, when paused, a banner.
// It draws under the entities, so call it before Game.Draw.
func DrawHUD(t *RGB565, field pong.Playfield, score pong.Score, paused bool) {
	w := int(field.Width)
	h := int(field.Height)
	mid := w / 2

	for y := 0; y < h; y += 2 * netDash {
		t.Fill(mid-netWidth/2, y, mid+netWidth/2, y+netDash, Gray)
	}

	ink := toRGBA(White)
	base := int16(scoreTop + DigitHeight - 1)

	left := strconv.Itoa(score.Player)
	DrawText(t, int16(mid-scoreGap)-TextWidth(left), base, left, ink)
	DrawText(t, int16(mid+scoreGap), base, strconv.Itoa(score.AI), ink)

	if paused {
		const banner = "PAUSED"
		DrawText(t, int16(mid)-TextWidth(banner)/2, int16(h/2+DigitHeight/2), banner, ink)
	}
}

// DrawText writes s with its baseline at y using the Digits font.
func DrawText(t *RGB565, x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(Displayer(t), Digits, x, y, s, c)
}

// TextWidth returns the pen advance of s in pixels.
func TextWidth(s string) int16 {
	_, outbox := tinyfont.LineWidth(Digits, s)
	return int16(outbox)
}

func toRGBA(c Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
