package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"paddleball/render"
)

// guardedStep turns a panic inside a frame into a logged, fatal error and
// leaves a panic banner on screen.
func (s *system) guardedStep() (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		s.logf("Paddleball Panic: frame=%d panic=%v", s.frame, v)
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			s.logf("%s", line)
		}
		s.drawPanic()
		err = fmt.Errorf("frame %d: panic: %v", s.frame, v)
	}()
	return s.step()
}

// drawPanic paints black "PANIC" on white. A second panic while drawing is
// dropped; the first one is already logged.
func (s *system) drawPanic() {
	defer func() { _ = recover() }()

	s.fb.ClearRGB(0xFF, 0xFF, 0xFF)
	const banner = "PANIC"
	x := int16(s.target.W/2) - render.TextWidth(banner)/2
	y := int16(s.target.H/2 + render.DigitHeight/2)
	render.DrawText(s.target, x, y, banner, color.RGBA{A: 0xFF})
	_ = s.fb.Present()
}
