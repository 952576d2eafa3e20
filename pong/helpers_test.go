package pong

// recorder is a Surface that remembers every rectangle it is asked to fill.
type recorder struct {
	rects []Rect
}

func (r *recorder) FillRect(x, y, w, h float64) {
	r.rects = append(r.rects, Rect{X: x, Y: y, W: w, H: h})
}

func fixed(r float64) func() float64 {
	return func() float64 { return r }
}

// court returns the layout used by most ball tests: an 800x600 field with the
// player flush left and the AI flush right.
func court() (*Session, *PlayerPaddle, *AIPaddle) {
	s := NewSession(Playfield{Width: 800, Height: 600}, fixed(0.5))
	player := NewPlayerPaddle(nil)
	player.X, player.Y = 0, 250
	ai := NewAIPaddle(nil)
	ai.X, ai.Y = 780, 250
	return s, player, ai
}

// launched returns a served ball moved to the given position and velocity.
func launched(s *Session, player *PlayerPaddle, ai *AIPaddle, x, y, vx, vy float64) *Ball {
	b := NewBall(nil)
	if err := b.Serve(s, FromPlayer, player, ai); err != nil {
		panic(err)
	}
	b.X, b.Y, b.VX, b.VY = x, y, vx, vy
	return b
}
