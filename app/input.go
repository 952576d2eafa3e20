package app

import (
	"paddleball/hal"
	"paddleball/pong"
)

// heldKeys folds press/release events into the set of held direction keys.
type heldKeys struct {
	up   bool
	down bool
}

func (k *heldKeys) apply(ev hal.KeyEvent) {
	switch ev.Code {
	case hal.KeyUp:
		k.up = ev.Press
	case hal.KeyDown:
		k.down = ev.Press
	}
}

func (k heldKeys) input() pong.Input {
	return pong.Input{Up: k.up, Down: k.down}
}

// steer holds whichever key moves the player paddle toward the ball.
func steer(g *pong.Game) pong.Input {
	p := g.Player.Bounds()
	b := g.Ball.Bounds()
	center := p.Y + p.H/2
	target := b.Y + b.H/2

	switch {
	case target < center-pong.PlayerStep:
		return pong.Input{Up: true}
	case target > center+pong.PlayerStep:
		return pong.Input{Down: true}
	}
	return pong.Input{}
}
