package pong

import (
	"errors"
	"math"
)

var (
	ErrInvalidSide = errors.New("pong: serve side must be FromPlayer or FromAI")
	ErrNotServed   = errors.New("pong: ball updated before first serve")
)

// Side selects the paddle a serve leaves from.
type Side int

const (
	FromPlayer Side = 1
	FromAI     Side = -1
)

func (s Side) Valid() bool { return s == FromPlayer || s == FromAI }

func (s Side) String() string {
	switch s {
	case FromPlayer:
		return "player"
	case FromAI:
		return "ai"
	default:
		return "invalid"
	}
}

// Ball is the square that travels between the paddles.
//
// Its speed is Speed after a serve or a regular hit and SmashFactor*Speed
// after a hit near a paddle edge.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Speed  float64

	surf   Surface
	served bool
}

func NewBall(surf Surface) *Ball {
	return &Ball{Size: BallSize, Speed: BallSpeed, surf: surf}
}

func (b *Ball) Bounds() Rect { return Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size} }

func (b *Ball) Draw() {
	if b.surf == nil {
		return
	}
	b.surf.FillRect(b.X, b.Y, b.Size, b.Size)
}

// Served reports whether the ball has a velocity yet.
func (b *Ball) Served() bool { return b.served }

// Serve places the ball flush against the serving paddle at a random height
// and launches it toward the other side within ±ServeCone.
func (b *Ball) Serve(s *Session, side Side, player, ai Entity) error {
	if !side.Valid() {
		return ErrInvalidSide
	}

	r := s.random()
	if side == FromPlayer {
		b.X = player.Bounds().Right()
	} else {
		b.X = ai.Bounds().X - b.Size
	}
	b.Y = (s.Field.Height - b.Size) * r

	phi := serveAngle(r)
	b.VX = float64(side) * b.Speed * math.Cos(phi)
	b.VY = b.Speed * math.Sin(phi)
	b.served = true
	return nil
}

// Update advances the ball one frame: move, reflect off the top and bottom
// walls, bounce off the paddle it is heading to, and score and re-serve when
// it leaves the field.
func (b *Ball) Update(s *Session, player, ai Entity) error {
	if !b.served {
		return ErrNotServed
	}
	field := s.Field

	b.X += b.VX
	b.Y += b.VY

	if b.Y < 0 || b.Y+b.Size > field.Height {
		var offset float64
		if b.VY < 0 {
			offset = -b.Y
		} else {
			offset = field.Height - (b.Y + b.Size)
		}
		b.Y += 2 * offset
		b.VY = -b.VY
	}

	towardPlayer := b.VX < 0
	target, dir := ai.Bounds(), -1.0
	if towardPlayer {
		target, dir = player.Bounds(), 1.0
	}

	if Intersects(target, b.Bounds()) {
		if towardPlayer {
			b.X = target.Right()
		} else {
			b.X = target.X - b.Size
		}
		n := (b.Y + b.Size - target.Y) / (target.H + b.Size)
		phi := bounceAngle(n)
		k := smash(phi)
		b.VX = k * dir * b.Speed * math.Cos(phi)
		b.VY = k * b.Speed * math.Sin(phi)
	}

	exitLeft := b.X+b.Size < 0
	exitRight := b.X > field.Width
	if !exitLeft && !exitRight {
		return nil
	}
	if exitRight {
		s.Score.Player++
	} else {
		s.Score.AI++
	}

	// Serve from the paddle the ball was heading toward.
	side := FromAI
	if towardPlayer {
		side = FromPlayer
	}
	if err := b.Serve(s, side, player, ai); err != nil {
		return err
	}
	s.scored()
	return nil
}

// serveAngle maps a sample r in [0, 1) to an angle in (-ServeCone, ServeCone].
func serveAngle(r float64) float64 {
	return ServeCone * (1 - 2*r)
}

// bounceAngle maps the hit position n in [0, 1] to [-BounceCone, BounceCone].
func bounceAngle(n float64) float64 {
	return BounceCone * (2*n - 1)
}

func smash(phi float64) float64 {
	if math.Abs(phi) > SmashAngle {
		return SmashFactor
	}
	return 1
}
