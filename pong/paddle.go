package pong

// paddle is the rectangle and draw target shared by both paddle kinds.
type paddle struct {
	Rect
	surf Surface
}

func newPaddle(surf Surface) paddle {
	return paddle{Rect: Rect{W: PaddleWidth, H: PaddleHeight}, surf: surf}
}

func (p *paddle) Bounds() Rect { return p.Rect }

func (p *paddle) Draw() {
	if p.surf == nil {
		return
	}
	p.surf.FillRect(p.X, p.Y, p.W, p.H)
}

func (p *paddle) clampY(field Playfield) {
	p.Y = clamp(p.Y, 0, field.Height-p.H)
}

// PlayerPaddle follows the held direction keys.
type PlayerPaddle struct {
	paddle
}

func NewPlayerPaddle(surf Surface) *PlayerPaddle {
	return &PlayerPaddle{paddle: newPaddle(surf)}
}

// Update moves the paddle PlayerStep per held key. Holding both keys cancels out.
func (p *PlayerPaddle) Update(f Frame) {
	if f.Input.Up {
		p.Y -= PlayerStep
	}
	if f.Input.Down {
		p.Y += PlayerStep
	}
	p.clampY(f.Field)
}

// AIPaddle eases toward the ball's vertical position.
type AIPaddle struct {
	paddle
}

func NewAIPaddle(surf Surface) *AIPaddle {
	return &AIPaddle{paddle: newPaddle(surf)}
}

// Update covers AIGain of the distance to the point that centers the paddle
// on the ball. The paddle lags and never lands exactly on target.
func (p *AIPaddle) Update(f Frame) {
	if b := f.Ball; b != nil {
		dest := p.target(b)
		p.Y += (dest - p.Y) * AIGain
	}
	p.clampY(f.Field)
}

func (p *AIPaddle) target(b *Ball) float64 {
	return b.Y - (p.H-b.Size)/2
}
