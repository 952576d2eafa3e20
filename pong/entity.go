package pong

// Surface is anything an entity can paint its rectangle on.
type Surface interface {
	FillRect(x, y, w, h float64)
}

// Entity is a positioned, drawable game object.
type Entity interface {
	Bounds() Rect
	Draw()
}

// Input is the set of direction keys held during a frame.
type Input struct {
	Up   bool
	Down bool
}

// Frame is the read-only view a paddle gets on each update.
type Frame struct {
	Field Playfield
	Input Input
	Ball  *Ball
}

// Paddle is an entity that moves itself once per frame.
type Paddle interface {
	Entity
	Update(f Frame)
}

var (
	_ Paddle = (*PlayerPaddle)(nil)
	_ Paddle = (*AIPaddle)(nil)
	_ Entity = (*Ball)(nil)
)
