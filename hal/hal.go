package hal

import (
	"errors"
	"io"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrQuit is returned by a step function to end a runner without error.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeySpace
	KeyP
	KeyR
	KeyQ
)

var keyNames = map[KeyCode]string{
	KeyUnknown: "unknown",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyEnter:   "enter",
	KeyEscape:  "escape",
	KeySpace:   "space",
	KeyP:       "p",
	KeyR:       "r",
	KeyQ:       "q",
}

func (k KeyCode) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// KeyEvent is a key press or release.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the game and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// Config sizes the host framebuffer and picks the log sink.
type Config struct {
	Width  int
	Height int
	// Scale multiplies the window size; the framebuffer keeps Width x Height.
	Scale int
	// Log receives log lines. Nil means os.Stdout.
	Log io.Writer
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	return c
}
