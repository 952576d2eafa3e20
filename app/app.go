package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"paddleball/hal"
	"paddleball/internal/buildinfo"
	"paddleball/pong"
	"paddleball/render"
)

// Config selects optional frame driver behavior.
type Config struct {
	// Autopilot steers the player paddle toward the ball instead of reading keys.
	Autopilot bool
	// Seed seeds the serve randomness. Zero picks a time-based seed.
	Seed int64
	// Backend names the runner in the startup log line.
	Backend string
}

type system struct {
	log    hal.Logger
	fb     hal.Framebuffer
	target *render.RGB565
	events <-chan hal.KeyEvent

	game *pong.Game
	keys heldKeys

	autopilot bool
	paused    bool
	frame     uint64
}

// New initializes a game with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig builds a game on the HAL's framebuffer and returns the
// per-frame step. Setup errors surface from the first step call.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.guardedStep
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, errors.New("app: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}

	s := &system{
		log: h.Logger(),
		fb:  fb,
		target: &render.RGB565{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
			Ink:    render.White,
		},
		autopilot: cfg.Autopilot,
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.events = kbd.Events()
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	field := pong.Playfield{Width: float64(fb.Width()), Height: float64(fb.Height())}
	game, err := pong.NewGame(field, s.target, rng.Float64)
	if err != nil {
		return nil, fmt.Errorf("app: new game: %w", err)
	}
	game.OnScore(func(sc pong.Score) {
		s.logf("%s", sc)
	})
	s.game = game

	backend := cfg.Backend
	if backend == "" {
		backend = "host"
	}
	s.logf("paddleball %s: %s %dx%d seed=%d autopilot=%v",
		buildinfo.Short(), backend, fb.Width(), fb.Height(), seed, cfg.Autopilot)
	return s, nil
}

// step runs one frame: input, simulation, then a full redraw.
func (s *system) step() error {
	if err := s.pollKeys(); err != nil {
		return err
	}

	if !s.paused {
		in := s.keys.input()
		if s.autopilot {
			in = steer(s.game)
		}
		if err := s.game.Step(in); err != nil {
			return fmt.Errorf("frame %d: %w", s.frame, err)
		}
		s.frame++
	}

	s.render()
	return s.fb.Present()
}

func (s *system) render() {
	s.fb.ClearRGB(0, 0, 0)
	render.DrawHUD(s.target, s.game.Field(), s.game.Score(), s.paused)
	s.game.Draw()
}

func (s *system) pollKeys() error {
	if s.events == nil {
		return nil
	}
	for {
		select {
		case ev := <-s.events:
			if err := s.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *system) handleKey(ev hal.KeyEvent) error {
	s.keys.apply(ev)
	if !ev.Press {
		return nil
	}

	switch ev.Code {
	case hal.KeyEscape, hal.KeyQ:
		s.logf("quit after %d frames, %s", s.frame, s.game.Score())
		return hal.ErrQuit

	case hal.KeyP, hal.KeySpace:
		s.paused = !s.paused
		if s.paused {
			s.logf("paused")
		} else {
			s.logf("resumed")
		}

	case hal.KeyR, hal.KeyEnter:
		if err := s.game.Restart(); err != nil {
			return fmt.Errorf("restart: %w", err)
		}
		s.paused = false
		s.logf("restarted")
	}
	return nil
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
