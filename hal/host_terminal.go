package hal

import (
	"context"
	"fmt"
	"io"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the tcell host runner.
type TerminalConfig struct {
	Config
	Hz int
	// Hold is how long an arrow key counts as held after its last repeat.
	// Terminals report presses only, never releases.
	Hold time.Duration
}

// RunTerminal draws the framebuffer into the terminal with half-block cells
// and reads keys from it. It blocks until Ctrl-C, ctx is done or the step
// function stops. Without cfg.Log, log lines are discarded so they do not
// tear the screen.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Log == nil {
		cfg.Log = io.Discard
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	return runTerminal(ctx, screen, newApp, cfg)
}

func runTerminal(ctx context.Context, screen tcell.Screen, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Hold <= 0 {
		cfg.Hold = 200 * time.Millisecond
	}

	h := newHost(cfg.Config)
	step := newApp(h)
	keys := newTermKeys(h.kbd, cfg.Hold)

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				keys.press(termKeyCode(ev), time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-t.C:
			keys.expire(now)
			stop, err := runStep(step)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
			blit(screen, h.fb)
		}
	}
}

func termKeyCode(ev *tcell.EventKey) KeyCode {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return KeyUp
		case 's':
			return KeyDown
		case ' ':
			return KeySpace
		case 'p':
			return KeyP
		case 'r':
			return KeyR
		case 'q':
			return KeyQ
		}
	}
	return KeyUnknown
}

// termKeys synthesizes releases for movement keys that stopped repeating.
type termKeys struct {
	q    *keyQueue
	hold time.Duration
	held map[KeyCode]time.Time
}

func newTermKeys(q *keyQueue, hold time.Duration) *termKeys {
	return &termKeys{q: q, hold: hold, held: make(map[KeyCode]time.Time)}
}

func (k *termKeys) press(code KeyCode, now time.Time) {
	switch code {
	case KeyUnknown:
		return
	case KeyUp, KeyDown:
		if _, ok := k.held[code]; !ok {
			k.q.emit(code, true)
		}
		k.held[code] = now
	default:
		k.q.emit(code, true)
		k.q.emit(code, false)
	}
}

func (k *termKeys) expire(now time.Time) {
	for code, last := range k.held {
		if now.Sub(last) >= k.hold {
			k.q.emit(code, false)
			delete(k.held, code)
		}
	}
}

// blit samples the framebuffer at the center of each half cell.
func blit(s tcell.Screen, fb *hostFramebuffer) {
	cols, rows := s.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	fb.mu.Lock()
	for cy := 0; cy < rows; cy++ {
		top := sampleAt(2*cy, 2*rows, fb.height)
		bot := sampleAt(2*cy+1, 2*rows, fb.height)
		for cx := 0; cx < cols; cx++ {
			px := sampleAt(cx, cols, fb.width)
			ch, style := halfBlock(fb.pixel(px, top), fb.pixel(px, bot))
			s.SetContent(cx, cy, ch, nil, style)
		}
	}
	fb.mu.Unlock()

	s.Show()
}

func sampleAt(i, n, size int) int {
	return (2*i + 1) * size / (2 * n)
}

func halfBlock(top, bot uint16) (rune, tcell.Style) {
	st := tcell.StyleDefault.Background(tcell.ColorBlack)
	switch {
	case top != 0 && top == bot:
		return '█', st.Foreground(color565(top))
	case top != 0 && bot != 0:
		return '▀', st.Foreground(color565(top)).Background(color565(bot))
	case top != 0:
		return '▀', st.Foreground(color565(top))
	case bot != 0:
		return '▄', st.Foreground(color565(bot))
	}
	return ' ', st
}

func color565(p uint16) tcell.Color {
	r, g, b := rgb888From565(p)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
