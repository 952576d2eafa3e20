package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *keyQueue
	cfg    Config
}

// New returns a host HAL implementation.
func New(cfg Config) HAL {
	return newHost(cfg)
}

func newHost(cfg Config) *hostHAL {
	cfg = cfg.withDefaults()
	var w io.Writer = os.Stdout
	if cfg.Log != nil {
		w = cfg.Log
	}
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newKeyQueue(),
		cfg:    cfg,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *keyQueue
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// keyQueue buffers key events between a backend and the step function.
// Events are dropped when the queue is full.
type keyQueue struct {
	ch chan KeyEvent
}

func newKeyQueue() *keyQueue {
	return &keyQueue{ch: make(chan KeyEvent, 64)}
}

func (k *keyQueue) Events() <-chan KeyEvent { return k.ch }

func (k *keyQueue) emit(code KeyCode, press bool) {
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
	default:
	}
}

// runStep calls step and maps ErrQuit to a clean stop.
func runStep(step func() error) (stop bool, err error) {
	if step == nil {
		return false, nil
	}
	if err := step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return true, nil
		}
		return true, err
	}
	return false, nil
}
