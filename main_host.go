package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"paddleball/app"
	"paddleball/hal"
)

func main() {
	var (
		hcfg     hal.Config
		acfg     app.Config
		headless bool
		term     bool
		hz       int
		ticks    uint64
		hold     time.Duration
		logPath  string
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&term, "term", false, "Draw the game in the terminal.")
	flag.IntVar(&hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&hcfg.Width, "width", 800, "Playfield width in pixels.")
	flag.IntVar(&hcfg.Height, "height", 600, "Playfield height in pixels.")
	flag.IntVar(&hcfg.Scale, "scale", 1, "Window scale factor.")
	flag.BoolVar(&acfg.Autopilot, "autopilot", false, "Steer the player paddle automatically.")
	flag.Int64Var(&acfg.Seed, "seed", 0, "Serve randomness seed (0 = time based).")
	flag.StringVar(&logPath, "log", "", "Append log lines to this file.")
	flag.DurationVar(&hold, "hold", 200*time.Millisecond, "How long a terminal key press counts as held.")
	flag.Parse()

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		hcfg.Log = f
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, acfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case headless:
		acfg.Backend = "headless"
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Config: hcfg, Hz: hz, Ticks: ticks})
	case term:
		acfg.Backend = "terminal"
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Config: hcfg, Hz: hz, Hold: hold})
	default:
		acfg.Backend = "window"
		err = hal.RunWindow(hcfg, newApp)
	}
	if err != nil && !errors.Is(err, hal.ErrQuit) && !errors.Is(err, context.Canceled) {
		stop()
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
