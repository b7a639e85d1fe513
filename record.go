package sketchbook

import (
	"errors"
	"fmt"
)

// ErrNoFrames is returned when a recording is asked for zero frames.
var ErrNoFrames = errors.New("no frames requested")

// RecordConfig configures a headless recording.
type RecordConfig struct {
	Width  int
	Height int
	// Frames is the number of ticks to run; each tick renders one frame.
	Frames int
	// Rate is the fixed tick rate in frames per second. Defaults to DefaultTPS.
	Rate int
	// Mouse is the pointer state for every tick unless Script overrides it.
	Mouse Mouse
	// Script, when set, drives the mouse and marks captures. A scripted
	// quit ends the recording early.
	Script *Script
}

// RecordedFrame is one rendered frame from a headless recording.
type RecordedFrame struct {
	Index    uint64
	Time     float64
	List     *DisplayList
	Captures []string
}

// Record runs the sketch without a window, rendering cfg.Frames frames at a
// fixed rate, and returns every frame's display list.
func (s *Sketch[M]) Record(cfg RecordConfig) ([]RecordedFrame, error) {
	cb, err := s.callbacks()
	if err != nil {
		return nil, err
	}
	rc, err := RunConfig{Width: cfg.Width, Height: cfg.Height, TPS: cfg.Rate}.resolve(s.SketchTitle(), s.Width, s.Height)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", s.Name, err)
	}
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("record %s: %w", s.Name, ErrNoFrames)
	}

	app := newApp(rc.Width, rc.Height, rc.TPS)
	drv := newDriver(cb, app, cfg.Script)
	out := make([]RecordedFrame, 0, cfg.Frames)
	for len(out) < cfg.Frames {
		drv.step(cfg.Mouse)
		captures := app.takeCaptures()
		drv.render()
		captures = append(captures, app.takeCaptures()...)
		out = append(out, RecordedFrame{
			Index:    drv.frame.Index(),
			Time:     app.Time(),
			List:     drv.frame.snapshot(),
			Captures: captures,
		})
		if drv.done() {
			break
		}
	}
	Logger().Debug("recorded", "sketch", s.Name, "frames", len(out))
	return out, nil
}
