package sketchbook

import (
	"errors"
	"fmt"
	"time"
)

// Default window and timing settings applied when a config field is zero.
const (
	DefaultWidth         = 640
	DefaultHeight        = 480
	DefaultTPS           = 60
	DefaultScreenshotDir = "screenshots"
)

var (
	// ErrNoView is returned when a sketch has no view callback.
	ErrNoView = errors.New("sketch has no view callback")
	// ErrInvalidSize is returned for negative window dimensions.
	ErrInvalidSize = errors.New("invalid window size")
)

// MouseButtons is a bitmask of pressed mouse buttons.
type MouseButtons uint8

const (
	MouseLeft   MouseButtons = 1 << iota // primary (left) mouse button
	MouseRight                           // secondary (right) mouse button
	MouseMiddle                          // middle mouse button (scroll wheel click)
)

// Mouse is the pointer state sampled at the start of each tick. Coordinates
// are in window pixels with the origin at the top-left.
type Mouse struct {
	X, Y    float64
	Buttons MouseButtons
}

// Pos returns the pointer position as a vector.
func (m Mouse) Pos() Vec2 { return Vec2{m.X, m.Y} }

// Pressed reports whether every button in b is held.
func (m Mouse) Pressed(b MouseButtons) bool { return m.Buttons&b == b }

// Update carries timing for an update callback.
type Update struct {
	Since     time.Duration // time since the model was created
	SinceLast time.Duration // time since the previous update
}

// App is the per-run state shared by every callback of a sketch.
type App struct {
	width, height int
	tps           int
	frames        uint64
	elapsed       time.Duration
	mouse         Mouse
	captures      []string
	quit          bool
}

func newApp(width, height, tps int) *App {
	return &App{width: width, height: height, tps: tps}
}

// Time returns the seconds elapsed since the model was created.
func (a *App) Time() float64 { return a.elapsed.Seconds() }

// Elapsed returns the duration since the model was created.
func (a *App) Elapsed() time.Duration { return a.elapsed }

// Frames returns the number of ticks that have completed.
func (a *App) Frames() uint64 { return a.frames }

// Mouse returns the pointer state for the current tick.
func (a *App) Mouse() Mouse { return a.mouse }

// Window returns the window bounds in pixels.
func (a *App) Window() Rect {
	return Rect{Width: float64(a.width), Height: float64(a.height)}
}

// Capture queues a labeled screenshot. Called from a model or update
// callback it captures the frame rendered after that tick; called from a
// view it captures the frame that view is drawing.
func (a *App) Capture(label string) {
	a.captures = append(a.captures, label)
}

// Quit asks the run loop to stop after the current tick.
func (a *App) Quit() { a.quit = true }

// tick advances the clock by one fixed step and returns the update timing.
func (a *App) tick() Update {
	step := time.Second / time.Duration(a.tps)
	a.elapsed += step
	a.frames++
	return Update{Since: a.elapsed, SinceLast: step}
}

// takeCaptures returns and clears the capture queue.
func (a *App) takeCaptures() []string {
	if len(a.captures) == 0 {
		return nil
	}
	out := a.captures
	a.captures = nil
	return out
}

// Sketch is a standalone program: a model built once, an update step run
// every tick and a view run every frame. M is usually an empty struct.
type Sketch[M any] struct {
	Name   string
	Title  string
	Width  int
	Height int

	Model  func(*App) M
	Update func(*App, *M, Update)
	View   func(*App, *M, *Frame)
}

// Entry is the type-erased form of a Sketch used by registries and the CLI.
type Entry interface {
	SketchName() string
	SketchTitle() string
	Run(cfg RunConfig) error
	Record(cfg RecordConfig) ([]RecordedFrame, error)
}

var _ Entry = (*Sketch[struct{}])(nil)

// SketchName returns the sketch's short name.
func (s *Sketch[M]) SketchName() string { return s.Name }

// SketchTitle returns the window title, falling back to the name.
func (s *Sketch[M]) SketchTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Name
}

// callbacks binds the sketch to a fresh model slot. The model is built on
// the first call to init and handed to every later callback.
func (s *Sketch[M]) callbacks() (*callbacks, error) {
	if s.View == nil {
		return nil, fmt.Errorf("%s: %w", s.Name, ErrNoView)
	}
	var model M
	return &callbacks{
		init: func(a *App) {
			if s.Model != nil {
				model = s.Model(a)
			}
		},
		update: func(a *App, u Update) {
			if s.Update != nil {
				s.Update(a, &model, u)
			}
		},
		view: func(a *App, f *Frame) {
			s.View(a, &model, f)
		},
	}, nil
}

// callbacks is the non-generic view of a sketch used by the run loops.
type callbacks struct {
	init   func(*App)
	update func(*App, Update)
	view   func(*App, *Frame)
}

// driver sequences model creation, ticks and views for both the windowed
// and the headless loop.
type driver struct {
	cb     *callbacks
	app    *App
	frame  *Frame
	script *Script
	ready  bool
}

func newDriver(cb *callbacks, app *App, script *Script) *driver {
	return &driver{cb: cb, app: app, frame: newFrame(), script: script}
}

// step runs one tick. The model is created on the first tick, before the
// first update. Injected script input overrides the sampled mouse.
func (d *driver) step(sampled Mouse) {
	if !d.ready {
		d.cb.init(d.app)
		d.ready = true
	}
	d.app.mouse = sampled
	if d.script != nil {
		d.script.step(d.app)
	}
	u := d.app.tick()
	d.cb.update(d.app, u)
}

// render runs the view for the current tick and returns the frame's list.
func (d *driver) render() *DisplayList {
	if !d.ready {
		return nil
	}
	d.frame.begin(d.app.frames-1, d.app.width, d.app.height)
	d.cb.view(d.app, d.frame)
	return d.frame.DisplayList()
}

// done reports whether the loop should stop.
func (d *driver) done() bool {
	return d.app.quit
}
