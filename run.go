package sketchbook

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures a windowed run. Zero fields take the sketch's own
// size or the package defaults.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	TPS       int
	Resizable bool

	// ShowFPS overlays FPS/TPS in the top-left corner. With Debug it also
	// shows command and triangle counts.
	ShowFPS bool
	// Debug logs per-frame display list stats at debug level.
	Debug bool

	// ScreenshotDir receives captures. Defaults to DefaultScreenshotDir.
	ScreenshotDir string
	// DisableCaptureKey turns off the S key screenshot shortcut.
	DisableCaptureKey bool

	// Script, when set, drives the mouse and may queue screenshots or quit.
	Script *Script
}

// resolve fills zero fields from the sketch and the package defaults.
func (c RunConfig) resolve(title string, width, height int) (RunConfig, error) {
	if c.Title == "" {
		c.Title = title
	}
	if c.Width == 0 {
		c.Width = width
	}
	if c.Height == 0 {
		c.Height = height
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Width < 0 || c.Height < 0 {
		return c, fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		c.TPS = DefaultTPS
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = DefaultScreenshotDir
	}
	return c, nil
}

// Run opens a window and runs the sketch until the window closes, the
// sketch calls App.Quit, or the script issues quit.
func (s *Sketch[M]) Run(cfg RunConfig) error {
	cb, err := s.callbacks()
	if err != nil {
		return err
	}
	cfg, err = cfg.resolve(s.SketchTitle(), s.Width, s.Height)
	if err != nil {
		return fmt.Errorf("run %s: %w", s.Name, err)
	}

	g := newGame(cb, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	log := Logger()
	log.Info("run", "sketch", s.Name, "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run %s: %w", s.Name, err)
	}
	log.Info("stopped", "sketch", s.Name, "frames", g.app.Frames())
	return nil
}

// game adapts a driver to ebiten.Game.
type game struct {
	cfg     RunConfig
	app     *App
	drv     *driver
	sub     submitter
	overlay *fpsOverlay
	pending []string
}

func newGame(cb *callbacks, cfg RunConfig) *game {
	app := newApp(cfg.Width, cfg.Height, cfg.TPS)
	g := &game{
		cfg: cfg,
		app: app,
		drv: newDriver(cb, app, cfg.Script),
	}
	if cfg.ShowFPS {
		g.overlay = newFPSOverlay(cfg.Debug)
	}
	return g
}

// Update samples input and runs one tick.
func (g *game) Update() error {
	g.drv.step(pollMouse())
	if !g.cfg.DisableCaptureKey && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.app.Capture("key")
	}
	g.pending = append(g.pending, g.app.takeCaptures()...)
	if g.drv.done() {
		return ebiten.Termination
	}
	return nil
}

// Draw runs the view, submits its display list and flushes screenshots.
func (g *game) Draw(screen *ebiten.Image) {
	list := g.drv.render()
	if list == nil {
		return
	}
	g.sub.submit(screen, list)
	g.pending = append(g.pending, g.app.takeCaptures()...)
	stats := list.Stats()
	if g.cfg.Debug {
		debugLog(g.app.Frames(), stats, g.sub.drawCalls)
	}
	if g.overlay != nil {
		g.overlay.update(1/float64(g.cfg.TPS), stats)
		g.overlay.draw(screen)
	}
	if len(g.pending) > 0 {
		flushCaptures(screen, g.cfg.ScreenshotDir, g.pending, g.app.Frames())
		g.pending = g.pending[:0]
	}
}

// Layout keeps the logical screen at the configured size unless the window
// is resizable, in which case the sketch sees the real window size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Resizable {
		g.app.width, g.app.height = outsideWidth, outsideHeight
		return outsideWidth, outsideHeight
	}
	return g.cfg.Width, g.cfg.Height
}

// pollMouse samples the real pointer.
func pollMouse() Mouse {
	x, y := ebiten.CursorPosition()
	m := Mouse{X: float64(x), Y: float64(y)}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		m.Buttons |= MouseLeft
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		m.Buttons |= MouseRight
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		m.Buttons |= MouseMiddle
	}
	return m
}
