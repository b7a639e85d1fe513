package sketches

import (
	"math"

	"github.com/phanxgames/sketchbook"
)

const (
	rippleCols = 40
	rippleRows = 30
	// rippleBleed extends the grid past the window so displaced edges never
	// reveal the background.
	rippleBleed = 24
)

var (
	rippleDeep  = sketchbook.RGB(0.03, 0.18, 0.32)
	rippleCrest = sketchbook.RGB(0.75, 0.92, 1.0)
)

type rippleModel struct{}

// Ripple draws a grid mesh displaced by two overlapping sine waves
// travelling in different directions. Mouse Y sets the wave amplitude.
func Ripple() *sketchbook.Sketch[rippleModel] {
	return &sketchbook.Sketch[rippleModel]{
		Name:   "ripple",
		Title:  "Sketchbook - Ripple",
		Width:  screenW,
		Height: screenH,
		View:   rippleView,
	}
}

// RippleHeight returns the vertical displacement of the surface at rest
// position (x, y) and time t, normalised to [-1.4, 1.4].
func RippleHeight(x, y, t float64) float64 {
	wave1 := math.Sin(x*0.04 + y*0.03 + t*2.0)
	wave2 := math.Sin(x*0.03 - y*0.05 + t*1.5 + 1.2)
	return wave1 + 0.4*wave2
}

func rippleView(app *sketchbook.App, _ *rippleModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	win := app.Window()
	t := app.Time()

	d.Background(rippleDeep)

	amp := sketchbook.Clamp(sketchbook.MapRange(app.Mouse().Y, 0, win.Height, 2, 14), 2, 14)
	area := win.Pad(-rippleBleed)
	d.Grid(area, rippleCols, rippleRows, func(_, _ int, rest sketchbook.Vec2) (sketchbook.Vec2, sketchbook.Color) {
		h := RippleHeight(rest.X, rest.Y, t)
		off := sketchbook.V(1.5*math.Sin(rest.Y*0.05+t*1.2), amp*h)
		return off, rippleDeep.Lerp(rippleCrest, (h+1.4)/2.8)
	})

	frame.Submit()
}
