package sketches

import (
	"math"

	"github.com/phanxgames/sketchbook"
)

const (
	lineSpokes   = 48
	lineWaveStep = 4
)

type linesModel struct{}

// Lines draws a fan of lines from the mouse to a slowly turning circle, a
// sine polyline along the bottom and an arrow from the center to the mouse.
func Lines() *sketchbook.Sketch[linesModel] {
	return &sketchbook.Sketch[linesModel]{
		Name:   "lines",
		Title:  "Sketchbook - Lines",
		Width:  screenW,
		Height: screenH,
		View:   linesView,
	}
}

func linesView(app *sketchbook.App, _ *linesModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	win := app.Window()
	t := app.Time()
	m := app.Mouse().Pos()
	c := win.Center()

	d.Background(sketchbook.ColorIvory)

	radius := math.Min(win.Width, win.Height) * 0.4
	for i := range lineSpokes {
		f := float64(i) / lineSpokes
		sin, cos := math.Sincos(f*2*math.Pi + t*0.2)
		end := sketchbook.V(c.X+cos*radius, c.Y+sin*radius)
		d.Stroke(sketchbook.HSV(f, 0.8, 0.6).WithAlpha(0.7))
		d.StrokeWeight(1 + 2*(0.5+0.5*math.Sin(t*3+f*8)))
		d.Line(m, end)
	}

	wave := make([]sketchbook.Vec2, 0, int(win.Width)/lineWaveStep+1)
	for x := 0.0; x <= win.Width; x += lineWaveStep {
		wave = append(wave, sketchbook.V(x, win.Height*0.85+math.Sin(x*0.02+t*3)*24))
	}
	d.Stroke(sketchbook.ColorSteelBlue).StrokeWeight(3)
	d.Polyline(wave)

	d.Stroke(sketchbook.ColorCrimson).StrokeWeight(2)
	d.Arrow(c, m, 14)

	frame.Submit()
}
