package sketches

import (
	"math"

	"github.com/phanxgames/sketchbook"
)

var (
	shapesBackdrop = sketchbook.RGB8(100, 149, 237)
	shapesViolet   = sketchbook.RGB8(238, 130, 238)
	shapesGold     = sketchbook.RGB8(238, 232, 170)
	shapesGreen    = sketchbook.RGB8(0, 100, 0)
)

const shapesQuadSize = 100

type shapesModel struct{}

// Shapes draws one of each basic primitive: a triangle over the top-left
// half of the window, an ellipse and a quad that chase the mouse in mirror
// image, a line whose weight breathes, and a rect whose size follows the
// mouse. The line has round caps.
func Shapes() *sketchbook.Sketch[shapesModel] {
	return &sketchbook.Sketch[shapesModel]{
		Name:   "shapes",
		Title:  "Sketchbook - Shapes",
		Width:  screenW,
		Height: screenH,
		View:   shapesView,
	}
}

func shapesView(app *sketchbook.App, _ *shapesModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	win := app.Window()
	t := app.Time()
	c := win.Center()
	// Mouse offset from the window center, Y up.
	mx, my := app.Mouse().X-c.X, c.Y-app.Mouse().Y

	d.Background(shapesBackdrop)
	d.NoStroke()

	d.Fill(shapesViolet)
	d.Tri(sketchbook.V(0, win.Height), sketchbook.V(0, 0), sketchbook.V(win.Width, 0))

	d.Fill(sketchbook.ColorCrimson)
	d.Circle(sketchbook.V(c.X+mx*math.Cos(t), c.Y-my), math.Abs(win.Width*0.125*math.Sin(t)))

	sin, cos := math.Sin(t), math.Cos(t)
	d.Stroke(shapesGold).StrokeWeight(10 + (sin*0.5+0.5)*90).Cap(sketchbook.CapRound)
	d.Line(
		sketchbook.V(c.X-win.Width/2*sin, c.Y-win.Height/2*sin),
		sketchbook.V(c.X+win.Width/2*cos, c.Y+win.Height/2*cos),
	)
	d.NoStroke()

	d.Push()
	d.Translate(c.X-mx, c.Y-my)
	d.Rotate(-t)
	d.Fill(shapesGreen)
	half := shapesQuadSize / 2.0
	d.Quad(sketchbook.V(-half, -half), sketchbook.V(half, -half), sketchbook.V(half, half), sketchbook.V(-half, half))
	d.Pop()

	w := math.Abs(mx * 0.25)
	center := sketchbook.V(c.X+my, c.Y-mx)
	d.Fill(sketchbook.HSV(t, 1, 1))
	d.Rect(sketchbook.Rect{X: center.X - w/2, Y: center.Y - shapesQuadSize/2, Width: w, Height: shapesQuadSize})

	frame.Submit()
}
