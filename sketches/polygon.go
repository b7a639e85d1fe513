package sketches

import (
	"math"

	"github.com/phanxgames/sketchbook"
)

const (
	pentagonPoints = 5
	heptagonPoints = 7
	pentagonWeight = 20
)

var polygonPink = sketchbook.RGB8(255, 192, 203)

type polygonModel struct{}

// Polygon draws two slowly counter-rotating polygons: a white pentagon with
// a thick round-joined pink outline on the left, and a heptagon with one
// color per point on the right.
func Polygon() *sketchbook.Sketch[polygonModel] {
	return &sketchbook.Sketch[polygonModel]{
		Name:   "polygon",
		Title:  "Sketchbook - Polygon",
		Width:  screenW,
		Height: screenH,
		View:   polygonView,
	}
}

// ngon returns n points on a circle of the given radius, the first pointing
// right, winding counter-clockwise on screen.
func ngon(n int, radius float64) []sketchbook.Vec2 {
	pts := make([]sketchbook.Vec2, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = sketchbook.V(radius*cos, -radius*sin)
	}
	return pts
}

// HeptagonColors returns the per-point colors of the right-hand polygon:
// red rises while green falls around the ring and blue runs half a turn
// ahead.
func HeptagonColors() []sketchbook.Color {
	colors := make([]sketchbook.Color, heptagonPoints)
	for i := range colors {
		f := float64(i) / heptagonPoints
		colors[i] = sketchbook.RGB(f, 1-f, math.Mod(0.5+f, 1))
	}
	return colors
}

func polygonView(app *sketchbook.App, _ *polygonModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	win := app.Window()
	t := app.Time()
	c := win.Center()
	radius := math.Min(win.Width, win.Height) * 0.25

	d.Background(sketchbook.ColorBlack)

	d.Push()
	d.Translate(c.X-win.Width*0.25, c.Y)
	d.Rotate(t * 0.1)
	d.Fill(sketchbook.ColorWhite).Stroke(polygonPink).StrokeWeight(pentagonWeight).Join(sketchbook.JoinRound)
	d.Polygon(ngon(pentagonPoints, radius))
	d.Pop()

	d.Push()
	d.Translate(c.X+win.Width*0.25, c.Y)
	d.Rotate(-t * 0.2)
	d.NoStroke()
	d.PolygonColored(ngon(heptagonPoints, radius), HeptagonColors())
	d.Pop()

	frame.Submit()
}
