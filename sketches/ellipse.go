package sketches

import (
	"math"

	"github.com/phanxgames/sketchbook"
)

const ellipseCount = 24

type ellipseModel struct{}

// Ellipse draws a pulsing ring of ellipses that follows the mouse.
func Ellipse() *sketchbook.Sketch[ellipseModel] {
	return &sketchbook.Sketch[ellipseModel]{
		Name:   "ellipse",
		Title:  "Sketchbook - Ellipse",
		Width:  screenW,
		Height: screenH,
		View:   ellipseView,
	}
}

func ellipseView(app *sketchbook.App, _ *ellipseModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	t := app.Time()
	m := app.Mouse().Pos()

	d.Background(sketchbook.RGB(0.06, 0.05, 0.09))
	d.NoStroke()

	ring := 90 + 30*math.Sin(t)
	for i := range ellipseCount {
		f := float64(i) / ellipseCount
		angle := f*2*math.Pi + t*0.5
		sin, cos := math.Sincos(angle)
		pulse := 0.5 + 0.5*math.Sin(t*2+float64(i)*0.5)

		d.Push()
		d.Translate(m.X+cos*ring, m.Y+sin*ring)
		// Long axis points away from the ring center.
		d.Rotate(angle)
		d.Fill(sketchbook.HSL(f, 0.7, 0.6).WithAlpha(0.4 + 0.5*pulse))
		d.Ellipse(sketchbook.Vec2{}, 10+20*pulse, 6+6*pulse)
		d.Pop()
	}

	d.Fill(sketchbook.ColorIvory).Stroke(sketchbook.ColorCoral).StrokeWeight(2)
	d.Circle(m, 8)

	frame.Submit()
}
