package sketches

import (
	"math"

	"github.com/phanxgames/sketchbook"
)

const (
	circlesMinDepth = 1
	circlesMaxDepth = 6
	// circlesMinRadius stops the recursion: smaller circles have no
	// children.
	circlesMinRadius = 8
)

type circlesModel struct{}

// Circles draws the classic recursive circle pattern: every circle spawns
// four half-size children one radius away to its left, right, top and
// bottom. Hue and opacity grow with the radius. Mouse X caps the recursion
// depth.
func Circles() *sketchbook.Sketch[circlesModel] {
	return &sketchbook.Sketch[circlesModel]{
		Name:   "circles",
		Title:  "Sketchbook - Recursive Circles",
		Width:  screenW,
		Height: screenH,
		View:   circlesView,
	}
}

// CirclesDepth maps a mouse X position to a recursion depth.
func CirclesDepth(mouseX, width float64) int {
	depth := math.Round(sketchbook.MapRange(mouseX, 0, width, circlesMinDepth, circlesMaxDepth))
	return int(sketchbook.Clamp(depth, circlesMinDepth, circlesMaxDepth))
}

// CircleColor is the fill of a circle of radius r: hue and alpha both run
// from 0 at radius 2 to 1 at radius 360.
func CircleColor(r float64) sketchbook.Color {
	norm := sketchbook.MapRange(r, 2, 360, 0, 1)
	return sketchbook.HSV(norm, 0.75, 1).WithAlpha(sketchbook.Clamp(norm, 0, 1))
}

func circlesView(app *sketchbook.App, _ *circlesModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	win := app.Window()

	d.Background(sketchbook.ColorIvory)
	d.Stroke(sketchbook.ColorBlack).StrokeWeight(1)

	depth := CirclesDepth(app.Mouse().X, win.Width)
	drawCircles(d, win.Center(), math.Min(win.Width, win.Height)/2, depth)

	frame.Submit()
}

// drawCircles draws one circle and, while it is larger than
// circlesMinRadius and depth allows, its four children.
func drawCircles(d *sketchbook.Draw, c sketchbook.Vec2, r float64, depth int) {
	d.Fill(CircleColor(r))
	d.Circle(c, r)
	if r <= circlesMinRadius || depth <= 1 {
		return
	}
	half := r / 2
	drawCircles(d, sketchbook.V(c.X+r, c.Y), half, depth-1)
	drawCircles(d, sketchbook.V(c.X-r, c.Y), half, depth-1)
	drawCircles(d, sketchbook.V(c.X, c.Y+r), half, depth-1)
	drawCircles(d, sketchbook.V(c.X, c.Y-r), half, depth-1)
}
