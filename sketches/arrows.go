package sketches

import (
	"math"

	"github.com/phanxgames/sketchbook"
)

const (
	// arrowsGrid is the number of cells per axis: three rounds of splitting
	// the window into quadrants.
	arrowsGrid   = 8
	arrowsWeight = 5
)

type arrowsModel struct{}

// Arrows fills the window with a grid of arrows pointing at the mouse.
// Each arrow is at most half as long as its cell is wide. Holding the left
// button turns the arrows gold and points them away from the mouse.
func Arrows() *sketchbook.Sketch[arrowsModel] {
	return &sketchbook.Sketch[arrowsModel]{
		Name:   "arrows",
		Title:  "Sketchbook - Arrows",
		Width:  screenW,
		Height: screenH,
		View:   arrowsView,
	}
}

func arrowsView(app *sketchbook.App, _ *arrowsModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	win := app.Window()
	mouse := app.Mouse()
	m := mouse.Pos()
	repel := mouse.Pressed(sketchbook.MouseLeft)

	d.Background(sketchbook.ColorBlack)
	d.Stroke(sketchbook.ColorIvory).StrokeWeight(arrowsWeight)
	if repel {
		d.Stroke(sketchbook.ColorGold)
	}

	cellW := win.Width / arrowsGrid
	cellH := win.Height / arrowsGrid
	side := math.Min(cellW, cellH)
	for row := range arrowsGrid {
		for col := range arrowsGrid {
			cell := sketchbook.Rect{X: float64(col) * cellW, Y: float64(row) * cellH, Width: cellW, Height: cellH}
			start := cell.Center()
			toMouse := m.Sub(start)
			if repel {
				toMouse = toMouse.Scale(-1)
			}
			ln := toMouse.Len()
			if ln < 1e-6 {
				continue
			}
			end := start.Add(toMouse.Scale(math.Min(ln, side*0.5) / ln))
			d.Arrow(start, end, arrowsWeight*2)
		}
	}

	frame.Submit()
}
