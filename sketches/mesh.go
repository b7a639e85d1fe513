package sketches

import (
	"math"

	"github.com/phanxgames/sketchbook"
)

const meshSegments = 36

type meshModel struct{}

// Mesh draws a rotating disc mesh with a hue wheel baked into its vertex
// colors. Mouse X scales the disc.
func Mesh() *sketchbook.Sketch[meshModel] {
	return &sketchbook.Sketch[meshModel]{
		Name:   "mesh",
		Title:  "Sketchbook - Mesh",
		Width:  screenW,
		Height: screenH,
		View:   meshView,
	}
}

// wheelMesh returns a triangle fan around a white hub. The hue is offset by
// shift turns.
func wheelMesh(radius, shift float64) ([]sketchbook.Vertex, []uint16) {
	verts := make([]sketchbook.Vertex, 0, meshSegments+1)
	verts = append(verts, sketchbook.Vertex{Color: sketchbook.ColorWhite})
	for i := range meshSegments {
		f := float64(i) / meshSegments
		sin, cos := math.Sincos(f * 2 * math.Pi)
		verts = append(verts, sketchbook.Vertex{
			X:     cos * radius,
			Y:     sin * radius,
			Color: sketchbook.HSV(f+shift, 1, 1),
		})
	}
	inds := make([]uint16, 0, meshSegments*3)
	for i := range meshSegments {
		next := (i+1)%meshSegments + 1
		inds = append(inds, 0, uint16(i+1), uint16(next))
	}
	return verts, inds
}

func meshView(app *sketchbook.App, _ *meshModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	win := app.Window()
	t := app.Time()
	c := win.Center()

	d.Background(sketchbook.ColorBlack)

	scale := sketchbook.MapRange(app.Mouse().X, 0, win.Width, 0.5, 1.5)
	radius := math.Min(win.Width, win.Height) * 0.35
	verts, inds := wheelMesh(radius, t*0.1)

	d.Push()
	d.Translate(c.X, c.Y)
	d.Rotate(t * 0.5)
	d.Scale(scale, scale)
	d.Mesh(verts, inds)

	// A smaller counter-rotating copy on top.
	d.Rotate(-t * 1.5)
	d.Scale(0.4, 0.4)
	d.Blend(sketchbook.BlendMultiply)
	d.Mesh(verts, inds)
	d.Pop()

	frame.Submit()
}
