package sketches

import (
	"math"

	"github.com/phanxgames/sketchbook"
)

// sineMaxHz is the frequency at the right edge of the window.
const sineMaxHz = 100

type sineMeshModel struct{}

// SineMesh fills the area between a sine wave and the window's center line
// with a mesh of one-pixel columns. Mouse X sets the frequency (0 to 100
// cycles across the window), the mouse's height above the center sets the
// amplitude. Vertices shade from cyan on the center line to red at the
// window's top or bottom edge.
func SineMesh() *sketchbook.Sketch[sineMeshModel] {
	return &sketchbook.Sketch[sineMeshModel]{
		Name:   "sinemesh",
		Title:  "Sketchbook - Sine Mesh",
		Width:  screenW,
		Height: screenH,
		View:   sineMeshView,
	}
}

// SineColor shades a vertex dy pixels from the center line of a window
// whose half height is half: (f, 1-f, 1-f) with f = |dy|/half.
func SineColor(dy, half float64) sketchbook.Color {
	f := 0.0
	if half > 0 {
		f = sketchbook.Clamp(math.Abs(dy)/half, 0, 1)
	}
	return sketchbook.RGB(f, 1-f, 1-f)
}

// SineStrip builds the column mesh for a window of the given size. For
// each of the width columns it emits a vertex on the wave and one on the
// center line; neighbouring columns form a quad. Coordinates are window
// pixels.
func SineStrip(width, height int, t, hz, amp float64) ([]sketchbook.Vertex, []uint16) {
	if width < 2 || height <= 0 {
		return nil, nil
	}
	w := float64(width)
	mid := float64(height) / 2
	verts := make([]sketchbook.Vertex, 0, width*2)
	for i := range width {
		x := float64(i)
		dy := math.Sin(t*hz+x/w*hz*2*math.Pi) * amp
		verts = append(verts,
			sketchbook.Vertex{X: x, Y: mid - dy, Color: SineColor(dy, mid)},
			sketchbook.Vertex{X: x, Y: mid, Color: SineColor(0, mid)},
		)
	}
	inds := make([]uint16, 0, (width-1)*6)
	for i := 0; i < width-1; i++ {
		a, d := uint16(i*2), uint16(i*2+1)
		b, c := a+2, d+2
		inds = append(inds, a, b, c, a, c, d)
	}
	return verts, inds
}

func sineMeshView(app *sketchbook.App, _ *sineMeshModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	win := app.Window()
	m := app.Mouse()

	d.Background(sketchbook.ColorBlack)

	hz := sketchbook.MapRange(m.X, 0, win.Width, 0, sineMaxHz)
	amp := win.Height/2 - m.Y
	d.Mesh(SineStrip(int(win.Width), int(win.Height), app.Time(), hz, amp))

	frame.Submit()
}
