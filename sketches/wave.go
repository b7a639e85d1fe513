package sketches

import (
	"math"

	"github.com/phanxgames/sketchbook"
)

const (
	wavePoints = 10
	waveWeight = 8
)

type waveModel struct{}

// Wave draws a thick round-joined polyline sampling a sine wave, with a
// color per vertex that cycles over time. Mouse X raises the wave frequency
// steeply.
func Wave() *sketchbook.Sketch[waveModel] {
	return &sketchbook.Sketch[waveModel]{
		Name:   "wave",
		Title:  "Sketchbook - Wave",
		Width:  screenW,
		Height: screenH,
		View:   waveView,
	}
}

// WaveHz maps a mouse X position to the wave frequency: quartic in the
// normalised position, up to 1000 at the right edge.
func WaveHz(mouseX, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return math.Pow(sketchbook.Clamp(mouseX/width, 0, 1), 4) * 1000
}

func waveView(app *sketchbook.App, _ *waveModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	win := app.Window()
	t := app.Time()

	d.Background(sketchbook.ColorBlack)

	hz := WaveHz(app.Mouse().X, win.Width)
	top, bottom := win.Height*0.125, win.Height*0.875
	points := make([]sketchbook.Vec2, wavePoints)
	colors := make([]sketchbook.Color, wavePoints)
	for i := range wavePoints {
		f := float64(i) / wavePoints
		amp := math.Sin(t + f*hz*2*math.Pi)
		points[i] = sketchbook.V(
			sketchbook.MapRange(float64(i), 0, wavePoints-1, 0, win.Width),
			sketchbook.MapRange(amp, -1, 1, bottom, top),
		)
		colors[i] = sketchbook.RGB(
			math.Mod(t+f, 1),
			math.Mod(t+1-f, 1),
			math.Mod(t+0.5+f, 1),
		)
	}
	d.StrokeWeight(waveWeight).Join(sketchbook.JoinRound)
	d.PolylineColored(points, colors)

	frame.Submit()
}
