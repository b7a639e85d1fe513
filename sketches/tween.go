package sketches

import (
	"github.com/phanxgames/sketchbook"
	"github.com/tanema/gween/ease"
)

// tweenTracks holds one easing curve per lane.
var tweenTracks = [...]ease.TweenFunc{
	ease.Linear,
	ease.InOutQuad,
	ease.InOutCubic,
	ease.OutBounce,
	ease.OutElastic,
	ease.InOutBack,
}

const (
	tweenPeriod = 2.0
	tweenMargin = 60.0
)

type tweenModel struct{}

// Tween moves one dot per easing curve back and forth along its own lane.
// The horizontal mouse position scrubs the playback speed.
func Tween() *sketchbook.Sketch[tweenModel] {
	return &sketchbook.Sketch[tweenModel]{
		Name:   "tween",
		Title:  "Sketchbook - Tween",
		Width:  screenW,
		Height: screenH,
		View:   tweenView,
	}
}

func tweenView(app *sketchbook.App, _ *tweenModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	win := app.Window()

	d.Background(sketchbook.ColorSlate)

	speed := sketchbook.Clamp(sketchbook.MapRange(app.Mouse().X, 0, win.Width, 0.25, 2), 0.25, 2)
	t := app.Time() * speed
	laneH := win.Height / float64(len(tweenTracks)+1)

	for i, fn := range tweenTracks {
		y := laneH * float64(i+1)
		d.Stroke(sketchbook.ColorIvory.WithAlpha(0.3)).StrokeWeight(2)
		d.Line(sketchbook.V(tweenMargin, y), sketchbook.V(win.Width-tweenMargin, y))

		loop := sketchbook.Loop{From: tweenMargin, To: win.Width - tweenMargin, Period: tweenPeriod, Ease: fn, PingPong: true}
		d.NoStroke().Fill(sketchbook.HSL(float64(i)/float64(len(tweenTracks)), 0.65, 0.6))
		d.Circle(sketchbook.V(loop.At(t), y), 12)
	}

	frame.Submit()
}
