// Package sketchbook is a small creative-coding layer over [Ebitengine].
//
// A sketch pairs a model built once, an update step run every tick and a
// view run every frame. The view receives a [Frame] whose [Draw] records
// shapes into a display list; sketchbook tessellates every shape into
// triangles and submits them to the screen in as few DrawTriangles calls as
// the blend modes allow.
//
// # Quick start
//
//	type model struct{}
//
//	var bounce = &sketchbook.Sketch[model]{
//		Name: "bounce",
//		View: func(app *sketchbook.App, _ *model, f *sketchbook.Frame) {
//			d := f.Draw()
//			d.Background(sketchbook.ColorSlate)
//			d.NoStroke().Fill(sketchbook.ColorPlum)
//			d.Circle(app.Mouse().Pos(), 40+10*math.Sin(app.Time()))
//			f.Submit()
//		},
//	}
//
//	func main() {
//		if err := bounce.Run(sketchbook.RunConfig{ShowFPS: true}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Coordinates
//
// The origin is the top-left corner of the window with Y increasing
// downward, the same as Ebitengine. [App.Mouse] uses the same space.
//
// # Headless rendering
//
// [Sketch.Record] runs a sketch at a fixed rate without a window and returns
// each frame's [DisplayList]. The export package turns those lists into PNG
// or SVG files.
//
// # Scripts
//
// A [Script] replays mouse moves, presses, glides, waits, screenshots and
// quit from JSON, both in windowed runs and in recordings:
//
//	{"steps": [
//		{"action": "glide", "fromX": 0, "fromY": 240, "toX": 640, "toY": 240, "frames": 120},
//		{"action": "screenshot", "label": "end"},
//		{"action": "quit"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
package sketchbook
