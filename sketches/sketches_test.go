package sketches

import (
	"errors"
	"math"
	"testing"

	"github.com/phanxgames/sketchbook"
)

func record(t *testing.T, e sketchbook.Entry, frames int, mouse sketchbook.Mouse) []sketchbook.RecordedFrame {
	t.Helper()
	out, err := e.Record(sketchbook.RecordConfig{Frames: frames, Mouse: mouse})
	if err != nil {
		t.Fatalf("record %s: %v", e.SketchName(), err)
	}
	if len(out) != frames {
		t.Fatalf("record %s: %d frames, want %d", e.SketchName(), len(out), frames)
	}
	return out
}

func countKind(l *sketchbook.DisplayList, k sketchbook.CommandKind) int {
	n := 0
	for _, c := range l.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

var center = sketchbook.Mouse{X: screenW / 2, Y: screenH / 2}

// --- Registry ---

func TestNames(t *testing.T) {
	want := []string{
		"shapes", "polygon", "ellipse", "lines", "arrows", "wave",
		"mesh", "blend", "circles", "sinemesh", "ripple", "tween",
	}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		e, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
			continue
		}
		if e.SketchName() != name || e.SketchTitle() == "" {
			t.Errorf("Lookup(%q) = %q titled %q", name, e.SketchName(), e.SketchTitle())
		}
	}
	if _, err := Lookup("nope"); !errors.Is(err, ErrUnknownSketch) {
		t.Errorf("Lookup(nope) err = %v, want ErrUnknownSketch", err)
	}
}

func TestEverySketchRecords(t *testing.T) {
	for _, e := range All() {
		for i, rf := range record(t, e, 5, center) {
			l := rf.List
			if l.Width != screenW || l.Height != screenH {
				t.Errorf("%s frame %d: size %dx%d", e.SketchName(), i, l.Width, l.Height)
			}
			if l.Len() < 2 {
				t.Errorf("%s frame %d: %d commands", e.SketchName(), i, l.Len())
				continue
			}
			if l.Commands[0].Kind != sketchbook.CommandClear {
				t.Errorf("%s frame %d: first command is %v, want clear", e.SketchName(), i, l.Commands[0].Kind)
			}
			if l.Stats().Triangles == 0 {
				t.Errorf("%s frame %d: no triangles", e.SketchName(), i)
			}
		}
	}
}

func TestSketchesAnimate(t *testing.T) {
	// arrows and circles depend only on the mouse.
	static := map[string]bool{"arrows": true, "circles": true}
	for _, e := range All() {
		if static[e.SketchName()] {
			continue
		}
		mouse := center
		if e.SketchName() == "sinemesh" {
			// The wave is flat with the mouse on the center line.
			mouse.Y = 100
		}
		frames := record(t, e, 30, mouse)
		first, last := frames[0].List, frames[len(frames)-1].List
		if sameGeometry(first, last) {
			t.Errorf("%s: frame 0 and frame 29 are identical", e.SketchName())
		}
	}
}

func sameGeometry(a, b *sketchbook.DisplayList) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Commands {
		va, vb := a.Commands[i].Vertices, b.Commands[i].Vertices
		if len(va) != len(vb) {
			return false
		}
		for j := range va {
			if va[j] != vb[j] {
				return false
			}
		}
	}
	return true
}

// --- Shapes, arrows and wave ---

func TestShapesDrawsEveryPrimitive(t *testing.T) {
	// Off center so the rect has width; t > 0 so the ellipse has a radius.
	l := record(t, Shapes(), 10, sketchbook.Mouse{X: 400, Y: 100})[9].List
	if got := countKind(l, sketchbook.CommandFill); got != 4 {
		t.Errorf("fills = %d, want 4 (tri, ellipse, quad, rect)", got)
	}
	if got := countKind(l, sketchbook.CommandStroke); got != 1 {
		t.Fatalf("strokes = %d, want 1 (line)", got)
	}
	for _, c := range l.Commands {
		if c.Kind == sketchbook.CommandStroke && c.Cap != sketchbook.CapRound {
			t.Errorf("line cap = %v, want round", c.Cap)
		}
	}
}

func TestArrowsPointAtMouse(t *testing.T) {
	m := sketchbook.Mouse{X: 600, Y: 50}
	l := record(t, Arrows(), 1, m)[0].List
	if got := l.Len(); got != 1+arrowsGrid*arrowsGrid*2 {
		t.Fatalf("commands = %d, want %d", got, 1+arrowsGrid*arrowsGrid*2)
	}
	side := math.Min(screenW/arrowsGrid, screenH/arrowsGrid)
	for i := 1; i < l.Len(); i += 2 {
		shaft, head := l.Commands[i], l.Commands[i+1]
		start, tip := shaft.Path[0], head.Path[0]
		if d := tip.Sub(start).Len(); d > side*0.5+1e-9 {
			t.Fatalf("arrow %d is %v long, want <= %v", i/2, d, side*0.5)
		}
		// The tip lies on the segment from the cell center to the mouse.
		toMouse, toTip := m.Pos().Sub(start), tip.Sub(start)
		if cross := toMouse.X*toTip.Y - toMouse.Y*toTip.X; math.Abs(cross) > 1e-6*toMouse.Len() {
			t.Fatalf("arrow %d does not point at the mouse", i/2)
		}
	}
}

func TestArrowsRepelWhilePressed(t *testing.T) {
	m := sketchbook.Mouse{X: 600, Y: 50, Buttons: sketchbook.MouseLeft}
	l := record(t, Arrows(), 1, m)[0].List
	for i := 1; i < l.Len(); i += 2 {
		shaft, head := l.Commands[i], l.Commands[i+1]
		if shaft.Color != sketchbook.ColorGold {
			t.Fatalf("arrow %d color = %v, want gold", i/2, shaft.Color)
		}
		start, tip := shaft.Path[0], head.Path[0]
		toMouse, toTip := m.Pos().Sub(start), tip.Sub(start)
		if toMouse.X*toTip.X+toMouse.Y*toTip.Y >= 0 {
			t.Fatalf("arrow %d points toward the mouse", i/2)
		}
	}
}

func TestWaveHz(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{screenW / 2, 62.5},
		{screenW, 1000},
		{screenW * 2, 1000},
	}
	for _, tt := range tests {
		if got := WaveHz(tt.x, screenW); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WaveHz(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestWaveColoredPolyline(t *testing.T) {
	l := record(t, Wave(), 1, center)[0].List
	if l.Len() != 2 || l.Commands[1].Kind != sketchbook.CommandMesh {
		t.Fatalf("commands = %d, want background and one mesh", l.Len())
	}
	// Round joins give every segment its own quad plus corner fans.
	if got := len(l.Commands[1].Vertices); got < (wavePoints-1)*4 {
		t.Errorf("vertices = %d, want at least %d", got, (wavePoints-1)*4)
	}
}

// --- Polygon ---

func TestPolygonPair(t *testing.T) {
	l := record(t, Polygon(), 1, center)[0].List
	want := []sketchbook.CommandKind{sketchbook.CommandClear, sketchbook.CommandFill, sketchbook.CommandStroke, sketchbook.CommandMesh}
	if l.Len() != len(want) {
		t.Fatalf("commands = %d, want %d", l.Len(), len(want))
	}
	for i, k := range want {
		if l.Commands[i].Kind != k {
			t.Errorf("command %d = %v, want %v", i, l.Commands[i].Kind, k)
		}
	}

	pentagon, outline, heptagon := l.Commands[1], l.Commands[2], l.Commands[3]
	if len(pentagon.Path) != pentagonPoints || pentagon.Color != sketchbook.ColorWhite {
		t.Errorf("pentagon = %d points in %v", len(pentagon.Path), pentagon.Color)
	}
	if outline.Color != polygonPink || math.Abs(outline.Width-pentagonWeight) > 1e-9 || outline.Join != sketchbook.JoinRound {
		t.Errorf("outline = %v width %v join %v", outline.Color, outline.Width, outline.Join)
	}
	if pentagon.Path[0].X > screenW/2 || heptagon.Vertices[0].X < screenW/2 {
		t.Error("pentagon should sit left of center and heptagon right")
	}
	colors := HeptagonColors()
	if len(heptagon.Vertices) != heptagonPoints {
		t.Fatalf("heptagon = %d verts", len(heptagon.Vertices))
	}
	for i, v := range heptagon.Vertices {
		if v.Color != colors[i] {
			t.Errorf("heptagon vertex %d = %v, want %v", i, v.Color, colors[i])
		}
	}
}

func TestHeptagonColors(t *testing.T) {
	colors := HeptagonColors()
	if colors[0] != sketchbook.RGB(0, 1, 0.5) {
		t.Errorf("first = %v", colors[0])
	}
	last := colors[heptagonPoints-1]
	f := 6.0 / 7
	if math.Abs(last.R-f) > 1e-12 || math.Abs(last.G-(1-f)) > 1e-12 || math.Abs(last.B-(f-0.5)) > 1e-12 {
		t.Errorf("last = %v", last)
	}
}

// --- Ellipse and lines ---

func TestEllipseCommandCount(t *testing.T) {
	l := record(t, Ellipse(), 1, center)[0].List
	if got := countKind(l, sketchbook.CommandFill); got != ellipseCount+1 {
		t.Errorf("fills = %d, want %d", got, ellipseCount+1)
	}
	if got := countKind(l, sketchbook.CommandStroke); got != 1 {
		t.Errorf("strokes = %d, want 1", got)
	}
}

func TestLinesArrowFollowsMouse(t *testing.T) {
	l := record(t, Lines(), 1, center)[0].List
	if got := l.Len(); got != 1+lineSpokes+1 {
		t.Errorf("mouse at center: %d commands, want %d", got, 1+lineSpokes+1)
	}
	l = record(t, Lines(), 1, sketchbook.Mouse{X: 10, Y: 10})[0].List
	if got := l.Len(); got != 1+lineSpokes+1+2 {
		t.Errorf("mouse off center: %d commands, want %d", got, 1+lineSpokes+3)
	}
	head := l.Commands[l.Len()-1]
	if head.Kind != sketchbook.CommandFill || head.Path[0] != (sketchbook.Vec2{X: 10, Y: 10}) {
		t.Errorf("arrow head = %v at %v", head.Kind, head.Path)
	}
}

// --- Meshes ---

func TestMeshLayers(t *testing.T) {
	l := record(t, Mesh(), 1, center)[0].List
	if got := countKind(l, sketchbook.CommandMesh); got != 2 {
		t.Fatalf("meshes = %d, want 2", got)
	}
	top := l.Commands[l.Len()-1]
	if top.Blend != sketchbook.BlendMultiply {
		t.Errorf("top blend = %v, want multiply", top.Blend)
	}
	if len(top.Vertices) != meshSegments+1 || len(top.Indices) != meshSegments*3 {
		t.Errorf("wheel = %d verts, %d indices", len(top.Vertices), len(top.Indices))
	}
}

func TestWheelMeshIndicesInRange(t *testing.T) {
	verts, inds := wheelMesh(10, 0)
	for _, i := range inds {
		if int(i) >= len(verts) {
			t.Fatalf("index %d out of range (%d verts)", i, len(verts))
		}
	}
	if verts[0].Color != sketchbook.ColorWhite {
		t.Errorf("hub color = %v, want white", verts[0].Color)
	}
}

func TestSineStrip(t *testing.T) {
	const w, h = 64, 40
	verts, inds := SineStrip(w, h, 0, 1, 20)
	if len(verts) != w*2 || len(inds) != (w-1)*6 {
		t.Fatalf("strip = %d verts, %d indices", len(verts), len(inds))
	}
	for _, i := range inds {
		if int(i) >= len(verts) {
			t.Fatalf("index %d out of range", i)
		}
	}
	// One cycle across the strip: the wave peaks a quarter of the way in.
	peak := verts[(w/4)*2]
	if math.Abs(peak.Y) > 1e-9 {
		t.Errorf("peak y = %v, want 0 (20 above the center line)", peak.Y)
	}
	if peak.Color != sketchbook.RGB(1, 0, 0) {
		t.Errorf("peak color = %v, want red", peak.Color)
	}
	base := verts[(w/4)*2+1]
	if base.Y != h/2 || base.Color != sketchbook.RGB(0, 1, 1) {
		t.Errorf("center vertex = %+v, want cyan on y=%d", base, h/2)
	}
}

func TestSineColor(t *testing.T) {
	tests := []struct {
		dy   float64
		want sketchbook.Color
	}{
		{0, sketchbook.RGB(0, 1, 1)},
		{-120, sketchbook.RGB(0.5, 0.5, 0.5)},
		{240, sketchbook.RGB(1, 0, 0)},
		{500, sketchbook.RGB(1, 0, 0)},
	}
	for _, tt := range tests {
		if got := SineColor(tt.dy, 240); got != tt.want {
			t.Errorf("SineColor(%v) = %v, want %v", tt.dy, got, tt.want)
		}
	}
}

func TestSineMeshFollowsMouse(t *testing.T) {
	l := record(t, SineMesh(), 1, sketchbook.Mouse{X: 0, Y: 40})[0].List
	if l.Len() != 2 {
		t.Fatalf("commands = %d, want 2", l.Len())
	}
	// Zero frequency leaves the wave at sin(0) = 0 everywhere.
	for i, v := range l.Commands[1].Vertices {
		if v.Y != screenH/2 {
			t.Fatalf("vertex %d y = %v, want %v", i, v.Y, screenH/2)
		}
	}
	l = record(t, SineMesh(), 1, sketchbook.Mouse{X: screenW, Y: 40})[0].List
	maxDy := 0.0
	for _, v := range l.Commands[1].Vertices {
		maxDy = max(maxDy, math.Abs(v.Y-screenH/2))
	}
	if maxDy > 200+1e-9 || maxDy < 190 {
		t.Errorf("max amplitude = %v, want about 200", maxDy)
	}
}

func TestRippleGrid(t *testing.T) {
	l := record(t, Ripple(), 1, center)[0].List
	if l.Len() != 2 {
		t.Fatalf("commands = %d, want 2", l.Len())
	}
	grid := l.Commands[1]
	if len(grid.Vertices) != (rippleCols+1)*(rippleRows+1) || len(grid.Indices) != rippleCols*rippleRows*6 {
		t.Errorf("grid = %d verts, %d indices", len(grid.Vertices), len(grid.Indices))
	}
}

func TestRippleHeightBounds(t *testing.T) {
	for x := 0.0; x <= screenW; x += 37 {
		for y := 0.0; y <= screenH; y += 29 {
			if v := RippleHeight(x, y, x*0.01); math.Abs(v) > 1.4+1e-9 {
				t.Fatalf("RippleHeight(%v, %v) = %v, outside [-1.4, 1.4]", x, y, v)
			}
		}
	}
	want := 0.4 * math.Sin(1.2)
	if got := RippleHeight(0, 0, 0); math.Abs(got-want) > 1e-12 {
		t.Errorf("RippleHeight(0, 0, 0) = %v, want %v", got, want)
	}
}

// --- Blend ---

func TestBlendChoice(t *testing.T) {
	tests := []struct {
		y    float64
		want sketchbook.BlendMode
	}{
		{-10, sketchbook.BlendNormal},
		{0, sketchbook.BlendNormal},
		{screenH / 6 * 1.5, sketchbook.BlendAdd},
		{screenH / 6 * 2.5, sketchbook.BlendSubtract},
		{screenH / 6 * 3.5, sketchbook.BlendReverseSubtract},
		{screenH / 6 * 4.5, sketchbook.BlendDarken},
		{screenH, sketchbook.BlendLighten},
	}
	for _, tt := range tests {
		if got := BlendChoice(tt.y, screenH); got != tt.want {
			t.Errorf("BlendChoice(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestBlendTriads(t *testing.T) {
	m := sketchbook.Mouse{X: screenW / 4, Y: screenH - 1}
	l := record(t, Blend(), 1, m)[0].List
	if got := countKind(l, sketchbook.CommandText); got != 2 {
		t.Fatalf("texts = %d, want name and formula", got)
	}
	if got := countKind(l, sketchbook.CommandFill); got != blendTriad*blendTriad {
		t.Fatalf("circles = %d, want %d", got, blendTriad*blendTriad)
	}
	bg := l.Commands[0].Color
	if math.Abs(bg.R-0.25) > 1e-12 || bg.R != bg.G || bg.G != bg.B {
		t.Errorf("background = %v, want grey 0.25", bg)
	}
	for _, c := range l.Commands {
		switch c.Kind {
		case sketchbook.CommandText:
			if c.Blend != sketchbook.BlendNormal || c.Color != sketchbook.ColorWhite {
				t.Errorf("label %q: blend %v color %v", c.Text, c.Blend, c.Color)
			}
		case sketchbook.CommandFill:
			if c.Blend != sketchbook.BlendLighten {
				t.Errorf("circle blend = %v, want lighten", c.Blend)
			}
		}
	}
	if l.Commands[1].Text != "LIGHTEN" {
		t.Errorf("title = %q, want LIGHTEN", l.Commands[1].Text)
	}
}

// --- Circles ---

func TestCirclesDepth(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{0, circlesMinDepth},
		{-100, circlesMinDepth},
		{screenW / 2, 4},
		{screenW, circlesMaxDepth},
		{screenW * 2, circlesMaxDepth},
	}
	for _, tt := range tests {
		if got := CirclesDepth(tt.x, screenW); got != tt.want {
			t.Errorf("CirclesDepth(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestCirclesRecursion(t *testing.T) {
	tests := []struct {
		x       float64
		circles int
	}{
		{0, 1},          // depth 1: the root only
		{107, 5},        // depth 2: root plus four children
		{screenW, 1365}, // radius 240 halves down to 7.5 over six levels
	}
	for _, tt := range tests {
		l := record(t, Circles(), 1, sketchbook.Mouse{X: tt.x})[0].List
		if got := countKind(l, sketchbook.CommandStroke); got != tt.circles {
			t.Errorf("x=%v: circles = %d, want %d", tt.x, got, tt.circles)
		}
		if got := countKind(l, sketchbook.CommandFill); got != tt.circles {
			t.Errorf("x=%v: fills = %d, want %d", tt.x, got, tt.circles)
		}
	}
}

func TestCirclesChildrenOneRadiusAway(t *testing.T) {
	l := record(t, Circles(), 1, sketchbook.Mouse{X: 107})[0].List
	// Background, then fill and stroke per circle: root first, then right,
	// left, below, above.
	root := l.Commands[1].Path
	rootR := (root[0].X - root[len(root)/2].X) / 2
	rootC := sketchbook.V(root[0].X-rootR, root[0].Y)
	want := []sketchbook.Vec2{
		{X: rootC.X + rootR, Y: rootC.Y},
		{X: rootC.X - rootR, Y: rootC.Y},
		{X: rootC.X, Y: rootC.Y + rootR},
		{X: rootC.X, Y: rootC.Y - rootR},
	}
	for i, c := range want {
		child := l.Commands[3+i*2].Path
		r := (child[0].X - child[len(child)/2].X) / 2
		if math.Abs(r-rootR/2) > 1e-9 {
			t.Errorf("child %d radius = %v, want %v", i, r, rootR/2)
		}
		got := sketchbook.V(child[0].X-r, child[0].Y)
		if got.Sub(c).Len() > 1e-9 {
			t.Errorf("child %d center = %v, want %v", i, got, c)
		}
	}
}

func TestCircleColor(t *testing.T) {
	if c := CircleColor(360); math.Abs(c.A-1) > 1e-12 {
		t.Errorf("alpha at 360 = %v, want 1", c.A)
	}
	if c := CircleColor(181); math.Abs(c.A-0.5) > 1e-12 {
		t.Errorf("alpha at 181 = %v, want 0.5", c.A)
	}
	if c := CircleColor(2); c.A != 0 {
		t.Errorf("alpha at 2 = %v, want 0", c.A)
	}
}
