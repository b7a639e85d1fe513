package sketchbook

import (
	"testing"
)

func newTestDraw(w, h int) (*Frame, *Draw) {
	f := newFrame()
	f.begin(0, w, h)
	return f, f.Draw()
}

func commandKinds(l *DisplayList) []CommandKind {
	kinds := make([]CommandKind, len(l.Commands))
	for i, c := range l.Commands {
		kinds[i] = c.Kind
	}
	return kinds
}

// --- Style ---

func TestDrawDefaultsFillThenStroke(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Rect(Rect{X: 10, Y: 10, Width: 20, Height: 20})

	l := f.DisplayList()
	if l.Len() != 2 {
		t.Fatalf("commands = %v, want fill and stroke", commandKinds(l))
	}
	fill, stroke := l.Commands[0], l.Commands[1]
	if fill.Kind != CommandFill || fill.Color != ColorWhite {
		t.Errorf("fill = %v %v, want white fill", fill.Kind, fill.Color)
	}
	if stroke.Kind != CommandStroke || stroke.Color != ColorBlack || stroke.Width != 1 || !stroke.Closed {
		t.Errorf("stroke = %v %v w=%v closed=%v, want closed black 1px stroke",
			stroke.Kind, stroke.Color, stroke.Width, stroke.Closed)
	}
	if len(fill.Indices) != 6 {
		t.Errorf("fill indices = %d, want 6", len(fill.Indices))
	}
}

func TestDrawNoStrokeNoFill(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.NoStroke()
	d.Rect(Rect{Width: 10, Height: 10})
	d.Line(V(0, 0), V(10, 10))
	if got := commandKinds(f.DisplayList()); len(got) != 1 || got[0] != CommandFill {
		t.Errorf("NoStroke: commands = %v, want [fill]", got)
	}

	f, d = newTestDraw(100, 100)
	d.NoFill()
	d.Circle(V(50, 50), 10)
	if got := commandKinds(f.DisplayList()); len(got) != 1 || got[0] != CommandStroke {
		t.Errorf("NoFill: commands = %v, want [stroke]", got)
	}
}

func TestDrawZeroWeightDisablesStroke(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.StrokeWeight(0)
	d.Line(V(0, 0), V(10, 10))
	if f.DisplayList().Len() != 0 {
		t.Error("zero stroke weight should draw nothing")
	}
}

func TestDrawBlendRecorded(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Blend(BlendAdd).NoStroke()
	d.Rect(Rect{Width: 10, Height: 10})
	if b := f.DisplayList().Commands[0].Blend; b != BlendAdd {
		t.Errorf("blend = %v, want add", b)
	}
}

func TestDrawPushPop(t *testing.T) {
	_, d := newTestDraw(100, 100)
	d.Push()
	d.Fill(ColorCrimson).StrokeWeight(5).Blend(BlendScreen)
	d.Translate(5, 5)
	d.Pop()

	if d.state.fill != ColorWhite || d.state.weight != 1 || d.state.blend != BlendNormal {
		t.Errorf("style not restored: %+v", d.state)
	}
	assertMatrix(t, "matrix", d.Transform(), Identity)
}

func TestDrawPopEmptyIsNoop(t *testing.T) {
	_, d := newTestDraw(100, 100)
	d.Translate(3, 4)
	d.Pop()
	assertMatrix(t, "matrix", d.Transform(), Translation(3, 4))
}

// --- Transforms ---

func TestDrawTranslateAppliesToPath(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.NoStroke()
	d.Translate(10, 20)
	d.Rect(Rect{Width: 5, Height: 5})
	cmd := f.DisplayList().Commands[0]
	assertVec(t, "path[0]", cmd.Path[0], V(10, 20))
	assertVec(t, "path[2]", cmd.Path[2], V(15, 25))
	if cmd.Vertices[2].X != 15 || cmd.Vertices[2].Y != 25 {
		t.Errorf("vertex[2] = %+v, want (15, 25)", cmd.Vertices[2])
	}
}

func TestDrawScaleScalesStrokeWeight(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Scale(2, 2)
	d.StrokeWeight(3)
	d.Line(V(0, 0), V(10, 0))
	cmd := f.DisplayList().Commands[0]
	assertNear(t, "width", cmd.Width, 6)
	assertVec(t, "end", cmd.Path[1], V(20, 0))
}

func TestDrawBackgroundIgnoresTransform(t *testing.T) {
	f, d := newTestDraw(320, 200)
	d.Translate(50, 50)
	d.Blend(BlendAdd)
	d.Background(ColorTeal)
	cmd := f.DisplayList().Commands[0]
	if cmd.Kind != CommandClear || cmd.Blend != BlendNone || cmd.Color != ColorTeal {
		t.Errorf("background = %v %v %v", cmd.Kind, cmd.Blend, cmd.Color)
	}
	assertVec(t, "corner", cmd.Path[2], V(320, 200))
}

// --- Shapes ---

func TestDrawEllipseResolution(t *testing.T) {
	tests := []struct {
		name       string
		resolution int
		radius     float64
		want       int
	}{
		{"fixed", 6, 50, 6},
		{"fixed minimum", 1, 50, 3},
		{"adaptive", 0, 100, 40},
		{"adaptive small", 0, 1, 12},
		{"adaptive large", 0, 5000, 128},
	}
	for _, tt := range tests {
		f, d := newTestDraw(100, 100)
		d.NoStroke().Resolution(tt.resolution)
		d.Circle(V(50, 50), tt.radius)
		if got := len(f.DisplayList().Commands[0].Path); got != tt.want {
			t.Errorf("%s: segments = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDrawEllipseZeroRadius(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Ellipse(V(10, 10), 0, 5)
	if f.DisplayList().Len() != 0 {
		t.Error("zero radius should draw nothing")
	}
}

func TestDrawConcavePolygon(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.NoStroke()
	l := []Vec2{{0, 0}, {20, 0}, {20, 10}, {10, 10}, {10, 20}, {0, 20}}
	d.Polygon(l)
	cmd := f.DisplayList().Commands[0]
	assertNear(t, "area", meshArea(cmd.Path, cmd.Indices), 300)
}

func TestDrawArrow(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Arrow(V(0, 0), V(50, 0), 10)
	got := commandKinds(f.DisplayList())
	if len(got) != 2 || got[0] != CommandStroke || got[1] != CommandFill {
		t.Fatalf("commands = %v, want [stroke fill]", got)
	}
	head := f.DisplayList().Commands[1]
	if head.Color != ColorBlack {
		t.Errorf("head color = %v, want stroke color", head.Color)
	}
	assertVec(t, "tip", head.Path[0], V(50, 0))

	f, d = newTestDraw(100, 100)
	d.Arrow(V(5, 5), V(5, 5), 10)
	if f.DisplayList().Len() != 0 {
		t.Error("zero-length arrow should draw nothing")
	}
}

// --- Meshes ---

func TestDrawMesh(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Translate(1, 2)
	verts := []Vertex{
		{X: 0, Y: 0, Color: ColorCrimson},
		{X: 10, Y: 0, Color: ColorGold},
		{X: 0, Y: 10, Color: ColorTeal},
	}
	d.Mesh(verts, []uint16{0, 1, 2})
	cmd := f.DisplayList().Commands[0]
	if cmd.Kind != CommandMesh {
		t.Fatalf("kind = %v, want mesh", cmd.Kind)
	}
	if cmd.Vertices[1].X != 11 || cmd.Vertices[1].Y != 2 || cmd.Vertices[1].Color != ColorGold {
		t.Errorf("vertex[1] = %+v", cmd.Vertices[1])
	}
	if verts[1].X != 10 {
		t.Error("Mesh modified the caller's vertices")
	}
}

func TestDrawMeshInvalidIndices(t *testing.T) {
	f, d := newTestDraw(100, 100)
	verts := []Vertex{{X: 0}, {X: 1}, {Y: 1}}
	d.Mesh(verts, []uint16{0, 1, 3})
	d.Mesh(verts, []uint16{0, 1})
	d.Mesh(nil, []uint16{0, 1, 2})
	if f.DisplayList().Len() != 0 {
		t.Errorf("invalid meshes recorded %d commands", f.DisplayList().Len())
	}
}

func TestDrawGrid(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Fill(ColorPlum)
	d.Grid(Rect{Width: 10, Height: 10}, 2, 2, nil)
	cmd := f.DisplayList().Commands[0]
	if len(cmd.Vertices) != 9 || len(cmd.Indices) != 24 {
		t.Fatalf("grid = %d verts, %d indices; want 9, 24", len(cmd.Vertices), len(cmd.Indices))
	}
	if cmd.Vertices[4].X != 5 || cmd.Vertices[4].Y != 5 || cmd.Vertices[4].Color != ColorPlum {
		t.Errorf("center vertex = %+v", cmd.Vertices[4])
	}
}

func TestDrawGridFunc(t *testing.T) {
	f, d := newTestDraw(100, 100)
	calls := 0
	d.Grid(Rect{Width: 30, Height: 20}, 3, 2, func(col, row int, rest Vec2) (Vec2, Color) {
		calls++
		return V(0, float64(col)), ColorGold
	})
	if calls != 12 {
		t.Errorf("calls = %d, want 12", calls)
	}
	v := f.DisplayList().Commands[0].Vertices[3]
	if v.X != 30 || v.Y != 3 {
		t.Errorf("vertex[3] = %+v, want (30, 3)", v)
	}
}

func TestDrawPolylineColored(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.NoStroke().StrokeWeight(4)
	pts := []Vec2{{0, 50}, {50, 50}, {100, 50}}
	d.PolylineColored(pts, []Color{ColorCrimson, ColorGold, ColorTeal})
	cmd := f.DisplayList().Commands[0]
	if cmd.Kind != CommandMesh || len(cmd.Vertices) != 6 || len(cmd.Indices) != 12 {
		t.Fatalf("polyline = %v with %d verts, %d indices", cmd.Kind, len(cmd.Vertices), len(cmd.Indices))
	}
	if cmd.Vertices[2].Color != ColorGold || cmd.Vertices[5].Color != ColorTeal {
		t.Errorf("colors = %v, %v", cmd.Vertices[2].Color, cmd.Vertices[5].Color)
	}
	assertNear(t, "offset edge", cmd.Vertices[0].Y, 52)

	d.PolylineColored(pts, []Color{ColorGold})
	if f.DisplayList().Len() != 1 {
		t.Error("mismatched colors should draw nothing")
	}
}

func TestDrawPolylineColoredRound(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.StrokeWeight(4).Join(JoinRound).Cap(CapRound)
	pts := []Vec2{{10, 50}, {50, 50}, {50, 90}}
	colors := []Color{ColorCrimson, ColorGold, ColorTeal}
	d.PolylineColored(pts, colors)
	cmd := f.DisplayList().Commands[0]
	if len(cmd.Vertices) <= 8 {
		t.Fatalf("%d verts, want quads plus join and cap fans", len(cmd.Vertices))
	}
	// Every vertex takes the color of the point it was built around.
	for i, v := range cmd.Vertices {
		nearest := 0
		for j, p := range pts {
			if V(v.X, v.Y).Sub(p).Len() < V(v.X, v.Y).Sub(pts[nearest]).Len() {
				nearest = j
			}
		}
		if v.Color != colors[nearest] {
			t.Errorf("vertex %d at (%v, %v) = %v, want %v", i, v.X, v.Y, v.Color, colors[nearest])
		}
	}
}

func TestDrawStrokeJoinAndCapRecorded(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Join(JoinRound).Cap(CapRound).StrokeWeight(6)
	d.Line(V(10, 10), V(90, 10))
	cmd := f.DisplayList().Commands[0]
	if cmd.Join != JoinRound || cmd.Cap != CapRound {
		t.Errorf("join, cap = %v, %v", cmd.Join, cmd.Cap)
	}
	minX := cmd.Vertices[0].X
	for _, v := range cmd.Vertices {
		minX = min(minX, v.X)
	}
	if minX > 7.1 {
		t.Errorf("round cap should reach x=7, got %v", minX)
	}
}

func TestDrawPolygonColored(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.NoStroke()
	d.Translate(10, 0)
	pts := []Vec2{{0, 0}, {40, 0}, {40, 40}, {0, 40}}
	colors := []Color{ColorCrimson, ColorGold, ColorTeal, ColorPlum}
	d.PolygonColored(pts, colors)
	l := f.DisplayList()
	if l.Len() != 1 {
		t.Fatalf("commands = %v", commandKinds(l))
	}
	cmd := l.Commands[0]
	if cmd.Kind != CommandMesh || len(cmd.Indices) != 6 {
		t.Fatalf("polygon = %v with %d indices", cmd.Kind, len(cmd.Indices))
	}
	for i, v := range cmd.Vertices {
		if v.Color != colors[i] || v.X != pts[i].X+10 {
			t.Errorf("vertex %d = %+v", i, v)
		}
	}

	d.Stroke(ColorBlack)
	d.PolygonColored(pts, colors)
	if got := commandKinds(l); len(got) != 3 || got[2] != CommandStroke {
		t.Errorf("with stroke: %v, want mesh then stroke", got)
	}

	d.PolygonColored(pts, colors[:2])
	if l.Len() != 3 {
		t.Error("mismatched colors should draw nothing")
	}
}

func TestDrawText(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Fill(ColorGold)
	d.Translate(5, 5)
	d.Scale(2, 2)
	d.Text("hello", V(10, 10), 12)
	d.Text("", V(0, 0), 12)
	d.NoFill()
	d.Text("hidden", V(0, 0), 12)

	l := f.DisplayList()
	if l.Len() != 1 {
		t.Fatalf("commands = %v, want one text", commandKinds(l))
	}
	cmd := l.Commands[0]
	if cmd.Kind != CommandText || cmd.Text != "hello" || cmd.Color != ColorGold {
		t.Errorf("text = %+v", cmd)
	}
	assertVec(t, "origin", cmd.Path[0], V(25, 25))
	assertNear(t, "size", cmd.Size, 24)
}
