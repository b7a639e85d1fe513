package sketchbook

import "math"

// maxCommandVertices is the largest vertex count a single command may hold;
// indices are uint16.
const maxCommandVertices = math.MaxUint16 + 1

// drawState is the part of Draw saved and restored by Push and Pop.
type drawState struct {
	fill       Color
	stroke     Color
	weight     float64
	blend      BlendMode
	resolution int
	join       JoinMode
	caps       CapMode
	matrix     Affine
}

// Draw is an immediate-mode drawing context that records commands into a
// frame's DisplayList. Defaults: white fill, black 1px stroke, normal blend,
// adaptive ellipse resolution, miter joins, butt caps, identity transform.
//
// Draw is not safe for concurrent use.
type Draw struct {
	list  *DisplayList
	state drawState
	stack []drawState
}

func newDraw(list *DisplayList) *Draw {
	d := &Draw{list: list}
	d.reset()
	return d
}

func (d *Draw) reset() {
	d.state = drawState{
		fill:   ColorWhite,
		stroke: ColorBlack,
		weight: 1,
		matrix: Identity,
	}
	d.stack = d.stack[:0]
}

// --- State ---

// Fill sets the fill color for subsequent shapes.
func (d *Draw) Fill(c Color) *Draw { d.state.fill = c; return d }

// NoFill disables filling.
func (d *Draw) NoFill() *Draw { d.state.fill = ColorTransparent; return d }

// Stroke sets the stroke color for subsequent shapes and lines.
func (d *Draw) Stroke(c Color) *Draw { d.state.stroke = c; return d }

// NoStroke disables outlines. Lines and polylines draw nothing until a
// stroke color is set again.
func (d *Draw) NoStroke() *Draw { d.state.stroke = ColorTransparent; return d }

// StrokeWeight sets the stroke width in local units. Values <= 0 disable
// strokes.
func (d *Draw) StrokeWeight(w float64) *Draw { d.state.weight = w; return d }

// Blend sets the blend mode for subsequent commands.
func (d *Draw) Blend(mode BlendMode) *Draw { d.state.blend = mode; return d }

// Resolution sets the segment count for ellipses. Values <= 0 select a
// resolution from the on-screen radius.
func (d *Draw) Resolution(segments int) *Draw { d.state.resolution = segments; return d }

// Join sets the stroke join mode.
func (d *Draw) Join(j JoinMode) *Draw { d.state.join = j; return d }

// Cap sets how open strokes end.
func (d *Draw) Cap(c CapMode) *Draw { d.state.caps = c; return d }

// Push saves the current style and transform.
func (d *Draw) Push() { d.stack = append(d.stack, d.state) }

// Pop restores the most recently pushed state. Pop on an empty stack is a
// no-op.
func (d *Draw) Pop() {
	if len(d.stack) == 0 {
		return
	}
	d.state = d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
}

// Translate moves the origin by (x, y) in the current local space.
func (d *Draw) Translate(x, y float64) { d.state.matrix = d.state.matrix.Mul(Translation(x, y)) }

// Rotate rotates the local space by angle radians.
func (d *Draw) Rotate(angle float64) { d.state.matrix = d.state.matrix.Mul(Rotation(angle)) }

// Scale scales the local space.
func (d *Draw) Scale(sx, sy float64) { d.state.matrix = d.state.matrix.Mul(Scaling(sx, sy)) }

// Transform returns the current local-to-screen matrix.
func (d *Draw) Transform() Affine { return d.state.matrix }

// --- Primitives ---

// Background fills the whole frame with c, ignoring the transform and blend
// mode.
func (d *Draw) Background(c Color) {
	w, h := float64(d.list.Width), float64(d.list.Height)
	d.list.Commands = append(d.list.Commands, Command{
		Kind:  CommandClear,
		Blend: BlendNone,
		Color: c,
		Path:  []Vec2{{0, 0}, {w, 0}, {w, h}, {0, h}},
	})
}

// Ellipse draws an ellipse centered at c with radii rx and ry.
func (d *Draw) Ellipse(c Vec2, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	d.shape(EllipsePoints(c, rx, ry, d.segmentsFor(max(rx, ry))))
}

// Circle draws a circle centered at c.
func (d *Draw) Circle(c Vec2, r float64) {
	d.Ellipse(c, r, r)
}

// Rect draws an axis-aligned (in local space) rectangle.
func (d *Draw) Rect(r Rect) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	d.shape([]Vec2{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	})
}

// Quad draws a four-sided polygon.
func (d *Draw) Quad(a, b, c, e Vec2) {
	d.shape([]Vec2{a, b, c, e})
}

// Tri draws a triangle.
func (d *Draw) Tri(a, b, c Vec2) {
	d.shape([]Vec2{a, b, c})
}

// Polygon draws a closed simple polygon, convex or concave. Fewer than 3
// points draws nothing.
func (d *Draw) Polygon(points []Vec2) {
	d.shape(points)
}

// PolygonColored fills a closed simple polygon with one color per point,
// blended across the interior, then outlines it with the current stroke.
// The fill is recorded as a mesh.
func (d *Draw) PolygonColored(points []Vec2, colors []Color) {
	if len(points) != len(colors) || len(points) < 3 || len(points) > maxCommandVertices {
		return
	}
	world := d.toWorld(points)
	inds := Triangulate(world)
	if len(inds) > 0 {
		verts := make([]Vertex, len(world))
		for i, p := range world {
			verts[i] = Vertex{X: p.X, Y: p.Y, Color: colors[i]}
		}
		d.list.Commands = append(d.list.Commands, Command{
			Kind:     CommandMesh,
			Blend:    d.state.blend,
			Vertices: verts,
			Indices:  inds,
		})
	}
	d.strokePath(points, true)
}

// Text draws s in the fill color with the top-left of its first line at p.
// size is the font size in local units. The transform moves and scales the
// text but does not rotate it.
func (d *Draw) Text(s string, p Vec2, size float64) {
	if s == "" || size <= 0 || d.state.fill.Transparent() {
		return
	}
	m := d.state.matrix
	d.list.Commands = append(d.list.Commands, Command{
		Kind:  CommandText,
		Blend: d.state.blend,
		Color: d.state.fill,
		Path:  []Vec2{m.Apply(p)},
		Text:  s,
		Size:  size * m.ScaleFactor(),
	})
}

// Line draws a segment with the stroke color and weight.
func (d *Draw) Line(a, b Vec2) {
	d.strokePath([]Vec2{a, b}, false)
}

// Polyline draws an open path with the stroke color and weight.
func (d *Draw) Polyline(points []Vec2) {
	d.strokePath(points, false)
}

// PolylineColored draws an open path with the stroke weight and one color
// per point, blended along each segment. The stroke color is ignored. The
// path is recorded as a mesh, so vector export sees triangles.
func (d *Draw) PolylineColored(points []Vec2, colors []Color) {
	st := d.state
	if len(points) != len(colors) || st.weight <= 0 || len(points)*2 > maxCommandVertices {
		return
	}
	r := strokeRibbon(d.toWorld(points), st.weight*st.matrix.ScaleFactor(), false, st.join, st.caps)
	if r == nil || len(r.inds) == 0 || len(r.verts) > maxCommandVertices {
		return
	}
	verts := make([]Vertex, len(r.verts))
	for i, p := range r.verts {
		verts[i] = Vertex{X: p.X, Y: p.Y, Color: colors[r.src[i]]}
	}
	d.list.Commands = append(d.list.Commands, Command{
		Kind:     CommandMesh,
		Blend:    st.blend,
		Vertices: verts,
		Indices:  r.inds,
	})
}

// ClosedPolyline draws a closed path outline with the stroke color and weight.
func (d *Draw) ClosedPolyline(points []Vec2) {
	d.strokePath(points, true)
}

// Arrow draws a line from a to b finished with a filled triangular head of
// the given length, both in the stroke color.
func (d *Draw) Arrow(a, b Vec2, head float64) {
	dir := b.Sub(a)
	ln := dir.Len()
	if ln < 1e-10 {
		return
	}
	ux, uy := dir.X/ln, dir.Y/ln
	head = min(head, ln)
	base := Vec2{b.X - ux*head, b.Y - uy*head}
	d.strokePath([]Vec2{a, base}, false)

	half := head / 2
	tip := []Vec2{
		b,
		{base.X - uy*half, base.Y + ux*half},
		{base.X + uy*half, base.Y - ux*half},
	}
	if d.state.stroke.Transparent() {
		return
	}
	d.fillPath(tip, d.state.stroke)
}

// Mesh draws indexed triangles with per-vertex colors. Vertex positions are
// in local space. Indices referencing missing vertices drop the whole mesh.
func (d *Draw) Mesh(verts []Vertex, inds []uint16) {
	if len(verts) == 0 || len(inds) < 3 || len(verts) > maxCommandVertices {
		return
	}
	for _, i := range inds {
		if int(i) >= len(verts) {
			return
		}
	}
	m := d.state.matrix
	out := make([]Vertex, len(verts))
	for i, v := range verts {
		p := m.Apply(Vec2{v.X, v.Y})
		out[i] = Vertex{X: p.X, Y: p.Y, Color: v.Color}
	}
	d.list.Commands = append(d.list.Commands, Command{
		Kind:     CommandMesh,
		Blend:    d.state.blend,
		Vertices: out,
		Indices:  append([]uint16(nil), inds[:len(inds)/3*3]...),
	})
}

// GridFunc returns the displacement and color of the grid vertex at
// (col, row) whose rest position is rest.
type GridFunc func(col, row int, rest Vec2) (offset Vec2, c Color)

// Grid draws a cols x rows cell mesh covering r, calling fn once per vertex
// to displace and color it.
func (d *Draw) Grid(r Rect, cols, rows int, fn GridFunc) {
	if cols < 1 || rows < 1 || (cols+1)*(rows+1) > maxCommandVertices {
		return
	}
	vcols, vrows := cols+1, rows+1
	verts := make([]Vertex, 0, vcols*vrows)
	cellW := r.Width / float64(cols)
	cellH := r.Height / float64(rows)
	for row := 0; row < vrows; row++ {
		for col := 0; col < vcols; col++ {
			rest := Vec2{X: r.X + float64(col)*cellW, Y: r.Y + float64(row)*cellH}
			off, c := Vec2{}, d.state.fill
			if fn != nil {
				off, c = fn(col, row, rest)
			}
			verts = append(verts, Vertex{X: rest.X + off.X, Y: rest.Y + off.Y, Color: c})
		}
	}
	d.Mesh(verts, GridIndices(cols, rows))
}

// --- Internals ---

// shape fills then strokes a closed local-space outline with the current
// style.
func (d *Draw) shape(local []Vec2) {
	if len(local) < 3 || len(local) > maxCommandVertices {
		return
	}
	if !d.state.fill.Transparent() {
		d.fillPath(local, d.state.fill)
	}
	d.strokePath(local, true)
}

func (d *Draw) fillPath(local []Vec2, c Color) {
	world := d.toWorld(local)
	inds := Triangulate(world)
	if len(inds) == 0 {
		return
	}
	verts := make([]Vertex, len(world))
	for i, p := range world {
		verts[i] = Vertex{X: p.X, Y: p.Y, Color: c}
	}
	d.list.Commands = append(d.list.Commands, Command{
		Kind:     CommandFill,
		Blend:    d.state.blend,
		Color:    c,
		Path:     world,
		Closed:   true,
		Vertices: verts,
		Indices:  inds,
	})
}

func (d *Draw) strokePath(local []Vec2, closed bool) {
	st := d.state
	if st.stroke.Transparent() || st.weight <= 0 || len(local)*2 > maxCommandVertices {
		return
	}
	world := d.toWorld(local)
	width := st.weight * st.matrix.ScaleFactor()
	pts, inds := StrokeRibbon(world, width, closed, st.join, st.caps)
	if len(inds) == 0 || len(pts) > maxCommandVertices {
		return
	}
	verts := make([]Vertex, len(pts))
	for i, p := range pts {
		verts[i] = Vertex{X: p.X, Y: p.Y, Color: st.stroke}
	}
	d.list.Commands = append(d.list.Commands, Command{
		Kind:     CommandStroke,
		Blend:    st.blend,
		Color:    st.stroke,
		Path:     world,
		Closed:   closed,
		Width:    width,
		Join:     st.join,
		Cap:      st.caps,
		Vertices: verts,
		Indices:  inds,
	})
}

func (d *Draw) toWorld(local []Vec2) []Vec2 {
	m := d.state.matrix
	out := make([]Vec2, len(local))
	for i, p := range local {
		out[i] = m.Apply(p)
	}
	return out
}

// segmentsFor picks an ellipse resolution for a local-space radius.
func (d *Draw) segmentsFor(radius float64) int {
	if d.state.resolution > 0 {
		return max(d.state.resolution, 3)
	}
	screenR := radius * d.state.matrix.ScaleFactor()
	n := int(math.Ceil(math.Sqrt(screenR) * 4))
	return min(max(n, 12), 128)
}
