package sketchbook

import "math"

// JoinMode controls how consecutive stroke segments meet.
type JoinMode uint8

const (
	// JoinMiter extends segment corners to a sharp point, clamped to twice
	// the half width so sharp corners do not spike.
	JoinMiter JoinMode = iota
	// JoinBevel uses the averaged normal without extension.
	JoinBevel
	// JoinRound fills the outside of every corner with an arc.
	JoinRound
)

// CapMode controls how the ends of an open stroke are finished.
type CapMode uint8

const (
	// CapButt ends the stroke flat at its endpoints.
	CapButt CapMode = iota
	// CapRound ends the stroke with a half disc of the stroke's half width.
	CapRound
)

// arcStep is the largest angle one round join or cap triangle may span.
const arcStep = math.Pi / 12

// defaultEllipseSegments is used when the caller passes a resolution <= 0.
const defaultEllipseSegments = 64

// EllipsePoints returns segments points evenly spaced around the ellipse
// centered at c with radii rx, ry, starting at angle 0 (pointing right).
func EllipsePoints(c Vec2, rx, ry float64, segments int) []Vec2 {
	if segments < 3 {
		segments = defaultEllipseSegments
	}
	pts := make([]Vec2, segments)
	for i := range pts {
		sin, cos := math.Sincos(float64(i) * 2 * math.Pi / float64(segments))
		pts[i] = Vec2{X: c.X + cos*rx, Y: c.Y + sin*ry}
	}
	return pts
}

// RegularPolygon returns the vertices of a regular polygon with the given
// circumradius. The first vertex points up (angle -pi/2) before rotation.
// Fewer than 3 sides yields nil.
func RegularPolygon(c Vec2, radius float64, sides int, rotation float64) []Vec2 {
	if sides < 3 {
		return nil
	}
	pts := make([]Vec2, sides)
	for i := range pts {
		angle := float64(i)*2*math.Pi/float64(sides) - math.Pi/2 + rotation
		sin, cos := math.Sincos(angle)
		pts[i] = Vec2{X: c.X + cos*radius, Y: c.Y + sin*radius}
	}
	return pts
}

// signedArea returns twice the signed area of the polygon. Positive means the
// points wind clockwise on screen (Y down).
func signedArea(points []Vec2) float64 {
	var a float64
	n := len(points)
	for i := range points {
		p, q := points[i], points[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

// isConvex reports whether all turns of the polygon share one direction.
func isConvex(points []Vec2) bool {
	n := len(points)
	if n < 4 {
		return true
	}
	sign := 0
	for i := range points {
		a, b, c := points[i], points[(i+1)%n], points[(i+2)%n]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		switch {
		case cross > 1e-12:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < -1e-12:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

// fanIndices triangulates a convex polygon of n vertices around vertex 0.
// N vertices, 3*(N-2) indices.
func fanIndices(n int) []uint16 {
	if n < 3 {
		return nil
	}
	inds := make([]uint16, (n-2)*3)
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return inds
}

// Triangulate returns triangle indices for a simple polygon. Convex input
// uses fan triangulation; concave input uses ear clipping. Degenerate input
// (fewer than 3 points or zero area) yields nil.
func Triangulate(points []Vec2) []uint16 {
	n := len(points)
	if n < 3 {
		return nil
	}
	area := signedArea(points)
	if math.Abs(area) < 1e-12 {
		return nil
	}
	if isConvex(points) {
		return fanIndices(n)
	}

	// Work on a clockwise index ring.
	ring := make([]int, n)
	for i := range ring {
		if area > 0 {
			ring[i] = i
		} else {
			ring[i] = n - 1 - i
		}
	}

	inds := make([]uint16, 0, (n-2)*3)
	guard := 0
	for len(ring) > 3 && guard < n*n {
		guard++
		clipped := false
		for i := range ring {
			ia := ring[(i+len(ring)-1)%len(ring)]
			ib := ring[i]
			ic := ring[(i+1)%len(ring)]
			if !isEar(points, ring, ia, ib, ic) {
				continue
			}
			inds = append(inds, uint16(ia), uint16(ib), uint16(ic))
			ring = append(ring[:i], ring[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Self-intersecting input: fan the remainder rather than loop.
			for i := 1; i < len(ring)-1; i++ {
				inds = append(inds, uint16(ring[0]), uint16(ring[i]), uint16(ring[i+1]))
			}
			return inds
		}
	}
	if len(ring) == 3 {
		inds = append(inds, uint16(ring[0]), uint16(ring[1]), uint16(ring[2]))
	}
	return inds
}

// isEar reports whether b is a convex vertex of the clockwise ring whose
// triangle (a, b, c) contains no other ring vertex.
func isEar(points []Vec2, ring []int, ia, ib, ic int) bool {
	a, b, c := points[ia], points[ib], points[ic]
	cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
	if cross <= 0 {
		return false
	}
	for _, j := range ring {
		if j == ia || j == ib || j == ic {
			continue
		}
		if pointInTriangle(points[j], a, b, c) {
			return false
		}
	}
	return true
}

func pointInTriangle(p, a, b, c Vec2) bool {
	d1 := (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
	d2 := (p.X-c.X)*(b.Y-c.Y) - (b.X-c.X)*(p.Y-c.Y)
	d3 := (p.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(p.Y-a.Y)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// StrokeRibbon expands a polyline into triangles of the given width.
// With butt caps and miter or bevel joins the result is a strip: for N
// points 2N vertices and 6(N-1) indices, or 6N when closed. Round joins
// give every segment its own quad plus an arc fan at each corner, and round
// caps add a half-disc fan at both ends. Fewer than 2 points (3 when
// closed) yields nil slices.
func StrokeRibbon(points []Vec2, width float64, closed bool, join JoinMode, ends CapMode) ([]Vec2, []uint16) {
	r := strokeRibbon(points, width, closed, join, ends)
	if r == nil {
		return nil, nil
	}
	return r.verts, r.inds
}

// ribbon accumulates stroke geometry. src records, for every vertex, the
// index of the input point it was built from.
type ribbon struct {
	halfW float64
	verts []Vec2
	src   []int
	inds  []uint16
}

func strokeRibbon(points []Vec2, width float64, closed bool, join JoinMode, ends CapMode) *ribbon {
	n := len(points)
	if n < 2 || (closed && n < 3) || width <= 0 {
		return nil
	}
	r := &ribbon{halfW: width / 2}
	if join == JoinRound {
		r.segments(points, closed)
	} else {
		r.strip(points, closed, join)
	}
	if !closed && ends == CapRound {
		r.cap(points[1], points[0], 0)
		r.cap(points[n-2], points[n-1], n-1)
	}
	return r
}

func (r *ribbon) add(p Vec2, src int) uint16 {
	r.verts = append(r.verts, p)
	r.src = append(r.src, src)
	return uint16(len(r.verts) - 1)
}

// quad indexes the four vertices starting at v as two triangles: v and v+1
// are one end of the quad, v+2 and v+3 the other.
func (r *ribbon) quad(v uint16) {
	r.inds = append(r.inds, v, v+1, v+2, v+1, v+3, v+2)
}

// strip builds one continuous strip with a shared vertex pair per point.
func (r *ribbon) strip(points []Vec2, closed bool, join JoinMode) {
	n := len(points)
	halfW := r.halfW
	for i := 0; i < n; i++ {
		var nx, ny float64
		switch {
		case !closed && i == 0:
			nx, ny = perpendicular(points[0], points[1])
		case !closed && i == n-1:
			nx, ny = perpendicular(points[n-2], points[n-1])
		default:
			prev := points[(i+n-1)%n]
			next := points[(i+1)%n]
			// Average of adjacent segment normals.
			nx0, ny0 := perpendicular(prev, points[i])
			nx1, ny1 := perpendicular(points[i], next)
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			} else {
				nx, ny = nx0, ny0
			}
			if join == JoinMiter {
				// Scale to maintain width at the miter, clamped to avoid
				// exaggerated spikes at sharp corners (max 2x extension).
				dot := nx0*nx + ny0*ny
				if dot > 0.1 {
					scale := 1.0 / dot
					if scale > 2.0 {
						scale = 2.0
					}
					nx *= scale
					ny *= scale
				}
			}
		}
		r.add(Vec2{X: points[i].X + nx*halfW, Y: points[i].Y + ny*halfW}, i)
		r.add(Vec2{X: points[i].X - nx*halfW, Y: points[i].Y - ny*halfW}, i)
	}

	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		v := uint16(i * 2)
		w := uint16(((i + 1) % n) * 2)
		r.inds = append(r.inds, v, v+1, w, v+1, w+1, w)
	}
}

// segments gives every segment its own full-width quad and joins them with
// arc fans on the outside of each corner.
func (r *ribbon) segments(points []Vec2, closed bool) {
	n := len(points)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		j := (i + 1) % n
		a, b := points[i], points[j]
		nx, ny := perpendicular(a, b)
		off := Vec2{X: nx * r.halfW, Y: ny * r.halfW}
		v := r.add(a.Add(off), i)
		r.add(a.Sub(off), i)
		r.add(b.Add(off), j)
		r.add(b.Sub(off), j)
		r.quad(v)
	}

	first, last := 1, n-1
	if closed {
		first, last = 0, n
	}
	for i := first; i < last; i++ {
		prev, p, next := points[(i+n-1)%n], points[i], points[(i+1)%n]
		nx0, ny0 := perpendicular(prev, p)
		nx1, ny1 := perpendicular(p, next)
		// The outside of the turn is opposite the side the next segment
		// heads toward.
		side := 1.0
		if (next.X-p.X)*nx0+(next.Y-p.Y)*ny0 > 0 {
			side = -1
		}
		a0 := math.Atan2(side*ny0, side*nx0)
		a1 := math.Atan2(side*ny1, side*nx1)
		delta := math.Remainder(a1-a0, 2*math.Pi)
		r.fan(p, i, a0, delta)
	}
}

// cap adds a half disc at end, bulging away from from.
func (r *ribbon) cap(from, end Vec2, src int) {
	nx, ny := perpendicular(from, end)
	r.fan(end, src, math.Atan2(ny, nx), -math.Pi)
}

// fan adds a triangle fan around c covering the arc from angle a0 through
// a0+delta at the ribbon's half width.
func (r *ribbon) fan(c Vec2, src int, a0, delta float64) {
	if math.Abs(delta) < 1e-6 {
		return
	}
	steps := max(int(math.Ceil(math.Abs(delta)/arcStep)), 1)
	center := r.add(c, src)
	for k := 0; k <= steps; k++ {
		sin, cos := math.Sincos(a0 + delta*float64(k)/float64(steps))
		r.add(Vec2{X: c.X + cos*r.halfW, Y: c.Y + sin*r.halfW}, src)
		if k > 0 {
			v := uint16(len(r.verts) - 1)
			r.inds = append(r.inds, center, v-1, v)
		}
	}
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// GridIndices returns triangle indices for a cols x rows cell grid whose
// (cols+1)*(rows+1) vertices are laid out row-major.
func GridIndices(cols, rows int) []uint16 {
	if cols < 1 || rows < 1 {
		return nil
	}
	vcols := cols + 1
	inds := make([]uint16, 0, cols*rows*6)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tl := uint16(r*vcols + c)
			tr := tl + 1
			bl := uint16((r+1)*vcols + c)
			br := bl + 1
			inds = append(inds, tl, bl, tr, tr, bl, br)
		}
	}
	return inds
}
