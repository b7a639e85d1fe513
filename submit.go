package sketchbook

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- White pixel singleton (no sync.Once; Ebitengine draws on one goroutine) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 3x3 white image. Untextured
// triangles sample its center so edge filtering never bleeds in.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(3, 3)
		whitePixelImage.Fill(ColorWhite.premultiplied())
	}
	return whitePixelImage
}

// batch is a run of commands [start, end) drawn with one DrawTriangles
// call, or a single clear or text command drawn on its own.
type batch struct {
	start, end int
	blend      BlendMode
	kind       CommandKind
	vertices   int
}

// drawable reports whether a triangle command contributes to a batch.
// Commands whose bounds miss view are culled.
func drawable(cmd *Command, view Rect) bool {
	return len(cmd.Indices) > 0 && len(cmd.Vertices) <= maxCommandVertices && cmd.bounds().Intersects(view)
}

// planBatches splits a command list into draw calls. Consecutive drawable
// commands with the same blend mode share a batch until the next one would
// overflow the uint16 index space. Clears and text never merge.
func planBatches(commands []Command, view Rect) []batch {
	var out []batch
	open := false
	for i := range commands {
		cmd := &commands[i]
		switch cmd.Kind {
		case CommandClear, CommandText:
			out = append(out, batch{start: i, end: i + 1, blend: cmd.Blend, kind: cmd.Kind})
			open = false
			continue
		}
		if !drawable(cmd, view) {
			continue
		}
		n := len(cmd.Vertices)
		if open {
			cur := &out[len(out)-1]
			if cur.blend == cmd.Blend && cur.vertices+n <= maxCommandVertices {
				cur.end = i + 1
				cur.vertices += n
				continue
			}
		}
		out = append(out, batch{start: i, end: i + 1, blend: cmd.Blend, kind: CommandMesh, vertices: n})
		open = true
	}
	return out
}

// submitter converts display lists into DrawTriangles calls, reusing its
// vertex and index buffers across frames (high-water mark, never shrinks).
type submitter struct {
	verts     []ebiten.Vertex
	inds      []uint16
	drawCalls int
}

// submit draws list onto target following planBatches.
func (s *submitter) submit(target *ebiten.Image, list *DisplayList) {
	s.drawCalls = 0
	b := target.Bounds()
	view := Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}

	for _, bt := range planBatches(list.Commands, view) {
		switch bt.kind {
		case CommandClear:
			target.Fill(list.Commands[bt.start].Color.premultiplied())
		case CommandText:
			drawText(target, &list.Commands[bt.start])
		default:
			s.verts = s.verts[:0]
			s.inds = s.inds[:0]
			for i := bt.start; i < bt.end; i++ {
				if cmd := &list.Commands[i]; drawable(cmd, view) {
					s.append(cmd)
				}
			}
			s.flush(target, bt.blend)
		}
		s.drawCalls++
	}
}

// append converts a command's vertices into the pending batch.
func (s *submitter) append(cmd *Command) {
	base := uint16(len(s.verts))
	for _, v := range cmd.Vertices {
		c := v.Color
		a := float32(clamp01(c.A))
		s.verts = append(s.verts, ebiten.Vertex{
			DstX:   float32(v.X),
			DstY:   float32(v.Y),
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: float32(clamp01(c.R)) * a,
			ColorG: float32(clamp01(c.G)) * a,
			ColorB: float32(clamp01(c.B)) * a,
			ColorA: a,
		})
	}
	for _, i := range cmd.Indices {
		s.inds = append(s.inds, base+i)
	}
}

// flush submits the pending batch.
func (s *submitter) flush(target *ebiten.Image, blend BlendMode) {
	op := &ebiten.DrawTrianglesOptions{
		Blend:          blend.EbitenBlend(),
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	target.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), op)
}
