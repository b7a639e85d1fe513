package export

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/phanxgames/sketchbook"
)

// cssBlend maps blend modes to CSS mix-blend-mode values. Modes without an
// equivalent are omitted and draw as normal.
var cssBlend = map[sketchbook.BlendMode]string{
	sketchbook.BlendAdd:      "plus-lighter",
	sketchbook.BlendSubtract: "difference",
	sketchbook.BlendMultiply: "multiply",
	sketchbook.BlendScreen:   "screen",
	sketchbook.BlendDarken:   "darken",
	sketchbook.BlendLighten:  "lighten",
}

var svgJoins = map[sketchbook.JoinMode]string{
	sketchbook.JoinMiter: "miter",
	sketchbook.JoinBevel: "bevel",
	sketchbook.JoinRound: "round",
}

var svgCaps = map[sketchbook.CapMode]string{
	sketchbook.CapButt:  "butt",
	sketchbook.CapRound: "round",
}

// errWriter remembers the first write error so the svgo calls, which do not
// return errors, can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVG writes a display list as an SVG document. Fills and strokes keep
// their outlines; mesh triangles become individual paths filled with the
// average of their vertex colors.
func SVG(w io.Writer, list *sketchbook.DisplayList) error {
	if list.Width <= 0 || list.Height <= 0 {
		return fmt.Errorf("svg: %w: %dx%d", sketchbook.ErrInvalidSize, list.Width, list.Height)
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(list.Width, list.Height)
	for i := range list.Commands {
		cmd := &list.Commands[i]
		switch cmd.Kind {
		case sketchbook.CommandClear:
			canvas.Rect(0, 0, list.Width, list.Height, fillStyle(cmd.Color, sketchbook.BlendNormal))
		case sketchbook.CommandFill:
			canvas.Path(pathData(cmd.Path, true), fillStyle(cmd.Color, cmd.Blend))
		case sketchbook.CommandStroke:
			canvas.Path(pathData(cmd.Path, cmd.Closed), strokeStyle(cmd))
		case sketchbook.CommandMesh:
			writeMesh(canvas, cmd)
		case sketchbook.CommandText:
			writeText(canvas, cmd)
		}
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("svg: %w", ew.err)
	}
	return nil
}

func writeMesh(canvas *svg.SVG, cmd *sketchbook.Command) {
	tri := make([]sketchbook.Vec2, 3)
	for t := 0; t+2 < len(cmd.Indices); t += 3 {
		a := cmd.Vertices[cmd.Indices[t]]
		b := cmd.Vertices[cmd.Indices[t+1]]
		c := cmd.Vertices[cmd.Indices[t+2]]
		tri[0] = sketchbook.V(a.X, a.Y)
		tri[1] = sketchbook.V(b.X, b.Y)
		tri[2] = sketchbook.V(c.X, c.Y)
		canvas.Path(pathData(tri, true), fillStyle(averageColor(a.Color, b.Color, c.Color), cmd.Blend))
	}
}

// writeText places the text's baseline one font size below its top-left
// origin.
func writeText(canvas *svg.SVG, cmd *sketchbook.Command) {
	if len(cmd.Path) == 0 {
		return
	}
	p := cmd.Path[0]
	style := "font-family:Go,sans-serif;font-size:" + formatCoord(cmd.Size) + "px;" +
		"fill:" + rgb(cmd.Color) + ";fill-opacity:" + opacity(cmd.Color.A) + blendStyle(cmd.Blend)
	canvas.Text(int(math.Round(p.X)), int(math.Round(p.Y+cmd.Size)), cmd.Text, style)
}

// pathData builds an SVG path "d" attribute with two-decimal coordinates.
func pathData(pts []sketchbook.Vec2, closed bool) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		b.WriteString(formatCoord(p.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(p.Y))
	}
	if closed && len(pts) > 0 {
		b.WriteString(" Z")
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func rgb(c sketchbook.Color) string {
	n := c.NRGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
}

func opacity(a float64) string {
	return strconv.FormatFloat(sketchbook.Clamp(a, 0, 1), 'f', 3, 64)
}

func blendStyle(mode sketchbook.BlendMode) string {
	if css, ok := cssBlend[mode]; ok {
		return ";mix-blend-mode:" + css
	}
	return ""
}

func fillStyle(c sketchbook.Color, mode sketchbook.BlendMode) string {
	return "fill:" + rgb(c) + ";fill-opacity:" + opacity(c.A) + ";stroke:none" + blendStyle(mode)
}

func strokeStyle(cmd *sketchbook.Command) string {
	return "fill:none;stroke:" + rgb(cmd.Color) + ";stroke-opacity:" + opacity(cmd.Color.A) +
		";stroke-width:" + formatCoord(cmd.Width) + ";stroke-linejoin:" + svgJoins[cmd.Join] +
		";stroke-linecap:" + svgCaps[cmd.Cap] + blendStyle(cmd.Blend)
}
