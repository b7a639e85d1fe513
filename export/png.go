package export

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/phanxgames/sketchbook"
)

var lineJoins = map[sketchbook.JoinMode]gg.LineJoin{
	sketchbook.JoinMiter: gg.LineJoinMiter,
	sketchbook.JoinBevel: gg.LineJoinBevel,
	sketchbook.JoinRound: gg.LineJoinRound,
}

var lineCaps = map[sketchbook.CapMode]gg.LineCap{
	sketchbook.CapButt:  gg.LineCapButt,
	sketchbook.CapRound: gg.LineCapRound,
}

// Rasterize renders a display list into an RGBA image.
//
// The software renderer only composites source-over, so every blend mode is
// drawn as BlendNormal. Mesh triangles are filled with the average of their
// vertex colors.
func Rasterize(list *sketchbook.DisplayList) (image.Image, error) {
	if list.Width <= 0 || list.Height <= 0 {
		return nil, fmt.Errorf("rasterize: %w: %dx%d", sketchbook.ErrInvalidSize, list.Width, list.Height)
	}
	dc := gg.NewContext(list.Width, list.Height)
	defer dc.Close()

	var font *text.FontSource
	if hasText(list) {
		src, err := text.NewFontSource(sketchbook.FontTTF)
		if err != nil {
			return nil, fmt.Errorf("rasterize: font: %w", err)
		}
		defer src.Close()
		font = src
	}

	warned := false
	for i := range list.Commands {
		cmd := &list.Commands[i]
		if !warned && cmd.Kind != sketchbook.CommandClear && cmd.Blend != sketchbook.BlendNormal {
			sketchbook.Logger().Debug("png export draws blend modes as normal", "blend", cmd.Blend.String())
			warned = true
		}
		if err := rasterizeCommand(dc, font, cmd); err != nil {
			return nil, fmt.Errorf("rasterize command %d (%s): %w", i, cmd.Kind, err)
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	return dc.Image(), nil
}

func rasterizeCommand(dc *gg.Context, font *text.FontSource, cmd *sketchbook.Command) error {
	switch cmd.Kind {
	case sketchbook.CommandClear:
		c := cmd.Color
		dc.ClearWithColor(gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		return nil
	case sketchbook.CommandFill:
		setColor(dc, cmd.Color)
		tracePath(dc, cmd.Path, true)
		return dc.Fill()
	case sketchbook.CommandStroke:
		setColor(dc, cmd.Color)
		dc.SetLineWidth(cmd.Width)
		dc.SetLineJoin(lineJoins[cmd.Join])
		dc.SetLineCap(lineCaps[cmd.Cap])
		tracePath(dc, cmd.Path, cmd.Closed)
		return dc.Stroke()
	case sketchbook.CommandText:
		if font == nil || len(cmd.Path) == 0 {
			return nil
		}
		face := font.Face(cmd.Size)
		dc.SetFont(face)
		setColor(dc, cmd.Color)
		// Path[0] is the top-left of the line; gg draws from the baseline.
		p := cmd.Path[0]
		dc.DrawString(cmd.Text, p.X, p.Y+face.Metrics().Ascent)
	case sketchbook.CommandMesh:
		for t := 0; t+2 < len(cmd.Indices); t += 3 {
			a := cmd.Vertices[cmd.Indices[t]]
			b := cmd.Vertices[cmd.Indices[t+1]]
			c := cmd.Vertices[cmd.Indices[t+2]]
			setColor(dc, averageColor(a.Color, b.Color, c.Color))
			dc.MoveTo(a.X, a.Y)
			dc.LineTo(b.X, b.Y)
			dc.LineTo(c.X, c.Y)
			dc.ClosePath()
			if err := dc.Fill(); err != nil {
				return err
			}
		}
	}
	return nil
}

func hasText(list *sketchbook.DisplayList) bool {
	for i := range list.Commands {
		if list.Commands[i].Kind == sketchbook.CommandText {
			return true
		}
	}
	return false
}

func setColor(dc *gg.Context, c sketchbook.Color) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func tracePath(dc *gg.Context, pts []sketchbook.Vec2, closed bool) {
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
			continue
		}
		dc.LineTo(p.X, p.Y)
	}
	if closed {
		dc.ClosePath()
	}
}

func averageColor(cs ...sketchbook.Color) sketchbook.Color {
	var out sketchbook.Color
	for _, c := range cs {
		out.R += c.R
		out.G += c.G
		out.B += c.B
		out.A += c.A
	}
	n := float64(len(cs))
	return sketchbook.Color{R: out.R / n, G: out.G / n, B: out.B / n, A: out.A / n}
}

// PNG rasterizes a display list and writes it as PNG.
func PNG(w io.Writer, list *sketchbook.DisplayList) error {
	img, err := Rasterize(list)
	if err != nil {
		return err
	}
	return encodePNG(w, img)
}
