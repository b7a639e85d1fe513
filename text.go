package sketchbook

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FontTTF is the TrueType data every text command is drawn with, on screen
// and in exports.
var FontTTF = goregular.TTF

// fontSource is parsed on first use. A parse failure is logged once and
// text is skipped from then on.
var (
	fontSource *text.GoTextFaceSource
	fontFailed bool
)

func ensureFontSource() *text.GoTextFaceSource {
	if fontSource == nil && !fontFailed {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(FontTTF))
		if err != nil {
			Logger().Warn("text: parse font", "err", err)
			fontFailed = true
			return nil
		}
		fontSource = src
	}
	return fontSource
}

// drawText renders a CommandText onto target.
func drawText(target *ebiten.Image, cmd *Command) {
	src := ensureFontSource()
	if src == nil || len(cmd.Path) == 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.Path[0].X, cmd.Path[0].Y)
	op.ColorScale.ScaleWithColor(cmd.Color.NRGBA())
	op.Blend = cmd.Blend.EbitenBlend()
	text.Draw(target, cmd.Text, &text.GoTextFace{Source: src, Size: cmd.Size}, op)
}
