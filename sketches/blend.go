package sketches

import (
	"math"
	"strings"

	"github.com/phanxgames/sketchbook"
)

// blendChoice is one selectable blend mode with the formula shown under it.
type blendChoice struct {
	mode    sketchbook.BlendMode
	formula string
}

// blendChoices is indexed by mouse Y, top to bottom.
var blendChoices = [...]blendChoice{
	{sketchbook.BlendNormal, "src + dst * (1 - src.a)"},
	{sketchbook.BlendAdd, "src + dst"},
	{sketchbook.BlendSubtract, "dst - src"},
	{sketchbook.BlendReverseSubtract, "src - dst"},
	{sketchbook.BlendDarken, "min(src, dst)"},
	{sketchbook.BlendLighten, "max(src, dst)"},
}

const (
	blendTriad      = 3
	blendTitleSize  = 48
	blendFormulaPad = 16
	blendFormulaSz  = 20
)

type blendModel struct{}

// Blend draws three triads of overlapping circles (primaries, their
// complements and three greys) in one blend mode. Mouse Y picks the mode,
// whose name and formula are printed on screen; mouse X sets the
// background brightness.
func Blend() *sketchbook.Sketch[blendModel] {
	return &sketchbook.Sketch[blendModel]{
		Name:   "blend",
		Title:  "Sketchbook - Blend",
		Width:  screenW,
		Height: screenH,
		View:   blendView,
	}
}

// BlendChoice returns the blend mode selected by a mouse Y position.
func BlendChoice(mouseY, height float64) sketchbook.BlendMode {
	return blendChoices[blendIndex(mouseY, height)].mode
}

func blendIndex(mouseY, height float64) int {
	ix := int(sketchbook.MapRange(mouseY, 0, height, 0, float64(len(blendChoices))))
	return min(max(ix, 0), len(blendChoices)-1)
}

// blendTriadColor returns color i of triad k: hues for k=0, complementary
// hues for k=1 and ascending greys for k=2.
func blendTriadColor(k, i int) sketchbook.Color {
	f := float64(i) / blendTriad
	switch k {
	case 0:
		return sketchbook.HSL(f, 1, 0.5)
	case 1:
		return sketchbook.HSL(f+0.5, 1, 0.5)
	}
	g := (0.5 + float64(i)) / blendTriad
	return sketchbook.RGB(g, g, g)
}

func blendView(app *sketchbook.App, _ *blendModel, frame *sketchbook.Frame) {
	d := frame.Draw()
	win := app.Window()
	t := app.Time()
	mouse := app.Mouse()

	lum := sketchbook.Clamp(mouse.X/win.Width, 0, 1)
	d.Background(sketchbook.RGB(lum, lum, lum))
	d.NoStroke()

	choice := blendChoices[blendIndex(mouse.Y, win.Height)]
	mode := choice.mode
	ink := 1 - math.Round(lum)
	d.Fill(sketchbook.RGB(ink, ink, ink))
	d.Text(strings.ToUpper(mode.String()), sketchbook.V(blendFormulaPad, blendFormulaPad), blendTitleSize)
	d.Text(choice.formula, sketchbook.V(blendFormulaPad, win.Height-blendFormulaPad-blendFormulaSz*1.5), blendFormulaSz)

	radius := math.Min(win.Width, win.Height) * 0.25 / blendTriad
	offset := radius - (math.Sin(t)*0.5+0.5)*radius*0.5
	d.Blend(mode)
	for k := range blendTriad {
		c := win.Center()
		c.X += float64(k-1) * win.Width * 0.25
		for i := range blendTriad {
			sin, cos := math.Sincos(-float64(i) * 2 * math.Pi / blendTriad)
			d.Fill(blendTriadColor(k, i))
			d.Circle(sketchbook.V(c.X+cos*offset, c.Y+sin*offset), radius)
		}
	}

	frame.Submit()
}
