package sketchbook

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws the current FPS and TPS in the top-left corner. The text
// image is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	stats      ListStats
	showStats  bool
}

func newFPSOverlay(showStats bool) *fpsOverlay {
	h := 32
	if showStats {
		h = 64
	}
	// 140 wide is enough for "FPS: 60.0" and the stats lines.
	return &fpsOverlay{img: ebiten.NewImage(140, h), showStats: showStats, lastUpdate: 1}
}

// update refreshes the overlay text after dt seconds have accumulated.
func (o *fpsOverlay) update(dt float64, stats ListStats) {
	o.lastUpdate += dt
	o.stats = stats
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})

	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if o.showStats {
		msg += fmt.Sprintf("\ncmds: %d\ntris: %d", o.stats.Commands, o.stats.Triangles)
	}
	ebitenutil.DebugPrint(o.img, msg)
}

// draw composites the overlay onto screen.
func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
