package sketchbook

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ease evaluates fn from `from` to `to` over duration seconds at time t.
// t is clamped to [0, duration]. A nil fn is linear.
func Ease(from, to, duration, t float64, fn ease.TweenFunc) float64 {
	if fn == nil {
		fn = ease.Linear
	}
	if duration <= 0 {
		return to
	}
	t = Clamp(t, 0, duration)
	tw := gween.New(float32(from), float32(to), float32(duration), fn)
	v, _ := tw.Update(float32(t))
	return float64(v)
}

// Loop is an eased value that repeats every Period seconds. With PingPong
// every other cycle runs backwards, so the value never jumps.
//
// Sketches are driven by App.Time, so a Loop is evaluated from absolute time
// instead of accumulating per-tick deltas.
type Loop struct {
	From, To float64
	Period   float64
	Ease     ease.TweenFunc
	PingPong bool
}

// At returns the loop's value at t seconds.
func (l Loop) At(t float64) float64 {
	if l.Period <= 0 {
		return l.From
	}
	cycle := math.Floor(t / l.Period)
	phase := t - cycle*l.Period
	if l.PingPong && int64(cycle)%2 != 0 {
		return Ease(l.To, l.From, l.Period, phase, l.Ease)
	}
	return Ease(l.From, l.To, l.Period, phase, l.Ease)
}
