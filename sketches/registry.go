// Package sketches holds the bundled sketches. Every sketch has an empty
// model and a no-op update; all of the work happens in its view.
package sketches

import (
	"errors"
	"fmt"

	"github.com/phanxgames/sketchbook"
)

// ErrUnknownSketch is returned by Lookup for names not in the registry.
var ErrUnknownSketch = errors.New("unknown sketch")

const (
	screenW = 640
	screenH = 480
)

// All returns a fresh instance of every bundled sketch in a fixed order.
func All() []sketchbook.Entry {
	return []sketchbook.Entry{
		Shapes(),
		Polygon(),
		Ellipse(),
		Lines(),
		Arrows(),
		Wave(),
		Mesh(),
		Blend(),
		Circles(),
		SineMesh(),
		Ripple(),
		Tween(),
	}
}

// Names returns the names of every bundled sketch in registry order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.SketchName()
	}
	return names
}

// Lookup returns the sketch with the given name.
func Lookup(name string) (sketchbook.Entry, error) {
	for _, e := range All() {
		if e.SketchName() == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSketch, name)
}
