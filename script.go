package sketchbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrEmptyScript is returned when a script has no steps.
var ErrEmptyScript = errors.New("no steps")

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences synthetic mouse input, screenshots and quitting across
// ticks for automated visual runs. Once a step positions the mouse, the
// scripted pointer replaces real input for the rest of the run.
//
// Supported actions: move, press, release, glide, wait, screenshot, quit.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	active  bool
	pointer Mouse
	glide   []Vec2
}

// ParseScript parses a JSON input script.
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "move", "press", "release", "glide", "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return ParseScript(data)
}

// Done reports whether all steps in the script have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one tick and applies its pointer to app.
func (s *Script) step(app *App) {
	s.advance(app)
	if s.active {
		app.mouse = s.pointer
	}
}

func (s *Script) advance(app *App) {
	if s.done {
		return
	}
	// Drain a pending glide before advancing.
	if len(s.glide) > 0 {
		s.pointer.X, s.pointer.Y = s.glide[0].X, s.glide[0].Y
		s.glide = s.glide[1:]
		s.checkDone()
		return
	}
	// Count down wait frames.
	if s.waitCount > 0 {
		s.waitCount--
		s.checkDone()
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "move":
		s.active = true
		s.pointer.X, s.pointer.Y = st.X, st.Y
	case "press":
		s.active = true
		s.pointer.Buttons |= MouseLeft
	case "release":
		s.active = true
		s.pointer.Buttons &^= MouseLeft
	case "glide":
		s.active = true
		frames := max(st.Frames, 2)
		// The first position is applied this tick, the rest on later ticks.
		s.pointer.X, s.pointer.Y = st.FromX, st.FromY
		for i := 1; i < frames; i++ {
			t := float64(i) / float64(frames-1)
			s.glide = append(s.glide, Vec2{
				X: st.FromX + (st.ToX-st.FromX)*t,
				Y: st.FromY + (st.ToY-st.FromY)*t,
			})
		}
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "screenshot":
		app.Capture(st.Label)
	case "quit":
		app.Quit()
	}

	s.checkDone()
}

// checkDone marks the script finished once every step has run and nothing
// is pending.
func (s *Script) checkDone() {
	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(s.glide) == 0 {
		s.done = true
	}
}
