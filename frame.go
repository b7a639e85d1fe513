package sketchbook

// Frame is handed to a view callback once per rendered frame. Shapes drawn
// through Draw are recorded into the frame's display list; Submit seals the
// list so later drawing is ignored. A frame that is never submitted renders
// everything drawn before the view callback returned.
type Frame struct {
	index  uint64
	list   DisplayList
	draw   *Draw
	sealed int // number of commands kept by Submit; -1 until sealed
}

func newFrame() *Frame {
	f := &Frame{sealed: -1}
	f.draw = newDraw(&f.list)
	return f
}

// begin resets the frame for a new view invocation.
func (f *Frame) begin(index uint64, width, height int) {
	f.index = index
	f.list.Reset(width, height)
	f.draw.reset()
	f.sealed = -1
}

// Index returns the frame number, starting at 0.
func (f *Frame) Index() uint64 { return f.index }

// Rect returns the frame bounds.
func (f *Frame) Rect() Rect {
	return Rect{Width: float64(f.list.Width), Height: float64(f.list.Height)}
}

// Draw returns the frame's drawing context.
func (f *Frame) Draw() *Draw { return f.draw }

// Submit seals the frame. Calling it more than once keeps the first seal.
func (f *Frame) Submit() {
	if f.sealed < 0 {
		f.sealed = len(f.list.Commands)
	}
}

// Submitted reports whether Submit has been called for this frame.
func (f *Frame) Submitted() bool { return f.sealed >= 0 }

// DisplayList returns the commands that will be rendered for this frame.
func (f *Frame) DisplayList() *DisplayList {
	if f.sealed >= 0 && f.sealed < len(f.list.Commands) {
		f.list.Commands = f.list.Commands[:f.sealed]
	}
	return &f.list
}

// snapshot returns a copy of the display list that stays valid after the
// frame is reused.
func (f *Frame) snapshot() *DisplayList {
	l := f.DisplayList()
	out := &DisplayList{Width: l.Width, Height: l.Height}
	out.Commands = append(out.Commands, l.Commands...)
	return out
}
