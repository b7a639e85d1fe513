package sketchbook

import "testing"

func TestFrameSubmitSeals(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.NoStroke()
	d.Rect(Rect{Width: 10, Height: 10})
	if f.Submitted() {
		t.Error("frame reports submitted before Submit")
	}
	f.Submit()
	d.Rect(Rect{Width: 20, Height: 20})
	f.Submit()

	if !f.Submitted() {
		t.Error("frame should be submitted")
	}
	if n := f.DisplayList().Len(); n != 1 {
		t.Errorf("commands after submit = %d, want 1", n)
	}
}

func TestFrameUnsubmittedKeepsEverything(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Background(ColorBlack)
	d.Circle(V(50, 50), 10)
	if n := f.DisplayList().Len(); n != 3 {
		t.Errorf("commands = %d, want 3", n)
	}
}

func TestFrameBeginResets(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Translate(5, 5)
	d.Push()
	d.Rect(Rect{Width: 10, Height: 10})
	f.Submit()

	f.begin(7, 200, 50)
	if f.Index() != 7 || f.Submitted() || f.DisplayList().Len() != 0 {
		t.Errorf("after begin: index=%d submitted=%v len=%d", f.Index(), f.Submitted(), f.DisplayList().Len())
	}
	if f.Rect() != (Rect{Width: 200, Height: 50}) {
		t.Errorf("rect = %+v", f.Rect())
	}
	assertMatrix(t, "matrix", d.Transform(), Identity)
	if len(d.stack) != 0 {
		t.Errorf("stack depth = %d, want 0", len(d.stack))
	}
}

func TestFrameSnapshotIsIndependent(t *testing.T) {
	f, d := newTestDraw(100, 100)
	d.Background(ColorBlack)
	snap := f.snapshot()
	f.begin(1, 100, 100)
	f.Draw().Circle(V(1, 1), 1)
	if snap.Len() != 1 || snap.Commands[0].Kind != CommandClear {
		t.Errorf("snapshot changed: %v", commandKinds(snap))
	}
}
