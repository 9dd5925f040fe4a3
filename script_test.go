package isometric

import "testing"

type recordingShots struct {
	labels []string
}

func (s *recordingShots) Screenshot(label string) {
	s.labels = append(s.labels, label)
}

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "move", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "scroll", "x": 5, "y": 6, "duration": 0.5},
			{"action": "screenshot", "label": "after-move"}
		]
	}`)
	w, _, _ := newTestWorld()
	r, err := LoadScript(data, w, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(r.steps))
	}
	if r.steps[0].Action != "move" || r.steps[0].X != 100 || r.steps[0].Y != 200 {
		t.Error("step 0 mismatch")
	}
	if r.steps[2].Duration != 0.5 {
		t.Error("step 2 duration mismatch")
	}
	if w.pointer != PointerSource(r.Pointer()) {
		t.Error("runner did not install its pointer on the world")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	if _, err := LoadScript([]byte(`not json`), nil, nil); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": []}`), nil, nil); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestScriptRunner_MoveAndScreenshot(t *testing.T) {
	shots := &recordingShots{}
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "move", "x": 10, "y": 20},
		{"action": "screenshot", "label": "hover"}
	]}`), nil, shots)
	if err != nil {
		t.Fatal(err)
	}

	r.Update(0)
	if len(shots.labels) != 0 {
		t.Fatal("screenshot taken before the move landed")
	}
	r.Update(0)
	if got := r.Pointer().Position(); got != (Vec2{X: 10, Y: 20}) {
		t.Errorf("pointer = %v, want (10,20)", got)
	}
	if len(shots.labels) != 1 || shots.labels[0] != "hover" {
		t.Errorf("labels = %v", shots.labels)
	}
	if !r.Done() {
		t.Error("runner should be done")
	}
}

func TestScriptRunner_Drag(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 30, "toY": 0, "frames": 4}
	]}`), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 0, 10, 20, 30}
	for i, x := range want {
		r.Update(0)
		if got := r.Pointer().Position().X; !approxEqual(got, x, 1e-9) {
			t.Errorf("frame %d: x = %v, want %v", i+1, got, x)
		}
	}
	if !r.Done() {
		t.Error("runner should be done once the drag has played back")
	}
}

func TestScriptRunner_WaitThenSelect(t *testing.T) {
	w, _, _ := newTestWorld()
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "select", "x": 2, "y": 2}
	]}`), w, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		r.Update(0)
		if w.HasSelection() {
			t.Fatalf("selected during wait frame %d", i+1)
		}
	}
	r.Update(0)
	if w.Selection() != (Point{2, 2}) {
		t.Errorf("Selection() = %v, want (2,2)", w.Selection())
	}
	if !r.Done() {
		t.Error("runner should be done")
	}
}

func TestScriptRunner_ScrollBlocksUntilFinished(t *testing.T) {
	w, _, cam := newTestWorld()
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "scroll", "x": 5, "y": 6, "duration": 0.5},
		{"action": "select", "x": 1, "y": 1}
	]}`), w, nil)
	if err != nil {
		t.Fatal(err)
	}

	r.Update(0)
	if !cam.Scrolling() {
		t.Fatal("scroll step did not start a scroll")
	}
	r.Update(0)
	if w.HasSelection() {
		t.Fatal("next step ran while the camera was scrolling")
	}

	cam.Update(1)
	r.Update(0)
	if !approxEqual(cam.X(), 5, 0.01) || !approxEqual(cam.Y(), 6, 0.01) {
		t.Errorf("camera = (%f,%f), want (5,6)", cam.X(), cam.Y())
	}
	if w.Selection() != (Point{1, 1}) {
		t.Errorf("Selection() = %v, want (1,1)", w.Selection())
	}
}

func TestScriptRunner_UnknownAction(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [{"action": "dance"}]}`), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	r.Update(0)
	if !r.Done() {
		t.Error("unknown actions should be skipped")
	}
}

// --- ScriptedPointer ---

func TestScriptedPointer(t *testing.T) {
	p := NewScriptedPointer(Vec2{X: 1, Y: 2})
	if x, y := p.Pointer(); x != 1 || y != 2 {
		t.Errorf("Pointer() = (%v,%v), want (1,2)", x, y)
	}

	p.InjectMove(5, 6)
	if p.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", p.Pending())
	}
	if p.Position() != (Vec2{X: 1, Y: 2}) {
		t.Error("InjectMove should not move the pointer before Advance")
	}
	p.Advance()
	if p.Position() != (Vec2{X: 5, Y: 6}) {
		t.Errorf("Position() = %v, want (5,6)", p.Position())
	}

	// Advancing an empty queue keeps the pointer in place.
	p.Advance()
	if p.Position() != (Vec2{X: 5, Y: 6}) {
		t.Error("empty Advance moved the pointer")
	}
}

func TestScriptedPointerDragMinimumFrames(t *testing.T) {
	p := NewScriptedPointer(Vec2{})
	p.InjectDrag(0, 0, 10, 10, 0)
	if p.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", p.Pending())
	}
	p.Clear()
	if p.Pending() != 0 {
		t.Error("Clear did not drop the queue")
	}
}
