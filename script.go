package isometric

import (
	"encoding/json"
	"fmt"

	"github.com/golang/glog"
)

// scriptStep is a single action of a playback script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Duration float32 `json:"duration,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// Screenshotter captures labeled screenshots. *Game implements it.
type Screenshotter interface {
	Screenshot(label string)
}

// ScriptRunner is a Module that plays back a script against a World, one
// step per frame. Supported actions:
//
//	move       pointer jumps to (x, y) in viewport pixels
//	drag       pointer moves from (fromX, fromY) to (toX, toY) over frames
//	scroll     main camera scrolls to tile position (x, y) over duration seconds
//	select     selects tile (x, y)
//	screenshot captures the next frame under label
//	wait       idles for frames frames
//
// A step starts only after the pointer queue has drained and the main
// camera has stopped scrolling.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	world   *World
	pointer *ScriptedPointer
	shots   Screenshotter
}

// LoadScript parses a JSON playback script:
//
//	{"steps": [{"action": "move", "x": 100, "y": 200}, {"action": "screenshot", "label": "hover"}]}
//
// The runner replaces w's pointer source with a ScriptedPointer. shots may
// be nil, in which case screenshot steps are skipped.
func LoadScript(jsonData []byte, w *World, shots Screenshotter) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("isometric: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("isometric: parse script: no steps")
	}
	r := &ScriptRunner{
		steps:   s.Steps,
		world:   w,
		pointer: NewScriptedPointer(Vec2{}),
		shots:   shots,
	}
	if w != nil {
		w.SetPointerSource(r.pointer)
	}
	return r, nil
}

// Pointer returns the pointer the runner drives.
func (r *ScriptRunner) Pointer() *ScriptedPointer {
	return r.pointer
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

func (r *ScriptRunner) busy() bool {
	if r.pointer.Pending() > 0 {
		return true
	}
	if r.world == nil {
		return false
	}
	cam := r.world.MainCamera()
	return cam != nil && cam.Scrolling()
}

// Update implements Module. It advances the pointer by one queued position
// and then runs at most one step.
func (r *ScriptRunner) Update(float64) {
	r.pointer.Advance()
	if r.done || r.busy() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	r.run(st)

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.busy() {
		r.done = true
	}
}

func (r *ScriptRunner) run(st scriptStep) {
	switch st.Action {
	case "move":
		r.pointer.InjectMove(st.X, st.Y)
	case "drag":
		r.pointer.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		if r.world == nil {
			return
		}
		if cam := r.world.MainCamera(); cam != nil {
			cam.ScrollTo(st.X, st.Y, st.Duration, nil)
		}
	case "select":
		if r.world != nil {
			r.world.SetSelection(Point{X: int(st.X), Y: int(st.Y)})
		}
	case "screenshot":
		if r.shots != nil {
			r.shots.Screenshot(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		glog.Warningf("isometric: unknown script action %q", st.Action)
	}
}

// Draw implements Module.
func (r *ScriptRunner) Draw(Canvas) {}
