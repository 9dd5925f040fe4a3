package isometric

// ScriptedPointer is a PointerSource driven by queued positions instead of
// the mouse. Each call to Advance consumes one queued position, so a queue
// of n positions plays back over n frames. Coordinates are viewport pixels,
// the same space CursorPointer reports.
type ScriptedPointer struct {
	current Vec2
	queue   []Vec2
}

// NewScriptedPointer creates a pointer resting at start.
func NewScriptedPointer(start Vec2) *ScriptedPointer {
	return &ScriptedPointer{current: start}
}

// Pointer implements PointerSource.
func (p *ScriptedPointer) Pointer() (x, y float64) {
	return p.current.X, p.current.Y
}

// Position returns the current pointer position.
func (p *ScriptedPointer) Position() Vec2 {
	return p.current
}

// Pending returns the number of queued positions not yet consumed.
func (p *ScriptedPointer) Pending() int {
	return len(p.queue)
}

// Advance moves the pointer to the next queued position, if any.
func (p *ScriptedPointer) Advance() {
	if len(p.queue) == 0 {
		return
	}
	p.current = p.queue[0]
	p.queue = p.queue[1:]
}

// InjectMove queues a jump to (x, y). It takes effect on the next Advance.
func (p *ScriptedPointer) InjectMove(x, y float64) {
	p.queue = append(p.queue, Vec2{X: x, Y: y})
}

// InjectDrag queues a straight move from (fromX, fromY) to (toX, toY) with
// linearly interpolated positions in between. The sequence consumes frames
// Advance calls. Minimum frames is 2 (start + end).
func (p *ScriptedPointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectMove(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectMove(toX, toY)
}

// Clear drops all queued positions without moving the pointer.
func (p *ScriptedPointer) Clear() {
	p.queue = p.queue[:0]
}
