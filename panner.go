package isometric

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultPanSpeed = 50.0 // tiles per second

// CameraPanner is a Module that pans the world's main camera with the arrow
// keys. Panning stops at the map edge so the viewport never scrolls past it.
type CameraPanner struct {
	world *World
	input InputSource

	// Speed is the horizontal pan speed in tiles per second.
	Speed float64
	// VerticalFactor scales Speed for vertical panning. Rows are half-height,
	// so the default of 2 makes both axes cover the same pixels per second.
	VerticalFactor float64
}

// NewCameraPanner creates a panner for w reading keys from input. A nil
// input reads the keyboard.
func NewCameraPanner(w *World, input InputSource) *CameraPanner {
	if input == nil {
		input = KeyboardInput{}
	}
	return &CameraPanner{
		world:          w,
		input:          input,
		Speed:          defaultPanSpeed,
		VerticalFactor: 2,
	}
}

// Update implements Module.
func (p *CameraPanner) Update(dt float64) {
	cam := p.world.MainCamera()
	m := p.world.Map()
	if cam == nil || m == nil {
		return
	}

	dx := p.Speed * dt
	dy := p.Speed * p.VerticalFactor * dt

	maxX := float64(int(m.Width()) - int(p.world.MaxHorizontalTiles()) - 1)
	maxY := float64(int(m.Height()) - int(p.world.MaxVerticalTiles()) - 1)

	if p.input.KeyPressed(ebiten.KeyArrowLeft) {
		cam.SetX(cam.X() - dx)
	}
	if p.input.KeyPressed(ebiten.KeyArrowRight) {
		cam.SetX(math.Min(cam.X()+dx, maxX))
	}
	if p.input.KeyPressed(ebiten.KeyArrowUp) {
		cam.SetY(cam.Y() - dy)
	}
	if p.input.KeyPressed(ebiten.KeyArrowDown) {
		cam.SetY(math.Min(cam.Y()+dy, maxY))
	}
}

// Draw implements Module.
func (p *CameraPanner) Draw(Canvas) {}
