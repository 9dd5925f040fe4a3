package isometric

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultPlayerSpeed = 50.0 // world pixels per second
	playerMarkerSize   = 16.0
)

// PlayerMarker is a Module that moves a marker through world-pixel space with
// WASD and draws it as a square in the main camera's viewport.
type PlayerMarker struct {
	world *World
	input InputSource

	// Position is the marker's top-left in world pixels.
	Position Vec2
	// Speed is the movement speed in world pixels per second.
	Speed float64
	// Color is the fill color of the marker.
	Color color.Color
}

// NewPlayerMarker creates a marker at pos. A nil input reads the keyboard.
func NewPlayerMarker(w *World, input InputSource, pos Vec2) *PlayerMarker {
	if input == nil {
		input = KeyboardInput{}
	}
	return &PlayerMarker{
		world:    w,
		input:    input,
		Position: pos,
		Speed:    defaultPlayerSpeed,
		Color:    color.White,
	}
}

// Update implements Module.
func (p *PlayerMarker) Update(dt float64) {
	step := p.Speed * dt
	if p.input.KeyPressed(ebiten.KeyA) {
		p.Position.X -= step
	}
	if p.input.KeyPressed(ebiten.KeyD) {
		p.Position.X += step
	}
	if p.input.KeyPressed(ebiten.KeyW) {
		p.Position.Y -= step
	}
	if p.input.KeyPressed(ebiten.KeyS) {
		p.Position.Y += step
	}
}

// Tile returns the tile the marker's top-left stands on.
func (p *PlayerMarker) Tile() Point {
	return p.world.Transform().WorldPixelsToTile(p.Position)
}

// Draw implements Module.
func (p *PlayerMarker) Draw(c Canvas) {
	if p.world.MainCamera() == nil || !p.world.Transform().Sane() {
		return
	}
	v := p.world.Transform().WorldPixelsToViewportPixels(p.Position)
	c.FillRect(Rect{X: v.X, Y: v.Y, Width: playerMarkerSize, Height: playerMarkerSize}, p.Color)
}
