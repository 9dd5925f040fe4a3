package isometric

import "github.com/hajimehoshi/ebiten/v2"

// PointerSource reports the pointer position in viewport pixels.
type PointerSource interface {
	Pointer() (x, y float64)
}

// CursorPointer reads the mouse cursor from ebiten.
type CursorPointer struct{}

// Pointer implements PointerSource.
func (CursorPointer) Pointer() (x, y float64) {
	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy)
}

// FixedPointer is a PointerSource that always reports the same position.
// Useful for tests and scripted playback.
type FixedPointer Vec2

// Pointer implements PointerSource.
func (p FixedPointer) Pointer() (x, y float64) {
	return p.X, p.Y
}

// InputSource reports keyboard state to modules.
type InputSource interface {
	KeyPressed(key ebiten.Key) bool
}

// KeyboardInput reads the keyboard from ebiten.
type KeyboardInput struct{}

// KeyPressed implements InputSource.
func (KeyboardInput) KeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}
