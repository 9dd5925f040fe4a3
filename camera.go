package isometric

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is a view into the tile map: a viewport rectangle on screen and a
// continuous position in tile space. The zero value is an enabled camera at
// (0, 0) with an empty viewport.
type Camera struct {
	viewportX, viewportY uint
	width, height        uint

	// Position in tile space, never negative.
	x, y float64

	disabled bool

	scrollTween *scrollAnim
}

// NewCamera creates a Camera with the given viewport and starting tile position.
func NewCamera(viewportX, viewportY, width, height uint, startX, startY float64) *Camera {
	c := &Camera{}
	c.SetViewport(viewportX, viewportY, width, height)
	c.SetPosition(startX, startY)
	return c
}

// Enable turns the camera on or off. Only enabled cameras are considered
// when a World picks its main camera.
func (c *Camera) Enable(enable bool) {
	c.disabled = !enable
}

// Disable is shorthand for Enable(false).
func (c *Camera) Disable() {
	c.Enable(false)
}

// Enabled reports whether the camera is enabled.
func (c *Camera) Enabled() bool {
	return !c.disabled
}

// ViewportX returns the horizontal screen offset of the viewport in pixels.
func (c *Camera) ViewportX() uint { return c.viewportX }

// ViewportY returns the vertical screen offset of the viewport in pixels.
func (c *Camera) ViewportY() uint { return c.viewportY }

// Width returns the viewport width in pixels.
func (c *Camera) Width() uint { return c.width }

// Height returns the viewport height in pixels.
func (c *Camera) Height() uint { return c.height }

// Viewport returns the screen-space rectangle this camera renders into.
func (c *Camera) Viewport() Rect {
	return Rect{
		X:      float64(c.viewportX),
		Y:      float64(c.viewportY),
		Width:  float64(c.width),
		Height: float64(c.height),
	}
}

// SetViewport moves the viewport to (x, y). Width and height are only
// replaced when the given value is greater than zero, so callers can move a
// viewport without resizing it.
func (c *Camera) SetViewport(x, y, width, height uint) {
	c.viewportX = x
	c.viewportY = y
	if width > 0 {
		c.width = width
	}
	if height > 0 {
		c.height = height
	}
}

// X returns the camera's horizontal tile position.
func (c *Camera) X() float64 { return c.x }

// Y returns the camera's vertical tile position.
func (c *Camera) Y() float64 { return c.y }

// SetPosition sets both tile coordinates, clamping each to zero.
func (c *Camera) SetPosition(x, y float64) {
	c.SetX(x)
	c.SetY(y)
}

// SetX sets the horizontal tile position, clamped to zero. There is no upper
// bound here; callers clamp against the map extent.
func (c *Camera) SetX(x float64) {
	c.x = math.Max(x, 0)
}

// SetY sets the vertical tile position, clamped to zero.
func (c *Camera) SetY(y float64) {
	c.y = math.Max(y, 0)
}

// ScrollTo animates the camera to the given tile position over duration seconds.
// Any manual SetPosition while scrolling is overwritten on the next Update.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.x), float32(math.Max(x, 0)), duration, easeFn),
		tweenY: gween.New(float32(c.y), float32(math.Max(y, 0)), duration, easeFn),
	}
}

// ScrollToTile scrolls so that the given tile is centered in the viewport.
// tileWidth and tileHeight are the map's tile size in pixels.
func (c *Camera) ScrollToTile(p Point, tileWidth, tileHeight uint, duration float32, easeFn ease.TweenFunc) {
	x := float64(p.X)
	y := float64(p.Y)
	if tileWidth > 0 {
		x -= float64(c.width) / float64(tileWidth) / 2
	}
	if tileHeight > 0 {
		// Rows are drawn at half-height pitch.
		y -= float64(c.height) / (float64(tileHeight) / 2) / 2
	}
	c.ScrollTo(x, y, duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// StopScroll cancels an in-progress ScrollTo, leaving the camera where it is.
func (c *Camera) StopScroll() {
	c.scrollTween = nil
}

// Update advances an active scroll animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.SetX(float64(val))
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.SetY(float64(val))
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}
