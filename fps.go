package isometric

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	fpsOverlayWidth  = 100
	fpsOverlayHeight = 32
	fpsRefreshEvery  = 0.5 // seconds
)

// FPSOverlay is a Module that shows the current FPS and TPS at a fixed
// screen position. The readout is redrawn about twice a second.
type FPSOverlay struct {
	X, Y float64

	image   *TileImage
	texture *ebiten.Image
	elapsed float64
	fresh   bool
}

// NewFPSOverlay creates an overlay drawn with its top-left corner at (x, y).
func NewFPSOverlay(x, y float64) *FPSOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0".
	tex := ebiten.NewImage(fpsOverlayWidth, fpsOverlayHeight)
	return &FPSOverlay{
		X:       x,
		Y:       y,
		texture: tex,
		image:   NewTileImage("fps_overlay", NoImage, tex, 0, 0, fpsOverlayWidth, fpsOverlayHeight),
	}
}

// Update implements Module.
func (o *FPSOverlay) Update(dt float64) {
	o.elapsed += dt
	if o.fresh && o.elapsed < fpsRefreshEvery {
		return
	}
	o.elapsed = 0
	o.fresh = true

	o.texture.Clear()
	o.texture.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.texture, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Draw implements Module.
func (o *FPSOverlay) Draw(c Canvas) {
	if !o.fresh {
		return
	}
	c.DrawTile(o.image, Rect{X: o.X, Y: o.Y, Width: fpsOverlayWidth, Height: fpsOverlayHeight}, 1)
}
