package isometric

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas receives the draw calls of a render pass.
type Canvas interface {
	// SetClip restricts drawing to clip. A nil clip removes the restriction.
	SetClip(clip *Rect)
	// DrawTile copies img's source rectangle to dst at the given opacity.
	DrawTile(img *TileImage, dst Rect, alpha float32)
	// FillRect fills r with a solid color.
	FillRect(r Rect, c color.Color)
}

// ImageCanvas draws onto an ebiten image.
type ImageCanvas struct {
	target *ebiten.Image
	clip   *ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewImageCanvas returns a Canvas that draws onto target.
func NewImageCanvas(target *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{target: target}
}

// Reset points the canvas at a new target and clears any clip.
func (c *ImageCanvas) Reset(target *ebiten.Image) *ImageCanvas {
	c.target = target
	c.clip = nil
	return c
}

func (c *ImageCanvas) dst() *ebiten.Image {
	if c.clip != nil {
		return c.clip
	}
	return c.target
}

// SetClip implements Canvas. Sub-images share the target's coordinate
// space, so draw positions need no adjustment.
func (c *ImageCanvas) SetClip(clip *Rect) {
	if clip == nil || c.target == nil {
		c.clip = nil
		return
	}
	r := image.Rect(int(clip.X), int(clip.Y), int(clip.X+clip.Width), int(clip.Y+clip.Height))
	c.clip = c.target.SubImage(r).(*ebiten.Image)
}

// DrawTile implements Canvas. Images without a texture are skipped.
func (c *ImageCanvas) DrawTile(img *TileImage, dst Rect, alpha float32) {
	if c.target == nil || img == nil || img.Empty() {
		return
	}
	op := &c.op
	op.GeoM.Reset()
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.Reset()
	op.ColorScale.ScaleAlpha(alpha)
	c.dst().DrawImage(img.Region(), op)
}

// FillRect implements Canvas.
func (c *ImageCanvas) FillRect(r Rect, clr color.Color) {
	if c.target == nil {
		return
	}
	op := &c.op
	op.GeoM.Reset()
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(clr)
	c.dst().DrawImage(ensureWhitePixel(), op)
}

// whitePixel is a 1x1 white image scaled and tinted for solid fills.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}
