package isometric

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// TileImage binds an image id to a source rectangle inside a shared texture.
// The texture is owned by whoever loaded it; a TileImage only references it.
// TileImage is immutable after construction.
type TileImage struct {
	id      uint
	name    string
	texture *ebiten.Image
	region  *ebiten.Image // texture cut to the source rect

	srcX, srcY uint
	srcW, srcH uint
}

// NewTileImage creates a TileImage. name may be empty.
func NewTileImage(name string, id uint, texture *ebiten.Image, srcX, srcY, srcW, srcH uint) *TileImage {
	ti := &TileImage{
		id:      id,
		name:    name,
		texture: texture,
		srcX:    srcX,
		srcY:    srcY,
		srcW:    srcW,
		srcH:    srcH,
	}
	if texture != nil {
		ti.region = texture.SubImage(ti.SourceRect()).(*ebiten.Image)
	}
	return ti
}

// ID returns the image id.
func (ti *TileImage) ID() uint { return ti.id }

// Name returns the optional image name.
func (ti *TileImage) Name() string { return ti.name }

// Texture returns the referenced texture, which may be nil.
func (ti *TileImage) Texture() *ebiten.Image { return ti.texture }

// Region returns the part of the texture this image covers, or nil when no
// texture is bound.
func (ti *TileImage) Region() *ebiten.Image { return ti.region }

// Empty reports whether no texture is bound.
func (ti *TileImage) Empty() bool { return ti.texture == nil }

// SourceRect returns the region of the texture this image covers.
func (ti *TileImage) SourceRect() image.Rectangle {
	x, y := int(ti.srcX), int(ti.srcY)
	return image.Rect(x, y, x+int(ti.srcW), y+int(ti.srcH))
}

// SourceSize returns the source width and height in pixels.
func (ti *TileImage) SourceSize() (w, h uint) {
	return ti.srcW, ti.srcH
}

// DestRect returns where the image is drawn for a tile whose top-left is at
// (x, y). When tileHeight is non-zero, images taller than a tile are shifted
// up so that their bottom edge sits on the tile's bottom edge.
func (ti *TileImage) DestRect(x, y float64, tileHeight uint) Rect {
	var lift float64
	if tileHeight > 0 && ti.srcH > tileHeight {
		lift = float64(ti.srcH - tileHeight)
	}
	return Rect{
		X:      x,
		Y:      y - lift,
		Width:  float64(ti.srcW),
		Height: float64(ti.srcH),
	}
}
