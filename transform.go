package isometric

import (
	"math"

	"github.com/golang/glog"
)

// Transform converts between tile, world-pixel and viewport-pixel space for
// a staggered isometric map. It holds no state beyond the camera and map it
// is bound to. Without both, every conversion returns the zero value.
//
// Tile rows are drawn at half-height pitch and even rows are shifted half a
// tile to the left, so diamonds interlock:
//
//	world.x = tx*tileW - (ty even ? tileW/2 : 0)
//	world.y = ty*tileH/2 - tileH/2
type Transform struct {
	camera  *Camera
	tileMap *TileMap

	warned bool // insane state already logged
}

// NewTransform creates a Transform bound to cam and m. Either may be nil.
func NewTransform(cam *Camera, m *TileMap) *Transform {
	return &Transform{camera: cam, tileMap: m}
}

// Camera returns the bound camera.
func (t *Transform) Camera() *Camera { return t.camera }

// SetCamera binds cam and returns the previously bound camera.
func (t *Transform) SetCamera(cam *Camera) *Camera {
	old := t.camera
	t.camera = cam
	return old
}

// Map returns the bound tile map.
func (t *Transform) Map() *TileMap { return t.tileMap }

// SetMap binds m and returns the previously bound map.
func (t *Transform) SetMap(m *TileMap) *TileMap {
	old := t.tileMap
	t.tileMap = m
	return old
}

// Sane reports whether both a camera and a map are bound. The first failure
// after a sane period is logged.
func (t *Transform) Sane() bool {
	sane := t.camera != nil && t.tileMap != nil
	if !sane && !t.warned {
		glog.Warningf("isometric: transform lacks sanity (camera bound: %t, map bound: %t)",
			t.camera != nil, t.tileMap != nil)
	}
	t.warned = !sane
	return sane
}

func (t *Transform) tileSize() (w, h float64) {
	return float64(t.tileMap.TileWidth()), float64(t.tileMap.TileHeight())
}

// TileToWorldPixels returns the top-left pixel of tile p's bounding box,
// relative to the top-left of the whole map.
func (t *Transform) TileToWorldPixels(p Point) Vec2 {
	if !t.Sane() {
		return Vec2{}
	}
	tw, th := t.tileSize()

	x := float64(p.X) * tw
	if p.Y%2 == 0 {
		x -= tw / 2
	}
	// Shift the map up half a row so row 0 does not start with a gap.
	y := float64(p.Y)*(th/2) - th/2

	return Vec2{X: x, Y: y}
}

// diagonalNeighbors returns the four tiles sharing an edge with p, in the
// order up-left, up-right, down-left, down-right. Which columns touch p
// depends on whether p's row is shifted.
func diagonalNeighbors(p Point) [4]Point {
	left, right := p.X, p.X+1
	if p.Y%2 == 0 {
		left, right = p.X-1, p.X
	}
	return [4]Point{
		{left, p.Y - 1},
		{right, p.Y - 1},
		{left, p.Y + 1},
		{right, p.Y + 1},
	}
}

// WorldPixelsToTile returns the tile whose diamond contains the world-pixel
// point v. The nearest tile centre is used as an estimate, then its four
// diagonal neighbours are hit tested; the estimate is returned when none of
// them contains v.
func (t *Transform) WorldPixelsToTile(v Vec2) Point {
	if !t.Sane() {
		return Point{}
	}
	tw, th := t.tileSize()
	if tw == 0 || th == 0 {
		return Point{}
	}

	// Tile centres sit at (tx*tw + (odd ? tw/2 : 0), ty*th/2).
	y := int(math.Floor(v.Y/(th/2) + 0.5))
	cx := v.X
	if y%2 != 0 {
		cx -= tw / 2
	}
	x := int(math.Floor(cx/tw + 0.5))
	estimate := Point{X: x, Y: y}

	for _, n := range diagonalNeighbors(estimate) {
		origin := t.TileToWorldPixels(n)
		if diamondContains(v.X-origin.X, v.Y-origin.Y, tw, th) {
			return n
		}
	}
	return estimate
}

// TileToViewportPixels returns where tile p is drawn relative to the screen:
// its world-pixel position minus the camera position, offset by the viewport.
func (t *Transform) TileToViewportPixels(p Point) Vec2 {
	if !t.Sane() {
		return Vec2{}
	}
	return t.WorldPixelsToViewportPixels(t.TileToWorldPixels(p))
}

// WorldPixelsToViewportPixels converts a world-pixel point to viewport pixels.
func (t *Transform) WorldPixelsToViewportPixels(v Vec2) Vec2 {
	if !t.Sane() {
		return Vec2{}
	}
	return v.Sub(t.cameraOrigin()).Add(t.viewportOffset())
}

// ViewportPixelsToTile returns the tile under a viewport-pixel point, such as
// the mouse cursor.
func (t *Transform) ViewportPixelsToTile(v Vec2) Point {
	if !t.Sane() {
		return Point{}
	}
	return t.WorldPixelsToTile(v.Sub(t.viewportOffset()).Add(t.cameraOrigin()))
}

// cameraOrigin returns the camera position in world pixels.
func (t *Transform) cameraOrigin() Vec2 {
	tw, th := t.tileSize()
	return Vec2{X: t.camera.X() * tw, Y: t.camera.Y() * (th / 2)}
}

func (t *Transform) viewportOffset() Vec2 {
	return Vec2{X: float64(t.camera.ViewportX()), Y: float64(t.camera.ViewportY())}
}

// TileHitTest reports whether the viewport-pixel point v lies inside tile p.
func (t *Transform) TileHitTest(p Point, v Vec2) bool {
	return t.TileHitTestByViewport(t.TileToViewportPixels(p), v)
}

// TileHitTestByViewport reports whether v lies inside the diamond of a tile
// whose bounding box starts at the viewport-pixel point origin.
func (t *Transform) TileHitTestByViewport(origin, v Vec2) bool {
	if !t.Sane() {
		return false
	}
	tw, th := t.tileSize()
	return diamondContains(v.X-origin.X, v.Y-origin.Y, tw, th)
}

// diamondContains tests a tile-local point against a rasterised diamond.
// Rows widen by 4 pixels (2 per side) from a 2 pixel top row, then narrow
// the same way toward the bottom. Both row bounds are shifted one pixel left.
func diamondContains(lx, ly, tw, th float64) bool {
	var rowWidth float64
	if ly < th/2 {
		rowWidth = 2 + ly*4
	} else {
		rowWidth = 2 + (th-ly-1)*4
	}
	rowStart := tw/2 - rowWidth/2
	rowEnd := rowStart + rowWidth
	return lx >= rowStart-1 && lx < rowEnd-1
}
