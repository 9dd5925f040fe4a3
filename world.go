package isometric

import (
	"math"

	"github.com/golang/glog"
)

// World ties cameras, a tile map and a Transform together. Each frame the
// driver calls Update and then Render; Render draws the tiles visible to the
// main camera, layer by layer, and selects the tile under the pointer.
//
// A World is not safe for concurrent use. Render writes lazily chosen default
// images back into the map's tiles.
type World struct {
	cameras   []*Camera
	tileMap   *TileMap
	transform *Transform
	selected  Point

	pointer PointerSource
	store   EventStore

	updateCalled bool
	debug        bool
	stats        RenderStats
}

// NewWorld creates a World rendering m through mainCamera. mainCamera may be
// nil and added later with AddCamera.
func NewWorld(m *TileMap, mainCamera *Camera) *World {
	w := &World{
		tileMap:   m,
		transform: NewTransform(mainCamera, m),
		selected:  NoSelection,
		pointer:   CursorPointer{},
	}
	if mainCamera != nil {
		w.cameras = append(w.cameras, mainCamera)
	}
	return w
}

// AddCamera appends cam to the camera list.
func (w *World) AddCamera(cam *Camera) {
	if cam == nil {
		return
	}
	w.cameras = append(w.cameras, cam)
}

// RemoveCamera removes cam from the camera list.
func (w *World) RemoveCamera(cam *Camera) {
	for i, c := range w.cameras {
		if c == cam {
			w.cameras = append(w.cameras[:i], w.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the camera list. The returned slice MUST NOT be mutated.
func (w *World) Cameras() []*Camera {
	return w.cameras
}

// MainCamera returns the first enabled camera, or nil.
func (w *World) MainCamera() *Camera {
	for _, c := range w.cameras {
		if c.Enabled() {
			return c
		}
	}
	return nil
}

// Map returns the tile map.
func (w *World) Map() *TileMap { return w.tileMap }

// SetMap replaces the tile map. The transform picks it up on the next Update.
func (w *World) SetMap(m *TileMap) { w.tileMap = m }

// Transform returns the world's transform. Its bindings are refreshed by Update.
func (w *World) Transform() *Transform { return w.transform }

// SetPointerSource sets where Render reads the pointer from. nil restores
// the mouse cursor.
func (w *World) SetPointerSource(p PointerSource) {
	if p == nil {
		p = CursorPointer{}
	}
	w.pointer = p
}

// SetEventStore sets the optional receiver of selection changes.
func (w *World) SetEventStore(store EventStore) {
	w.store = store
}

// SetDebugMode enables or disables per-frame render stats logging.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (w *World) DebugMode() bool { return w.debug }

// Stats returns the counters of the last Render.
func (w *World) Stats() RenderStats { return w.stats }

// Update binds the transform to the current main camera and map. It must be
// called once before every Render.
func (w *World) Update() {
	w.transform.SetCamera(w.MainCamera())
	w.transform.SetMap(w.tileMap)
	w.updateCalled = true
}

// visibleWindow returns the exclusive upper tile bounds that may intersect
// cam's viewport, clamped to the map size. The estimate errs on the large side.
func (w *World) visibleWindow(cam *Camera) (maxX, maxY int) {
	m := w.tileMap
	tw := float64(m.TileWidth())
	th := float64(m.TileHeight())

	horiz := cam.X() + float64(cam.Width()+m.TileWidth())/(tw/2) + 1
	vert := cam.Y() + float64(cam.Height()+m.TileHeight())/(th/2) + 1

	maxX = int(math.Min(horiz, float64(m.Width())))
	maxY = int(math.Min(vert, float64(m.Height())))
	return maxX, maxY
}

// Render draws the tiles visible to the main camera onto c and updates the
// selection from the pointer. Layers are drawn in registration order, and
// the selection overlay is drawn right after the first layer.
func (w *World) Render(c Canvas) {
	if !w.updateCalled {
		glog.Warningf("isometric: Render called without Update; transform may be stale")
	}
	defer func() { w.updateCalled = false }()

	w.stats = RenderStats{}

	cam := w.MainCamera()
	if cam == nil {
		return
	}
	m := w.tileMap
	if m == nil || m.TileWidth() == 0 || m.TileHeight() == 0 {
		glog.Warningf("isometric: Render skipped, map missing or has zero tile size")
		return
	}

	maxX, maxY := w.visibleWindow(cam)
	startX, startY := int(cam.X()), int(cam.Y())

	px, py := w.pointer.Pointer()
	pointer := Vec2{X: px, Y: py}

	viewport := cam.Viewport()
	c.SetClip(&viewport)

	for i := range m.Layers() {
		layerID := uint(i)
		for ty := startY; ty < maxY; ty++ {
			for tx := startX; tx < maxX; tx++ {
				w.stats.TilesIterated++

				img := m.ResolveImage(tx, ty, layerID)
				if img == nil || img.Empty() {
					continue
				}

				p := Point{X: tx, Y: ty}
				pos := w.transform.TileToViewportPixels(p)

				// Later hits overwrite earlier ones.
				if w.transform.TileHitTestByViewport(pos, pointer) {
					w.setSelection(p)
				}

				c.DrawTile(img, img.DestRect(pos.X, pos.Y, m.TileHeight()), 1)
				w.stats.TilesDrawn++
			}
		}

		if i == 0 {
			w.renderSelection(c, cam)
		}
		w.stats.Layers++
	}

	c.SetClip(nil)
	w.debugLog()
}

// renderSelection draws the map's selection image over the selected tile at
// reduced opacity when the tile is within the camera's viewport.
func (w *World) renderSelection(c Canvas, cam *Camera) {
	if !w.HasSelection() || !w.tileMap.HasSelectionImage() {
		return
	}
	m := w.tileMap
	img := m.SelectionImage()
	if img.Empty() {
		return
	}

	pos := w.transform.TileToViewportPixels(w.selected)
	bounds := Rect{X: pos.X, Y: pos.Y, Width: float64(m.TileWidth()), Height: float64(m.TileHeight())}
	if !bounds.Intersects(cam.Viewport()) {
		return
	}

	c.DrawTile(img, img.DestRect(pos.X, pos.Y, m.TileHeight()), selectionAlpha)
	w.stats.Selection = true
}

// --- Selection ---

// Selection returns the selected tile, or NoSelection.
func (w *World) Selection() Point {
	return w.selected
}

// HasSelection reports whether a tile is selected.
func (w *World) HasSelection() bool {
	return w.selected != NoSelection
}

// SetSelection selects tile p.
func (w *World) SetSelection(p Point) {
	w.setSelection(p)
}

// ResetSelection clears the selection.
func (w *World) ResetSelection() {
	w.setSelection(NoSelection)
}

func (w *World) setSelection(p Point) {
	if p == w.selected {
		return
	}
	prev := w.selected
	w.selected = p
	if w.store != nil {
		w.store.EmitSelection(SelectionEvent{
			Previous: prev,
			Current:  p,
			Cleared:  p == NoSelection,
		})
	}
}

// --- Viewport capacity ---

// MaxHorizontalTiles returns how many whole tiles fit across the main
// camera's viewport, or 0 without a main camera.
func (w *World) MaxHorizontalTiles() uint {
	cam := w.MainCamera()
	if cam == nil || w.tileMap == nil || w.tileMap.TileWidth() == 0 {
		return 0
	}
	return cam.Width() / w.tileMap.TileWidth()
}

// MaxVerticalTiles returns how many half-height rows fit down the main
// camera's viewport, rounded to the nearest row, or 0 without a main camera.
func (w *World) MaxVerticalTiles() uint {
	cam := w.MainCamera()
	if cam == nil || w.tileMap == nil || w.tileMap.TileHeight() == 0 {
		return 0
	}
	return uint(math.Round(float64(cam.Height()) / (float64(w.tileMap.TileHeight()) / 2)))
}
