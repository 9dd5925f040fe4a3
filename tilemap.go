package isometric

import (
	"github.com/golang/glog"
)

// TileMap is a fixed-size grid of tiles split into named layers. Layers are
// drawn in the order they were added. Each tile holds one image id per layer.
type TileMap struct {
	width, height         uint // in tiles
	tileWidth, tileHeight uint // in pixels

	images         map[uint]*TileImage
	selectionImage uint
	tiles          []Tile // row-major, len = width * height
	layers         []string
	layerDefaults  map[string][]uint

	rng RandomSource
}

// NewTileMap creates a map of width x height tiles, each tileWidth x
// tileHeight pixels. All tiles start empty.
func NewTileMap(width, height, tileWidth, tileHeight uint) *TileMap {
	return &TileMap{
		width:          width,
		height:         height,
		tileWidth:      tileWidth,
		tileHeight:     tileHeight,
		images:         make(map[uint]*TileImage),
		selectionImage: NoLayer,
		tiles:          make([]Tile, width*height),
		layerDefaults:  make(map[string][]uint),
		rng:            processRandom{},
	}
}

// Width returns the number of tiles per row.
func (m *TileMap) Width() uint { return m.width }

// Height returns the number of rows.
func (m *TileMap) Height() uint { return m.height }

// TileWidth returns the width of a single tile in pixels.
func (m *TileMap) TileWidth() uint { return m.tileWidth }

// TileHeight returns the height of a single tile in pixels.
func (m *TileMap) TileHeight() uint { return m.tileHeight }

// SetRandomSource replaces the generator used to pick layer default images.
// A nil source restores the process-wide generator.
func (m *TileMap) SetRandomSource(rng RandomSource) {
	if rng == nil {
		rng = processRandom{}
	}
	m.rng = rng
}

// --- Images ---

// AddImage registers img under its id and returns the id. Registering a
// second image with the same id replaces the first.
func (m *TileMap) AddImage(img *TileImage) uint {
	if img == nil {
		glog.Warningf("isometric: AddImage called with nil image")
		return NoImage
	}
	m.images[img.ID()] = img
	if glog.V(2) {
		glog.Infof("isometric: registered image %d %q", img.ID(), img.Name())
	}
	return img.ID()
}

// AddImages registers every image in imgs.
func (m *TileMap) AddImages(imgs ...*TileImage) {
	for _, img := range imgs {
		m.AddImage(img)
	}
}

// Image returns the image registered under id, or nil.
func (m *TileMap) Image(id uint) *TileImage {
	return m.images[id]
}

// SetSelectionImage designates the image drawn under the selected tile.
// The id does not have to be registered yet.
func (m *TileMap) SetSelectionImage(id uint) {
	m.selectionImage = id
}

// HasSelectionImage reports whether the designated selection image is registered.
func (m *TileMap) HasSelectionImage() bool {
	_, ok := m.images[m.selectionImage]
	return ok
}

// SelectionImage returns the selection image, or nil when it is not registered.
func (m *TileMap) SelectionImage() *TileImage {
	return m.images[m.selectionImage]
}

// --- Layers ---

// AddLayer appends a layer and returns its id. Adding an existing name
// returns the existing id.
func (m *TileMap) AddLayer(name string) uint {
	if id := m.LayerID(name); id != NoLayer {
		return id
	}
	m.layers = append(m.layers, name)
	if glog.V(2) {
		glog.Infof("isometric: added layer %q as %d", name, len(m.layers)-1)
	}
	return uint(len(m.layers) - 1)
}

// Layers returns the layer names in draw order. The returned slice MUST NOT be mutated.
func (m *TileMap) Layers() []string {
	return m.layers
}

// LayerID returns the id of the named layer, or NoLayer.
func (m *TileMap) LayerID(name string) uint {
	for i, l := range m.layers {
		if l == name {
			return uint(i)
		}
	}
	return NoLayer
}

// LayerName returns the name of layer id, or "" when out of range.
func (m *TileMap) LayerName(id uint) string {
	if id >= uint(len(m.layers)) {
		return ""
	}
	return m.layers[id]
}

// AddLayerDefaultImage adds imageID to the pool of images used to fill empty
// tiles in the named layer.
func (m *TileMap) AddLayerDefaultImage(layer string, imageID uint) {
	m.layerDefaults[layer] = append(m.layerDefaults[layer], imageID)
}

// LayerDefaultImages returns the default image pool of a layer. The returned
// slice MUST NOT be mutated.
func (m *TileMap) LayerDefaultImages(layer string) []uint {
	return m.layerDefaults[layer]
}

// LayerHasDefaultImages reports whether the named layer has a default pool.
func (m *TileMap) LayerHasDefaultImages(layer string) bool {
	return len(m.layerDefaults[layer]) > 0
}

// LayerHasDefaultImagesByID is LayerHasDefaultImages keyed by layer id.
func (m *TileMap) LayerHasDefaultImagesByID(id uint) bool {
	return m.LayerHasDefaultImages(m.LayerName(id))
}

// RandomLayerDefaultImage picks an image id uniformly from the layer's
// default pool. Returns NoImage when the pool is empty. Successive calls may
// return different ids.
func (m *TileMap) RandomLayerDefaultImage(layer string) uint {
	pool := m.layerDefaults[layer]
	if len(pool) == 0 {
		return NoImage
	}
	return pool[m.rng.IntN(len(pool))]
}

// RandomLayerDefaultImageByID is RandomLayerDefaultImage keyed by layer id.
func (m *TileMap) RandomLayerDefaultImageByID(id uint) uint {
	return m.RandomLayerDefaultImage(m.LayerName(id))
}

// --- Tiles ---

func (m *TileMap) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || uint(x) >= m.width || uint(y) >= m.height {
		return 0, false
	}
	return x + y*int(m.width), true
}

// SetTile stores a copy of t at (x, y) and returns a pointer to the stored
// tile, or nil when (x, y) is outside the map.
func (m *TileMap) SetTile(x, y int, t Tile) *Tile {
	i, ok := m.index(x, y)
	if !ok {
		return nil
	}
	m.tiles[i] = t.clone()
	return &m.tiles[i]
}

// Tile returns the tile at (x, y), or nil when (x, y) is outside the map.
func (m *TileMap) Tile(x, y int) *Tile {
	i, ok := m.index(x, y)
	if !ok {
		return nil
	}
	return &m.tiles[i]
}

// Tiles returns the row-major tile array. The returned slice MUST NOT be resized.
func (m *TileMap) Tiles() []Tile {
	return m.tiles
}

// ResolveImage returns the image to draw for the tile at (x, y) in layerID.
// A tile's own binding wins; otherwise a random default of the layer is
// chosen and written back into the tile so later frames draw the same image.
// Returns nil when there is nothing to draw.
//
// This is the only render-time path that mutates tiles and must be called
// from the goroutine that renders the map.
func (m *TileMap) ResolveImage(x, y int, layerID uint) *TileImage {
	t := m.Tile(x, y)
	if t == nil {
		return nil
	}
	if t.HasImage(layerID) {
		return m.images[t.ImageID(layerID)]
	}
	if !m.LayerHasDefaultImagesByID(layerID) {
		return nil
	}
	id := m.RandomLayerDefaultImageByID(layerID)
	img := m.images[id]
	if img == nil {
		glog.Warningf("isometric: default image %d of layer %q is not registered", id, m.LayerName(layerID))
		return nil
	}
	t.SetImageID(layerID, id)
	return img
}
