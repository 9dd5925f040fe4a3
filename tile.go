package isometric

// Tile is a single grid cell. A tile holds one image id per layer it takes
// part in. The zero value is an empty, enabled, passable tile.
type Tile struct {
	disabled   bool
	impassable bool
	bound      bool
	imageIDs   map[uint]uint // layer id -> image id
}

// NewTile returns an empty tile with the given flags.
func NewTile(passable, enabled bool) Tile {
	return Tile{impassable: !passable, disabled: !enabled}
}

// Empty reports whether no image has ever been bound to the tile.
func (t *Tile) Empty() bool { return !t.bound }

// Passable reports whether actors may walk over the tile.
func (t *Tile) Passable() bool { return !t.impassable }

// Enabled reports whether the tile is enabled.
func (t *Tile) Enabled() bool { return !t.disabled }

// HasImage reports whether the tile has an image bound for layerID.
func (t *Tile) HasImage(layerID uint) bool {
	_, ok := t.imageIDs[layerID]
	return ok
}

// SetImageID binds imageID to layerID. The tile is no longer empty afterwards.
func (t *Tile) SetImageID(layerID, imageID uint) {
	if t.imageIDs == nil {
		t.imageIDs = make(map[uint]uint, 1)
	}
	t.imageIDs[layerID] = imageID
	t.bound = true
}

// ImageID returns the image bound to layerID, or NoImage.
func (t *Tile) ImageID(layerID uint) uint {
	if id, ok := t.imageIDs[layerID]; ok {
		return id
	}
	return NoImage
}

// ImageIDs returns the layer to image bindings. The returned map MUST NOT be mutated.
func (t *Tile) ImageIDs() map[uint]uint {
	return t.imageIDs
}

// clone returns a copy that does not share its binding map with t.
func (t Tile) clone() Tile {
	if t.imageIDs == nil {
		return t
	}
	ids := make(map[uint]uint, len(t.imageIDs))
	for k, v := range t.imageIDs {
		ids[k] = v
	}
	t.imageIDs = ids
	return t
}
