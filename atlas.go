package isometric

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// jsonAtlasImage is one entry of an atlas description.
type jsonAtlasImage struct {
	ID   *uint  `json:"id"`
	Name string `json:"name"`
	X    uint   `json:"x"`
	Y    uint   `json:"y"`
	W    uint   `json:"w"`
	H    uint   `json:"h"`
}

type jsonAtlas struct {
	Images []jsonAtlasImage `json:"images"`
}

// LoadAtlas parses an atlas description and returns one TileImage per entry,
// all referencing texture. The format is:
//
//	{"images": [{"id": 1, "name": "grass1", "x": 0, "y": 0, "w": 64, "h": 32}]}
//
// Every entry needs an id and a non-zero size, and ids must be unique.
func LoadAtlas(jsonData []byte, texture *ebiten.Image) ([]*TileImage, error) {
	var atlas jsonAtlas
	if err := json.Unmarshal(jsonData, &atlas); err != nil {
		return nil, fmt.Errorf("isometric: failed to parse atlas JSON: %w", err)
	}
	if len(atlas.Images) == 0 {
		return nil, fmt.Errorf("isometric: atlas JSON has no images")
	}

	seen := make(map[uint]bool, len(atlas.Images))
	images := make([]*TileImage, 0, len(atlas.Images))
	for i, e := range atlas.Images {
		if e.ID == nil {
			return nil, fmt.Errorf("isometric: atlas image %d (%q) has no id", i, e.Name)
		}
		if e.W == 0 || e.H == 0 {
			return nil, fmt.Errorf("isometric: atlas image %d (%q) has zero size", *e.ID, e.Name)
		}
		if seen[*e.ID] {
			return nil, fmt.Errorf("isometric: duplicate atlas image id %d", *e.ID)
		}
		seen[*e.ID] = true
		images = append(images, NewTileImage(e.Name, *e.ID, texture, e.X, e.Y, e.W, e.H))
	}
	return images, nil
}

// AddAtlas parses an atlas description with LoadAtlas and registers every
// image it describes.
func (m *TileMap) AddAtlas(jsonData []byte, texture *ebiten.Image) error {
	images, err := LoadAtlas(jsonData, texture)
	if err != nil {
		return err
	}
	m.AddImages(images...)
	return nil
}
