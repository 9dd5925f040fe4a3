package isometric

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadAtlas(t *testing.T) {
	tex := ebiten.NewImage(256, 128)
	data := []byte(`{"images": [
		{"id": 0, "name": "selection", "x": 0, "y": 0, "w": 64, "h": 32},
		{"id": 1, "name": "grass1", "x": 64, "y": 0, "w": 64, "h": 32},
		{"id": 99, "name": "bush", "x": 0, "y": 32, "w": 64, "h": 64}
	]}`)

	images, err := LoadAtlas(data, tex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("len(images) = %d, want 3", len(images))
	}
	if images[0].ID() != 0 || images[0].Name() != "selection" {
		t.Errorf("image 0 = %d %q", images[0].ID(), images[0].Name())
	}
	bush := images[2]
	if bush.ID() != 99 || bush.Texture() != tex {
		t.Errorf("bush = %d, texture shared = %t", bush.ID(), bush.Texture() == tex)
	}
	r := bush.SourceRect()
	if r.Min.X != 0 || r.Min.Y != 32 || r.Dx() != 64 || r.Dy() != 64 {
		t.Errorf("bush SourceRect = %v", r)
	}
}

func TestLoadAtlasErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `not json`, "parse"},
		{"no images", `{"images": []}`, "no images"},
		{"missing id", `{"images": [{"name": "a", "w": 1, "h": 1}]}`, "no id"},
		{"zero size", `{"images": [{"id": 1, "name": "a", "w": 0, "h": 1}]}`, "zero size"},
		{"duplicate", `{"images": [{"id": 1, "w": 1, "h": 1}, {"id": 1, "w": 1, "h": 1}]}`, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAtlas([]byte(tt.data), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestTileMapAddAtlas(t *testing.T) {
	m := NewTileMap(4, 4, 64, 32)
	tex := ebiten.NewImage(128, 32)
	err := m.AddAtlas([]byte(`{"images": [
		{"id": 1, "name": "a", "x": 0, "y": 0, "w": 64, "h": 32},
		{"id": 2, "name": "b", "x": 64, "y": 0, "w": 64, "h": 32}
	]}`), tex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Image(1) == nil || m.Image(2) == nil {
		t.Error("atlas images not registered")
	}

	if err := m.AddAtlas([]byte(`{}`), tex); err == nil {
		t.Error("expected error for empty atlas")
	}
}
