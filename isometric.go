package isometric

import "math"

// NoImage is the reserved image id meaning "no image bound".
const NoImage uint = 0

// NoLayer is returned by TileMap.LayerID when a layer name is not registered.
const NoLayer uint = math.MaxUint

// NoSelection is the selected tile value of a World with nothing selected.
var NoSelection = Point{X: math.MaxInt, Y: math.MaxInt}

// selectionAlpha is the opacity of the selection overlay (90/255).
const selectionAlpha = 90.0 / 255.0

// Point is a discrete tile coordinate (column, row).
type Point struct {
	X, Y int
}

// Vec2 is a continuous pixel coordinate in world or viewport space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}
