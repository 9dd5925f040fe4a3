package isometric

// SelectionEvent describes a change of a World's selected tile.
type SelectionEvent struct {
	Previous Point
	Current  Point
	// Cleared is true when the selection was reset to NoSelection.
	Cleared bool
}

// EventStore is the interface for optional ECS integration.
// When set on a World, selection changes are forwarded to it.
type EventStore interface {
	EmitSelection(event SelectionEvent)
}
