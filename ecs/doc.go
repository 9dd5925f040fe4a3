// Package ecs provides ECS adapters for isometric's selection events.
//
// [NewDonburiStore] forwards every selection change of a World into a
// [Donburi] world as a typed event. Subscribe to [SelectionEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	isoWorld.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
