// Package isometric renders staggered isometric tile maps with [Ebitengine]
// and works out which tile sits under the pointer.
//
// Three coordinate spaces are involved:
//
//   - tile space: discrete (column, row) grid coordinates ([Point])
//   - world pixels: continuous pixels from the top-left of the whole map ([Vec2])
//   - viewport pixels: continuous pixels from the top-left of a camera's viewport
//
// [Transform] converts between them and hit tests tile diamonds. [World]
// combines a [TileMap], one or more [Camera]s and a Transform: every frame it
// draws only the tiles that can be visible to the main camera and tracks the
// selected tile.
//
// # Quick start
//
//	m := isometric.NewTileMap(1024, 1024, 64, 32)
//	grass := m.AddLayer("grass")
//	m.AddImage(isometric.NewTileImage("grass1", 1, texture, 0, 0, 64, 32))
//	m.AddLayerDefaultImage("grass", 1)
//	m.SetTile(3, 4, isometric.NewTile(true, true)).SetImageID(grass, 1)
//
//	cam := isometric.NewCamera(0, 0, 1280, 720, 0, 0)
//	world := isometric.NewWorld(m, cam)
//
//	game := isometric.NewGame(world, isometric.RunConfig{Title: "Demo"},
//		isometric.NewCameraPanner(world, nil))
//	if err := isometric.Run(game); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself and call [World.Update]
// followed by [World.Render] once per frame:
//
//	func (g *MyGame) Draw(screen *ebiten.Image) {
//		g.world.Update()
//		g.world.Render(g.canvas.Reset(screen))
//	}
//
// # Layers and default images
//
// Layers are drawn in the order they are added. A tile can bind a different
// image in every layer. Tiles without a binding in a layer that has a
// default image pool get a random image from the pool the first time they
// are drawn; the choice is stored in the tile so it stays stable.
//
// # Logging
//
// Warnings (rendering without updating, a transform without camera or map)
// and debug stats go through [glog]. Stats are logged every frame while
// [World.SetDebugMode] is on.
//
// [Ebitengine]: https://ebitengine.org
// [glog]: https://github.com/golang/glog
package isometric
