package isometric

// Module is a unit of game behaviour driven by Game. Update runs at the fixed
// tick rate; Draw runs after the world has been rendered each frame.
type Module interface {
	Update(dt float64)
	Draw(c Canvas)
}
