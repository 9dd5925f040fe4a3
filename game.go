package isometric

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	TPS     int  // ticks per second; 0 keeps ebiten's default of 60
	ShowFPS bool // add an FPSOverlay in the top-left corner

	// ScreenshotDir receives Game.Screenshot captures. Defaults to "screenshots".
	ScreenshotDir string

	// DebugKeys toggle the world's debug mode when pressed. Empty disables
	// the toggle.
	DebugKeys []ebiten.Key
}

const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 720
)

// withDefaults returns a copy of cfg with zero sizes replaced.
func (cfg RunConfig) withDefaults() RunConfig {
	if cfg.Width == 0 {
		cfg.Width = defaultWindowWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultWindowHeight
	}
	if cfg.Title == "" {
		cfg.Title = "isometric"
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	return cfg
}

func (cfg RunConfig) validate() error {
	if cfg.Width < 0 || cfg.Height < 0 {
		return fmt.Errorf("isometric: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TPS < 0 {
		return fmt.Errorf("isometric: invalid TPS %d", cfg.TPS)
	}
	return nil
}

// Game drives a World and its modules as an ebiten.Game. Each tick runs the
// modules and advances camera animations; each frame updates and renders the
// world, then lets the modules draw on top.
type Game struct {
	world   *World
	modules []Module
	canvas  *ImageCanvas
	cfg     RunConfig

	screenshotQueue []string
}

// NewGame creates a Game for w. Modules run in the order given.
func NewGame(w *World, cfg RunConfig, modules ...Module) *Game {
	g := &Game{
		world:   w,
		modules: modules,
		canvas:  NewImageCanvas(nil),
		cfg:     cfg.withDefaults(),
	}
	if g.cfg.ShowFPS {
		g.modules = append(g.modules, NewFPSOverlay(0, 0))
	}
	return g
}

// World returns the game's world.
func (g *Game) World() *World { return g.world }

// AddModule appends m to the module list.
func (g *Game) AddModule(m Module) {
	g.modules = append(g.modules, m)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	for _, k := range g.cfg.DebugKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.world.SetDebugMode(!g.world.DebugMode())
			break
		}
	}

	for _, m := range g.modules {
		m.Update(dt)
	}
	for _, cam := range g.world.Cameras() {
		cam.Update(float32(dt))
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Reset(screen)

	g.world.Update()
	g.world.Render(g.canvas)

	for _, m := range g.modules {
		m.Draw(g.canvas)
	}

	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs g until the window is closed.
func Run(g *Game) error {
	if err := g.cfg.validate(); err != nil {
		return err
	}
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	if g.cfg.TPS > 0 {
		ebiten.SetTPS(g.cfg.TPS)
	}
	glog.Infof("isometric: starting %q at %dx%d", g.cfg.Title, g.cfg.Width, g.cfg.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("isometric: run game: %w", err)
	}
	return nil
}
