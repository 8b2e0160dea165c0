//go:build ebiten

package app

import (
	"gridcast/internal/core"
	"gridcast/internal/render"
	"gridcast/internal/ui"
	"gridcast/internal/world"
	"gridcast/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a world state to the ebiten.Game interface.
type Game struct {
	state   *world.State
	painter *render.ViewPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	delta *core.Delta
	fps   core.FPSCounter

	width, height int
	panel         int
	paused        bool
	spawn         world.Player
}

// New constructs a Game rendering state into a width*height view with a HUD
// panel of the given width to its right.
func New(state *world.State, width, height, panel int) *Game {
	return &Game{
		state:   state,
		painter: render.NewViewPainter(width, height),
		overlay: ui.NewOverlay(state),
		hud:     ui.NewHUD(state, state.World().Level.Name, panel),
		delta:   core.NewDelta(),
		width:   width,
		height:  height,
		panel:   panel,
		spawn:   state.Player(),
	}
}

// Reset puts the player back at the spawn point.
func (g *Game) Reset() {
	g.state.SetPlayer(g.spawn)
}

// Update handles per-frame logic and advances the player.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.Reset()
	}

	dt := g.delta.Seconds()
	g.fps.Frame(dt)

	g.overlay.Update()
	g.hud.Update(g.width)

	if !g.paused {
		g.state.Update(dt, readInput())
	}
	return nil
}

// Draw renders the view, the minimap and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.state.Fan())
	mx, my := ebiten.CursorPosition()
	g.overlay.Draw(screen, geom.V(float64(mx), float64(my)), g.fps.FPS())
	g.hud.Draw(screen, g.width, g.height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.panel, g.height
}

func readInput() world.Input {
	mx, my := ebiten.CursorPosition()
	return world.Input{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW),
		Back:        ebiten.IsKeyPressed(ebiten.KeyS),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyQ),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyE),
		Mouse:       geom.V(float64(mx), float64(my)),
	}
}
