//go:build ebiten

package app

import (
	"image"
	"time"

	"fortio.org/log"

	"dotlife/internal/driver"
	"dotlife/internal/life"
	"dotlife/internal/render"
	"dotlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the width of the options panel.
const hudWidth = 240

// initializerKeys maps the digit keys to starting patterns.
var initializerKeys = map[ebiten.Key]life.Initializer{
	ebiten.KeyDigit1: life.Blank,
	ebiten.KeyDigit2: life.Glider,
	ebiten.KeyDigit3: life.HorizontalLine,
	ebiten.KeyDigit4: life.VerticalLine,
	ebiten.KeyDigit5: life.Plus,
	ebiten.KeyDigit6: life.Random,
}

// Game adapts the simulation driver to the ebiten.Game interface.
type Game struct {
	drv     *driver.Driver
	surface *render.EbitenSurface
	hud     *ui.HUD
	overlay *ui.Overlay

	width, height int
	pending       image.Point
	cursor        image.Point
}

// New constructs a Game drawing on a w x h surface.
func New(opts driver.Options, w, h int) *Game {
	surface := render.NewEbitenSurface(w, h)
	drv := driver.New(opts, surface)
	return &Game{
		drv:     drv,
		surface: surface,
		hud:     ui.NewHUD(drv, hudWidth),
		overlay: ui.NewOverlay(drv),
		width:   w,
		height:  h,
		pending: image.Pt(w, h),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	g.applyResize()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.syncFullscreen()
	g.handleMouse()

	g.drv.Tick(time.Now())
	return nil
}

func (g *Game) applyResize() {
	if g.pending.X == g.width && g.pending.Y == g.height {
		return
	}
	old := g.surface
	g.width, g.height = g.pending.X, g.pending.Y
	g.surface = render.NewEbitenSurface(g.width, g.height)
	g.drv.Resize(g.surface)
	old.Dispose()
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.drv.ToggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.drv.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.drv.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.drv.ToggleOptions()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	for key, in := range initializerKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.drv.SetInitializer(in.String())
		}
	}
}

func (g *Game) syncFullscreen() {
	if on := ebiten.IsFullscreen(); on != g.drv.State().Fullscreen {
		g.drv.SetFullscreen(on)
		log.LogVf("Fullscreen %v", on)
	}
}

func (g *Game) handleMouse() {
	if g.overlay.Update() {
		return
	}
	if g.drv.State().ShowOptions && g.hud.Update(g.width) {
		return
	}
	x, y := ebiten.CursorPosition()
	moved := x != g.cursor.X || y != g.cursor.Y
	g.cursor = image.Pt(x, y)
	fx, fy := float64(x), float64(y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.drv.Press(fx, fy)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.drv.Release(fx, fy)
	case moved && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.drv.Drag(fx, fy)
	}
}

// Draw composites the cell canvas over the background.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.drv.Options().Background)
	screen.DrawImage(g.surface.Image(), nil)
	g.overlay.Draw(screen)
	if g.drv.State().ShowOptions {
		g.hud.Draw(screen)
	}
}

// Layout tracks the window size; a change rebuilds the grid on the next
// Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.pending = image.Pt(outsideWidth, outsideHeight)
	}
	return max(g.pending.X, 1), max(g.pending.Y, 1)
}
