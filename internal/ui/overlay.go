//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"dotlife/internal/driver"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the menu button that shows or hides the options panel. The
// button is only present once the simulation has started and the window is
// not fullscreen.
type Overlay struct {
	drv  *driver.Driver
	rect image.Rectangle
}

// NewOverlay constructs the overlay for drv.
func NewOverlay(drv *driver.Driver) *Overlay {
	return &Overlay{drv: drv, rect: image.Rect(menuInset, menuInset, menuInset+menuSize, menuInset+menuSize)}
}

func (o *Overlay) visible() bool {
	st := o.drv.State()
	return st.Started() && !st.Fullscreen
}

// Update toggles the options panel when the button is clicked and reports
// whether the click was consumed.
func (o *Overlay) Update() bool {
	if !o.visible() || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	if !image.Pt(ebiten.CursorPosition()).In(o.rect) {
		return false
	}
	o.drv.ToggleOptions()
	return true
}

// Contains reports whether (x, y) is over the visible button.
func (o *Overlay) Contains(x, y int) bool {
	return o.visible() && image.Pt(x, y).In(o.rect)
}

// Draw paints the button: three bars while the panel is hidden, a cross
// while it is shown.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible() {
		return
	}
	x := float32(o.rect.Min.X)
	y := float32(o.rect.Min.Y)
	s := float32(menuSize)
	vector.DrawFilledRect(screen, x, y, s, s, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	pad := s / 4
	if o.drv.State().ShowOptions {
		vector.StrokeLine(screen, x+pad, y+pad, x+s-pad, y+s-pad, 2, menuColor, true)
		vector.StrokeLine(screen, x+s-pad, y+pad, x+pad, y+s-pad, 2, menuColor, true)
		return
	}
	for i := 1; i <= 3; i++ {
		by := y + float32(i)*s/4
		vector.StrokeLine(screen, x+pad, by, x+s-pad, by, 2, menuColor, true)
	}
}

var menuColor = color.RGBA{R: 230, G: 230, B: 240, A: 255}

const (
	menuInset = 8
	menuSize  = 24
)
