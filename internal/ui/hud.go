//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"dotlife/internal/core"
	"dotlife/internal/driver"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the options panel on the right edge of the window.
type HUD struct {
	drv   *driver.Driver
	width int
	panel *ebiten.Image
	pixel *ebiten.Image

	controls []hudControlState
	offsetX  int
}

type hudControlState struct {
	control core.ParameterControl
	value   string
	number  float64

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a panel of the given width for drv.
func NewHUD(drv *driver.Driver, width int) *HUD {
	h := &HUD{drv: drv, width: max(width, 0)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	for _, ctrl := range drv.ParameterControls() {
		h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
	}
	h.layoutControls()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Contains reports whether the window pixel (x, y) is over the panel.
func (h *HUD) Contains(x, y int) bool { return h.width > 0 && x >= h.offsetX }

// Update refreshes control values and applies clicks on the +/- buttons.
// It reports whether the click was consumed by the panel.
func (h *HUD) Update(windowWidth int) bool {
	h.offsetX = windowWidth - h.width
	h.refreshControlValues(h.drv.Parameters())
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !h.Contains(mx, my) {
		return false
	}
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case pointInRect(px, my, state.minusRect):
			h.applyAdjustment(state, -1)
		case pointInRect(px, my, state.plusRect):
			h.applyAdjustment(state, 1)
		}
	}
	return true
}

func (h *HUD) refreshControlValues(snap core.ParameterSnapshot) {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			state.value = "--"
			continue
		}
		state.value = param.Value
		if state.control.Type != core.ParamTypeChoice {
			if v, err := strconv.ParseFloat(param.Value, 64); err == nil {
				state.number = v
			}
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeChoice:
		h.drv.SetChoiceParameter(ctrl.Key, ctrl.Cycle(state.value, direction))
	case core.ParamTypeInt:
		h.drv.SetIntParameter(ctrl.Key, int(ctrl.Adjust(state.number, direction)))
	case core.ParamTypeFloat:
		h.drv.SetFloatParameter(ctrl.Key, ctrl.Adjust(state.number, direction))
	}
}

// Draw paints the panel anchored to the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 230})
	h.drawStatus()
	h.drawControls()
	h.drawHelp(height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-h.width), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	st := h.drv.Status()
	text.Draw(h.panel, "Options", face, panelPadding, panelPadding+headerBaseline, titleColor)
	lines := []string{
		fmt.Sprintf("%s  gen %d", st.State.Run, st.Generation),
		fmt.Sprintf("%d alive  %dx%d", st.LiveCount, st.Rows, st.Cols),
		fmt.Sprintf("every %v", st.Interval),
	}
	for i, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, statusTop+i*statusSpacing, dimColor)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, labelColor)

		minus, plus := "-", "+"
		if state.control.Type == core.ParamTypeChoice {
			minus, plus = "<", ">"
		}
		h.drawButton(state.minusRect, minus)
		h.drawButton(state.plusRect, plus)
	}
}

func (h *HUD) drawHelp(height int) {
	face := basicfont.Face7x13
	help := []string{
		"space  start / pause",
		"n      step",
		"r      reset",
		"o      hide options",
		"f      fullscreen",
		"click  toggle, drag  paint",
	}
	top := height - panelPadding - len(help)*statusSpacing
	for i, line := range help {
		text.Draw(h.panel, line, face, panelPadding, top+(i+1)*statusSpacing, dimColor)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(buttonColor)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, labelColor)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

var (
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 16
	statusTop      = panelPadding + headerBaseline + 22
	controlsTop    = statusTop + 3*statusSpacing
)
