//go:build !ebiten

package ui

import "dotlife/internal/driver"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*driver.Driver, int) *HUD { return nil }

// Update never consumes input in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
