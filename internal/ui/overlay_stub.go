//go:build !ebiten

package ui

import "dotlife/internal/driver"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*driver.Driver) *Overlay { return &Overlay{} }

// Update never consumes input in headless builds.
func (o *Overlay) Update() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
