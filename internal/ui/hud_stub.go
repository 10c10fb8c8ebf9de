//go:build !ebiten

package ui

import (
	"image"

	"grid-snake/internal/core"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int, *DPad) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(core.ParameterSnapshot, []image.Point) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, image.Rectangle, int) {}
