//go:build !ebiten

package ui

import "islandgen/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int, []core.ParameterControl) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(any, int, int, int) {}

// TakeEdit never reports an edit in the headless build.
func (h *HUD) TakeEdit() (map[string]string, bool) { return nil, false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
