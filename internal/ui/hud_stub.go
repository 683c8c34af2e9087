//go:build !ebiten

package ui

// HUD is a no-op placeholder used when the ebiten build tag is absent.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD(any) *HUD { return &HUD{} }

// Update is a no-op in headless builds.
func (h *HUD) Update() {}

// Hot always reports false in headless builds.
func (h *HUD) Hot() bool { return false }

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, Stats) {}
