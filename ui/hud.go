package ui

import (
	"fmt"
	"time"

	"github.com/pthm-cable/forage/game"
)

// HUD renders the round status panel.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the status panel at (x, y).
func (h *HUD) Draw(x, y, width int32, data game.HUD) {
	r := h.renderer
	pad := r.Theme.Padding
	r.DrawPanel(x, y, width, 10*r.Theme.LineHeight+2*pad)

	x += pad
	y += pad
	width -= 2 * pad

	y = r.DrawSectionHeader(x, y, fmt.Sprintf("Day %d", data.Day))
	y = r.DrawLabelValue(x, y, "Characters", fmt.Sprintf("%d", data.CharactersLeft))
	y = r.DrawLabelValue(x, y, "Home", fmt.Sprintf("%d", data.Finished))
	y = r.DrawLabelValue(x, y, "Foods", fmt.Sprintf("%d", data.FoodLeft))
	y = r.DrawLabelValue(x, y, "Target", fmt.Sprintf("%d", data.FoodTarget))
	y = r.DrawLabelValue(x, y, "Time left", data.Remaining.Round(100*time.Millisecond).String())

	ttl := time.Duration(data.Settings.TTLSeconds) * time.Second
	var frac float32
	if ttl > 0 {
		frac = float32(data.Remaining) / float32(ttl)
	}
	y = r.DrawBar(x, y, "Round", frac, width)

	switch {
	case data.Paused:
		r.DrawLabel(x, y, "PAUSED", r.Theme.StatusColor)
	case data.Pending:
		r.DrawLabel(x, y, "new settings next round", r.Theme.StatusColor)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(x, screenHeight int32, controls string) {
	h.renderer.DrawLabel(x, screenHeight-25, controls, h.renderer.Theme.LabelColor)
}
