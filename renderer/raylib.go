// Package renderer draws the simulation in a raylib window.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/game"
	"github.com/pthm-cable/forage/inspector"
	"github.com/pthm-cable/forage/systems"
	"github.com/pthm-cable/forage/ui"
)

const (
	controls        = "SPACE pause | click agent to inspect | ESC quit"
	inspectorHeight = 220
)

// Raylib implements game.Renderer on the current raylib window. The status
// panel sits left of the stage and the settings panel right of it.
type Raylib struct {
	screenW, screenH int32

	hud       *ui.HUD
	panel     *ui.SettingsPanel
	inspector *inspector.Inspector

	stage   components.Rect
	applied *game.Settings
}

// NewRaylib creates a renderer for a window of the given size.
// Must be used between rl.InitWindow and rl.CloseWindow.
func NewRaylib(screenW, screenH int) *Raylib {
	return &Raylib{
		screenW:   int32(screenW),
		screenH:   int32(screenH),
		hud:       ui.NewHUD(),
		panel:     ui.NewSettingsPanel(),
		inspector: inspector.NewInspector(),
	}
}

// Begin starts a frame: the window is filled with the wall colour and the
// stage drawn over it.
func (r *Raylib) Begin(stage *systems.Stage) {
	r.stage = stage.Bounds()

	rl.BeginDrawing()
	rl.ClearBackground(toColor(stage.WallColor(), 255))
	drawRect(r.stage, toColor(stage.Color(), 255))
}

// DrawFood draws one food item.
func (r *Raylib) DrawFood(rect components.Rect, f components.Food) {
	drawRect(rect, toColor(f.Color, 255))
}

// DrawCharacter draws one agent. Agents that made it home are faded.
func (r *Raylib) DrawCharacter(rect components.Rect, c components.Character) {
	alpha := uint8(255)
	if c.Finished {
		alpha = 110
	}
	drawRect(rect, toColor(c.Color, alpha))
}

// DrawHUD draws the status and settings panels in the margins.
func (r *Raylib) DrawHUD(h game.HUD) {
	const margin = 10
	leftW := int32(r.stage.X) - 2*margin
	rightX := int32(r.stage.Right()) + margin
	rightW := r.screenW - rightX - margin

	if leftW > 0 {
		r.hud.Draw(margin, margin, leftW, h)
		r.hud.DrawControls(margin, r.screenH, controls)
	}
	if rightW > 0 {
		if s, ok := r.panel.Draw(rightX, margin, rightW, h.Next); ok {
			r.applied = &s
		}
		r.inspector.Draw(rightX, r.screenH-inspectorHeight)
	}
	r.inspector.DrawHighlight()
}

// Inspect handles agent selection for this frame: a left click on the stage
// selects the agent under the cursor, and the selection follows src.
func (r *Raylib) Inspect(src inspector.Source) {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		x, y := int(m.X), int(m.Y)
		if x >= r.stage.Left() && x < r.stage.Right() && y >= r.stage.Top() && y < r.stage.Bottom() {
			r.inspector.Click(x, y, src)
		}
	}
	r.inspector.Update(src)
}

// End finishes the frame.
func (r *Raylib) End() {
	rl.EndDrawing()
}

// TakeSettings returns settings applied from the panel since the last call.
func (r *Raylib) TakeSettings() (game.Settings, bool) {
	if r.applied == nil {
		return game.Settings{}, false
	}
	s := *r.applied
	r.applied = nil
	return s, true
}

// Reject shows why the last applied settings were not accepted.
func (r *Raylib) Reject(err error) {
	r.panel.SetStatus(err.Error())
}

func drawRect(rect components.Rect, c rl.Color) {
	rl.DrawRectangle(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H), c)
}

func toColor(c components.Color, alpha uint8) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, alpha)
}
