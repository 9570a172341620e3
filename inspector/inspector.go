// Package inspector shows the components of a selected agent.
package inspector

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
)

// Panel dimensions
const (
	PanelWidth   = 180
	PanelPadding = 10
	HeaderHeight = 24
	rowHeight    = 18
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
)

// Source looks up agents by entity.
type Source interface {
	CharacterAt(x, y int) (ecs.Entity, bool)
	Character(e ecs.Entity) (components.Rect, components.Character, bool)
}

// Inspector manages agent selection and panel rendering.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool

	// Copy of the selected agent, refreshed by Update
	rect components.Rect
	ch   components.Character
}

// NewInspector creates a new inspector instance.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Click selects the agent under (x, y), or clears the selection when there is none.
func (ins *Inspector) Click(x, y int, src Source) {
	e, ok := src.CharacterAt(x, y)
	if !ok {
		ins.Deselect()
		return
	}
	ins.selected = e
	ins.hasSelected = true
	ins.Update(src)
}

// Update refreshes the cached agent; the selection is dropped once the agent
// no longer exists.
func (ins *Inspector) Update(src Source) {
	if !ins.hasSelected {
		return
	}
	rect, ch, ok := src.Character(ins.selected)
	if !ok {
		ins.Deselect()
		return
	}
	ins.rect, ins.ch = rect, ch
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the currently selected entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Fields returns the inspectable fields of the selected agent.
func (ins *Inspector) Fields() []Field {
	if !ins.hasSelected {
		return nil
	}
	return ExtractFields(ins.ch)
}

// Draw renders the inspector panel at (x, y) if an agent is selected.
func (ins *Inspector) Draw(x, y int32) {
	fields := ins.Fields()
	if fields == nil {
		return
	}

	height := HeaderHeight + int32(len(fields))*rowHeight + 2*PanelPadding
	rl.DrawRectangle(x, y, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLines(x, y, PanelWidth, height, ColorPanelBorder)
	rl.DrawRectangle(x, y, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("Agent", x+PanelPadding, y+5, 16, ColorHeaderText)

	fy := y + HeaderHeight + PanelPadding
	for _, f := range fields {
		fy += DrawField(x+PanelPadding, fy, f)
	}
}

// DrawHighlight outlines the selected agent.
func (ins *Inspector) DrawHighlight() {
	if !ins.hasSelected {
		return
	}
	r := ins.rect
	rl.DrawRectangleLines(int32(r.X-2), int32(r.Y-2), int32(r.W+4), int32(r.H+4), ColorSelected)
}
