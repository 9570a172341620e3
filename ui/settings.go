package ui

import (
	"strconv"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/forage/game"
)

// Slider bounds for the round settings.
const (
	MaxCharacters = 200
	MaxFoods      = 300
	MaxTTLSeconds = 60
	MaxFPS        = 120
)

// SettingsPanel edits the settings of the next round. Edits are kept until
// applied or reset; while untouched the panel mirrors the running round.
type SettingsPanel struct {
	renderer *Renderer
	edit     game.Settings
	dirty    bool
	status   string
}

// NewSettingsPanel creates an empty settings panel.
func NewSettingsPanel() *SettingsPanel {
	return &SettingsPanel{renderer: NewRenderer()}
}

// SetStatus shows msg under the buttons, typically a rejected apply.
func (p *SettingsPanel) SetStatus(msg string) {
	p.status = msg
}

type settingField struct {
	label    string
	value    *int
	min, max int
}

func (p *SettingsPanel) fields() []settingField {
	return []settingField{
		{"Characters", &p.edit.Characters, 0, MaxCharacters},
		{"Foods", &p.edit.Foods, 0, MaxFoods},
		{"Food target", &p.edit.TargetFood, 0, MaxFoods},
		{"Seconds", &p.edit.TTLSeconds, 1, MaxTTLSeconds},
		{"FPS", &p.edit.FPS, 1, MaxFPS},
	}
}

// Draw renders the panel at (x, y) and returns the edited settings when the
// apply button was pressed this frame.
func (p *SettingsPanel) Draw(x, y, width int32, current game.Settings) (game.Settings, bool) {
	if !p.dirty {
		p.edit = current
	}

	r := p.renderer
	pad := r.Theme.Padding
	fields := p.fields()
	height := int32(len(fields))*(2*r.Theme.LineHeight+4) + 4*r.Theme.LineHeight + 2*pad
	r.DrawPanel(x, y, width, height)

	x += pad
	y += pad
	width -= 2 * pad

	y = r.DrawSectionHeader(x, y, "Next round")
	for _, f := range fields {
		y = r.DrawLabel(x, y, f.label, r.Theme.LabelColor)
		v := gui.SliderBar(
			rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width - 40), Height: 16},
			"", strconv.Itoa(*f.value),
			float32(*f.value), float32(f.min), float32(f.max),
		)
		if n := int(v + 0.5); n != *f.value {
			*f.value = n
			p.dirty = true
		}
		y += r.Theme.LineHeight + 4
	}

	applied := false
	half := float32(width-pad) / 2
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: half, Height: 24}, "Apply") {
		applied = true
		p.dirty = false
		p.status = ""
	}
	if gui.Button(rl.Rectangle{X: float32(x) + half + float32(pad), Y: float32(y), Width: half, Height: 24}, "Reset") {
		p.dirty = false
		p.status = ""
	}
	y += 24 + pad

	if p.status != "" {
		r.DrawLabel(x, y, p.status, r.Theme.ErrorColor)
	}
	return p.edit, applied
}
