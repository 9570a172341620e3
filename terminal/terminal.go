// Package terminal draws the simulation in a text terminal with tcell.
// The window is scaled down to the terminal grid; the last rows hold the HUD.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/game"
	"github.com/pthm-cable/forage/systems"
)

const hudRows = 2

// Glyphs
const (
	runeWall     = '░'
	runeFood     = '*'
	runeActive   = 'O'
	runeFinished = 'o'
)

// Terminal implements game.Renderer on a tcell screen.
type Terminal struct {
	screen           tcell.Screen
	windowW, windowH int

	cols, rows int // stage area of the grid, HUD rows excluded
	stageBg    tcell.Color
}

// New opens the terminal screen for a simulation window of the given size.
func New(windowW, windowH int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return NewWithScreen(screen, windowW, windowH), nil
}

// NewWithScreen wraps an initialized screen.
func NewWithScreen(screen tcell.Screen, windowW, windowH int) *Terminal {
	t := &Terminal{screen: screen, windowW: windowW, windowH: windowH}
	t.resize()
	return t
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) resize() {
	w, h := t.screen.Size()
	t.cols = max(w, 1)
	t.rows = max(h-hudRows, 1)
}

// cell maps a window coordinate to a grid cell.
func (t *Terminal) cell(x, y int) (int, int) {
	return x * t.cols / t.windowW, y * t.rows / t.windowH
}

// Begin clears the grid and paints walls and stage.
func (t *Terminal) Begin(stage *systems.Stage) {
	t.resize()
	t.screen.Clear()

	bounds := stage.Bounds()
	t.stageBg = toColor(stage.Color())
	wallStyle := tcell.StyleDefault.Foreground(toColor(stage.WallColor()))
	stageStyle := tcell.StyleDefault.Background(t.stageBg)

	for cy := 0; cy < t.rows; cy++ {
		for cx := 0; cx < t.cols; cx++ {
			// Window coordinate of the cell centre
			x := (2*cx + 1) * t.windowW / (2 * t.cols)
			y := (2*cy + 1) * t.windowH / (2 * t.rows)
			if x >= bounds.Left() && x < bounds.Right() && y >= bounds.Top() && y < bounds.Bottom() {
				t.screen.SetContent(cx, cy, ' ', nil, stageStyle)
			} else {
				t.screen.SetContent(cx, cy, runeWall, nil, wallStyle)
			}
		}
	}
}

// DrawFood marks the cell under the food's centre.
func (t *Terminal) DrawFood(r components.Rect, f components.Food) {
	t.put(r, runeFood, f.Color)
}

// DrawCharacter marks the cell under the agent's centre.
func (t *Terminal) DrawCharacter(r components.Rect, c components.Character) {
	glyph := runeActive
	if c.Finished {
		glyph = runeFinished
	}
	t.put(r, glyph, c.Color)
}

func (t *Terminal) put(r components.Rect, glyph rune, c components.Color) {
	center := r.Center()
	cx, cy := t.cell(center.X, center.Y)
	if cx < 0 || cy < 0 || cx >= t.cols || cy >= t.rows {
		return
	}
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(t.stageBg).Bold(true)
	t.screen.SetContent(cx, cy, glyph, nil, style)
}

// DrawHUD writes the status lines below the stage.
func (t *Terminal) DrawHUD(h game.HUD) {
	status := fmt.Sprintf("Day %d | characters %d | home %d | foods %d (target %d) | %s left",
		h.Day, h.CharactersLeft, h.Finished, h.FoodLeft, h.FoodTarget,
		h.Remaining.Round(100*time.Millisecond))
	if h.Paused {
		status += " | PAUSED"
	}
	t.text(0, t.rows, status, tcell.StyleDefault.Bold(true))
	t.text(0, t.rows+1, "space pause | q quit", tcell.StyleDefault.Dim(true))
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// End flushes the frame to the terminal.
func (t *Terminal) End() {
	t.screen.Show()
}

func toColor(c components.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Sync repaints the whole terminal, used after a resize.
func (t *Terminal) Sync() {
	t.screen.Sync()
}
