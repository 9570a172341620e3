package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/game"
	"github.com/pthm-cable/forage/systems"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 24+hudRows)
	term := NewWithScreen(screen, 1000, 700)
	t.Cleanup(term.Close)
	return term, screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawFrame(t *testing.T) {
	term, screen := newSimTerminal(t)
	stage := systems.NewStage(1000, 700, 600, 600, components.Color{R: 240, G: 240, B: 230}, components.Color{R: 60, G: 60, B: 70})

	term.Begin(stage)
	term.DrawFood(components.Rect{X: 497, Y: 347, W: 6, H: 6}, components.Food{ID: 1, Value: 1})
	term.DrawCharacter(components.Rect{X: 205, Y: 55, W: 10, H: 10}, components.Character{ID: 1, Finished: true})
	term.DrawCharacter(components.Rect{X: 695, Y: 495, W: 10, H: 10}, components.Character{ID: 2})
	term.DrawHUD(game.HUD{Day: 3, CharactersLeft: 1, Finished: 1, FoodLeft: 1, Remaining: 2 * time.Second, Paused: true})
	term.End()

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"wall corner", 0, 0, runeWall},
		{"right wall", 79, 12, runeWall},
		{"empty stage", 30, 5, ' '},
		{"food", 40, 12, runeFood},
		{"finished agent", 16, 2, runeFinished},
		{"active agent", 56, 17, runeActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runeAt(screen, tt.x, tt.y); got != tt.want {
				t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}

	var line strings.Builder
	for x := 0; x < 80; x++ {
		line.WriteRune(runeAt(screen, x, 24))
	}
	hud := line.String()
	if !strings.HasPrefix(hud, "Day 3") || !strings.Contains(hud, "PAUSED") {
		t.Errorf("HUD line = %q", hud)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Action
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), ActionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionPause},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{"resize", tcell.NewEventResize(100, 40), ActionResize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.ev); got != tt.want {
				t.Errorf("translate = %v, want %v", got, tt.want)
			}
		})
	}
}
