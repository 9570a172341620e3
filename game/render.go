package game

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/systems"
)

// Renderer receives one frame of the simulation. Draw calls Begin, then every
// food, then every agent (finished ones included), then the HUD, then End.
type Renderer interface {
	Begin(stage *systems.Stage)
	DrawFood(r components.Rect, f components.Food)
	DrawCharacter(r components.Rect, c components.Character)
	DrawHUD(h HUD)
	End()
}

// HUD is the status shown alongside the stage.
type HUD struct {
	Day            int
	CharactersLeft int
	Finished       int
	FoodLeft       int
	FoodTarget     int
	Remaining      time.Duration
	Paused         bool
	Settings       Settings // running round
	Next           Settings // next round, queued or unchanged
	Pending        bool     // settings are queued for the next round
}

// HUD returns the current status.
func (g *Game) HUD() HUD {
	next, pending := g.PendingSettings()
	if !pending {
		next = g.settings
	}
	return HUD{
		Day:            g.day,
		CharactersLeft: g.chars.CharactersLeft(),
		Finished:       g.chars.FinishedCount(),
		FoodLeft:       g.foods.FoodLeft(),
		FoodTarget:     g.foods.Target(),
		Remaining:      g.clock.Remaining(),
		Paused:         g.paused,
		Settings:       g.settings,
		Next:           next,
		Pending:        pending,
	}
}

// Draw renders the current state through r.
func (g *Game) Draw(r Renderer) {
	r.Begin(g.stage)

	foodQuery := g.foodFilter.Query()
	for foodQuery.Next() {
		rect, food := foodQuery.Get()
		r.DrawFood(*rect, *food)
	}

	charQuery := g.charFilter.Query()
	for charQuery.Next() {
		rect, ch := charQuery.Get()
		r.DrawCharacter(*rect, *ch)
	}

	r.DrawHUD(g.HUD())
	r.End()
}

// CharacterAt returns the agent whose rectangle contains (x, y).
func (g *Game) CharacterAt(x, y int) (ecs.Entity, bool) {
	query := g.charFilter.Query()
	for query.Next() {
		r, _ := query.Get()
		if x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom() {
			e := query.Entity()
			query.Close()
			return e, true
		}
	}
	return ecs.Entity{}, false
}

// Character returns a copy of agent e, or false once it has been removed.
func (g *Game) Character(e ecs.Entity) (components.Rect, components.Character, bool) {
	if !g.world.Alive(e) {
		return components.Rect{}, components.Character{}, false
	}
	r, c := g.charMap.Get(e)
	return *r, *c, true
}
