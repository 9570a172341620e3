package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/forage/telemetry"
)

// startRound spawns a new generation of agents and the day's food, applying
// any queued settings first. The first round and any change to the food
// amount place a fresh batch; otherwise the batch decays toward its target.
func (g *Game) startRound() {
	cfg := g.config()
	prev := g.settings
	next := prev
	if g.pending != nil {
		next = *g.pending
		g.pending = nil
	}
	g.day++

	g.chars.ClearFinished()
	g.chars.InitializeCharacterList(next.Characters, cfg.Character.SensingRange, cfg.Character.SpeedRange, g.stage.Limits())
	blockers := g.chars.Rects()

	if g.day == 1 || next.Foods != prev.Foods {
		g.foods.Initialize(next.Foods, next.TargetFood, cfg.Food.ValueRange, g.stage.Limits(), blockers)
	} else {
		if next.TargetFood != prev.TargetFood {
			g.foods.SetTargetFood(next.TargetFood)
		}
		g.foods.ResetFoods(blockers)
	}
	g.foods.XSort()

	g.clock.SetFPS(next.FPS)
	g.clock.SetTTL(int64(next.TTLSeconds) * 1000)
	g.clock.Reset()
	g.settings = next

	g.collector.StartRound(g.day, g.chars.CharactersLeft(), g.foods.FoodLeft())
	slog.Debug("round started",
		"day", g.day,
		"characters", g.chars.CharactersLeft(),
		"foods", g.foods.FoodLeft(),
		"food_target", g.foods.Target(),
	)
}

// endRound closes the running round: stats are flushed and reported.
func (g *Game) endRound() {
	end := telemetry.RoundEnd{
		SimTimeSec: g.clock.Elapsed().Seconds(),
		TimedOut:   !g.clock.StillValid(),
		Stranded:   g.chars.CharactersLeft(),
		FoodLeft:   g.foods.FoodLeft(),
		FoodValue:  g.foods.TotalValue(),
		FoodTarget: g.foods.Target(),
		Characters: g.chars.Characters(),
	}
	g.lastRound = g.collector.Flush(end)
	g.reportRound(g.lastRound)
}

// Remaining returns the simulated time left in the running round.
func (g *Game) Remaining() time.Duration {
	return g.clock.Remaining()
}
