package game

import "github.com/pthm-cable/forage/telemetry"

// Update advances the simulation by one tick unless paused.
// Used by the interactive loops, which pace ticks to the round FPS.
func (g *Game) Update() {
	if g.paused {
		return
	}
	g.Step()
}

// UpdateHeadless advances the simulation by one tick, ignoring pause.
func (g *Game) UpdateHeadless() {
	g.Step()
}

// Step runs one tick: every active agent decides, moves and eats, then the
// clock advances. When the clock runs out or no agent is left active the round
// is closed and the next one started. It returns true if a round ended.
func (g *Game) Step() bool {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseMove)
	report := g.chars.MoveCharacters(g.foods, g.stage, g.config().Movement.OnlyWalls)
	g.collector.RecordTick(report.Sated)
	g.collector.RecordEaten(g.foods.TakeConsumed())

	g.clock.Tick()
	g.tick++

	ended := !g.clock.StillValid() || g.chars.CharactersLeft() == 0
	if ended {
		g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
		g.endRound()
		g.perfCollector.StartPhase(telemetry.PhaseRound)
		g.startRound()
	}

	g.perfCollector.EndTick()
	return ended
}

// RunRounds steps until n more rounds have finished.
func (g *Game) RunRounds(n int) {
	for done := 0; done < n; {
		if g.Step() {
			done++
		}
	}
}
