// Package game wires the stage, clock, food and character managers into a
// round-based simulation.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/systems"
	"github.com/pthm-cable/forage/telemetry"
)

// Options configures game creation.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Config    *config.Config // nil = config.Cfg()

	// RoundCallback is called with the stats of every finished round.
	RoundCallback func(telemetry.RoundStats)
}

// Game holds the complete simulation state.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand

	stage *systems.Stage
	clock *systems.Clock
	foods *systems.FoodManager
	chars *systems.CharacterManager

	// Draw pass queries and agent lookup
	charMap    *ecs.Map2[components.Rect, components.Character]
	foodFilter *ecs.Filter2[components.Rect, components.Food]
	charFilter *ecs.Filter2[components.Rect, components.Character]

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	roundCallback func(telemetry.RoundStats)
	lastRound     telemetry.RoundStats

	// Round state
	settings Settings
	pending  *Settings
	day      int
	tick     int
	paused   bool
}

// NewGameWithOptions creates a game and starts its first round.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	world := ecs.NewWorld()
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		cfg:           cfg,
		world:         world,
		rng:           rng,
		stage:         systems.NewStageFromConfig(cfg),
		clock:         systems.NewClock(cfg.Round.FPS, cfg.Derived.TTLMillis),
		foods:         systems.NewFoodManager(world, rng, cfg.Food),
		chars:         systems.NewCharacterManager(world, rng, cfg.Character, cfg.Movement.Wander),
		charMap:       ecs.NewMap2[components.Rect, components.Character](world),
		foodFilter:    ecs.NewFilter2[components.Rect, components.Food](world),
		charFilter:    ecs.NewFilter2[components.Rect, components.Character](world),
		collector:     telemetry.NewCollector(),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:      opts.LogStats,
		roundCallback: opts.RoundCallback,
		settings:      SettingsFromConfig(cfg),
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("creating output manager: %w", err)
		}
		if cfg.Telemetry.WriteConfig {
			if err := om.WriteConfig(cfg); err != nil {
				om.Close()
				return nil, err
			}
		}
		g.outputManager = om
		slog.Info("writing telemetry", "dir", om.Dir())
	}

	g.startRound()
	return g, nil
}

// config returns the configuration this game was built with.
func (g *Game) config() *config.Config {
	return g.cfg
}

// Stage returns the stage.
func (g *Game) Stage() *systems.Stage { return g.stage }

// Day returns the current round number, starting at 1.
func (g *Game) Day() int { return g.day }

// Tick returns the total ticks simulated across all rounds.
func (g *Game) Tick() int { return g.tick }

// CharactersLeft returns the agents still active this round.
func (g *Game) CharactersLeft() int { return g.chars.CharactersLeft() }

// FinishedCount returns the agents that made it home this round.
func (g *Game) FinishedCount() int { return g.chars.FinishedCount() }

// FoodLeft returns the foods remaining on the stage.
func (g *Game) FoodLeft() int { return g.foods.FoodLeft() }

// LastRound returns the stats of the most recently finished round.
func (g *Game) LastRound() telemetry.RoundStats { return g.lastRound }

// Paused reports whether stepping is suspended.
func (g *Game) Paused() bool { return g.paused }

// TogglePause suspends or resumes stepping.
func (g *Game) TogglePause() { g.paused = !g.paused }

// Unload releases resources held by the game.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
