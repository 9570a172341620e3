package main

import (
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/game"
	"github.com/pthm-cable/forage/telemetry"
)

// invalidFitness is returned for parameter vectors the config rejects.
const invalidFitness = 1e6

// Weight of survival spread in the fitness, relative to the squared error.
const stabilityWeight = 0.25

// FitnessEvaluator runs headless simulations and scores how closely the
// survival rate settles on the goal.
type FitnessEvaluator struct {
	params     *ParamVector
	rounds     int
	warmup     int // leading rounds ignored while the food batch decays
	goal       float64
	seeds      []int64
	baseConfig *config.Config

	mu           sync.Mutex
	lastSurvival float64 // mean steady-state survival of the last Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, rounds, warmup int, goal float64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		rounds:     rounds,
		warmup:     min(warmup, rounds-1),
		goal:       goal,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastSurvival returns the mean survival rate from the most recent evaluation.
func (fe *FitnessEvaluator) LastSurvival() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSurvival
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	survival []float64 // per round after warmup
	err      error
}

// Evaluate computes fitness for a raw parameter vector (lower = better):
// squared distance of the mean survival rate from the goal plus a penalty on
// its spread across rounds and seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	if err := cfg.Validate(); err != nil {
		slog.Debug("rejected parameters", "error", err)
		return invalidFitness
	}

	// Run all seeds in parallel; every game owns its world and rng.
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var survival []float64
	for _, r := range results {
		if r.err != nil {
			slog.Warn("simulation failed", "error", r.err)
			return invalidFitness
		}
		survival = append(survival, r.survival...)
	}

	mean, std := stat.MeanStdDev(survival, nil)
	if math.IsNaN(std) {
		std = 0
	}

	fe.mu.Lock()
	fe.lastSurvival = mean
	fe.mu.Unlock()

	d := mean - fe.goal
	return d*d + stabilityWeight*std
}

// runSimulation executes a single headless run of fe.rounds rounds.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) seedResult {
	var result seedResult
	g, err := game.NewGameWithOptions(game.Options{
		Seed:   seed,
		Config: cfg,
		RoundCallback: func(stats telemetry.RoundStats) {
			if stats.Round > fe.warmup {
				result.survival = append(result.survival, stats.SurvivalRate())
			}
		},
	})
	if err != nil {
		return seedResult{err: err}
	}
	defer g.Unload()

	g.RunRounds(fe.rounds)
	return result
}

// copyConfig creates a copy of the base config. Config holds only values, so a
// struct copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
