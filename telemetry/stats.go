// Package telemetry provides per-round statistics, perf timing and CSV output.
package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// RoundStats holds aggregated statistics for one round.
type RoundStats struct {
	Round      int     `csv:"round"`
	Ticks      int     `csv:"ticks"`
	SimTimeSec float64 `csv:"sim_time"`
	TimedOut   bool    `csv:"timed_out"`

	// Population
	Spawned  int `csv:"spawned"`
	Finished int `csv:"finished"`
	Stranded int `csv:"stranded"` // still active when the round ended
	Sated    int `csv:"sated"`    // agents whose hunger ended during the round

	// Food
	FoodSpawned   int `csv:"food_spawned"`
	FoodLeft      int `csv:"food_left"`
	FoodEaten     int `csv:"food_eaten"`
	Nutrition     int `csv:"nutrition_eaten"`
	NutritionLeft int `csv:"nutrition_left"`
	FoodTarget    int `csv:"food_target"`

	// Traits across all agents of the round
	SpeedMean   float64 `csv:"speed_mean"`
	SpeedStd    float64 `csv:"speed_std"`
	SensingMean float64 `csv:"sensing_mean"`
	SensingStd  float64 `csv:"sensing_std"`
	SensingP10  float64 `csv:"sensing_p10"`
	SensingP50  float64 `csv:"sensing_p50"`
	SensingP90  float64 `csv:"sensing_p90"`

	// Traits across agents that made it home
	FinishedSpeedMean   float64 `csv:"finished_speed_mean"`
	FinishedSensingMean float64 `csv:"finished_sensing_mean"`
}

// TraitStats summarises one integer trait over a population.
type TraitStats struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// ComputeTraitStats calculates mean, standard deviation and percentiles.
// Returns zeros for an empty population and a zero Std for a single value.
func ComputeTraitStats(values []int) TraitStats {
	if len(values) == 0 {
		return TraitStats{}
	}

	xs := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(v)
	}
	slices.Sort(xs)

	var ts TraitStats
	if len(xs) == 1 {
		ts.Mean = xs[0]
	} else {
		ts.Mean, ts.Std = stat.MeanStdDev(xs, nil)
	}
	ts.P10 = stat.Quantile(0.10, stat.Empirical, xs, nil)
	ts.P50 = stat.Quantile(0.50, stat.Empirical, xs, nil)
	ts.P90 = stat.Quantile(0.90, stat.Empirical, xs, nil)
	return ts
}

// LogStats logs the round summary.
func (s RoundStats) LogStats() {
	slog.Info("round",
		"round", s.Round,
		"ticks", s.Ticks,
		"timed_out", s.TimedOut,
		"spawned", s.Spawned,
		"finished", s.Finished,
		"stranded", s.Stranded,
		"food_spawned", s.FoodSpawned,
		"food_eaten", s.FoodEaten,
		"food_left", s.FoodLeft,
		"speed_mean", round2(s.SpeedMean),
		"sensing_mean", round2(s.SensingMean),
		"finished_speed_mean", round2(s.FinishedSpeedMean),
		"finished_sensing_mean", round2(s.FinishedSensingMean),
	)
}

// SurvivalRate returns the fraction of spawned agents that made it home.
func (s RoundStats) SurvivalRate() float64 {
	if s.Spawned == 0 {
		return 0
	}
	return float64(s.Finished) / float64(s.Spawned)
}

func round2(v float64) float64 {
	return float64(int(v*100)) / 100
}
