package main

import (
	"testing"

	"github.com/pthm-cable/forage/config"
)

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatal(err)
	}

	raw := pv.ExtractFromConfig(cfg)
	back := pv.Clamp(pv.Denormalize(pv.Normalize(raw)))
	for i, spec := range pv.Specs {
		if back[i] != raw[i] {
			t.Errorf("%s: %v -> %v", spec.Name, raw[i], back[i])
		}
	}
}

func TestApplyToConfigClampsAndRounds(t *testing.T) {
	pv := NewParamVector()
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatal(err)
	}

	pv.ApplyToConfig(cfg, []float64{1000, 12.6, -3, 2.2})

	if cfg.Round.Foods != 150 {
		t.Errorf("round.foods = %d, want clamped 150", cfg.Round.Foods)
	}
	if cfg.Food.Target != 13 {
		t.Errorf("food.target = %d, want 13", cfg.Food.Target)
	}
	if cfg.Food.UpdateStep != 1 {
		t.Errorf("food.update_step = %d, want clamped 1", cfg.Food.UpdateStep)
	}
	if cfg.Food.UpdateDays != 2 {
		t.Errorf("food.update_days = %d, want 2", cfg.Food.UpdateDays)
	}
}

func TestEvaluatePerfectSurvival(t *testing.T) {
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatal(err)
	}
	// Sated agents only walk home, so every round ends with full survival.
	cfg.Round.Characters = 10
	cfg.Round.Foods = 10
	cfg.Round.TTLSeconds = 60
	cfg.Character.Need = 0
	cfg.Movement.OnlyWalls = true

	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 2, 0, 1.0, []int64{1, 2}, cfg)

	fitness := fe.Evaluate(pv.ExtractFromConfig(cfg))
	if fitness != 0 {
		t.Errorf("fitness = %v, want 0", fitness)
	}
	if got := fe.LastSurvival(); got != 1 {
		t.Errorf("survival = %v, want 1", got)
	}
}

func TestEvaluateRejectsInvalidConfig(t *testing.T) {
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Round.Characters = 1800 // with 150 foods this over-packs the stage

	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 1, 0, 0.5, []int64{1}, cfg)

	if got := fe.Evaluate([]float64{150, 20, 5, 2}); got != invalidFitness {
		t.Errorf("fitness = %v, want %v", got, invalidFitness)
	}
}
