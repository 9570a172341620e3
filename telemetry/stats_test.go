package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/forage/components"
)

func TestComputeTraitStats(t *testing.T) {
	ts := ComputeTraitStats([]int{9, 2, 4, 4, 5, 4, 5, 7})

	if math.Abs(ts.Mean-5) > 0.001 {
		t.Errorf("mean = %v, want 5", ts.Mean)
	}
	// Sample standard deviation: sqrt(32/7)
	if math.Abs(ts.Std-math.Sqrt(32.0/7.0)) > 0.001 {
		t.Errorf("std = %v, want %v", ts.Std, math.Sqrt(32.0/7.0))
	}
	if ts.P50 != 4 {
		t.Errorf("p50 = %v, want 4", ts.P50)
	}
	if ts.P90 != 9 {
		t.Errorf("p90 = %v, want 9", ts.P90)
	}
}

func TestComputeTraitStatsSmall(t *testing.T) {
	if got := ComputeTraitStats(nil); got != (TraitStats{}) {
		t.Errorf("empty = %+v, want zeros", got)
	}

	one := ComputeTraitStats([]int{3})
	if one.Mean != 3 || one.Std != 0 || one.P50 != 3 {
		t.Errorf("single = %+v", one)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector()
	c.StartRound(4, 3, 10)
	c.RecordTick(1)
	c.RecordTick(0)
	c.RecordEaten(2, 5)

	stats := c.Flush(RoundEnd{
		SimTimeSec: 0.05,
		TimedOut:   true,
		Stranded:   1,
		FoodLeft:   8,
		FoodValue:  17,
		FoodTarget: 6,
		Characters: []components.Character{
			{Speed: 2, Sensing: 10, Finished: true},
			{Speed: 4, Sensing: 30, Finished: true},
			{Speed: 6, Sensing: 50},
		},
	})

	if stats.Round != 4 || stats.Ticks != 2 || stats.Sated != 1 {
		t.Errorf("round/ticks/sated = %d/%d/%d", stats.Round, stats.Ticks, stats.Sated)
	}
	if stats.Spawned != 3 || stats.Finished != 2 || stats.Stranded != 1 {
		t.Errorf("spawned/finished/stranded = %d/%d/%d", stats.Spawned, stats.Finished, stats.Stranded)
	}
	if stats.FoodSpawned != 10 || stats.FoodEaten != 2 || stats.Nutrition != 5 || stats.FoodLeft != 8 || stats.NutritionLeft != 17 {
		t.Errorf("food stats = %+v", stats)
	}
	if stats.SensingP10 != 10 || stats.SensingP50 != 30 || stats.SensingP90 != 50 {
		t.Errorf("sensing p10/p50/p90 = %v/%v/%v, want 10/30/50", stats.SensingP10, stats.SensingP50, stats.SensingP90)
	}
	if stats.SpeedMean != 4 || stats.SensingMean != 30 {
		t.Errorf("trait means = %v, %v", stats.SpeedMean, stats.SensingMean)
	}
	if stats.FinishedSpeedMean != 3 || stats.FinishedSensingMean != 20 {
		t.Errorf("finished means = %v, %v", stats.FinishedSpeedMean, stats.FinishedSensingMean)
	}
	if math.Abs(stats.SurvivalRate()-2.0/3.0) > 0.001 {
		t.Errorf("survival rate = %v", stats.SurvivalRate())
	}

	// Starting a new round resets counters.
	c.StartRound(5, 3, 10)
	if c.Ticks() != 0 {
		t.Errorf("ticks after StartRound = %d", c.Ticks())
	}
}
