package telemetry

import "github.com/pthm-cable/forage/components"

// Collector accumulates events within a round and produces RoundStats.
type Collector struct {
	round       int
	ticks       int
	sated       int
	foodEaten   int
	nutrition   int
	foodSpawned int
	spawned     int
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{}
}

// StartRound resets counters for a new round.
func (c *Collector) StartRound(round, spawned, foodSpawned int) {
	*c = Collector{round: round, spawned: spawned, foodSpawned: foodSpawned}
}

// RecordTick records one simulation tick.
func (c *Collector) RecordTick(sated int) {
	c.ticks++
	c.sated += sated
}

// RecordEaten records foods consumed and the nutrition they carried.
func (c *Collector) RecordEaten(items, value int) {
	c.foodEaten += items
	c.nutrition += value
}

// Ticks returns the ticks recorded this round.
func (c *Collector) Ticks() int {
	return c.ticks
}

// RoundEnd describes the state of the stage when a round ends.
type RoundEnd struct {
	SimTimeSec float64
	TimedOut   bool
	Stranded   int
	FoodLeft   int
	FoodValue  int // nutrition still on the stage
	FoodTarget int
	Characters []components.Character // every agent of the round
}

// Flush produces the RoundStats for the current round.
func (c *Collector) Flush(end RoundEnd) RoundStats {
	var speeds, sensing, finSpeeds, finSensing []int
	finished := 0
	for _, ch := range end.Characters {
		speeds = append(speeds, ch.Speed)
		sensing = append(sensing, ch.Sensing)
		if ch.Finished {
			finished++
			finSpeeds = append(finSpeeds, ch.Speed)
			finSensing = append(finSensing, ch.Sensing)
		}
	}

	speedStats := ComputeTraitStats(speeds)
	sensingStats := ComputeTraitStats(sensing)

	return RoundStats{
		Round:      c.round,
		Ticks:      c.ticks,
		SimTimeSec: end.SimTimeSec,
		TimedOut:   end.TimedOut,

		Spawned:  c.spawned,
		Finished: finished,
		Stranded: end.Stranded,
		Sated:    c.sated,

		FoodSpawned:   c.foodSpawned,
		FoodLeft:      end.FoodLeft,
		FoodEaten:     c.foodEaten,
		Nutrition:     c.nutrition,
		NutritionLeft: end.FoodValue,
		FoodTarget:    end.FoodTarget,

		SpeedMean:   speedStats.Mean,
		SpeedStd:    speedStats.Std,
		SensingMean: sensingStats.Mean,
		SensingStd:  sensingStats.Std,
		SensingP10:  sensingStats.P10,
		SensingP50:  sensingStats.P50,
		SensingP90:  sensingStats.P90,

		FinishedSpeedMean:   ComputeTraitStats(finSpeeds).Mean,
		FinishedSensingMean: ComputeTraitStats(finSensing).Mean,
	}
}
