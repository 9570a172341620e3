package systems

import (
	"cmp"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/config"
)

// MovementOutcome is the result of steering an agent toward food.
// Arrived means the agent was moved directly onto the food this tick and
// Direction is zero.
type MovementOutcome struct {
	Direction components.Direction
	Found     bool
	Arrived   bool
}

// FoodManager owns the food population. The order of foods is the entity slice
// order; it changes only through spawning, consumption and XSort.
type FoodManager struct {
	world   *ecs.World
	foodMap *ecs.Map2[components.Rect, components.Food]
	rng     *rand.Rand

	foods   []ecs.Entity
	rectBuf []components.Rect

	size       int
	color      components.Color
	valueRange config.Range
	limits     components.Limits

	amount       int // batch size spawned each round
	target       int // amount decays toward this
	updateStep   int
	updateDays   int
	daysToUpdate int

	// Consumption counters since the last TakeConsumed call
	eatenItems int
	eatenValue int
}

// NewFoodManager creates an empty food manager storing foods in world.
func NewFoodManager(world *ecs.World, rng *rand.Rand, cfg config.FoodConfig) *FoodManager {
	return &FoodManager{
		world:        world,
		foodMap:      ecs.NewMap2[components.Rect, components.Food](world),
		rng:          rng,
		size:         cfg.Size,
		color:        components.ColorFrom(cfg.Color),
		valueRange:   cfg.ValueRange,
		updateStep:   cfg.UpdateStep,
		updateDays:   cfg.UpdateDays,
		daysToUpdate: cfg.UpdateDays,
	}
}

// Initialize replaces the food list with amount freshly placed foods.
// Foods are kept one food size away from the stage edges and never overlap
// each other or blockers.
func (fm *FoodManager) Initialize(amount, target int, valueRange config.Range, stageLimits components.Limits, blockers []components.Rect) {
	fm.limits = stageLimits.Inset(fm.size, fm.size)
	fm.valueRange = valueRange
	fm.amount = amount
	fm.target = target
	fm.spawn(amount, blockers)
}

// SetTargetFood sets the decay target and restarts the decay countdown.
func (fm *FoodManager) SetTargetFood(target int) {
	fm.daysToUpdate = fm.updateDays
	fm.target = target
}

// FoodLeft returns how many foods remain.
func (fm *FoodManager) FoodLeft() int {
	return len(fm.foods)
}

// Amount returns the batch size spawned on the next reset.
func (fm *FoodManager) Amount() int { return fm.amount }

// Target returns the decay target.
func (fm *FoodManager) Target() int { return fm.target }

// Rects returns the food rectangles in list order. The slice is reused by the
// next call.
func (fm *FoodManager) Rects() []components.Rect {
	fm.rectBuf = fm.rectBuf[:0]
	for _, e := range fm.foods {
		r, _ := fm.foodMap.Get(e)
		fm.rectBuf = append(fm.rectBuf, *r)
	}
	return fm.rectBuf
}

// Food returns a copy of the food at index i.
func (fm *FoodManager) Food(i int) (components.Rect, components.Food) {
	r, f := fm.foodMap.Get(fm.foods[i])
	return *r, *f
}

// TotalValue returns the nutrition still on the stage.
func (fm *FoodManager) TotalValue() int {
	total := 0
	for _, e := range fm.foods {
		_, f := fm.foodMap.Get(e)
		total += f.Value
	}
	return total
}

// SeekOrArrive steers an agent toward the nearest food within its sensing radius.
// If that food is also within the agent's speed, the agent is moved straight onto
// the food's centre, ignoring blockers, and the outcome reports Arrived.
func (fm *FoodManager) SeekOrArrive(rect *components.Rect, ch *components.Character) MovementOutcome {
	rects := fm.Rects()
	i := ClosestOfAllL2(*rect, rects, ch.Sensing)
	if i < 0 {
		return MovementOutcome{}
	}
	food := rects[i]

	dir, sensed := SensingDirection(*rect, food, ch.Sensing)
	if !sensed {
		return MovementOutcome{}
	}
	if _, reachable := SensingDirection(*rect, food, ch.Speed); reachable {
		*rect = rect.CenteredOn(food.Center())
		return MovementOutcome{Found: true, Arrived: true}
	}
	return MovementOutcome{Direction: dir, Found: true}
}

// MaybeIsEating feeds the agent from every food it overlaps, in list order, until
// it is no longer hungry. Eaten foods are removed; overlapping foods left once the
// agent is sated stay untouched. It returns true if the agent's hunger changed.
func (fm *FoodManager) MaybeIsEating(rect components.Rect, ch *components.Character) bool {
	wasHungry := ch.Hungry()
	if !wasHungry {
		return false
	}

	hits := SmartCollide(rect, fm.Rects())
	eaten := make([]int, 0, len(hits))
	for _, i := range hits {
		if !ch.Hungry() {
			break
		}
		_, f := fm.foodMap.Get(fm.foods[i])
		fm.eatenValue += ch.Feed(f.Value)
		eaten = append(eaten, i)
	}

	// Remove back to front so earlier indices stay valid.
	for k := len(eaten) - 1; k >= 0; k-- {
		fm.removeAt(eaten[k])
	}
	fm.eatenItems += len(eaten)

	return wasHungry != ch.Hungry()
}

// ResetFoods runs once per round: it advances the decay countdown, shrinks the
// batch toward the target when the countdown expires, and respawns a full batch.
func (fm *FoodManager) ResetFoods(blockers []components.Rect) {
	fm.daysToUpdate--
	if fm.daysToUpdate <= 0 {
		if fm.amount > fm.target {
			prev := fm.amount
			fm.amount = max(fm.target, fm.amount-fm.updateStep)
			slog.Debug("food batch decayed", "from", prev, "to", fm.amount, "target", fm.target)
		}
		fm.daysToUpdate = fm.updateDays
	}
	fm.spawn(fm.amount, blockers)
}

// XSort stably orders the food list by left edge.
func (fm *FoodManager) XSort() {
	slices.SortStableFunc(fm.foods, func(a, b ecs.Entity) int {
		ra, _ := fm.foodMap.Get(a)
		rb, _ := fm.foodMap.Get(b)
		return cmp.Compare(ra.X, rb.X)
	})
}

// TakeConsumed returns the number of foods and the nutrition eaten since the
// previous call, and resets both counters.
func (fm *FoodManager) TakeConsumed() (items, value int) {
	items, value = fm.eatenItems, fm.eatenValue
	fm.eatenItems, fm.eatenValue = 0, 0
	return items, value
}

// Clear removes every food from the world.
func (fm *FoodManager) Clear() {
	for _, e := range fm.foods {
		fm.world.RemoveEntity(e)
	}
	fm.foods = fm.foods[:0]
}

// spawn replaces the food list with amount new foods numbered 1..amount.
func (fm *FoodManager) spawn(amount int, blockers []components.Rect) {
	fm.Clear()

	placed := make([]components.Rect, 0, len(blockers)+amount)
	placed = append(placed, blockers...)

	for len(fm.foods) < amount {
		value := randRange(fm.rng, fm.valueRange.Min(), fm.valueRange.Max())
		x, y := FreeRandomPosition(fm.rng, fm.limits, fm.size, fm.size, placed)

		rect := components.Rect{X: x, Y: y, W: fm.size, H: fm.size}
		food := components.Food{ID: len(fm.foods) + 1, Value: value, Color: fm.color}
		fm.foods = append(fm.foods, fm.foodMap.NewEntity(&rect, &food))
		placed = append(placed, rect)
	}
}

// removeAt deletes the food at index i, keeping the order of the rest.
func (fm *FoodManager) removeAt(i int) {
	fm.world.RemoveEntity(fm.foods[i])
	fm.foods = slices.Delete(fm.foods, i, i+1)
}
