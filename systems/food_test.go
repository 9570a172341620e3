package systems

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/config"
)

func testFoodConfig() config.FoodConfig {
	return config.FoodConfig{
		Size:       4,
		ValueRange: config.Range{1, 3},
		Target:     12,
		UpdateStep: 5,
		UpdateDays: 2,
	}
}

func newTestFoodManager(seed int64) (*ecs.World, *FoodManager) {
	world := ecs.NewWorld()
	fm := NewFoodManager(world, rand.New(rand.NewSource(seed)), testFoodConfig())
	return world, fm
}

// addFood places a food at r, bypassing random placement.
func addFood(fm *FoodManager, r components.Rect, value int) {
	f := components.Food{ID: len(fm.foods) + 1, Value: value}
	fm.foods = append(fm.foods, fm.foodMap.NewEntity(&r, &f))
}

func TestFoodInitializePlacement(t *testing.T) {
	_, fm := newTestFoodManager(3)
	limits := components.Limits{XMin: 0, YMin: 0, XMax: 200, YMax: 200}
	blockers := []components.Rect{rect(50, 50, 40, 40), rect(120, 20, 10, 10)}

	fm.Initialize(60, 20, config.Range{2, 5}, limits, blockers)

	if fm.FoodLeft() != 60 {
		t.Fatalf("FoodLeft = %d, want 60", fm.FoodLeft())
	}

	rects := append([]components.Rect(nil), fm.Rects()...)
	inner := limits.Inset(4, 4)
	for i, r := range rects {
		if r.Left() < inner.XMin || r.Top() < inner.YMin || r.Right() > inner.XMax || r.Bottom() > inner.YMax {
			t.Errorf("food %d at %v outside inset limits %+v", i, r, inner)
		}
		if overlapsAny(r, blockers) {
			t.Errorf("food %d at %v overlaps a blocker", i, r)
		}
		for j := i + 1; j < len(rects); j++ {
			if RectsOverlap(r, rects[j]) {
				t.Errorf("foods %d and %d overlap", i, j)
			}
		}

		_, f := fm.Food(i)
		if f.ID != i+1 {
			t.Errorf("food %d has ID %d, want dense IDs", i, f.ID)
		}
		if f.Value < 2 || f.Value > 5 {
			t.Errorf("food %d value %d outside [2, 5]", i, f.Value)
		}
	}
	if v := fm.TotalValue(); v < 2*60 || v > 5*60 {
		t.Errorf("TotalValue = %d outside [120, 300]", v)
	}
}

func TestResetFoodsDecay(t *testing.T) {
	world, fm := newTestFoodManager(5)
	limits := components.Limits{XMin: 0, YMin: 0, XMax: 300, YMax: 300}
	fm.Initialize(30, 12, config.Range{1, 1}, limits, nil)

	var got []int
	for i := 0; i < 12; i++ {
		fm.ResetFoods(nil)
		got = append(got, fm.Amount())
		if fm.FoodLeft() != fm.Amount() {
			t.Fatalf("round %d: FoodLeft %d != Amount %d", i, fm.FoodLeft(), fm.Amount())
		}
	}

	want := []int{30, 25, 25, 20, 20, 15, 15, 12, 12, 12, 12, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("decay sequence = %v, want %v", got, want)
		}
	}

	// Old batches must not leak entities.
	filter := ecs.NewFilter1[components.Food](world)
	query := filter.Query()
	count := 0
	for query.Next() {
		count++
	}
	if count != 12 {
		t.Errorf("world holds %d foods, want 12", count)
	}
}

func TestSetTargetFoodRestartsCountdown(t *testing.T) {
	_, fm := newTestFoodManager(9)
	limits := components.Limits{XMin: 0, YMin: 0, XMax: 300, YMax: 300}
	fm.Initialize(30, 30, config.Range{1, 1}, limits, nil)

	fm.ResetFoods(nil) // countdown 2 -> 1
	fm.SetTargetFood(10)
	fm.ResetFoods(nil) // restarted: 2 -> 1, no decay yet
	if fm.Amount() != 30 {
		t.Errorf("Amount = %d, want 30 right after SetTargetFood", fm.Amount())
	}
	fm.ResetFoods(nil)
	if fm.Amount() != 25 {
		t.Errorf("Amount = %d, want 25", fm.Amount())
	}
	if fm.Target() != 10 {
		t.Errorf("Target = %d, want 10", fm.Target())
	}
}

func TestSeekOrArriveStepsTowardFood(t *testing.T) {
	_, fm := newTestFoodManager(1)
	addFood(fm, rect(100, 100, 4, 4), 1)

	agent := rect(0, 0, 10, 10)
	ch := components.Character{Speed: 5, Sensing: 150, Need: 1}

	out := fm.SeekOrArrive(&agent, &ch)
	if !out.Found || out.Arrived {
		t.Fatalf("outcome = %+v, want found and not arrived", out)
	}
	if out.Direction != (components.Direction{DX: 1, DY: 1}) {
		t.Errorf("direction = %+v, want (1, 1)", out.Direction)
	}
	if agent != rect(0, 0, 10, 10) {
		t.Errorf("agent moved to %v", agent)
	}
	if fm.FoodLeft() != 1 {
		t.Errorf("FoodLeft = %d, want 1", fm.FoodLeft())
	}

	// Same state, same answer.
	again := fm.SeekOrArrive(&agent, &ch)
	if again != out {
		t.Errorf("repeat outcome %+v differs from %+v", again, out)
	}
}

func TestSeekOrArriveOutOfSensingRange(t *testing.T) {
	_, fm := newTestFoodManager(1)
	addFood(fm, rect(100, 100, 4, 4), 1)

	agent := rect(0, 0, 10, 10)
	ch := components.Character{Speed: 5, Sensing: 50, Need: 1}

	out := fm.SeekOrArrive(&agent, &ch)
	if out.Found || !out.Direction.IsZero() {
		t.Errorf("outcome = %+v, want nothing found", out)
	}
}

func TestSeekOrArriveSnapsWithinSpeed(t *testing.T) {
	_, fm := newTestFoodManager(1)
	addFood(fm, rect(14, 2, 4, 4), 1) // centre (16, 4)

	agent := rect(0, 0, 10, 10) // centre (5, 5), distance ~11
	ch := components.Character{Speed: 12, Sensing: 50, Need: 1}

	out := fm.SeekOrArrive(&agent, &ch)
	if !out.Found || !out.Arrived || !out.Direction.IsZero() {
		t.Fatalf("outcome = %+v, want arrived with zero direction", out)
	}
	if agent.Center() != (components.Point{X: 16, Y: 4}) {
		t.Errorf("agent centre = %+v, want food centre (16, 4)", agent.Center())
	}

	if !fm.MaybeIsEating(agent, &ch) {
		t.Error("agent on top of food should eat and change hunger")
	}
	if fm.FoodLeft() != 0 {
		t.Errorf("FoodLeft = %d, want 0", fm.FoodLeft())
	}
}

func TestMaybeIsEatingStopsWhenSated(t *testing.T) {
	_, fm := newTestFoodManager(1)
	agent := rect(10, 10, 10, 10)
	addFood(fm, rect(50, 50, 4, 4), 1) // not overlapping
	addFood(fm, rect(11, 11, 4, 4), 1)
	addFood(fm, rect(15, 11, 4, 4), 1)
	addFood(fm, rect(11, 15, 4, 4), 1)

	ch := components.Character{Need: 2}
	if !fm.MaybeIsEating(agent, &ch) {
		t.Error("hunger should change")
	}
	if ch.Need != 0 || ch.Eaten != 2 {
		t.Errorf("Need = %d, Eaten = %d, want 0 and 2", ch.Need, ch.Eaten)
	}
	if fm.FoodLeft() != 2 {
		t.Fatalf("FoodLeft = %d, want 2", fm.FoodLeft())
	}

	// The untouched overlapping food is the last of the three.
	r, f := fm.Food(1)
	if f.ID != 4 || r != rect(11, 15, 4, 4) {
		t.Errorf("remaining overlapping food = %v id %d, want id 4", r, f.ID)
	}
	if _, f := fm.Food(0); f.ID != 1 {
		t.Errorf("non-overlapping food id = %d, want 1", f.ID)
	}

	items, value := fm.TakeConsumed()
	if items != 2 || value != 2 {
		t.Errorf("TakeConsumed = %d, %d, want 2, 2", items, value)
	}
}

func TestMaybeIsEatingConservesNutrition(t *testing.T) {
	_, fm := newTestFoodManager(1)
	agent := rect(0, 0, 10, 10)
	addFood(fm, rect(1, 1, 4, 4), 3)
	addFood(fm, rect(5, 5, 4, 4), 4)

	ch := components.Character{Need: 5}
	before := ch.Need
	fm.MaybeIsEating(agent, &ch)

	_, value := fm.TakeConsumed()
	if before-ch.Need != value {
		t.Errorf("need dropped by %d but %d was transferred", before-ch.Need, value)
	}
	if value != 5 {
		t.Errorf("transferred %d, want 5 (bounded by need)", value)
	}
	if fm.FoodLeft() != 0 {
		t.Errorf("FoodLeft = %d, want 0", fm.FoodLeft())
	}
}

func TestMaybeIsEatingWhenSated(t *testing.T) {
	_, fm := newTestFoodManager(1)
	addFood(fm, rect(1, 1, 4, 4), 3)

	ch := components.Character{Need: 0}
	if fm.MaybeIsEating(rect(0, 0, 10, 10), &ch) {
		t.Error("sated agent should not change hunger")
	}
	if fm.FoodLeft() != 1 {
		t.Error("sated agent should not eat")
	}
}

func TestXSort(t *testing.T) {
	_, fm := newTestFoodManager(1)
	addFood(fm, rect(30, 0, 4, 4), 1)
	addFood(fm, rect(10, 5, 4, 4), 1)
	addFood(fm, rect(30, 9, 4, 4), 1)
	addFood(fm, rect(0, 0, 4, 4), 1)

	fm.XSort()

	wantIDs := []int{4, 2, 1, 3}
	for i, want := range wantIDs {
		if _, f := fm.Food(i); f.ID != want {
			t.Errorf("position %d has id %d, want %d", i, f.ID, want)
		}
	}
}
