package systems

import (
	"math/rand"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/config"
)

// TickReport summarises one MoveCharacters pass.
type TickReport struct {
	Moved   int // agents that took a movement step
	Arrived int // agents moved to the finished list
	Sated   int // agents whose hunger ended this tick
}

// CharacterManager owns the agent population. Active agents are stepped every
// tick in list order; agents that reach home move to the finished list and
// never come back.
type CharacterManager struct {
	world   *ecs.World
	charMap *ecs.Map2[components.Rect, components.Character]
	rng     *rand.Rand

	active   []ecs.Entity
	finished []ecs.Entity

	size   int
	color  components.Color
	need   int
	wander bool

	// Scratch buffers reused across ticks
	gone     []bool
	arrivals []int
	blockBuf []components.Rect
	freeBuf  []components.Rect
}

// NewCharacterManager creates an empty manager storing agents in world.
// With wander set, hungry agents that sense no food take a random step instead
// of waiting in place.
func NewCharacterManager(world *ecs.World, rng *rand.Rand, cfg config.CharacterConfig, wander bool) *CharacterManager {
	return &CharacterManager{
		world:   world,
		charMap: ecs.NewMap2[components.Rect, components.Character](world),
		rng:     rng,
		size:    cfg.Size,
		color:   components.ColorFrom(cfg.Color),
		need:    cfg.Need,
		wander:  wander,
	}
}

// InitializeCharacterList replaces the active list with amount agents placed at
// random non-overlapping positions inside stageLimits, each with its own speed
// and sensing radius drawn from the given ranges. The finished list is left
// alone; call ClearFinished between rounds.
func (cm *CharacterManager) InitializeCharacterList(amount int, sensingRange, speedRange config.Range, stageLimits components.Limits) {
	for _, e := range cm.active {
		cm.world.RemoveEntity(e)
	}
	cm.active = cm.active[:0]

	placed := make([]components.Rect, 0, amount)
	for len(cm.active) < amount {
		x, y := FreeRandomPosition(cm.rng, stageLimits, cm.size, cm.size, placed)
		rect := components.Rect{X: x, Y: y, W: cm.size, H: cm.size}
		ch := components.Character{
			ID:      len(cm.active) + 1,
			Speed:   randRange(cm.rng, speedRange.Min(), speedRange.Max()),
			Sensing: randRange(cm.rng, sensingRange.Min(), sensingRange.Max()),
			Need:    cm.need,
			Color:   cm.color,
		}
		cm.active = append(cm.active, cm.charMap.NewEntity(&rect, &ch))
		placed = append(placed, rect)
	}
}

// CharactersLeft returns the number of agents still active.
func (cm *CharacterManager) CharactersLeft() int {
	return len(cm.active)
}

// FinishedCount returns the number of agents that made it home.
func (cm *CharacterManager) FinishedCount() int {
	return len(cm.finished)
}

// ClearFinished removes all finished agents from the world.
func (cm *CharacterManager) ClearFinished() {
	for _, e := range cm.finished {
		cm.world.RemoveEntity(e)
	}
	cm.finished = cm.finished[:0]
}

// Rects returns the rectangles of the active agents in list order.
func (cm *CharacterManager) Rects() []components.Rect {
	rects := make([]components.Rect, 0, len(cm.active))
	for _, e := range cm.active {
		r, _ := cm.charMap.Get(e)
		rects = append(rects, *r)
	}
	return rects
}

// Active returns a copy of the active agent at index i.
func (cm *CharacterManager) Active(i int) (components.Rect, components.Character) {
	r, c := cm.charMap.Get(cm.active[i])
	return *r, *c
}

// Characters returns copies of every agent, active first then finished.
func (cm *CharacterManager) Characters() []components.Character {
	out := make([]components.Character, 0, len(cm.active)+len(cm.finished))
	for _, list := range [][]ecs.Entity{cm.active, cm.finished} {
		for _, e := range list {
			_, c := cm.charMap.Get(e)
			out = append(out, *c)
		}
	}
	return out
}

// MoveCharacters steps every active agent once, in list order. Each agent picks
// a direction, then either heads home (if it has just arrived) or moves against
// its blockers and tries to eat. Movements made earlier in the pass are visible
// to agents later in the pass, and agents that arrived earlier in the pass no
// longer block anyone.
func (cm *CharacterManager) MoveCharacters(foods *FoodManager, stage *Stage, onlyWalls bool) TickReport {
	var report TickReport

	cm.gone = slices.Grow(cm.gone[:0], len(cm.active))[:len(cm.active)]
	clear(cm.gone)
	cm.arrivals = cm.arrivals[:0]

	for i := range cm.active {
		dir := cm.GetDirection(i, stage, foods)

		rect, ch := cm.charMap.Get(cm.active[i])
		if ch.Home {
			cm.gone[i] = true
			cm.arrivals = append(cm.arrivals, i)
			continue
		}

		cm.move(rect, ch, dir, cm.GetBlockings(i, stage.Walls(), onlyWalls))
		report.Moved++

		if foods.MaybeIsEating(*rect, ch) {
			report.Sated++
		}
	}

	for _, i := range cm.arrivals {
		cm.moveHome(cm.active[i], stage)
	}
	for k := len(cm.arrivals) - 1; k >= 0; k-- {
		i := cm.arrivals[k]
		cm.active = slices.Delete(cm.active, i, i+1)
	}
	report.Arrived = len(cm.arrivals)
	cm.gone = cm.gone[:0]

	return report
}

// GetDirection returns the direction the agent at index i should take this tick:
// home when sated, toward food otherwise.
func (cm *CharacterManager) GetDirection(i int, stage *Stage, foods *FoodManager) components.Direction {
	_, ch := cm.charMap.Get(cm.active[i])
	if !ch.Hungry() {
		return cm.gotoClosestWall(i, stage)
	}
	return cm.gotoClosestFood(i, foods)
}

// GetBlockings returns the obstacles for the agent at index i: the walls, plus
// every other active agent that has not gone home this tick unless onlyWalls.
func (cm *CharacterManager) GetBlockings(current int, walls []components.Rect, onlyWalls bool) []components.Rect {
	if onlyWalls {
		return walls
	}
	cm.blockBuf = append(cm.blockBuf[:0], walls...)
	for j, e := range cm.active {
		if j == current || (j < len(cm.gone) && cm.gone[j]) {
			continue
		}
		r, _ := cm.charMap.Get(e)
		cm.blockBuf = append(cm.blockBuf, *r)
	}
	return cm.blockBuf
}

// gotoClosestWall returns the step toward the nearest wall. When one more step
// would hit the wall the agent is marked as home and stays put.
func (cm *CharacterManager) gotoClosestWall(i int, stage *Stage) components.Direction {
	rect, ch := cm.charMap.Get(cm.active[i])
	wall, dir := stage.ClosestWallTo(*rect)
	if WouldCollide(*rect, ch.Speed, wall, dir) {
		ch.Home = true
		return components.Direction{}
	}
	return dir
}

// gotoClosestFood returns the step toward the nearest sensed food, or a random
// step when the stage has no food at all.
func (cm *CharacterManager) gotoClosestFood(i int, foods *FoodManager) components.Direction {
	if foods.FoodLeft() == 0 {
		return cm.randomMove()
	}
	rect, ch := cm.charMap.Get(cm.active[i])
	out := foods.SeekOrArrive(rect, ch)
	if !out.Found && cm.wander {
		return cm.randomMove()
	}
	return out.Direction
}

// moveHome finalises an arrival: the agent is pushed flush against its wall
// and marked finished.
func (cm *CharacterManager) moveHome(e ecs.Entity, stage *Stage) {
	rect, ch := cm.charMap.Get(e)
	wall, dir := stage.ClosestWallTo(*rect)
	switch dir.DX {
	case -1:
		rect.X = wall.Right()
	case 1:
		rect.X = wall.Left() - rect.W
	}
	switch dir.DY {
	case -1:
		rect.Y = wall.Bottom()
	case 1:
		rect.Y = wall.Top() - rect.H
	}
	ch.Finished = true
	cm.finished = append(cm.finished, e)
}

// move steps the agent up to Speed units along each axis, x first, stopping on
// an axis at the first unit step that would overlap a blocker. Blockers the
// agent already overlaps (after a snap onto food) do not stop it.
func (cm *CharacterManager) move(rect *components.Rect, ch *components.Character, dir components.Direction, blockers []components.Rect) {
	if dir.IsZero() {
		return
	}
	free := cm.freeBuf[:0]
	for _, b := range blockers {
		if !RectsOverlap(*rect, b) {
			free = append(free, b)
		}
	}
	cm.freeBuf = free
	blockers = free

	for s := 0; s < ch.Speed*absInt(dir.DX); s++ {
		next := rect.Translate(sign(dir.DX), 0)
		if overlapsAny(next, blockers) {
			break
		}
		*rect = next
	}
	for s := 0; s < ch.Speed*absInt(dir.DY); s++ {
		next := rect.Translate(0, sign(dir.DY))
		if overlapsAny(next, blockers) {
			break
		}
		*rect = next
	}
}

// randomMove returns a direction with each axis drawn from {-1, 0, 1}.
func (cm *CharacterManager) randomMove() components.Direction {
	return components.Direction{DX: cm.rng.Intn(3) - 1, DY: cm.rng.Intn(3) - 1}
}

// WouldCollide reports whether moving r by speed units in dir would overlap wall.
func WouldCollide(r components.Rect, speed int, wall components.Rect, dir components.Direction) bool {
	return RectsOverlap(r.Translate(dir.DX*speed, dir.DY*speed), wall)
}
