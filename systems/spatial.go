// Package systems provides the simulation systems: geometry, stage, clock and
// the food and character managers that step the population each tick.
package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/forage/components"
)

// RectsOverlap reports whether a and b overlap strictly on both axes.
// Rectangles that only share an edge do not overlap.
func RectsOverlap(a, b components.Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// overlapsAny reports whether r overlaps any of blockers.
func overlapsAny(r components.Rect, blockers []components.Rect) bool {
	for _, b := range blockers {
		if RectsOverlap(r, b) {
			return true
		}
	}
	return false
}

// FreeRandomPosition draws integer coordinates inside limits (inclusive) such that
// a w x h rectangle placed there fits and overlaps none of blockers.
// It retries without bound; callers must keep the requested density feasible.
func FreeRandomPosition(rng *rand.Rand, limits components.Limits, w, h int, blockers []components.Rect) (int, int) {
	xMax := limits.XMax - w
	yMax := limits.YMax - h
	if xMax < limits.XMin || yMax < limits.YMin {
		panic("systems: placement limits smaller than the placed rectangle")
	}
	for {
		x := randRange(rng, limits.XMin, xMax)
		y := randRange(rng, limits.YMin, yMax)
		if !overlapsAny(components.Rect{X: x, Y: y, W: w, H: h}, blockers) {
			return x, y
		}
	}
}

// ClosestOfAllLinf returns the index of the candidate with the smallest Chebyshev
// edge gap to origin, or -1 if there are no candidates. Ties keep the first.
func ClosestOfAllLinf(origin components.Rect, candidates []components.Rect) int {
	best := -1
	bestDist := math.MaxInt
	for i, c := range candidates {
		d := max(
			gap(origin.Left(), origin.Right(), c.Left(), c.Right()),
			gap(origin.Top(), origin.Bottom(), c.Top(), c.Bottom()),
		)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// ClosestOfAllL2 returns the index of the candidate whose centre is nearest to the
// centre of origin, considering only candidates within maxRadius. It returns -1
// when none is in range.
func ClosestOfAllL2(origin components.Rect, candidates []components.Rect, maxRadius int) int {
	best := -1
	bestDist := float64(maxRadius)
	oc := origin.Center()
	for i, c := range candidates {
		d := distance(oc, c.Center())
		if d > float64(maxRadius) {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// CardinalDirection returns the unit step from origin toward target along each axis
// where target lies fully on one side. Axes whose spans overlap get 0.
func CardinalDirection(origin, target components.Rect) components.Direction {
	var d components.Direction
	switch {
	case target.Right() <= origin.Left():
		d.DX = -1
	case target.Left() >= origin.Right():
		d.DX = 1
	}
	switch {
	case target.Bottom() <= origin.Top():
		d.DY = -1
	case target.Top() >= origin.Bottom():
		d.DY = 1
	}
	return d
}

// SensingDirection returns the per-axis step from origin's centre toward target's
// centre, and whether target's centre lies within radius.
func SensingDirection(origin, target components.Rect, radius int) (components.Direction, bool) {
	oc, tc := origin.Center(), target.Center()
	d := components.Direction{DX: sign(tc.X - oc.X), DY: sign(tc.Y - oc.Y)}
	return d, distance(oc, tc) <= float64(radius)
}

// SmartCollide returns, in increasing order, the indices of all foods overlapping agent.
func SmartCollide(agent components.Rect, foods []components.Rect) []int {
	var hits []int
	for i, f := range foods {
		if RectsOverlap(agent, f) {
			hits = append(hits, i)
		}
	}
	return hits
}
