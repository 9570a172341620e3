package systems

import (
	"math"

	"github.com/pthm-cable/forage/components"
)

// sign returns -1, 0 or 1.
func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// absInt returns |v|.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// distance returns the Euclidean distance between two points.
func distance(a, b components.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// gap returns the edge-to-edge distance between two intervals, 0 if they overlap or touch.
func gap(aMin, aMax, bMin, bMax int) int {
	if bMax <= aMin {
		return aMin - bMax
	}
	if bMin >= aMax {
		return bMin - aMax
	}
	return 0
}

// randRange draws uniformly from the inclusive range [lo, hi].
func randRange(rng interface{ Intn(int) int }, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
