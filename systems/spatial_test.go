package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/forage/components"
)

func rect(x, y, w, h int) components.Rect {
	return components.Rect{X: x, Y: y, W: w, H: h}
}

func TestRectsOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b components.Rect
		want bool
	}{
		{"identical", rect(0, 0, 10, 10), rect(0, 0, 10, 10), true},
		{"partial", rect(0, 0, 10, 10), rect(5, 5, 10, 10), true},
		{"contained", rect(0, 0, 10, 10), rect(2, 2, 2, 2), true},
		{"touching right edge", rect(0, 0, 10, 10), rect(10, 0, 10, 10), false},
		{"touching bottom edge", rect(0, 0, 10, 10), rect(0, 10, 10, 10), false},
		{"touching corner", rect(0, 0, 10, 10), rect(10, 10, 5, 5), false},
		{"apart", rect(0, 0, 10, 10), rect(30, 30, 5, 5), false},
		{"overlap x only", rect(0, 0, 10, 10), rect(5, 20, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectsOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("RectsOverlap(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := RectsOverlap(tt.b, tt.a); got != tt.want {
				t.Errorf("RectsOverlap is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestFreeRandomPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	limits := components.Limits{XMin: 0, YMin: 0, XMax: 100, YMax: 100}
	blockers := []components.Rect{rect(0, 0, 50, 100)}

	for i := 0; i < 200; i++ {
		x, y := FreeRandomPosition(rng, limits, 10, 10, blockers)
		r := rect(x, y, 10, 10)
		if x < limits.XMin || y < limits.YMin || r.Right() > limits.XMax || r.Bottom() > limits.YMax {
			t.Fatalf("placement %v outside limits %+v", r, limits)
		}
		if overlapsAny(r, blockers) {
			t.Fatalf("placement %v overlaps blocker", r)
		}
		blockers = append(blockers, r)
		if len(blockers) > 10 {
			blockers = blockers[:1]
		}
	}
}

func TestFreeRandomPositionExactFit(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	limits := components.Limits{XMin: 5, YMin: 5, XMax: 15, YMax: 15}

	x, y := FreeRandomPosition(rng, limits, 10, 10, nil)
	if x != 5 || y != 5 {
		t.Errorf("exact fit placed at (%d, %d), want (5, 5)", x, y)
	}
}

func TestClosestOfAllLinf(t *testing.T) {
	walls := []components.Rect{
		rect(0, 0, 10, 100),  // left
		rect(0, 0, 100, 10),  // top
		rect(90, 0, 10, 100), // right
		rect(0, 90, 100, 10), // bottom
	}

	tests := []struct {
		name   string
		origin components.Rect
		want   int
	}{
		{"near left", rect(12, 40, 5, 5), 0},
		{"near top", rect(40, 11, 5, 5), 1},
		{"near right", rect(80, 40, 5, 5), 2},
		{"near bottom", rect(40, 84, 5, 5), 3},
		{"tie keeps first", rect(20, 20, 5, 5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestOfAllLinf(tt.origin, walls); got != tt.want {
				t.Errorf("ClosestOfAllLinf = %d, want %d", got, tt.want)
			}
		})
	}

	if got := ClosestOfAllLinf(rect(0, 0, 1, 1), nil); got != -1 {
		t.Errorf("no candidates: got %d, want -1", got)
	}
}

func TestClosestOfAllL2(t *testing.T) {
	origin := rect(0, 0, 10, 10) // centre (5, 5)
	foods := []components.Rect{
		rect(100, 100, 6, 6),
		rect(20, 0, 10, 10), // centre (25, 5), distance 20
		rect(0, 30, 10, 10), // centre (5, 35), distance 30
	}

	if got := ClosestOfAllL2(origin, foods, 50); got != 1 {
		t.Errorf("radius 50: got %d, want 1", got)
	}
	if got := ClosestOfAllL2(origin, foods, 20); got != 1 {
		t.Errorf("radius exactly 20 should include candidate 1, got %d", got)
	}
	if got := ClosestOfAllL2(origin, foods, 19); got != -1 {
		t.Errorf("radius 19: got %d, want -1", got)
	}
	if got := ClosestOfAllL2(origin, nil, 100); got != -1 {
		t.Errorf("empty: got %d, want -1", got)
	}
}

func TestCardinalDirection(t *testing.T) {
	origin := rect(40, 40, 10, 10)
	tests := []struct {
		name   string
		target components.Rect
		want   components.Direction
	}{
		{"left", rect(0, 0, 10, 100), components.Direction{DX: -1}},
		{"right", rect(90, 0, 10, 100), components.Direction{DX: 1}},
		{"up", rect(0, 0, 100, 10), components.Direction{DY: -1}},
		{"down", rect(0, 90, 100, 10), components.Direction{DY: 1}},
		{"diagonal", rect(0, 0, 5, 5), components.Direction{DX: -1, DY: -1}},
		{"touching left", rect(30, 0, 10, 100), components.Direction{DX: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CardinalDirection(origin, tt.target); got != tt.want {
				t.Errorf("CardinalDirection = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSensingDirection(t *testing.T) {
	origin := rect(0, 0, 10, 10)
	target := rect(100, 100, 10, 10)

	d, within := SensingDirection(origin, target, 50)
	if d != (components.Direction{DX: 1, DY: 1}) {
		t.Errorf("direction = %+v, want (1, 1)", d)
	}
	if within {
		t.Error("target ~141 away should be outside radius 50")
	}

	_, within = SensingDirection(origin, target, 150)
	if !within {
		t.Error("target should be within radius 150")
	}

	d, within = SensingDirection(origin, origin, 0)
	if !d.IsZero() || !within {
		t.Errorf("same rect: got %+v, %v", d, within)
	}
}

func TestSmartCollide(t *testing.T) {
	agent := rect(10, 10, 10, 10)
	foods := []components.Rect{
		rect(0, 0, 5, 5),   // apart
		rect(12, 12, 4, 4), // inside
		rect(20, 10, 4, 4), // touching edge
		rect(18, 18, 4, 4), // overlapping corner
		rect(5, 12, 6, 2),  // overlapping left edge
	}

	got := SmartCollide(agent, foods)
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("SmartCollide = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SmartCollide = %v, want %v", got, want)
			break
		}
	}
}
