package components

import "testing"

func TestCharacterFeed(t *testing.T) {
	tests := []struct {
		name      string
		need      int
		value     int
		wantTaken int
		wantNeed  int
	}{
		{"partial meal", 5, 3, 3, 2},
		{"exact meal", 3, 3, 3, 0},
		{"excess value is not stored", 2, 5, 2, 0},
		{"already sated", 0, 4, 0, 0},
		{"zero value", 3, 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Character{Need: tt.need}
			got := c.Feed(tt.value)
			if got != tt.wantTaken {
				t.Errorf("Feed(%d) = %d, want %d", tt.value, got, tt.wantTaken)
			}
			if c.Need != tt.wantNeed {
				t.Errorf("Need = %d, want %d", c.Need, tt.wantNeed)
			}
			if c.Eaten != tt.wantTaken {
				t.Errorf("Eaten = %d, want %d", c.Eaten, tt.wantTaken)
			}
		})
	}
}

func TestHungryBoundary(t *testing.T) {
	c := Character{Need: 1}
	if !c.Hungry() {
		t.Error("Need 1 should be hungry")
	}
	c.Need = 0
	if c.Hungry() {
		t.Error("Need 0 should be sated")
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 6, H: 4}
	if c := r.Center(); c != (Point{X: 13, Y: 22}) {
		t.Errorf("Center = %+v", c)
	}
	if l := r.Limits(); l != (Limits{10, 20, 16, 24}) {
		t.Errorf("Limits = %+v", l)
	}
	moved := r.CenteredOn(Point{X: 0, Y: 0})
	if moved.X != -3 || moved.Y != -2 {
		t.Errorf("CenteredOn = %+v", moved)
	}
	if got := r.Limits().Inset(2, 1).Rect(); got != (Rect{X: 12, Y: 21, W: 2, H: 2}) {
		t.Errorf("Inset.Rect = %+v", got)
	}
}
