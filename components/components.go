// Package components defines ECS components for the simulation.
package components

// Color is an RGB triple. Only renderers read it.
type Color struct {
	R, G, B uint8
}

// ColorFrom converts a config triple.
func ColorFrom(c [3]uint8) Color {
	return Color{R: c[0], G: c[1], B: c[2]}
}

// Character is the per-agent state stored alongside its Rect.
type Character struct {
	ID      int `inspect:"label,fmt:#%d"`
	Speed   int `inspect:"bar,max:10"`  // units per tick
	Sensing int `inspect:"bar,max:200"` // food detection radius
	Need    int // remaining nutrition before the agent is sated
	Eaten   int // nutrition consumed this round
	Home    bool
	// Finished is set once the agent has left the active list.
	Finished bool
	Color    Color `inspect:"skip"`
}

// Hungry reports whether the agent still needs food. Need == 0 is sated.
func (c *Character) Hungry() bool {
	return c.Need > 0
}

// Feed transfers up to value into the agent and returns the amount taken.
func (c *Character) Feed(value int) int {
	if value <= 0 || c.Need <= 0 {
		return 0
	}
	taken := min(value, c.Need)
	c.Need -= taken
	c.Eaten += taken
	return taken
}

// Food is a stationary nutrition item stored alongside its Rect.
type Food struct {
	ID    int
	Value int
	Color Color
}
