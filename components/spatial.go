package components

// Rect is an axis-aligned box in stage units. X, Y is the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// Point is an integer stage position.
type Point struct {
	X, Y int
}

// Limits holds inclusive bounds as x_min, y_min, x_max, y_max.
type Limits struct {
	XMin, YMin, XMax, YMax int
}

// Direction is a per-tick movement vector. Components are -1, 0 or 1 for
// steering; snap moves use absolute coordinates and do not go through it.
type Direction struct {
	DX, DY int
}

// IsZero reports whether the direction is the zero vector.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the centre point, rounded toward the top-left.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Limits returns the rectangle's bounds.
func (r Rect) Limits() Limits {
	return Limits{XMin: r.X, YMin: r.Y, XMax: r.X + r.W, YMax: r.Y + r.H}
}

// Translate returns the rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// CenteredOn returns the rectangle moved so its centre is p.
func (r Rect) CenteredOn(p Point) Rect {
	r.X = p.X - r.W/2
	r.Y = p.Y - r.H/2
	return r
}

// Inset shrinks limits by dx on the x axis and dy on the y axis, on both sides.
func (l Limits) Inset(dx, dy int) Limits {
	return Limits{XMin: l.XMin + dx, YMin: l.YMin + dy, XMax: l.XMax - dx, YMax: l.YMax - dy}
}

// Rect converts limits back to a rectangle.
func (l Limits) Rect() Rect {
	return Rect{X: l.XMin, Y: l.YMin, W: l.XMax - l.XMin, H: l.YMax - l.YMin}
}
