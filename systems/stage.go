package systems

import (
	"github.com/pthm-cable/forage/components"
	"github.com/pthm-cable/forage/config"
)

// Stage is the static geometry of a round: the playable area and the four walls
// filling the window margin around it. The nearest wall is an agent's home.
type Stage struct {
	bounds    components.Rect
	walls     []components.Rect
	color     components.Color
	wallColor components.Color
}

// NewStage centres a stageW x stageH area inside a windowW x windowH window.
func NewStage(windowW, windowH, stageW, stageH int, color, wallColor components.Color) *Stage {
	ww := (windowW - stageW) / 2
	wh := (windowH - stageH) / 2
	right := ww + stageW
	bottom := wh + stageH

	return &Stage{
		bounds: components.Rect{X: ww, Y: wh, W: stageW, H: stageH},
		walls: []components.Rect{
			{X: 0, Y: 0, W: ww, H: windowH},
			{X: 0, Y: 0, W: windowW, H: wh},
			{X: right, Y: 0, W: windowW - right, H: windowH},
			{X: 0, Y: bottom, W: windowW, H: windowH - bottom},
		},
		color:     color,
		wallColor: wallColor,
	}
}

// NewStageFromConfig builds the stage described by cfg.
func NewStageFromConfig(cfg *config.Config) *Stage {
	return NewStage(cfg.Screen.Width, cfg.Screen.Height, cfg.Stage.Width, cfg.Stage.Height,
		components.ColorFrom(cfg.Stage.Color), components.ColorFrom(cfg.Stage.WallColor))
}

// Limits returns the stage bounds as x_min, y_min, x_max, y_max.
func (s *Stage) Limits() components.Limits { return s.bounds.Limits() }

// Bounds returns the stage rectangle.
func (s *Stage) Bounds() components.Rect { return s.bounds }

// Walls returns the wall rectangles. Callers must not modify the slice.
func (s *Stage) Walls() []components.Rect { return s.walls }

func (s *Stage) Color() components.Color     { return s.color }
func (s *Stage) WallColor() components.Color { return s.wallColor }

// ClosestWallTo returns the wall nearest to r by Chebyshev gap and the cardinal
// direction from r toward it.
func (s *Stage) ClosestWallTo(r components.Rect) (components.Rect, components.Direction) {
	wall := s.walls[ClosestOfAllLinf(r, s.walls)]
	return wall, CardinalDirection(r, wall)
}
