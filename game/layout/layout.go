/*
Package layout turns maze passage matrices into bodies positioned in world coordinates.

Cell (r, c) spans [c*CellWidth, (c+1)*CellWidth] x [r*CellHeight, (r+1)*CellHeight]
with y growing downwards. Every closed passage becomes a thin static wall on
the shared edge of its two cells. The frame, goal and ball are placed from the
same Config.
*/
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/beka-birhanu/vinom-ballmaze/game/maze"
)

var ErrInvalidConfig = errors.New("invalid layout config")

// Config holds the geometry constants of a scene.
type Config struct {
	CellWidth           float64 `yaml:"cell_width"`
	CellHeight          float64 `yaml:"cell_height"`
	WallThickness       float64 `yaml:"wall_thickness"`
	BoundaryThickness   float64 `yaml:"boundary_thickness"`
	GoalSizeFraction    float64 `yaml:"goal_size_fraction"`
	StartRadiusFraction float64 `yaml:"start_radius_fraction"`
}

// DefaultConfig returns the geometry of a 600x600 board split into 3x3 cells.
func DefaultConfig() Config {
	return Config{
		CellWidth:           200,
		CellHeight:          200,
		WallThickness:       5,
		BoundaryThickness:   40,
		GoalSizeFraction:    0.7,
		StartRadiusFraction: 0.25,
	}
}

type field struct {
	name  string
	value float64
}

// Validate checks that sizes are positive and fractions lie in (0, 1].
// Fields are checked in declaration order and the first bad one is reported.
func (c Config) Validate() error {
	sizes := []field{
		{"cell width", c.CellWidth},
		{"cell height", c.CellHeight},
		{"wall thickness", c.WallThickness},
		{"boundary thickness", c.BoundaryThickness},
	}
	for _, f := range sizes {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}

	fractions := []field{
		{"goal size fraction", c.GoalSizeFraction},
		{"start radius fraction", c.StartRadiusFraction},
	}
	for _, f := range fractions {
		if !(f.value > 0) || f.value > 1 {
			return fmt.Errorf("%w: %s must be in (0, 1], got %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// Walls emits one static wall for every closed passage.
// Horizontal passages come first, then vertical ones, each in row-major order.
func Walls(verticals, horizontals [][]bool, cellWidth, cellHeight, wallThickness float64) []Obstacle {
	walls := make([]Obstacle, 0)

	for r, row := range horizontals {
		for c, open := range row {
			if open {
				continue
			}
			walls = append(walls, Obstacle{
				Label:  LabelWall,
				X:      float64(c)*cellWidth + cellWidth/2,
				Y:      float64(r+1) * cellHeight,
				Width:  cellWidth,
				Height: wallThickness,
				Static: true,
			})
		}
	}

	for r, row := range verticals {
		for c, open := range row {
			if open {
				continue
			}
			walls = append(walls, Obstacle{
				Label:  LabelWall,
				X:      float64(c+1) * cellWidth,
				Y:      float64(r)*cellHeight + cellHeight/2,
				Width:  wallThickness,
				Height: cellHeight,
				Static: true,
			})
		}
	}

	return walls
}

// Boundary returns the four frame walls around a rows x cols board.
func Boundary(rows, cols int, cfg Config) []Obstacle {
	width := float64(cols) * cfg.CellWidth
	height := float64(rows) * cfg.CellHeight
	t := cfg.BoundaryThickness

	return []Obstacle{
		{Label: LabelBoundary, X: width / 2, Y: 0, Width: width, Height: t, Static: true},
		{Label: LabelBoundary, X: width / 2, Y: height, Width: width, Height: t, Static: true},
		{Label: LabelBoundary, X: 0, Y: height / 2, Width: t, Height: height, Static: true},
		{Label: LabelBoundary, X: width, Y: height / 2, Width: t, Height: height, Static: true},
	}
}

// Goal returns the static goal sensor centered on the far-corner cell.
func Goal(rows, cols int, cfg Config) Obstacle {
	return Obstacle{
		Label:  LabelGoal,
		X:      float64(cols)*cfg.CellWidth - cfg.CellWidth/2,
		Y:      float64(rows)*cfg.CellHeight - cfg.CellHeight/2,
		Width:  cfg.CellWidth * cfg.GoalSizeFraction,
		Height: cfg.CellHeight * cfg.GoalSizeFraction,
		Static: true,
		Sensor: true,
	}
}

// Ball returns the dynamic ball centered on cell (0, 0).
func Ball(cfg Config) Obstacle {
	radius := math.Min(cfg.CellWidth, cfg.CellHeight) * cfg.StartRadiusFraction
	return Obstacle{
		Label:  LabelBall,
		X:      cfg.CellWidth / 2,
		Y:      cfg.CellHeight / 2,
		Width:  2 * radius,
		Height: 2 * radius,
		Radius: radius,
	}
}

// Build lays out every body for m.
func Build(m *maze.Maze, cfg Config) (Scene, error) {
	if err := cfg.Validate(); err != nil {
		return Scene{}, err
	}

	walls := Walls(m.Verticals, m.Horizontals, cfg.CellWidth, cfg.CellHeight, cfg.WallThickness)

	obstacles := make([]Obstacle, 0, len(walls)+6)
	obstacles = append(obstacles, Boundary(m.Rows, m.Cols, cfg)...)
	obstacles = append(obstacles, walls...)
	obstacles = append(obstacles, Goal(m.Rows, m.Cols, cfg), Ball(cfg))

	return Scene{Obstacles: obstacles}, nil
}
