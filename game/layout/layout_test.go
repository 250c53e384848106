package layout

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-ballmaze/game/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(rows, cols int, v bool) [][]bool {
	m := make([][]bool, rows)
	for i := range m {
		m[i] = make([]bool, cols)
		for j := range m[i] {
			m[i][j] = v
		}
	}
	return m
}

func TestWalls(t *testing.T) {
	t.Run("All open yields no walls", func(t *testing.T) {
		walls := Walls(filled(4, 4, true), filled(3, 5, true), 10, 10, 1)
		assert.Empty(t, walls)
	})

	t.Run("All closed yields the maximum wall count", func(t *testing.T) {
		for _, d := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {3, 3}, {4, 7}} {
			rows, cols := d[0], d[1]
			walls := Walls(filled(rows, cols-1, false), filled(rows-1, cols, false), 10, 10, 1)
			assert.Len(t, walls, rows*(cols-1)+(rows-1)*cols, "dims %v", d)
		}
	})

	t.Run("Single cell", func(t *testing.T) {
		m, err := maze.Generate(1, 1, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Empty(t, Walls(m.Verticals, m.Horizontals, 10, 10, 1))
	})

	t.Run("Exact geometry", func(t *testing.T) {
		verticals := [][]bool{{true}, {false}}
		horizontals := [][]bool{{false, true}}

		walls := Walls(verticals, horizontals, 100, 50, 4)
		require.Len(t, walls, 2)

		assert.Equal(t, Obstacle{Label: LabelWall, X: 50, Y: 50, Width: 100, Height: 4, Static: true}, walls[0])
		assert.Equal(t, Obstacle{Label: LabelWall, X: 100, Y: 75, Width: 4, Height: 50, Static: true}, walls[1])
	})

	t.Run("Generated maze wall count", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			m, err := maze.Generate(6, 9, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			walls := Walls(m.Verticals, m.Horizontals, 1, 1, 0.1)
			maxWalls := 6*8 + 5*9
			assert.Len(t, walls, maxWalls-m.OpenPassages())
			for _, w := range walls {
				assert.True(t, w.Static)
				assert.Equal(t, LabelWall, w.Label)
			}
		}
	})
}

func TestPlacement(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("Goal", func(t *testing.T) {
		g := Goal(3, 3, cfg)
		assert.Equal(t, LabelGoal, g.Label)
		assert.InDelta(t, 500, g.X, 1e-9)
		assert.InDelta(t, 500, g.Y, 1e-9)
		assert.InDelta(t, 140, g.Width, 1e-9)
		assert.InDelta(t, 140, g.Height, 1e-9)
		assert.True(t, g.Static)
		assert.True(t, g.Sensor)
	})

	t.Run("Ball", func(t *testing.T) {
		b := Ball(cfg)
		assert.Equal(t, LabelBall, b.Label)
		assert.InDelta(t, 100, b.X, 1e-9)
		assert.InDelta(t, 100, b.Y, 1e-9)
		assert.InDelta(t, 50, b.Radius, 1e-9)
		assert.InDelta(t, 100, b.Width, 1e-9)
		assert.False(t, b.Static)
	})

	t.Run("Ball uses the smaller cell side", func(t *testing.T) {
		c := cfg
		c.CellWidth = 80
		c.CellHeight = 40
		assert.InDelta(t, 10, Ball(c).Radius, 1e-9)
	})

	t.Run("Boundary", func(t *testing.T) {
		frame := Boundary(3, 3, cfg)
		require.Len(t, frame, 4)
		assert.Equal(t, Obstacle{Label: LabelBoundary, X: 300, Y: 0, Width: 600, Height: 40, Static: true}, frame[0])
		assert.Equal(t, Obstacle{Label: LabelBoundary, X: 300, Y: 600, Width: 600, Height: 40, Static: true}, frame[1])
		assert.Equal(t, Obstacle{Label: LabelBoundary, X: 0, Y: 300, Width: 40, Height: 600, Static: true}, frame[2])
		assert.Equal(t, Obstacle{Label: LabelBoundary, X: 600, Y: 300, Width: 40, Height: 600, Static: true}, frame[3])
	})
}

func TestBuild(t *testing.T) {
	m, err := maze.Generate(4, 5, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	scene, err := Build(m, DefaultConfig())
	require.NoError(t, err)

	walls := 4*4 + 3*5 - m.OpenPassages()
	assert.Equal(t, walls, scene.WallCount())
	assert.Len(t, scene.Obstacles, walls+4+2)
	assert.Len(t, scene.StaticBodies(), walls+4+1)

	ball, ok := scene.Ball()
	require.True(t, ok)
	assert.Equal(t, Ball(DefaultConfig()), ball)

	goal, ok := scene.Goal()
	require.True(t, ok)
	assert.Equal(t, Goal(4, 5, DefaultConfig()), goal)

	assert.Equal(t, LabelBoundary, scene.Obstacles[0].Label)
	assert.Equal(t, LabelBall, scene.Obstacles[len(scene.Obstacles)-1].Label)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "Zero cell width", mutate: func(c *Config) { c.CellWidth = 0 }},
		{name: "Negative cell height", mutate: func(c *Config) { c.CellHeight = -1 }},
		{name: "Zero wall thickness", mutate: func(c *Config) { c.WallThickness = 0 }},
		{name: "Zero boundary thickness", mutate: func(c *Config) { c.BoundaryThickness = 0 }},
		{name: "Goal fraction above one", mutate: func(c *Config) { c.GoalSizeFraction = 1.5 }},
		{name: "Zero start fraction", mutate: func(c *Config) { c.StartRadiusFraction = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)

			m, err := maze.Generate(2, 2, rand.New(rand.NewSource(1)))
			require.NoError(t, err)
			_, err = Build(m, c)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("First invalid field is reported", func(t *testing.T) {
		c := DefaultConfig()
		c.CellHeight = 0
		c.BoundaryThickness = -2
		c.GoalSizeFraction = 3

		for range 20 {
			assert.ErrorContains(t, c.Validate(), "cell height")
		}
	})
}
