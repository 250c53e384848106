/*
Package maze generates perfect mazes over rectangular grids.

A maze is stored as two passage matrices: Verticals[r][c] is true when the wall
between (r, c) and (r, c+1) is open, Horizontals[r][c] is true when the wall
between (r, c) and (r+1, c) is open. Generation is a randomized depth-first
traversal, so the open passages always form a spanning tree of the grid and the
path between any two cells is unique.

The package also offers read-only helpers over a generated maze: a per-cell wall
view, ASCII rendering, a spanning tree check and a path solver.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions    = errors.New("invalid maze dimensions")
	ErrRngContractViolation = errors.New("rng returned a value outside the requested bound")
	ErrOutOfBounds          = errors.New("position is out of the maze")
	ErrNoPath               = errors.New("no open path between cells")
)

// RNG produces uniformly distributed integers in [0, n) for any n > 0.
// *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Maze is a generated perfect maze. It is never mutated after Generate returns.
type Maze struct {
	Rows        int      // Number of rows in the grid
	Cols        int      // Number of columns in the grid
	Verticals   [][]bool // Rows x (Cols-1); true when the east wall of (r, c) is open
	Horizontals [][]bool // (Rows-1) x Cols; true when the south wall of (r, c) is open
}

// frame is one cell on the traversal stack together with its shuffled
// neighbour list and the index of the next neighbour to try.
type frame struct {
	pos       CellPosition
	neighbors [4]Direction
	next      int
}

type generator struct {
	rng     RNG
	maze    *Maze
	visited [][]bool
}

// Generate builds a rows x cols perfect maze using randomized depth-first
// traversal driven by rng.
//
// The start cell is drawn with rng.Intn(rows) then rng.Intn(cols). Each cell
// shuffles its four neighbours with a Fisher-Yates pass as it is entered. An
// explicit stack replaces recursion, but rng is consumed in exactly the same
// order as the recursive formulation.
func Generate(rows, cols int, rng RNG) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	g := &generator{
		rng:     rng,
		maze:    newClosed(rows, cols),
		visited: newMatrix(rows, cols),
	}

	startRow, err := intn(rng, rows)
	if err != nil {
		return nil, err
	}
	startCol, err := intn(rng, cols)
	if err != nil {
		return nil, err
	}

	if err := g.run(CellPosition{Row: startRow, Col: startCol}); err != nil {
		return nil, err
	}
	return g.maze, nil
}

// run performs the traversal from start until every reachable cell is visited.
func (g *generator) run(start CellPosition) error {
	stack := make([]frame, 0, g.maze.Rows*g.maze.Cols)

	first, err := g.enter(start)
	if err != nil {
		return err
	}
	stack = append(stack, first)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.neighbors) {
			stack = stack[:len(stack)-1]
			continue
		}

		from := top.pos
		d := top.neighbors[top.next]
		top.next++

		to := from.Step(d)
		if !g.maze.InBound(to.Row, to.Col) || g.visited[to.Row][to.Col] {
			continue
		}

		g.maze.open(from, d)
		f, err := g.enter(to)
		if err != nil {
			return err
		}
		stack = append(stack, f)
	}

	return nil
}

// enter marks pos visited and returns its frame with shuffled neighbours.
func (g *generator) enter(pos CellPosition) (frame, error) {
	g.visited[pos.Row][pos.Col] = true

	f := frame{pos: pos, neighbors: neighborOrder}
	if err := shuffle(g.rng, &f.neighbors); err != nil {
		return frame{}, err
	}
	return f, nil
}

// shuffle permutes dirs in place: for i from len down to 1, swap i-1 with a
// uniformly drawn index in [0, i).
func shuffle(rng RNG, dirs *[4]Direction) error {
	for i := len(dirs); i > 0; i-- {
		j, err := intn(rng, i)
		if err != nil {
			return err
		}
		dirs[i-1], dirs[j] = dirs[j], dirs[i-1]
	}
	return nil
}

// intn draws from rng and rejects values outside [0, n).
func intn(rng RNG, n int) (int, error) {
	v := rng.Intn(n)
	if v < 0 || v >= n {
		return 0, fmt.Errorf("%w: Intn(%d) returned %d", ErrRngContractViolation, n, v)
	}
	return v, nil
}

// newClosed returns a rows x cols maze with every passage closed.
func newClosed(rows, cols int) *Maze {
	return &Maze{
		Rows:        rows,
		Cols:        cols,
		Verticals:   newMatrix(rows, cols-1),
		Horizontals: newMatrix(rows-1, cols),
	}
}

func newMatrix(rows, cols int) [][]bool {
	m := make([][]bool, rows)
	for i := range m {
		m[i] = make([]bool, cols)
	}
	return m
}

// open opens the passage leaving from in direction d.
func (m *Maze) open(from CellPosition, d Direction) {
	switch d {
	case Left, Up:
		m.open(from.Step(d), d.Opposite())
	case Right:
		m.Verticals[from.Row][from.Col] = true
	case Down:
		m.Horizontals[from.Row][from.Col] = true
	}
}

// InBound reports whether (row, col) lies inside the grid.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// IsOpen reports whether the wall on side d of from is open.
// Sides on the outer border are never open.
func (m *Maze) IsOpen(from CellPosition, d Direction) bool {
	to := from.Step(d)
	if !m.InBound(from.Row, from.Col) || !m.InBound(to.Row, to.Col) {
		return false
	}

	// Each passage is stored once, on the right or lower side of its first cell.
	switch d {
	case Left, Up:
		return m.IsOpen(to, d.Opposite())
	case Right:
		return m.Verticals[from.Row][from.Col]
	case Down:
		return m.Horizontals[from.Row][from.Col]
	default:
		return false
	}
}

// OpenPassages counts the open entries across both passage matrices.
func (m *Maze) OpenPassages() int {
	return countTrue(m.Verticals) + countTrue(m.Horizontals)
}

func countTrue(matrix [][]bool) int {
	n := 0
	for _, row := range matrix {
		for _, open := range row {
			if open {
				n++
			}
		}
	}
	return n
}

// Cells returns the per-cell wall view of the maze, indexed [row][col].
func (m *Maze) Cells() [][]Cell {
	grid := make([][]Cell, m.Rows)
	for row := range grid {
		grid[row] = make([]Cell, m.Cols)
		for col := range grid[row] {
			pos := CellPosition{Row: row, Col: col}
			grid[row][col] = Cell{
				NorthWall: !m.IsOpen(pos, Up),
				SouthWall: !m.IsOpen(pos, Down),
				EastWall:  !m.IsOpen(pos, Right),
				WestWall:  !m.IsOpen(pos, Left),
			}
		}
	}
	return grid
}
