package maze

import "fmt"

// IsSpanningTree reports whether the open passages connect every cell
// using exactly Rows*Cols-1 passages, which rules out cycles.
func (m *Maze) IsSpanningTree() bool {
	cells := m.Rows * m.Cols
	if m.OpenPassages() != cells-1 {
		return false
	}
	return len(m.reachable(CellPosition{})) == cells
}

// Solve returns the path of cells from one position to another, both ends included.
// In a perfect maze the path is unique.
func (m *Maze) Solve(from, to CellPosition) ([]CellPosition, error) {
	if !m.InBound(from.Row, from.Col) || !m.InBound(to.Row, to.Col) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, from, to)
	}

	parents := m.reachable(from)
	if _, ok := parents[to]; !ok {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}

	path := []CellPosition{to}
	for cur := to; cur != from; {
		cur = parents[cur]
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// reachable walks open passages from start and returns every reached cell
// mapped to the cell it was first reached from. start maps to itself.
func (m *Maze) reachable(start CellPosition) map[CellPosition]CellPosition {
	parents := map[CellPosition]CellPosition{start: start}
	stack := []CellPosition{start}

	for len(stack) > 0 {
		cell := pop(&stack)
		for _, d := range neighborOrder {
			if !m.IsOpen(cell, d) {
				continue
			}
			next := cell.Step(d)
			if _, seen := parents[next]; !seen {
				parents[next] = cell
				stack = append(stack, next)
			}
		}
	}

	return parents
}

// pop removes and returns the last element of a stack of CellPositions.
func pop(s *[]CellPosition) CellPosition {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
