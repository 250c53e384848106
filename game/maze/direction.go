package maze

import "fmt"

// Direction names one of the four grid-adjacent moves.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var (
	// neighborOrder is the order neighbours are listed in before shuffling.
	neighborOrder = [4]Direction{Up, Right, Down, Left}

	deltas = map[Direction]CellPosition{
		Up:    {Row: -1, Col: 0},
		Right: {Row: 0, Col: 1},
		Down:  {Row: 1, Col: 0},
		Left:  {Row: 0, Col: -1},
	}
)

// Delta returns the row and column offset of a single step in direction d.
func (d Direction) Delta() CellPosition {
	return deltas[d]
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps "up", "right", "down" and "left" to their Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range neighborOrder {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}
