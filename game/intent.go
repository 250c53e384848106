package game

import "github.com/beka-birhanu/vinom-ballmaze/game/maze"

// Intent is one discrete player request: push the ball in a direction, or restart the round.
type Intent struct {
	Direction maze.Direction
	Restart   bool
}

// Velocity returns the velocity delta for a push of the given magnitude.
// Screen coordinates are used, so up is negative y.
func (in Intent) Velocity(magnitude float64) (dx, dy float64) {
	if in.Restart {
		return 0, 0
	}
	delta := in.Direction.Delta()
	return float64(delta.Col) * magnitude, float64(delta.Row) * magnitude
}
