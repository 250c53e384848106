package layout

// Label names what a body is to the physics world and to the win predicate.
type Label string

const (
	LabelWall     Label = "wall"
	LabelGoal     Label = "goal"
	LabelBall     Label = "ball"
	LabelBoundary Label = "boundary"
)

// Obstacle is an axis-aligned body placed in world coordinates.
type Obstacle struct {
	Label  Label   `json:"label"`            // What the body represents
	X      float64 `json:"x"`                // Center x
	Y      float64 `json:"y"`                // Center y
	Width  float64 `json:"width,omitempty"`  // Full width
	Height float64 `json:"height,omitempty"` // Full height
	Radius float64 `json:"radius,omitempty"` // Non-zero for circular bodies (the ball)
	Static bool    `json:"static"`           // Immovable when true
	Sensor bool    `json:"sensor"`           // Reports contacts without colliding
}

// Scene is every body of one round, in the order they are handed to the world:
// boundary, maze walls, goal, ball.
type Scene struct {
	Obstacles []Obstacle
}

// StaticBodies returns every immovable body in the scene.
func (s Scene) StaticBodies() []Obstacle {
	bodies := make([]Obstacle, 0, len(s.Obstacles))
	for _, o := range s.Obstacles {
		if o.Static {
			bodies = append(bodies, o)
		}
	}
	return bodies
}

// WallCount is the number of maze walls, boundary excluded.
func (s Scene) WallCount() int {
	return len(s.withLabel(LabelWall))
}

// Ball returns the ball body.
func (s Scene) Ball() (Obstacle, bool) {
	return s.first(LabelBall)
}

// Goal returns the goal sensor.
func (s Scene) Goal() (Obstacle, bool) {
	return s.first(LabelGoal)
}

func (s Scene) first(l Label) (Obstacle, bool) {
	for _, o := range s.Obstacles {
		if o.Label == l {
			return o, true
		}
	}
	return Obstacle{}, false
}

func (s Scene) withLabel(l Label) []Obstacle {
	var out []Obstacle
	for _, o := range s.Obstacles {
		if o.Label == l {
			out = append(out, o)
		}
	}
	return out
}
