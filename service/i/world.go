package i

import (
	"github.com/beka-birhanu/vinom-ballmaze/game"
	"github.com/beka-birhanu/vinom-ballmaze/game/layout"
)

// PhysicsWorld is the simulation that hosts the bodies of a round.
type PhysicsWorld interface {
	// Add instantiates bodies. Static obstacles never move; the ball is dynamic.
	Add([]layout.Obstacle) error

	// Clear removes every body, ready for a new round.
	Clear() error

	// ApplyVelocity adds (dx, dy) to the velocity of the body with the given label.
	ApplyVelocity(label layout.Label, dx, dy float64) error

	// Contacts streams pairs of bodies that started touching.
	Contacts() <-chan game.Contact
}

// InputSource reports player intents.
type InputSource interface {
	Intents() <-chan game.Intent
}
