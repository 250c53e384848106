// Package world provides a headless physics world that records bodies and
// lets callers report contacts by hand. It runs no simulation.
package world

import (
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-ballmaze/game"
	"github.com/beka-birhanu/vinom-ballmaze/game/layout"
	"github.com/beka-birhanu/vinom-ballmaze/service/i"
)

var (
	ErrUnknownBody  = errors.New("no body with that label")
	ErrStaticBody   = errors.New("body is static")
	ErrContactsFull = errors.New("contact buffer is full")
	ErrClosed       = errors.New("world is closed")
)

var _ i.PhysicsWorld = (*MemoryWorld)(nil)

// Body is an obstacle together with its current velocity.
type Body struct {
	layout.Obstacle
	VX, VY float64
}

// MemoryWorld keeps bodies in a slice and buffers reported contacts.
type MemoryWorld struct {
	bodies   []Body
	contacts chan game.Contact
	closed   bool
	sync.RWMutex
}

// NewMemoryWorld creates a world whose contact stream buffers up to buffer events.
func NewMemoryWorld(buffer int) *MemoryWorld {
	return &MemoryWorld{
		bodies:   make([]Body, 0),
		contacts: make(chan game.Contact, buffer),
	}
}

// Add records bodies at rest.
func (w *MemoryWorld) Add(obstacles []layout.Obstacle) error {
	w.Lock()
	defer w.Unlock()

	if w.closed {
		return ErrClosed
	}
	for _, o := range obstacles {
		w.bodies = append(w.bodies, Body{Obstacle: o})
	}
	return nil
}

// Clear removes every body. Buffered contacts are dropped as they belong to the old bodies.
func (w *MemoryWorld) Clear() error {
	w.Lock()
	defer w.Unlock()

	if w.closed {
		return ErrClosed
	}
	w.bodies = w.bodies[:0]
	for {
		select {
		case <-w.contacts:
		default:
			return nil
		}
	}
}

// ApplyVelocity adds (dx, dy) to the first dynamic body labelled label.
func (w *MemoryWorld) ApplyVelocity(label layout.Label, dx, dy float64) error {
	w.Lock()
	defer w.Unlock()

	found := false
	for idx := range w.bodies {
		b := &w.bodies[idx]
		if b.Label != label {
			continue
		}
		found = true
		if b.Static {
			continue
		}
		b.VX += dx
		b.VY += dy
		return nil
	}

	if found {
		return fmt.Errorf("%w: %s", ErrStaticBody, label)
	}
	return fmt.Errorf("%w: %s", ErrUnknownBody, label)
}

// Contacts streams reported contacts. The channel is closed by Close.
func (w *MemoryWorld) Contacts() <-chan game.Contact {
	return w.contacts
}

// Touch reports that bodies a and b started touching. Both must exist.
func (w *MemoryWorld) Touch(a, b layout.Label) error {
	w.RLock()
	defer w.RUnlock()

	if w.closed {
		return ErrClosed
	}
	for _, l := range []layout.Label{a, b} {
		if !w.has(l) {
			return fmt.Errorf("%w: %s", ErrUnknownBody, l)
		}
	}

	select {
	case w.contacts <- game.Contact{A: a, B: b}:
		return nil
	default:
		return ErrContactsFull
	}
}

// Bodies returns a snapshot of every body.
func (w *MemoryWorld) Bodies() []Body {
	w.RLock()
	defer w.RUnlock()

	out := make([]Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Body returns the first body labelled label.
func (w *MemoryWorld) Body(label layout.Label) (Body, bool) {
	w.RLock()
	defer w.RUnlock()

	for _, b := range w.bodies {
		if b.Label == label {
			return b, true
		}
	}
	return Body{}, false
}

// Close ends the contact stream. Further calls to Add, Clear and Touch fail.
func (w *MemoryWorld) Close() {
	w.Lock()
	defer w.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	close(w.contacts)
}

func (w *MemoryWorld) has(label layout.Label) bool {
	for _, b := range w.bodies {
		if b.Label == label {
			return true
		}
	}
	return false
}
