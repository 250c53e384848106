// Package game holds the rules that sit on top of a generated maze: when a round is won.
package game

import (
	"sync"

	"github.com/beka-birhanu/vinom-ballmaze/game/layout"
)

// Contact reports two bodies that started touching.
type Contact struct {
	A layout.Label
	B layout.Label
}

// IsWin reports whether the contact is between the ball and the goal, in either order.
func IsWin(c Contact) bool {
	return (c.A == layout.LabelBall && c.B == layout.LabelGoal) ||
		(c.A == layout.LabelGoal && c.B == layout.LabelBall)
}

// WinDetector latches the first winning contact of a round.
type WinDetector struct {
	won bool
	sync.Mutex
}

// Observe returns true only for the first winning contact since the last Reset.
func (w *WinDetector) Observe(c Contact) bool {
	if !IsWin(c) {
		return false
	}

	w.Lock()
	defer w.Unlock()
	if w.won {
		return false
	}
	w.won = true
	return true
}

// Won reports whether a winning contact has been observed.
func (w *WinDetector) Won() bool {
	w.Lock()
	defer w.Unlock()
	return w.won
}

// Reset clears the latch for a new round.
func (w *WinDetector) Reset() {
	w.Lock()
	defer w.Unlock()
	w.won = false
}
