// Package rng provides random sources for maze generation.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// NewSeeded returns a deterministic source. Equal seeds produce equal mazes.
func NewSeeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewFresh returns a source seeded from the operating system's entropy pool,
// so successive calls yield independent streams.
func NewFresh() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(err)
	}
	return NewSeeded(int64(binary.LittleEndian.Uint64(b[:])))
}

// Sequence replays scripted values in order, then repeats the last one.
// Values are returned as-is, even when they violate the requested bound.
type Sequence struct {
	values []int
	next   int
	sync.Mutex
}

// NewSequence returns a Sequence over values. An empty sequence always yields 0.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn returns the next scripted value.
func (s *Sequence) Intn(int) int {
	s.Lock()
	defer s.Unlock()

	if len(s.values) == 0 {
		return 0
	}
	if s.next >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Calls reports how many scripted values have been consumed.
func (s *Sequence) Calls() int {
	s.Lock()
	defer s.Unlock()
	return s.next
}
