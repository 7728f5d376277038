// Package rng provides the uniform draw primitives the problem generator
// samples with. A Source wraps a seeded math/rand generator so tests can
// replay exact sequences.
package rng

import (
	"math/rand"
	"time"
)

// Source draws uniformly distributed values. Not safe for concurrent use;
// the game machine serializes all generation.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded from the wall clock.
func New() *Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic Source for tests.
func NewSeeded(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// IntBetween draws uniformly from [low, high] inclusive. low > high panics;
// callers establish bounds before drawing.
func (s *Source) IntBetween(low, high int) int {
	if low > high {
		panic("rng: IntBetween with low > high")
	}
	return low + s.r.Intn(high-low+1)
}

// Pick returns a uniformly chosen element of items, which must be non-empty.
func Pick[T any](s *Source, items []T) T {
	return items[s.r.Intn(len(items))]
}

// Shuffle permutes items in place.
func Shuffle[T any](s *Source, items []T) {
	s.r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
