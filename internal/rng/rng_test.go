package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntBetween_StaysInRange(t *testing.T) {
	s := NewSeeded(1)
	for i := 0; i < 1000; i++ {
		v := s.IntBetween(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
	}
}

func TestIntBetween_DegenerateRange(t *testing.T) {
	s := NewSeeded(1)
	assert.Equal(t, 5, s.IntBetween(5, 5))
}

func TestIntBetween_PanicsOnInvertedRange(t *testing.T) {
	s := NewSeeded(1)
	assert.Panics(t, func() { s.IntBetween(7, 3) })
}

func TestPick_CoversAllElements(t *testing.T) {
	s := NewSeeded(42)
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Pick(s, items)] = true
	}
	assert.Len(t, seen, 3)
}

func TestShuffle_PreservesElements(t *testing.T) {
	s := NewSeeded(7)
	items := []int{1, 2, 3, 4, 5}
	Shuffle(s, items)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, items)
}

func TestSeededSequencesAreReproducible(t *testing.T) {
	a, b := NewSeeded(99), NewSeeded(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntBetween(0, 1000), b.IntBetween(0, 1000))
	}
}
