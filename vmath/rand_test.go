package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	assert.Equal(t, NewFastRand(1).Next(), NewFastRand(0).Next())
}

func TestFastRandIntnRange(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(2)
		assert.True(t, v == 0 || v == 1)
	}
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestFastRandBoolBothOutcomes(t *testing.T) {
	r := NewFastRand(3)
	seen := map[bool]int{}
	for i := 0; i < 64; i++ {
		seen[r.Bool()]++
	}
	assert.Positive(t, seen[true])
	assert.Positive(t, seen[false])
}
