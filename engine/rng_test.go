package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100), "draw %d diverged", i)
	}
}

func TestRNGIntnRange(t *testing.T) {
	r := NewRNG(7)

	for i := 0; i < 1000; i++ {
		v := r.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewRNG(3)

	for i := 0; i < 100; i++ {
		assert.False(t, r.Chance(0), "zero percent never fires")
	}
	for i := 0; i < 100; i++ {
		assert.True(t, r.Chance(100), "hundred percent always fires")
	}
}

func TestRNGPick(t *testing.T) {
	r := NewRNG(11)

	assert.Equal(t, "", r.Pick(nil))
	assert.Equal(t, "only", r.Pick([]string{"only"}))

	choices := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, choices, r.Pick(choices))
	}
}

func TestRNGPositionTracking(t *testing.T) {
	r := NewRNG(5)
	assert.Equal(t, int64(0), r.Position())

	r.Intn(10)
	r.Chance(50)
	r.Pick([]string{"a", "b"})
	assert.Equal(t, int64(3), r.Position())
	assert.Equal(t, int64(5), r.Seed())
}

func TestRestoreRNGResumesStream(t *testing.T) {
	orig := NewRNG(1234)
	for i := 0; i < 17; i++ {
		orig.Intn(100)
	}

	restored := RestoreRNG(orig.Seed(), orig.Position())
	assert.Equal(t, orig.Position(), restored.Position())

	for i := 0; i < 50; i++ {
		assert.Equal(t, orig.Intn(100), restored.Intn(100),
			"restored stream diverged at draw %d", i)
	}
}
