package engine

import "math/rand"

// RNG is a deterministic random source with call-position tracking, so
// a save can capture (seed, position) and a restore can replay to the
// identical stream state.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, src: rand.New(rand.NewSource(seed))}
}

// RestoreRNG recreates an RNG and replays it to the given position.
func RestoreRNG(seed, position int64) *RNG {
	r := NewRNG(seed)
	for i := int64(0); i < position; i++ {
		r.src.Int63()
	}
	r.pos = position
	return r
}

// Intn returns a random integer in [0, n). Every call consumes exactly
// one draw from the source, so replaying the position recreates the
// stream exactly.
func (r *RNG) Intn(n int) int {
	r.pos++
	return int(r.src.Int63() % int64(n))
}

// Chance reports true with the given percent probability.
func (r *RNG) Chance(percent int) bool {
	return r.Intn(100) < percent
}

// Pick returns a random element of choices, or "" when empty.
func (r *RNG) Pick(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	return choices[r.Intn(len(choices))]
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 { return r.pos }
