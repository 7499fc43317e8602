package learner

import "math/rand"

// rng is a small seeded random source for process-old and optimize's
// pattern selection (spec.md §9, "Randomness"). It never touches the
// global math/rand source, so two learners constructed with the same
// seed make identical selections regardless of what else is running in
// the process.
type rng struct {
	source *rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{source: rand.New(rand.NewSource(seed))}
}

// intn returns a pseudo-random integer in [0, n). It panics if n <= 0,
// matching math/rand's own contract; callers never invoke it with an
// empty candidate set.
func (r *rng) intn(n int) int {
	return r.source.Intn(n)
}
