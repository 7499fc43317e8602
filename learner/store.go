package learner

import (
	"fmt"

	"github.com/brobeson/struck/geometry"
	"github.com/brobeson/struck/kernel"
)

// store owns support patterns and support vectors, and maintains the
// kernel cache K (spec.md §4.2, "Support store"). It is the only piece of
// the learner that mutates K; beta and g are owned by the optimizer and
// budget manager (spec.md §5).
type store struct {
	kernelFn kernel.Function
	fuzzy    bool
	dMax     float64 // image diagonal; only meaningful when fuzzy is set

	patterns []*supportPattern // patterns[i].row == i, always
	vectors  []*vector

	// K is the pattern-pair kernel cache: K[i][j] = kernelFn.Eval at the
	// ground translations of patterns i and j (spec.md §3, "Kernel
	// cache"). It grows and shrinks in lockstep with patterns.
	K [][]float64

	nextPatternID int
	nextVectorID  int
}

func newStore(k kernel.Function, fuzzy bool, dMax float64) *store {
	return &store{kernelFn: k, fuzzy: fuzzy, dMax: dMax}
}

// fuzzinessOf returns the fuzzy-variant scale for a query translation,
// 1 - diagonal(y)/dMax, or 1 when the fuzzy variant is disabled.
func (s *store) fuzzinessOf(y geometry.Box) float64 {
	if !s.fuzzy {
		return 1
	}
	return 1 - y.Diagonal()/s.dMax
}

// jointKernel evaluates the kernel between two support vectors' actual
// feature representations. When both vectors sit at their pattern's
// ground translation this is a cache hit against K; otherwise it falls
// back to a direct kernel evaluation, since K only caches ground-to-ground
// pairs (spec.md §3). This is the concrete meaning behind the spec's
// "K[pat(v), pat(w)]" shorthand used throughout §4.3 and §4.4 — see
// DESIGN.md.
func (s *store) jointKernel(v, w *vector) float64 {
	if v.isGround() && w.isGround() {
		return s.K[v.pattern.row][w.pattern.row]
	}
	return s.kernelFn.Eval(v.feature(), w.feature())
}

// addPattern appends a new support pattern and grows K by one row and
// column, per spec.md §4.2. The caller must have already validated ground
// and the feature/label lengths; addPattern assumes valid input.
func (s *store) addPattern(images []any, features [][]float64, labels []geometry.Box, ground int) *supportPattern {
	p := &supportPattern{
		id:       s.nextPatternID,
		images:   images,
		features: features,
		labels:   labels,
		ground:   ground,
		row:      len(s.patterns),
	}
	s.nextPatternID++

	newRow := make([]float64, len(s.patterns)+1)
	groundFeature := p.groundFeature()

	for j, other := range s.patterns {
		v := s.kernelFn.Eval(groundFeature, other.groundFeature())
		newRow[j] = v
		s.K[j] = append(s.K[j], v)
	}
	newRow[p.row] = s.kernelFn.Eval(groundFeature, groundFeature)

	s.K = append(s.K, newRow)
	s.patterns = append(s.patterns, p)

	return p
}

// addVector creates a support vector at translation y of pattern p with
// the supplied gradient value, and increments p's refcount (spec.md §4.2).
func (s *store) addVector(p *supportPattern, y int, g float64) *vector {
	v := &vector{
		id:        s.nextVectorID,
		pattern:   p,
		y:         y,
		beta:      0,
		g:         g,
		fuzziness: s.fuzzinessOf(p.labels[y]),
	}
	s.nextVectorID++

	p.refcount++
	p.vectors = append(p.vectors, v)
	s.vectors = append(s.vectors, v)

	return v
}

// removeVector decrements its pattern's refcount and, if that reaches
// zero, removes the pattern along with its K row/column (spec.md §4.2).
func (s *store) removeVector(v *vector) {
	if v.removed {
		return
	}
	v.removed = true

	removeFromSlice(&s.vectors, v)
	removeFromSlice(&v.pattern.vectors, v)

	v.pattern.refcount--
	if v.pattern.refcount == 0 {
		s.removePattern(v.pattern)
	}
}

// removePattern deletes a pattern and its K row/column via swap-with-last,
// keeping every remaining pattern's row field in sync.
func (s *store) removePattern(p *supportPattern) {
	if p.removed {
		return
	}
	p.removed = true

	last := len(s.patterns) - 1
	removedRow := p.row

	if removedRow != last {
		// move the last pattern into the removed slot
		s.patterns[removedRow] = s.patterns[last]
		s.patterns[removedRow].row = removedRow

		// mirror that move in K: row `last` becomes row `removedRow`,
		// and every row's `last` column becomes its `removedRow` column
		s.K[removedRow] = s.K[last]
		for i := 0; i < last; i++ {
			s.K[i][removedRow] = s.K[i][last]
		}
	}

	s.patterns = s.patterns[:last]
	s.K = s.K[:last]
	for i := range s.K {
		s.K[i] = s.K[i][:last]
	}
}

// swapVectors reorders two of a pattern's support vectors. This is a
// stable-reordering helper (spec.md §4.2); it has no effect on the store's
// global vector list, only on iteration order within the pattern.
func (s *store) swapVectors(p *supportPattern, i, j int) {
	p.vectors[i], p.vectors[j] = p.vectors[j], p.vectors[i]
}

// numVectors returns the total number of live support vectors.
func (s *store) numVectors() int {
	return len(s.vectors)
}

// numPatterns returns the total number of live support patterns.
func (s *store) numPatterns() int {
	return len(s.patterns)
}

// removeFromSlice removes v from a []*vector in O(len) time via
// swap-with-last, leaving the slice's remaining order otherwise stable.
func removeFromSlice(slice *[]*vector, v *vector) {
	s := *slice
	for i, candidate := range s {
		if candidate == v {
			last := len(s) - 1
			s[i] = s[last]
			*slice = s[:last]
			return
		}
	}
	panic(fmt.Sprintf("learner: vector %d not found in slice during removal", v.id))
}
