package learner

import "github.com/brobeson/struck/geometry"

// supportPattern is one observation and its finite set of candidate
// translations (spec.md §3, "Support pattern"). A pattern exists in the
// store iff refcount >= 1.
type supportPattern struct {
	// id is a stable, externally meaningless identity used only for
	// logging/diagnostics; it never changes even though the pattern's
	// position in the store's dense slice can move on removal.
	id int

	// images holds whatever opaque per-frame data the caller supplied
	// with Update; the core never inspects it and no method returns it.
	images []any

	features [][]float64
	labels   []geometry.Box
	ground   int // y*, index into features/labels

	refcount int

	// row is this pattern's current row/column in the store's kernel
	// cache K. It is kept in sync whenever patterns are reordered.
	row int

	// vectors lists every support vector currently referencing this
	// pattern, so the SMO step can update "every support vector v sharing
	// this pattern" (spec.md §4.3.1) without a global scan.
	vectors []*vector

	// removed marks a pattern that has been evicted from the store. Any
	// code that still holds a *supportPattern after this is set has a
	// use-after-free bug; this is the Go analogue of the generation
	// counter spec.md §9 recommends for detecting that in debug builds.
	removed bool
}

// groundFeature returns the feature vector at the pattern's ground
// translation y*.
func (p *supportPattern) groundFeature() []float64 {
	return p.features[p.ground]
}
