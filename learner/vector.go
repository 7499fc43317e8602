package learner

// vector is a support vector: a (pattern, translation, beta, gradient)
// quadruple (spec.md §3, "Support vector"). beta starts at 0; a
// non-ground vector is dropped once beta returns to 0, but a ground
// vector may remain with beta 0.
type vector struct {
	id int

	pattern *supportPattern
	y       int // index into pattern.labels/features

	beta float64
	g    float64

	// fuzziness is precomputed at add time as 1 - diagonal(label)/dMax
	// when the fuzzy variant is active, else 1 (spec.md §3, §9
	// "Per-vector fuzziness invariant"). The Scorer applies the
	// fuzziness of the *query* label, not this stored value; this field
	// is retained for parity with the source and for diagnostics. See
	// DESIGN.md for the reasoning.
	fuzziness float64

	removed bool
}

// isGround reports whether this vector's translation is its pattern's
// ground translation y*, i.e. whether it is a "positive" vector.
func (v *vector) isGround() bool {
	return v.y == v.pattern.ground
}

// feature returns the feature vector this support vector was extracted
// from.
func (v *vector) feature() []float64 {
	return v.pattern.features[v.y]
}

// upperBound returns the SMO clamp target for this vector's beta: C at the
// ground translation, 0 otherwise (spec.md §3 invariant: beta_{y=y*} in
// [0, C], beta_y in [-C, 0] for y != y*).
func (v *vector) upperBound(c float64) float64 {
	if v.isGround() {
		return c
	}
	return 0
}
