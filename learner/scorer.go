package learner

import "github.com/brobeson/struck/geometry"

// scorer evaluates the structured discriminant F(x, y) = sum_v beta_v *
// K(x, feature_of(v)), optionally scaled by the fuzzy variant's
// translation-magnitude attenuation (spec.md §4.1). It has no side
// effects and is idempotent given identical support state.
type scorer struct {
	store *store
}

// Sample pairs a feature vector with the translation it was extracted at,
// the unit the Scorer and Optimizer both operate on.
type Sample struct {
	Feature []float64
	Label   geometry.Box
}

// score evaluates F(x, y) against the current support vector set.
func (s *scorer) score(x []float64, y geometry.Box) float64 {
	sum := 0.0
	for _, v := range s.store.vectors {
		sum += v.beta * s.store.kernelFn.Eval(x, v.feature())
	}
	if s.store.fuzzy {
		sum *= s.store.fuzzinessOf(y)
	}
	return sum
}

// scoreBatch evaluates F for every sample in the batch, in order.
func (s *scorer) scoreBatch(batch []Sample) []float64 {
	results := make([]float64, len(batch))
	for i, sample := range batch {
		results[i] = s.score(sample.Feature, sample.Label)
	}
	return results
}
