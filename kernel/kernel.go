// Package kernel provides the symmetric positive-semidefinite functions
// the learner uses to compare feature vectors (spec.md §6.2, "Kernel").
package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Function evaluates a kernel K(x, x') over two dense feature vectors of
// equal length. Implementations must be symmetric, satisfy K(x, x) >= 0,
// and are pure/reentrant per spec.md §5.
type Function interface {
	// Eval computes K(a, b). Both slices must have the same length.
	Eval(a, b []float64) float64
	// String names the kernel, used in configuration and logging.
	String() string
}

// Linear is the dot-product kernel K(x, x') = <x, x'>.
type Linear struct{}

// Eval implements Function.
func (Linear) Eval(a, b []float64) float64 {
	return floats.Dot(a, b)
}

func (Linear) String() string { return "linear" }

// Gaussian is the RBF kernel K(x, x') = exp(-||x - x'||^2 / (2*sigma^2)).
// sigma must be strictly positive, per spec.md §6.2.
type Gaussian struct {
	Sigma float64
}

// NewGaussian constructs a Gaussian kernel, returning an error if sigma is
// not strictly positive.
func NewGaussian(sigma float64) (Gaussian, error) {
	if sigma <= 0 {
		return Gaussian{}, fmt.Errorf("kernel: gaussian sigma must be > 0, got %v", sigma)
	}
	return Gaussian{Sigma: sigma}, nil
}

// Eval implements Function.
func (g Gaussian) Eval(a, b []float64) float64 {
	dist := floats.Distance(a, b, 2)
	return math.Exp(-(dist * dist) / (2 * g.Sigma * g.Sigma))
}

func (Gaussian) String() string { return "gaussian" }

// Intersection is the histogram intersection kernel
// K(x, x') = sum_i min(x_i, x'_i), commonly used with color histogram
// features.
type Intersection struct{}

// Eval implements Function.
func (Intersection) Eval(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += math.Min(a[i], b[i])
	}
	return sum
}

func (Intersection) String() string { return "intersection" }

// Chi2 is the chi-squared kernel commonly used with histogram features:
// K(x, x') = 1 - sum_i (x_i - x'_i)^2 / (0.5*(x_i + x'_i)), skipping terms
// where x_i + x'_i is 0.
type Chi2 struct{}

// Eval implements Function.
func (Chi2) Eval(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		denom := a[i] + b[i]
		if denom <= 0 {
			continue
		}
		diff := a[i] - b[i]
		sum += (diff * diff) / (0.5 * denom)
	}
	return 1 - sum
}

func (Chi2) String() string { return "chi2" }

// Composite evaluates several kernels over concatenated feature blocks and
// sums the results, every block weighted equally. It mirrors MultiKernel from the
// original Tracker.h, which combines the kernels for each configured
// feature type.
type Composite struct {
	Kernels []Function
	// Sizes gives the length of the feature block each kernel operates on;
	// len(Sizes) must equal len(Kernels) and sum(Sizes) must equal the
	// length of the vectors passed to Eval.
	Sizes []int
}

// Eval implements Function by evaluating each sub-kernel over its feature
// block and summing the results.
func (c Composite) Eval(a, b []float64) float64 {
	sum := 0.0
	offset := 0
	for i, k := range c.Kernels {
		n := c.Sizes[i]
		sum += k.Eval(a[offset:offset+n], b[offset:offset+n])
		offset += n
	}
	return sum
}

func (Composite) String() string { return "composite" }
