package learner

import (
	"math"

	"github.com/brobeson/struck/geometry"
)

// smoTolerance is the beta-near-zero threshold below which a non-ground
// support vector is dropped (spec.md §4.3.1).
const smoTolerance = 1e-10

// kappaEpsilon replaces a non-positive SMO denominator, per spec.md §7
// KernelIllConditioned handling.
const kappaEpsilon = 1e-6

// optimizer runs the SMO step and the process-new / process-old / optimize
// procedures over a support store (spec.md §4.3). It holds no support
// state of its own; beta and g always live on the store's vectors.
type optimizer struct {
	store       *store
	scorer      *scorer
	loss        Loss
	manipulator Manipulator
	c           float64
	kOpt        int
	optimizeAll bool
	rng         *rng

	// illConditioned counts SMO steps whose kappa denominator was clamped,
	// surfaced only through Learner.Debug (spec.md §7).
	illConditioned int
}

// effectiveLoss computes m(loss(ground, candidate)) as specified in
// spec.md §4.5.
func (o *optimizer) effectiveLoss(ground, candidate geometry.Box) float64 {
	return float64(o.manipulator.Evaluate(o.loss.Evaluate(ground, candidate)))
}

// predictedGradient computes g(y) = -loss(y*, y) - F(features[y], y) for a
// translation that may or may not currently have a support vector
// (spec.md §4.3.2).
func (o *optimizer) predictedGradient(p *supportPattern, y int) float64 {
	ground := p.labels[p.ground]
	candidate := p.labels[y]
	l := o.effectiveLoss(ground, candidate)
	f := o.scorer.score(p.features[y], candidate)
	return -l - f
}

// minGradient returns the translation index minimizing predictedGradient
// over every candidate translation of p, ties broken by lowest index
// (spec.md §4.3.2).
func (o *optimizer) minGradient(p *supportPattern) (int, float64) {
	bestY := 0
	bestG := o.predictedGradient(p, 0)
	for y := 1; y < len(p.labels); y++ {
		g := o.predictedGradient(p, y)
		if g < bestG {
			bestG = g
			bestY = y
		}
	}
	return bestY, bestG
}

// minGradientExisting is minGradient restricted to translations that
// already have a support vector, used by optimize() (spec.md §4.3.5).
func (o *optimizer) minGradientExisting(p *supportPattern) *vector {
	var best *vector
	for _, v := range p.vectors {
		if best == nil || v.g < best.g || (v.g == best.g && v.y < best.y) {
			best = v
		}
	}
	return best
}

// maxGradient returns the existing support vector of p with beta strictly
// below its upper bound that maximizes g, ties broken by lowest
// translation index (spec.md §4.3.2). Returns nil when no vector
// qualifies (e.g. C == 0).
func (o *optimizer) maxGradient(p *supportPattern) *vector {
	var best *vector
	for _, v := range p.vectors {
		if v.beta >= v.upperBound(o.c) {
			continue
		}
		if best == nil || v.g > best.g || (v.g == best.g && v.y < best.y) {
			best = v
		}
	}
	return best
}

// smoStep performs one SMO update on a (positive, negative) pair from the
// same pattern, per spec.md §4.3.1.
func (o *optimizer) smoStep(pos, neg *vector) {
	if pos == nil || neg == nil || pos == neg {
		return
	}

	kpp := o.store.jointKernel(pos, pos)
	knn := o.store.jointKernel(neg, neg)
	kpn := o.store.jointKernel(pos, neg)
	kappa := kpp + knn - 2*kpn
	if kappa <= 0 {
		kappa = kappaEpsilon
		o.illConditioned++
	}

	lambda := (pos.g - neg.g) / kappa
	if upper := pos.upperBound(o.c) - pos.beta; lambda > upper {
		lambda = upper
	}
	if lambda < 0 {
		lambda = 0
	}
	if lambda == 0 {
		return
	}

	pattern := pos.pattern
	pos.beta += lambda
	neg.beta -= lambda

	for _, v := range pattern.vectors {
		v.g -= lambda * (o.store.jointKernel(v, pos) - o.store.jointKernel(v, neg))
	}

	if !pos.isGround() && math.Abs(pos.beta) < smoTolerance {
		o.store.removeVector(pos)
	}
	if !neg.isGround() && math.Abs(neg.beta) < smoTolerance {
		o.store.removeVector(neg)
	}
}

// processNew seeds a freshly added pattern with a positive vector at its
// ground translation and a negative vector at the translation minimizing
// the predicted gradient, then performs one SMO step (spec.md §4.3.3).
func (o *optimizer) processNew(p *supportPattern) {
	posG := o.predictedGradient(p, p.ground)
	pos := o.store.addVector(p, p.ground, posG)

	negY, negG := o.minGradient(p)
	neg := findVectorAt(p, negY)
	if neg == nil {
		neg = o.store.addVector(p, negY, negG)
	}

	o.smoStep(pos, neg)
}

// processOld picks a random pattern, the best existing positive vector
// within it, and the globally best negative translation (adding a vector
// for it if none exists), then performs one SMO step (spec.md §4.3.4).
func (o *optimizer) processOld() {
	if o.store.numPatterns() == 0 {
		return
	}
	p := o.store.patterns[o.rng.intn(o.store.numPatterns())]

	pos := o.maxGradient(p)
	if pos == nil {
		return
	}

	negY, negG := o.minGradient(p)
	neg := findVectorAt(p, negY)
	if neg == nil {
		neg = o.store.addVector(p, negY, negG)
	}

	o.smoStep(pos, neg)
}

// optimize performs one SMO step per selected pattern using only existing
// support vectors on both sides (spec.md §4.3.5). When optimizeAll is set
// it runs one step for every pattern instead of a single random one.
func (o *optimizer) optimize() {
	if o.optimizeAll {
		patterns := append([]*supportPattern(nil), o.store.patterns...)
		for _, p := range patterns {
			o.optimizeOne(p)
		}
		return
	}
	if o.store.numPatterns() == 0 {
		return
	}
	o.optimizeOne(o.store.patterns[o.rng.intn(o.store.numPatterns())])
}

func (o *optimizer) optimizeOne(p *supportPattern) {
	pos := o.maxGradient(p)
	neg := o.minGradientExisting(p)
	o.smoStep(pos, neg)
}

// computeDual evaluates the SVM dual objective, spec.md §4.3.7.
func (o *optimizer) computeDual() float64 {
	vectors := o.store.vectors

	d := 0.0
	for _, v := range vectors {
		ground := v.pattern.labels[v.pattern.ground]
		candidate := v.pattern.labels[v.y]
		d -= o.effectiveLoss(ground, candidate) * v.beta
	}

	sum := 0.0
	for _, v := range vectors {
		for _, w := range vectors {
			sum += v.beta * w.beta * o.store.jointKernel(v, w)
		}
	}
	d -= 0.5 * sum

	return d
}

// findVectorAt returns p's existing support vector at translation y, or
// nil if none exists.
func findVectorAt(p *supportPattern, y int) *vector {
	for _, v := range p.vectors {
		if v.y == y {
			return v
		}
	}
	return nil
}
