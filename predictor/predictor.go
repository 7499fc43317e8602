// Package predictor optionally biases the sampler's search window
// toward where the tracked box is likely to be next, using a
// constant-velocity Kalman filter over the box center (spec.md's
// Supplemented Features, "Search-center prediction"). Disabled by
// default: Tracker.cpp always samples around the raw previous box, so a
// caller must opt in via config.Config.UsePredictor to change that
// behavior.
package predictor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/brobeson/struck/geometry"
)

// state is [cx, cy, vx, vy]^T.
const stateDim = 4

// Predictor tracks a box center's position and velocity across frames
// and predicts where it will be next, adapted from the teacher's
// StateMean/StateCov handling in tracker/kalmanfilter.go, reduced from
// an 8-dimensional (position, aspect ratio, height, and their
// velocities) state to the 4-dimensional (cx, cy, vx, vy) state a
// fixed-size tracked box needs.
type Predictor struct {
	stdWeightPosition float64
	stdWeightVelocity float64
	motionMat         *mat.Dense
	updateMat         *mat.Dense

	mean       *mat.VecDense
	covariance *mat.Dense
	height     float64 // last observed box height, for scaling process noise
	ready      bool
}

// New builds a Predictor with process-noise weights analogous to the
// teacher's stdWeightPosition/stdWeightVelocity.
func New(stdWeightPosition, stdWeightVelocity float64) *Predictor {
	motionMat := mat.NewDense(stateDim, stateDim, nil)
	for i := 0; i < stateDim; i++ {
		motionMat.Set(i, i, 1)
	}
	motionMat.Set(0, 2, 1)
	motionMat.Set(1, 3, 1)

	updateMat := mat.NewDense(2, stateDim, nil)
	updateMat.Set(0, 0, 1)
	updateMat.Set(1, 1, 1)

	return &Predictor{
		stdWeightPosition: stdWeightPosition,
		stdWeightVelocity: stdWeightVelocity,
		motionMat:         motionMat,
		updateMat:         updateMat,
	}
}

// Reset re-initializes the filter at a known box, zeroing velocity, for
// use whenever the tracker (re)acquires a target.
func (p *Predictor) Reset(box geometry.Box) {
	cx, cy := box.Center()
	p.height = box.Height
	std := p.stdWeightPosition * p.height
	velStd := p.stdWeightVelocity * p.height

	p.mean = mat.NewVecDense(stateDim, []float64{cx, cy, 0, 0})
	p.covariance = mat.NewDense(stateDim, stateDim, nil)
	p.covariance.Set(0, 0, std*std)
	p.covariance.Set(1, 1, std*std)
	p.covariance.Set(2, 2, velStd*velStd)
	p.covariance.Set(3, 3, velStd*velStd)
	p.ready = true
}

// Predict advances the filter one step and returns the predicted
// center. It must be called after Reset or Update has established a
// state. Matches the teacher's Predict, including adding a fresh
// motion-noise covariance back in after propagation: without it, the
// covariance only ever shrinks under Update's corrections, the Kalman
// gain trends to zero, and the filter freezes on stale velocity.
func (p *Predictor) Predict() (cx, cy float64) {
	if !p.ready {
		return 0, 0
	}
	var next mat.VecDense
	next.MulVec(p.motionMat, p.mean)
	p.mean = &next

	var cov mat.Dense
	cov.Mul(p.motionMat, p.covariance)
	cov.Mul(&cov, p.motionMat.T())
	cov.Add(&cov, p.motionNoise())
	p.covariance = &cov

	return p.mean.AtVec(0), p.mean.AtVec(1)
}

// motionNoise builds the process-noise covariance added back into the
// state covariance after each Predict, matching the teacher's per-step
// motionCov: variances scaled by the tracked box's last observed
// height, held on the diagonal.
func (p *Predictor) motionNoise() *mat.Dense {
	std := p.stdWeightPosition * p.height
	velStd := p.stdWeightVelocity * p.height

	noise := mat.NewDense(stateDim, stateDim, nil)
	noise.Set(0, 0, std*std)
	noise.Set(1, 1, std*std)
	noise.Set(2, 2, velStd*velStd)
	noise.Set(3, 3, velStd*velStd)
	return noise
}

// Update corrects the filter's state with an observed box center,
// matching the teacher's Update step but over the reduced 4-dimensional
// state and a 2-dimensional (cx, cy) observation.
func (p *Predictor) Update(box geometry.Box) {
	if !p.ready {
		p.Reset(box)
		return
	}
	cx, cy := box.Center()
	p.height = box.Height
	measurement := mat.NewVecDense(2, []float64{cx, cy})

	var predicted mat.VecDense
	predicted.MulVec(p.updateMat, p.mean)

	var innovation mat.VecDense
	innovation.SubVec(measurement, &predicted)

	std := p.stdWeightPosition * box.Height
	measurementNoise := mat.NewDense(2, 2, nil)
	measurementNoise.Set(0, 0, std*std)
	measurementNoise.Set(1, 1, std*std)

	var pht mat.Dense
	pht.Mul(p.covariance, p.updateMat.T())

	var s mat.Dense
	s.Mul(p.updateMat, &pht)
	s.Add(&s, measurementNoise)

	var sInv mat.Dense
	if err := sInv.Inverse(&s); err != nil {
		return
	}

	var kalmanGain mat.Dense
	kalmanGain.Mul(&pht, &sInv)

	var correction mat.VecDense
	correction.MulVec(&kalmanGain, &innovation)

	var newMean mat.VecDense
	newMean.AddVec(p.mean, &correction)
	p.mean = &newMean

	var kh mat.Dense
	kh.Mul(&kalmanGain, p.updateMat)

	identity := mat.NewDense(stateDim, stateDim, nil)
	for i := 0; i < stateDim; i++ {
		identity.Set(i, i, 1)
	}
	var ikh mat.Dense
	ikh.Sub(identity, &kh)

	var newCov mat.Dense
	newCov.Mul(&ikh, p.covariance)
	p.covariance = &newCov
}

// Ready reports whether the filter has an established state to predict
// from.
func (p *Predictor) Ready() bool {
	return p.ready
}
