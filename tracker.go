// Package struck implements Struck: Structured Output Tracking with
// Kernels (Hare, Saffari, Torr, ICCV 2011), an online structured-output
// SVM that tracks a single object's bounding box across video frames
// (spec.md, OVERVIEW). Tracker wires the sampler, feature extractor,
// kernel, learner core, and optional search-center predictor together
// into the per-frame Initialise/Track loop Tracker.h/Tracker.cpp define.
package struck

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/brobeson/struck/config"
	"github.com/brobeson/struck/features"
	"github.com/brobeson/struck/geometry"
	"github.com/brobeson/struck/kernel"
	"github.com/brobeson/struck/learner"
	"github.com/brobeson/struck/predictor"
	"github.com/brobeson/struck/sampler"
)

// updateRadialRings and updateRadialPoints match Sampler::RadialSamples'
// call site in Tracker::UpdateLearner (5 rings, 16 points per ring).
const (
	updateRadialRings  = 5
	updateRadialPoints = 16
)

// Tracker holds one object's tracking state: its current bounding box,
// the learner core trained on the frames seen so far, and the
// collaborators (sampler, predictor) that turn a frame into learner
// input.
type Tracker struct {
	config       config.Config
	sampler      *sampler.Sampler
	learner      *learner.Learner
	predictor    *predictor.Predictor
	searchRadius float64

	bb          geometry.Box
	initialised bool
	debug       DebugFrame
	lastFeature []float64
}

// DebugFrame is the per-track-step diagnostic snapshot Tracker::Debug
// renders: the raw learner scores over the search window (not
// normalized), plus the learner's own Debug().
type DebugFrame struct {
	Samples []geometry.Box
	Scores  []float64
	Learner learner.Debug

	// FeatureDrift is the Euclidean distance, via features.EuclideanDistance,
	// between this frame's winning sample's feature vector and the
	// previously tracked box's ground feature. A sudden jump signals
	// appearance change or occlusion, since Struck itself never measures
	// this: it only ever compares scores, never features directly.
	FeatureDrift float64
}

// New builds a Tracker from cfg around the given feature extractor and
// kernel, constructing the learner core with cfg's SVM options
// (spec.md §6.1, §6.3).
func New(cfg config.Config, extractor Extractor, k kernel.Function, loss learner.Loss, manipulator learner.Manipulator) (*Tracker, error) {
	s, err := sampler.New(extractor, defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("struck: creating sampler: %w", err)
	}

	variant := learner.Standard
	imageDiagonal := 0.0
	if cfg.SVMVariant == "fuzzy" {
		variant = learner.Fuzzy
		imageDiagonal = geometry.New(0, 0, float64(cfg.FrameWidth), float64(cfg.FrameHeight)).Diagonal()
	}

	l, err := learner.New(learner.Config{
		C:             cfg.SVMC,
		BudgetSize:    cfg.SVMBudgetSize,
		ProcessOld:    cfg.ProcessOld,
		OptimizeAll:   cfg.OptimizeAll,
		Variant:       variant,
		ImageDiagonal: imageDiagonal,
		Seed:          cfg.Seed,
	}, k, loss, manipulator)
	if err != nil {
		return nil, fmt.Errorf("struck: creating learner: %w", err)
	}

	t := &Tracker{
		config:       cfg,
		sampler:      s,
		learner:      l,
		searchRadius: cfg.SearchRadius,
	}
	if cfg.UsePredictor {
		t.predictor = predictor.New(0.05, 0.00625)
	}
	return t, nil
}

const defaultCacheSize = 512

// Extractor is a type alias to avoid a direct dependency on the
// features package's concrete extractor types from this file's public
// signature; wiring a concrete features.Extractor value satisfies it.
type Extractor = interface {
	Extract(img gocv.Mat, roi image.Rectangle) ([]float64, error)
	Dims() int
	String() string
}

// IsInitialised reports whether Initialise has been called.
func (t *Tracker) IsInitialised() bool {
	return t.initialised
}

// GetBB returns the tracker's current bounding box estimate.
func (t *Tracker) GetBB() geometry.Box {
	return t.bb
}

// Initialise seeds the tracker with a known bounding box on the first
// frame, matching Tracker::Initialise.
func (t *Tracker) Initialise(frame gocv.Mat, bb geometry.Box) error {
	t.bb = bb
	if t.predictor != nil {
		t.predictor.Reset(bb)
	}
	if err := t.updateLearner(frame); err != nil {
		return err
	}
	t.initialised = true
	return nil
}

// Track advances the tracker by one frame, matching Tracker::Track:
// score every pixel-radius sample around the current box, move to the
// best-scoring one, then re-train the learner around the new box.
func (t *Tracker) Track(frame gocv.Mat) error {
	if !t.initialised {
		return fmt.Errorf("struck: Track called before Initialise: %w", ErrNotInitialised)
	}

	center := t.bb
	if t.predictor != nil && t.predictor.Ready() {
		cx, cy := t.predictor.Predict()
		center = geometry.New(cx-t.bb.Width/2, cy-t.bb.Height/2, t.bb.Width, t.bb.Height)
	}

	candidates := sampler.PixelSamples(center, int(t.searchRadius))
	samples, err := t.sampler.Extract(frame, candidates)
	if err != nil {
		return fmt.Errorf("struck: extracting track samples: %w", err)
	}
	if len(samples) == 0 {
		return fmt.Errorf("struck: no in-bounds samples around %v: %w", center, ErrNoSamples)
	}

	scores := t.learner.Eval(samples)

	bestIndex, bestScore := 0, scores[0]
	for i, s := range scores {
		if s > bestScore {
			bestScore = s
			bestIndex = i
		}
	}

	drift := 0.0
	if t.lastFeature != nil {
		drift = features.EuclideanDistance(t.lastFeature, samples[bestIndex].Feature)
	}

	t.debug = DebugFrame{
		Samples:      boxesOf(samples),
		Scores:       scores,
		Learner:      t.learner.Debug(),
		FeatureDrift: drift,
	}

	t.bb = samples[bestIndex].Label
	if t.predictor != nil {
		t.predictor.Update(t.bb)
	}

	return t.updateLearner(frame)
}

// updateLearner retrains around the current box, matching
// Tracker::UpdateLearner: sample a fixed radial pattern (always
// including the unmoved box as the ground sample at index 0), then feed
// every in-bounds candidate to the learner as one Update call.
func (t *Tracker) updateLearner(frame gocv.Mat) error {
	candidates := sampler.RadialSamples(t.bb, 2*t.searchRadius, updateRadialRings, updateRadialPoints)
	samples, err := t.sampler.Extract(frame, candidates)
	if err != nil {
		return fmt.Errorf("struck: extracting update samples: %w", err)
	}
	if len(samples) == 0 {
		return fmt.Errorf("struck: no in-bounds samples around %v: %w", t.bb, ErrNoSamples)
	}

	ground := groundIndex(samples, t.bb)
	featureVectors := make([][]float64, len(samples))
	labels := make([]geometry.Box, len(samples))
	for i, s := range samples {
		featureVectors[i] = s.Feature
		labels[i] = s.Label
	}
	t.lastFeature = featureVectors[ground]

	return t.learner.Update(nil, featureVectors, labels, ground)
}

// Debug returns the last Track call's diagnostic snapshot.
func (t *Tracker) Debug() DebugFrame {
	return t.debug
}

func boxesOf(samples []learner.Sample) []geometry.Box {
	boxes := make([]geometry.Box, len(samples))
	for i, s := range samples {
		boxes[i] = s.Label
	}
	return boxes
}

// groundIndex finds bb among samples, falling back to 0 (the sampler
// always places the unmoved box first, per RadialSamples) if an
// out-of-bounds filter ever dropped it.
func groundIndex(samples []learner.Sample, bb geometry.Box) int {
	for i, s := range samples {
		if s.Label == bb {
			return i
		}
	}
	return 0
}
