// Package sampler generates the finite set of candidate translations
// around a bounding box that the learner core evaluates and trains on
// (spec.md §6.2, "Sampler"). It sits outside the core: the core treats
// its output as an opaque batch of (feature, label) pairs.
package sampler

import (
	"fmt"
	"image"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"gocv.io/x/gocv"

	"github.com/brobeson/struck/features"
	"github.com/brobeson/struck/geometry"
	"github.com/brobeson/struck/learner"
)

// Sampler produces candidate translations on a pixel or polar grid
// around a previous bounding box, matching Sampler::PixelSamples and
// Sampler::RadialSamples from the original implementation, and caches
// extracted features by content hash so an unchanged patch is never
// re-extracted (grounded on postprocess/reid's fingerprinting, adapted
// in features.FingerprintHash).
type Sampler struct {
	extractor features.Extractor
	cache     *lru.Cache[string, []float64]
}

// New builds a Sampler backed by an LRU feature cache of the given size.
func New(extractor features.Extractor, cacheSize int) (*Sampler, error) {
	cache, err := lru.New[string, []float64](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("sampler: creating feature cache: %w", err)
	}
	return &Sampler{extractor: extractor, cache: cache}, nil
}

// PixelSamples enumerates every integer-pixel translation of base within
// radius pixels, matching Sampler::PixelSamples.
func PixelSamples(base geometry.Box, radius int) []geometry.Box {
	var boxes []geometry.Box
	r2 := float64(radius * radius)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if float64(dx*dx+dy*dy) > r2 {
				continue
			}
			boxes = append(boxes, geometry.New(base.X+float64(dx), base.Y+float64(dy), base.Width, base.Height))
		}
	}
	return boxes
}

// RadialSamples enumerates translations on nRadial concentric rings of
// nAngular points each out to maxRadius, matching
// Sampler::RadialSamples. It always includes the zero-translation
// (unmoved) box first.
func RadialSamples(base geometry.Box, maxRadius float64, nRadial, nAngular int) []geometry.Box {
	boxes := []geometry.Box{base}
	for ring := 1; ring <= nRadial; ring++ {
		radius := maxRadius * float64(ring) / float64(nRadial)
		for a := 0; a < nAngular; a++ {
			theta := 2 * math.Pi * float64(a) / float64(nAngular)
			dx := radius * math.Cos(theta)
			dy := radius * math.Sin(theta)
			boxes = append(boxes, geometry.New(base.X+dx, base.Y+dy, base.Width, base.Height))
		}
	}
	return boxes
}

// Extract turns a set of candidate boxes into learner.Samples, reusing
// cached features for any box whose patch hashes to a value already
// seen.
func (s *Sampler) Extract(img gocv.Mat, boxes []geometry.Box) ([]learner.Sample, error) {
	samples := make([]learner.Sample, 0, len(boxes))
	for _, b := range boxes {
		roi := image.Rect(int(b.X), int(b.Y), int(b.Right()), int(b.Bottom()))
		if !roi.In(image.Rect(0, 0, img.Cols(), img.Rows())) {
			continue
		}

		feature, err := s.extractCached(img, roi)
		if err != nil {
			return nil, err
		}
		samples = append(samples, learner.Sample{Feature: feature, Label: b})
	}
	return samples, nil
}

// extractCached hashes the raw patch bytes before running the (more
// expensive) feature extractor, so an unchanged patch skips extraction
// entirely rather than merely skipping a redundant cache write.
func (s *Sampler) extractCached(img gocv.Mat, roi image.Rectangle) ([]float64, error) {
	patch := img.Region(roi)
	key, err := patchKey(patch)
	patch.Close()
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	feature, err := s.extractor.Extract(img, roi)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, feature)
	return feature, nil
}

// patchKey fingerprints the raw patch bytes with features.FingerprintHash,
// treating each byte as a one-dimensional sample so the same SHA-256
// fingerprinting this repo uses for extracted feature vectors also
// covers the pre-extraction cache key.
func patchKey(patch gocv.Mat) (string, error) {
	raw := patch.ToBytes()
	values := make([]float64, len(raw))
	for i, b := range raw {
		values[i] = float64(b)
	}
	hash, err := features.FingerprintHash(values)
	if err != nil {
		return "", fmt.Errorf("sampler: fingerprinting patch: %w", err)
	}
	return fmt.Sprintf("%dx%d:%s", patch.Rows(), patch.Cols(), hash), nil
}
