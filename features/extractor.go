// Package features extracts fixed-length real-valued feature vectors
// from image regions, one of spec.md §6.2's collaborator contracts: pure
// with respect to the image, opaque to the learner core.
package features

import (
	"image"

	"gocv.io/x/gocv"
)

// Extractor turns an image region into a feature vector.
type Extractor interface {
	// Extract returns the feature vector for the region of img
	// described by roi. img is never modified.
	Extract(img gocv.Mat, roi image.Rectangle) ([]float64, error)
	// Dims returns the fixed length of vectors this extractor produces.
	Dims() int
	// String names the extractor, matching Config.cpp's feature names
	// ("raw", "haar", "histogram").
	String() string
}
