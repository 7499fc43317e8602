package features

import (
	"image"

	"gocv.io/x/gocv"
)

// Composite concatenates the outputs of several extractors into one
// feature vector, matching the source's ability to configure multiple
// "feature <name> <kernel>" lines that a MultiKernel (kernel.Composite)
// evaluates block-wise (Tracker.h).
type Composite struct {
	Extractors []Extractor
}

func (c Composite) Dims() int {
	total := 0
	for _, e := range c.Extractors {
		total += e.Dims()
	}
	return total
}

// Sizes returns each sub-extractor's dimensionality, in order, for
// wiring a kernel.Composite over the same feature blocks.
func (c Composite) Sizes() []int {
	sizes := make([]int, len(c.Extractors))
	for i, e := range c.Extractors {
		sizes[i] = e.Dims()
	}
	return sizes
}

func (Composite) String() string { return "composite" }

func (c Composite) Extract(img gocv.Mat, roi image.Rectangle) ([]float64, error) {
	out := make([]float64, 0, c.Dims())
	for _, e := range c.Extractors {
		v, err := e.Extract(img, roi)
		if err != nil {
			return nil, err
		}
		out = append(out, v...)
	}
	return out, nil
}
