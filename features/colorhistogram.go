package features

import (
	"image"

	"gocv.io/x/gocv"
)

// ColorHistogram extracts a per-channel intensity histogram, matching
// the source's kFeatureTypeHistogram, normalized so each channel's bins
// sum to 1 (making histogram intersection and chi-squared kernels
// meaningful).
type ColorHistogram struct {
	Bins     int
	Channels int // 1 for grayscale, 3 for BGR
}

func (c ColorHistogram) Dims() int {
	return c.Bins * c.Channels
}

func (ColorHistogram) String() string { return "histogram" }

func (c ColorHistogram) Extract(img gocv.Mat, roi image.Rectangle) ([]float64, error) {
	region := img.Region(roi)
	defer region.Close()

	out := make([]float64, 0, c.Dims())
	mask := gocv.NewMat()
	defer mask.Close()

	for ch := 0; ch < c.Channels; ch++ {
		hist := gocv.NewMat()
		gocv.CalcHist([]gocv.Mat{region}, []int{ch}, mask, &hist, []int{c.Bins}, []float64{0, 256}, false)

		total := 0.0
		bins := make([]float64, c.Bins)
		for i := 0; i < c.Bins; i++ {
			v := float64(hist.GetFloatAt(i, 0))
			bins[i] = v
			total += v
		}
		hist.Close()

		if total > 0 {
			for i := range bins {
				bins[i] /= total
			}
		}
		out = append(out, bins...)
	}

	return out, nil
}
