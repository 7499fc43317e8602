package features

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Haar extracts two-rectangle Haar-like features (matching the source's
// kFeatureTypeHaar): the region is divided into a Grid x Grid array of
// cells, and each feature is the normalized intensity difference between
// a cell and its horizontal neighbor.
type Haar struct {
	Grid int
}

func (h Haar) Dims() int {
	// (Grid-1) horizontal-neighbor differences per row, Grid rows.
	if h.Grid < 2 {
		return 0
	}
	return h.Grid * (h.Grid - 1)
}

func (Haar) String() string { return "haar" }

func (h Haar) Extract(img gocv.Mat, roi image.Rectangle) ([]float64, error) {
	if h.Grid < 2 {
		return nil, fmt.Errorf("features: haar grid must be >= 2, got %d", h.Grid)
	}

	region := img.Region(roi)
	defer region.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	if region.Channels() > 1 {
		gocv.CvtColor(region, &gray, gocv.ColorBGRToGray)
	} else {
		region.CopyTo(&gray)
	}

	integral := gocv.NewMat()
	sqIntegral := gocv.NewMat()
	defer integral.Close()
	defer sqIntegral.Close()
	gocv.Integral(gray, &integral, &sqIntegral)

	cellW := roi.Dx() / h.Grid
	cellH := roi.Dy() / h.Grid
	if cellW < 1 || cellH < 1 {
		return nil, fmt.Errorf("features: roi %v too small for a %dx%d haar grid", roi, h.Grid, h.Grid)
	}

	cellSum := func(row, col int) float64 {
		x0, y0 := col*cellW, row*cellH
		x1, y1 := x0+cellW, y0+cellH
		return float64(integral.GetIntAt(y1, x1)) -
			float64(integral.GetIntAt(y0, x1)) -
			float64(integral.GetIntAt(y1, x0)) +
			float64(integral.GetIntAt(y0, x0))
	}

	out := make([]float64, 0, h.Dims())
	area := float64(cellW * cellH)
	for row := 0; row < h.Grid; row++ {
		for col := 0; col < h.Grid-1; col++ {
			left := cellSum(row, col) / area
			right := cellSum(row, col+1) / area
			out = append(out, (left-right)/255.0)
		}
	}
	return out, nil
}
