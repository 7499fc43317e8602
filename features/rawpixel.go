package features

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// RawPixel extracts a fixed-size grayscale intensity patch, matching the
// source's kFeatureTypeRaw: the region is resized to Width x Height,
// flattened, scaled to [0, 1], then L2-normalized with Normalize so the
// kernel sees intensity direction rather than raw brightness.
type RawPixel struct {
	Width  int
	Height int
}

func (r RawPixel) Dims() int {
	return r.Width * r.Height
}

func (RawPixel) String() string { return "raw" }

func (r RawPixel) Extract(img gocv.Mat, roi image.Rectangle) ([]float64, error) {
	region := img.Region(roi)
	defer region.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	if region.Channels() > 1 {
		gocv.CvtColor(region, &gray, gocv.ColorBGRToGray)
	} else {
		region.CopyTo(&gray)
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(gray, &resized, image.Pt(r.Width, r.Height), 0, 0, gocv.InterpolationLinear)

	if resized.Empty() {
		return nil, fmt.Errorf("features: raw pixel extraction produced an empty patch for roi %v", roi)
	}

	out := make([]float64, r.Dims())
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			out[y*r.Width+x] = float64(resized.GetUCharAt(y, x)) / 255.0
		}
	}
	return Normalize(out), nil
}
