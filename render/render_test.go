package render

import (
	"image"
	"testing"

	"gocv.io/x/gocv"

	"github.com/brobeson/struck/geometry"
)

func TestTrackedBoxDrawsWithoutError(t *testing.T) {
	img := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	TrackedBox(&img, geometry.New(10, 10, 20, 20), 0.75, DefaultFont(), 2)
	if img.Empty() {
		t.Fatal("expected a non-empty image after drawing")
	}
}

func TestLostBoxDrawsWithoutError(t *testing.T) {
	img := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	LostBox(&img, geometry.New(10, 10, 20, 20), 2)
	if img.Empty() {
		t.Fatal("expected a non-empty image after drawing")
	}
}

func TestTrailRespectsMaxPoints(t *testing.T) {
	img := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	points := make([]image.Point, 0, 50)
	for i := 0; i < 50; i++ {
		points = append(points, image.Pt(i, i))
	}
	style := DefaultTrailStyle()
	style.MaxPoints = 5
	Trail(&img, points, style)
}

func TestTrailNoopOnFewerThanTwoPoints(t *testing.T) {
	img := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	Trail(&img, []image.Point{{X: 1, Y: 1}}, DefaultTrailStyle())
}

func TestScoreOverlayDrawsWithoutError(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 200))
	ScoreOverlay(dst, []float64{0.1, 0.9, 0.55}, 5, 15)
}

func TestScoreColorRampEndpoints(t *testing.T) {
	low := scoreColor(0)
	high := scoreColor(1)
	if low.R < high.R {
		t.Errorf("expected low score to be more red: low.R=%d high.R=%d", low.R, high.R)
	}
	if high.G < low.G {
		t.Errorf("expected high score to be more green: high.G=%d low.G=%d", high.G, low.G)
	}
}
