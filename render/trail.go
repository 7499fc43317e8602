package render

import (
	"image"

	"gocv.io/x/gocv"
)

// TrailStyle defines the parameters used for rendering a track's
// motion trail.
type TrailStyle struct {
	LineColor     Color
	LineThickness int
	CircleColor   Color
	CircleRadius  int
	// MaxPoints caps how many of the most recent centers are drawn, so a
	// long-running track doesn't accumulate an unbounded trail.
	MaxPoints int
}

// DefaultTrailStyle returns default trail style settings.
func DefaultTrailStyle() TrailStyle {
	return TrailStyle{
		LineColor:     Yellow,
		LineThickness: 1,
		CircleColor:   Pink,
		CircleRadius:  3,
		MaxPoints:     30,
	}
}

// Trail draws points, the tracked box's recent centers oldest first, as
// a polyline: each segment is colored by cycling through
// trackColors along the trail's length, and the current position is
// marked with a filled circle.
func Trail(img *gocv.Mat, points []image.Point, style TrailStyle) {
	if style.MaxPoints > 0 && len(points) > style.MaxPoints {
		points = points[len(points)-style.MaxPoints:]
	}
	if len(points) < 2 {
		return
	}

	for i := 1; i < len(points); i++ {
		segmentColor := trackColors[i%len(trackColors)]
		gocv.Line(img, points[i-1], points[i], segmentColor, style.LineThickness)
	}
	gocv.Circle(img, points[len(points)-1], style.CircleRadius, style.CircleColor, -1)
}
