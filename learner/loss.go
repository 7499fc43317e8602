package learner

import (
	"fmt"
	"math"

	"github.com/brobeson/struck/geometry"
)

// Loss evaluates the mismatch between a pattern's ground translation and a
// candidate translation, per spec.md §4.5. Implementations return a value
// on [0, 1].
type Loss interface {
	Evaluate(ground, candidate geometry.Box) float32
	String() string
}

// IoULoss is 1 - overlap(ground, candidate), the default loss.
type IoULoss struct{}

// Evaluate implements Loss.
func (IoULoss) Evaluate(ground, candidate geometry.Box) float32 {
	return float32(1 - ground.Overlap(candidate))
}

func (IoULoss) String() string { return "iou" }

// DistanceLoss is the Euclidean displacement between box centers, scaled
// by the maximum possible displacement (spec.md §4.5). dMax must be
// strictly positive.
type DistanceLoss struct {
	dMax float32
}

// NewDistanceLoss constructs a DistanceLoss. It returns ErrInvalidGeometry
// if dMax is not strictly positive, per spec.md §4.5.
func NewDistanceLoss(dMax float32) (DistanceLoss, error) {
	if dMax <= 0 {
		return DistanceLoss{}, fmt.Errorf("learner: distance loss requires dMax > 0, got %v: %w", dMax, ErrInvalidGeometry)
	}
	return DistanceLoss{dMax: dMax}, nil
}

// Evaluate implements Loss.
func (d DistanceLoss) Evaluate(ground, candidate geometry.Box) float32 {
	gx, gy := ground.Center()
	cx, cy := candidate.Center()
	dx := cx - gx
	dy := cy - gy

	// accumulate in float64, cast down: labels and loss are float32 per
	// spec.md §9, "Numeric precision".
	dist := float32(math.Sqrt(dx*dx + dy*dy))
	return dist / d.dMax
}

func (DistanceLoss) String() string { return "distance" }
