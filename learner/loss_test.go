package learner

import (
	"errors"
	"testing"

	"github.com/brobeson/struck/geometry"
)

func TestIoULossSelf(t *testing.T) {
	box := geometry.New(1, 2, 10, 12)
	l := IoULoss{}
	if got := l.Evaluate(box, box); got != 0 {
		t.Fatalf("iou_loss(A, A) = %v, want 0", got)
	}
}

func TestDistanceLossSameCenter(t *testing.T) {
	l, err := NewDistanceLoss(100)
	if err != nil {
		t.Fatal(err)
	}
	a := geometry.New(0, 0, 10, 10)
	b := geometry.New(-5, -5, 20, 20) // same center, different size

	if got := l.Evaluate(a, b); got != 0 {
		t.Fatalf("distance_loss(same center) = %v, want 0", got)
	}
}

func TestDistanceLossRejectsNonPositiveMax(t *testing.T) {
	if _, err := NewDistanceLoss(0); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := NewDistanceLoss(-1); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestManipulators(t *testing.T) {
	id := Identity{}
	if got := id.Evaluate(0.37); got != 0.37 {
		t.Fatalf("identity(0.37) = %v, want 0.37", got)
	}

	ss := SmoothStep{}
	if got := ss.Evaluate(0); got != 0 {
		t.Fatalf("smooth_step(0) = %v, want 0", got)
	}
	if got := ss.Evaluate(1); got != 1 {
		t.Fatalf("smooth_step(1) = %v, want 1", got)
	}
	if got, want := ss.Evaluate(0.5), float32(0.5); got != want {
		t.Fatalf("smooth_step(0.5) = %v, want %v", got, want)
	}
	if got, want := ss.Evaluate(0.25), float32(0.15625); !almostEqualF32(got, want, 1e-6) {
		t.Fatalf("smooth_step(0.25) = %v, want %v", got, want)
	}

	// monotone non-decreasing over a coarse sample
	prev := float32(-1)
	for i := 0; i <= 10; i++ {
		v := ss.Evaluate(float32(i) / 10)
		if v < prev {
			t.Fatalf("smooth_step not monotone at sample %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func almostEqualF32(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
