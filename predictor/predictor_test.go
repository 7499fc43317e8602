package predictor

import (
	"math"
	"testing"

	"github.com/brobeson/struck/geometry"
)

func TestNotReadyBeforeReset(t *testing.T) {
	p := New(0.05, 0.00625)
	if p.Ready() {
		t.Fatal("expected a fresh predictor to be not ready")
	}
	cx, cy := p.Predict()
	if cx != 0 || cy != 0 {
		t.Fatalf("Predict() on an unready filter = (%v, %v), want (0, 0)", cx, cy)
	}
}

func TestUpdateInitializesOnFirstCall(t *testing.T) {
	p := New(0.05, 0.00625)
	p.Update(geometry.New(10, 10, 20, 20))
	if !p.Ready() {
		t.Fatal("expected the predictor to be ready after the first Update")
	}
}

func TestPredictTracksConstantVelocity(t *testing.T) {
	p := New(0.05, 0.00625)
	p.Reset(geometry.New(0, 0, 10, 10))

	// feed a sequence of boxes moving at a constant velocity of (2, 1)
	// per frame so the filter's velocity estimate converges.
	for i := 1; i <= 20; i++ {
		box := geometry.New(float64(2*i), float64(i), 10, 10)
		p.Predict()
		p.Update(box)
	}

	cx, cy := p.Predict()
	wantCx := 2.0 * 21
	wantCy := 1.0 * 21
	const tolerance = 15
	if math.Abs(cx-wantCx) > tolerance {
		t.Errorf("predicted cx = %v, want approximately %v", cx, wantCx)
	}
	if math.Abs(cy-wantCy) > tolerance {
		t.Errorf("predicted cy = %v, want approximately %v", cy, wantCy)
	}
}
