package struck

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/brobeson/struck/config"
	"github.com/brobeson/struck/features"
	"github.com/brobeson/struck/geometry"
	"github.com/brobeson/struck/kernel"
	"github.com/brobeson/struck/learner"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	cfg := config.Defaults()
	cfg.SearchRadius = 3
	cfg.SVMBudgetSize = 50

	tr, err := New(cfg, features.RawPixel{Width: 6, Height: 6}, kernel.Linear{}, learner.IoULoss{}, learner.Identity{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return tr
}

func TestTrackBeforeInitialiseErrors(t *testing.T) {
	tr := newTestTracker(t)
	img := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	if err := tr.Track(img); err == nil {
		t.Fatal("expected an error tracking before Initialise")
	}
}

func TestInitialiseThenTrackAdvances(t *testing.T) {
	tr := newTestTracker(t)
	img := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8UC3)
	defer img.Close()

	bb := geometry.New(40, 40, 10, 10)
	if err := tr.Initialise(img, bb); err != nil {
		t.Fatalf("Initialise() error = %v", err)
	}
	if !tr.IsInitialised() {
		t.Fatal("expected IsInitialised() to be true after Initialise")
	}
	if tr.GetBB() != bb {
		t.Fatalf("GetBB() = %v, want %v", tr.GetBB(), bb)
	}

	if err := tr.Track(img); err != nil {
		t.Fatalf("Track() error = %v", err)
	}

	debug := tr.Debug()
	if len(debug.Samples) == 0 || len(debug.Scores) != len(debug.Samples) {
		t.Fatalf("Debug() = %+v, want matching non-empty Samples/Scores", debug)
	}
}

func TestNewRejectsInvalidFuzzyGeometry(t *testing.T) {
	cfg := config.Defaults()
	cfg.SVMVariant = "fuzzy"
	cfg.FrameWidth = 0
	cfg.FrameHeight = 0

	_, err := New(cfg, features.RawPixel{Width: 4, Height: 4}, kernel.Linear{}, learner.IoULoss{}, learner.Identity{})
	if err == nil {
		t.Fatal("expected an error for a zero-sized frame under the fuzzy variant")
	}
}
