package sampler

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/brobeson/struck/features"
	"github.com/brobeson/struck/geometry"
)

func TestPixelSamplesIncludesCenterAndRespectsRadius(t *testing.T) {
	base := geometry.New(10, 10, 5, 5)
	boxes := PixelSamples(base, 2)

	foundCenter := false
	for _, b := range boxes {
		if b == base {
			foundCenter = true
		}
		dx := b.X - base.X
		dy := b.Y - base.Y
		if dx*dx+dy*dy > 4 {
			t.Fatalf("box %v is outside the radius", b)
		}
	}
	if !foundCenter {
		t.Fatal("expected the unmoved box to be included")
	}
}

func TestRadialSamplesIncludesCenter(t *testing.T) {
	base := geometry.New(0, 0, 5, 5)
	boxes := RadialSamples(base, 20, 3, 8)
	if boxes[0] != base {
		t.Fatalf("first box = %v, want the unmoved base %v", boxes[0], base)
	}
	if got, want := len(boxes), 1+3*8; got != want {
		t.Fatalf("len(boxes) = %d, want %d", got, want)
	}
}

func TestExtractSkipsOutOfBoundsBoxes(t *testing.T) {
	img := gocv.NewMatWithSize(50, 50, gocv.MatTypeCV8UC3)
	defer img.Close()

	s, err := New(features.RawPixel{Width: 4, Height: 4}, 16)
	if err != nil {
		t.Fatal(err)
	}

	boxes := []geometry.Box{
		geometry.New(0, 0, 10, 10),   // in bounds
		geometry.New(45, 45, 20, 20), // out of bounds
	}
	samples, err := s.Extract(img, boxes)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 1 {
		t.Fatalf("len(samples) = %d, want 1", len(samples))
	}
}

func TestExtractCachesIdenticalPatches(t *testing.T) {
	img := gocv.NewMatWithSize(50, 50, gocv.MatTypeCV8UC3)
	defer img.Close()

	s, err := New(features.RawPixel{Width: 4, Height: 4}, 16)
	if err != nil {
		t.Fatal(err)
	}

	boxes := []geometry.Box{
		geometry.New(0, 0, 10, 10),
		geometry.New(0, 0, 10, 10),
	}
	samples, err := s.Extract(img, boxes)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 2 {
		t.Fatalf("len(samples) = %d, want 2", len(samples))
	}
	if s.cache.Len() != 1 {
		t.Fatalf("cache.Len() = %d, want 1 for two identical patches", s.cache.Len())
	}
}
