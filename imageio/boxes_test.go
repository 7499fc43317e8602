package imageio

import (
	"bytes"
	"testing"

	"github.com/brobeson/struck/analyze"
	"github.com/brobeson/struck/geometry"
)

func TestBoxWriterRoundTripsWithAnalyze(t *testing.T) {
	var buf bytes.Buffer
	w := NewBoxWriter(&buf)

	boxes := []geometry.Box{
		geometry.New(1, 2, 3, 4),
		geometry.New(5.5, 6.5, 7.5, 8.5),
	}
	for _, b := range boxes {
		if err := w.Write(b); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	roundTripped, err := analyze.ReadBoxes(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(roundTripped) != len(boxes) {
		t.Fatalf("got %d boxes, want %d", len(roundTripped), len(boxes))
	}
	for i := range boxes {
		if roundTripped[i] != boxes[i] {
			t.Errorf("box %d = %v, want %v", i, roundTripped[i], boxes[i])
		}
	}
}
