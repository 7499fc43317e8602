package analyze

import (
	"bytes"
	"testing"

	"github.com/brobeson/struck/geometry"
)

func TestCompactBoxRoundTrip(t *testing.T) {
	boxes := []geometry.Box{
		geometry.New(1, 2, 3, 4),
		geometry.New(10.5, 20.25, 30, 40),
	}

	var buf bytes.Buffer
	if err := WriteCompactBoxes(&buf, boxes); err != nil {
		t.Fatal(err)
	}

	got, err := ReadCompactBoxes(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(boxes) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(boxes))
	}
	for i := range boxes {
		if absFloat(got[i].X-boxes[i].X) > 0.01 ||
			absFloat(got[i].Y-boxes[i].Y) > 0.01 ||
			absFloat(got[i].Width-boxes[i].Width) > 0.01 ||
			absFloat(got[i].Height-boxes[i].Height) > 0.01 {
			t.Errorf("box %d = %v, want approximately %v", i, got[i], boxes[i])
		}
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestCompressedReportRoundTrip(t *testing.T) {
	report := Report{IoUs: []float64{1, 0.5}, Minimum: 0.5, Maximum: 1, Average: 0.75}

	var buf bytes.Buffer
	if err := WriteCompressedReport(&buf, report); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty compressed output")
	}
}
