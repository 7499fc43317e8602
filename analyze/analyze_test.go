package analyze

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brobeson/struck/geometry"
)

// TestRoundTrip covers spec.md scenario S3: writing, reading back, and
// self-comparing a small box list yields IoU 1.0 on every line.
func TestRoundTrip(t *testing.T) {
	boxes := []geometry.Box{
		geometry.New(0, 0, 10, 10),
		geometry.New(5, 5, 10, 10),
	}

	var buf bytes.Buffer
	if err := WriteBoxes(&buf, boxes); err != nil {
		t.Fatal(err)
	}

	roundTripped, err := ReadBoxes(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(roundTripped) != len(boxes) {
		t.Fatalf("got %d boxes, want %d", len(roundTripped), len(boxes))
	}

	report := Compare(roundTripped, boxes, 1)

	var out bytes.Buffer
	if err := WriteReport(&out, report); err != nil {
		t.Fatal(err)
	}

	want := "1.0\n1.0\nminimum: 1.0\nmaximum: 1.0\naverage: 1.0"
	if got := out.String(); got != want {
		t.Fatalf("report = %q, want %q", got, want)
	}
}

// TestDisjoint covers spec.md scenario S4.
func TestDisjoint(t *testing.T) {
	a := []geometry.Box{geometry.New(0, 0, 10, 10)}
	b := []geometry.Box{geometry.New(100, 100, 10, 10)}

	report := Compare(a, b, 1)
	if len(report.IoUs) != 1 || report.IoUs[0] != 0 {
		t.Fatalf("IoUs = %v, want [0]", report.IoUs)
	}
}

func TestValidateLengthsWarnsOnMismatch(t *testing.T) {
	a := make([]geometry.Box, 3)
	b := make([]geometry.Box, 5)

	ok, warning := ValidateLengths(a, b)
	if ok {
		t.Fatal("expected mismatch to be reported")
	}
	if !strings.Contains(warning, "3") || !strings.Contains(warning, "5") {
		t.Fatalf("warning = %q, want it to mention both counts", warning)
	}
}

func TestValidateLengthsOkOnMatch(t *testing.T) {
	a := make([]geometry.Box, 4)
	b := make([]geometry.Box, 4)

	ok, warning := ValidateLengths(a, b)
	if !ok || warning != "" {
		t.Fatalf("ok = %v, warning = %q, want true and empty", ok, warning)
	}
}

func TestReadBoxesRejectsMalformedLines(t *testing.T) {
	_, err := ReadBoxes(strings.NewReader("1,2,3\n"))
	if err == nil {
		t.Fatal("expected an error for a line with only 3 fields")
	}
}
