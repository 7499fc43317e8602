// Package analyze implements the offline IoU-scoring utility (spec.md
// §6.5): given two CSV files of bounding boxes, it reports one IoU per
// line plus a minimum/maximum/average summary. It is a collaborator, not
// part of the learner core, and is specified only for round-trip
// testing.
package analyze

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/brobeson/struck/geometry"
)

// LoadBoxes reads one bounding box per line from a CSV file in
// left,top,width,height order, the format spec.md §6.4 requires results
// to be persisted in.
func LoadBoxes(path string) ([]geometry.Box, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("analyze: opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadBoxes(f)
}

// ReadBoxes parses CSV bounding box rows from r. Blank lines are
// skipped; anything else that fails to parse as four comma-separated
// floats is an error.
func ReadBoxes(r io.Reader) ([]geometry.Box, error) {
	var boxes []geometry.Box

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("analyze: expected 4 fields, got %d in line %q", len(fields), line)
		}

		values := make([]float64, 4)
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("analyze: parsing field %d of %q: %w", i, line, err)
			}
			values[i] = v
		}
		boxes = append(boxes, geometry.New(values[0], values[1], values[2], values[3]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("analyze: scanning boxes: %w", err)
	}
	return boxes, nil
}

// WriteBoxes writes boxes as CSV, one per line, matching the format
// ReadBoxes accepts (spec.md §6.4, bit-exact round-trip).
func WriteBoxes(w io.Writer, boxes []geometry.Box) error {
	for _, b := range boxes {
		if _, err := fmt.Fprintf(w, "%s,%s,%s,%s\n", formatFloat(b.X), formatFloat(b.Y), formatFloat(b.Width), formatFloat(b.Height)); err != nil {
			return fmt.Errorf("analyze: writing box: %w", err)
		}
	}
	return nil
}

// formatFloat renders a float64 with at least one fractional digit
// (1 -> "1.0", 1.5 -> "1.5"), matching the decimal-point-always-present
// convention of the original implementation's iostream formatting.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Report is the outcome of comparing two box lists: one IoU per
// compared pair plus its summary statistics.
type Report struct {
	IoUs    []float64
	Minimum float64
	Maximum float64
	Average float64
}

// Compare computes IoU for corresponding entries of results and
// groundTruth, advancing by stride entries each time (the original
// implementation used a stride of 5 to subsample dense per-frame
// comparisons; this defaults to 1, comparing every line, matching
// spec.md's literal round-trip scenarios).
func Compare(results, groundTruth []geometry.Box, stride int) Report {
	if stride < 1 {
		stride = 1
	}

	length := len(results)
	if len(groundTruth) < length {
		length = len(groundTruth)
	}

	var report Report
	for i := 0; i < length; i += stride {
		report.IoUs = append(report.IoUs, results[i].IoU(groundTruth[i]))
	}

	if len(report.IoUs) == 0 {
		return report
	}

	report.Minimum = math.Inf(1)
	report.Maximum = math.Inf(-1)
	sum := 0.0
	for _, v := range report.IoUs {
		if v < report.Minimum {
			report.Minimum = v
		}
		if v > report.Maximum {
			report.Maximum = v
		}
		sum += v
	}
	report.Average = sum / float64(len(report.IoUs))

	return report
}

// ValidateLengths reports whether results and groundTruth have matching
// lengths, and the message to warn with when they don't (spec.md §6.5,
// "warning on length mismatch"; grounded on analyze/main.cpp's
// validate_box_lists).
func ValidateLengths(results, groundTruth []geometry.Box) (ok bool, warning string) {
	if len(results) == len(groundTruth) {
		return true, ""
	}
	shorter := len(results)
	if len(groundTruth) < shorter {
		shorter = len(groundTruth)
	}
	return false, fmt.Sprintf(
		"there are %d results boxes and %d ground truth boxes; only the first %d will be considered",
		len(results), len(groundTruth), shorter,
	)
}

// WriteReport writes one IoU per line followed by the min/max/average
// summary, matching analyze/main.cpp's write_ious exactly.
func WriteReport(w io.Writer, report Report) error {
	for _, v := range report.IoUs {
		if _, err := fmt.Fprintf(w, "%s\n", formatFloat(v)); err != nil {
			return fmt.Errorf("analyze: writing IoU: %w", err)
		}
	}
	_, err := fmt.Fprintf(w, "minimum: %s\nmaximum: %s\naverage: %s",
		formatFloat(report.Minimum), formatFloat(report.Maximum), formatFloat(report.Average))
	if err != nil {
		return fmt.Errorf("analyze: writing summary: %w", err)
	}
	return nil
}
