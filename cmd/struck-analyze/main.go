// Command struck-analyze scores a tracker's results against ground truth,
// one sequence per argument, matching the original analyze utility.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brobeson/struck/analyze"
	"github.com/brobeson/struck/geometry"
)

func main() {
	chart := flag.Bool("chart", false, "also render a PNG chart of IoU over frames alongside the .ious report")
	compress := flag.Bool("compress", false, "read a zstd-compressed .boxes file and write a zstd-compressed .ious.zst report")
	compact := flag.Bool("compact", false, "read the ground truth from a float16 .gtc file instead of _gt.txt")
	flag.Parse()

	sequences := flag.Args()
	if len(sequences) < 1 {
		fmt.Fprintln(os.Stderr, "error: at least one sequence is required")
		os.Exit(1)
	}

	for _, sequence := range sequences {
		if err := analyzeSequence(sequence, *chart, *compress, *compact); err != nil {
			fmt.Fprintf(os.Stderr, "error analyzing %s: %v\n", sequence, err)
		}
	}
}

func analyzeSequence(sequence string, chart, compress, compact bool) error {
	fmt.Printf("analyzing %s...\n", sequence)

	results, err := loadResults(sequence, compress)
	if err != nil {
		return err
	}

	groundTruth, err := loadGroundTruth(sequence, compact)
	if err != nil {
		return err
	}

	if ok, warning := analyze.ValidateLengths(results, groundTruth); !ok {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}

	report := analyze.Compare(results, groundTruth, 1)

	if err := writeReport(sequence, report, compress); err != nil {
		return err
	}

	if chart {
		chartPath := sequence + ".png"
		if err := analyze.WriteChart(report, chartPath); err != nil {
			return err
		}
	}

	analyze.WriteSummaryTable(os.Stdout, report)
	return nil
}

func loadResults(sequence string, compress bool) ([]geometry.Box, error) {
	if compress {
		path := sequence + ".boxes.zst"
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return analyze.ReadCompressedBoxes(f)
	}
	return analyze.LoadBoxes(sequence + ".boxes")
}

func loadGroundTruth(sequence string, compact bool) ([]geometry.Box, error) {
	if compact {
		path := sequence + ".gtc"
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return analyze.ReadCompactBoxes(f)
	}
	return analyze.LoadBoxes(sequence + "_gt.txt")
}

func writeReport(sequence string, report analyze.Report, compress bool) error {
	if compress {
		outPath := sequence + ".ious.zst"
		out, err := os.Create(filepath.Clean(outPath))
		if err != nil {
			return fmt.Errorf("opening %s for writing: %w", outPath, err)
		}
		defer out.Close()
		return analyze.WriteCompressedReport(out, report)
	}

	outPath := sequence + ".ious"
	out, err := os.Create(filepath.Clean(outPath))
	if err != nil {
		return fmt.Errorf("opening %s for writing: %w", outPath, err)
	}
	defer out.Close()
	return analyze.WriteReport(out, report)
}
