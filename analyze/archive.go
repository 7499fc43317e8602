package analyze

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/brobeson/struck/geometry"
)

// WriteCompressedReport writes report through a zstd stream, for the
// long-running tracker runs spec.md §9 expects to accumulate one report
// per sequence.
func WriteCompressedReport(w io.Writer, report Report) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("analyze: creating zstd writer: %w", err)
	}
	if err := WriteReport(enc, report); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("analyze: closing zstd writer: %w", err)
	}
	return nil
}

// ReadCompressedBoxes reads a zstd-compressed CSV box stream written by
// wrapping WriteBoxes' output with a zstd encoder.
func ReadCompressedBoxes(r io.Reader) ([]geometry.Box, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("analyze: creating zstd reader: %w", err)
	}
	defer dec.Close()
	return ReadBoxes(dec)
}
