package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/brobeson/struck/geometry"
)

// BoxWriter appends one bounding box per Write call as a CSV line,
// matching spec.md §6.4's persisted-artifact format: "x_min,y_min,
// width,height\n", bit-exact for round-trip with the analyze utility.
type BoxWriter struct {
	w *bufio.Writer
}

// NewBoxWriter wraps w for buffered, line-at-a-time box output.
func NewBoxWriter(w io.Writer) *BoxWriter {
	return &BoxWriter{w: bufio.NewWriter(w)}
}

// Write appends one CSV line for b.
func (bw *BoxWriter) Write(b geometry.Box) error {
	if _, err := fmt.Fprintf(bw.w, "%g,%g,%g,%g\n", b.X, b.Y, b.Width, b.Height); err != nil {
		return fmt.Errorf("imageio: writing box: %w", err)
	}
	return nil
}

// Flush flushes any buffered output to the underlying writer.
func (bw *BoxWriter) Flush() error {
	return bw.w.Flush()
}
