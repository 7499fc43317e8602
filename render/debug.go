package render

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/brobeson/struck/geometry"
)

// DebugWriter draws each frame's tracked box, confidence score, and
// motion trail, then writes the annotated frame to sequential JPEG
// files in a directory, matching the teacher's PaintSegmentToFile
// pattern (render/segment.go) of rasterizing an overlay straight to
// disk with gocv.IMWrite rather than building a display window.
type DebugWriter struct {
	dir    string
	font   Font
	style  TrailStyle
	trail  []image.Point
	frame  int
	Thresh float64 // scores below this draw LostBox instead of TrackedBox
}

// NewDebugWriter builds a DebugWriter that writes into dir, which must
// already exist.
func NewDebugWriter(dir string) *DebugWriter {
	return &DebugWriter{
		dir:    dir,
		font:   DefaultFont(),
		style:  DefaultTrailStyle(),
		Thresh: 0,
	}
}

// Write annotates img in place with box/score/trail and saves it as
// frame-%05d.jpg under the writer's directory.
func (w *DebugWriter) Write(img *gocv.Mat, box geometry.Box, score float64) error {
	if score < w.Thresh {
		LostBox(img, box, 2)
	} else {
		TrackedBox(img, box, score, w.font, 2)
	}

	cx, cy := box.Center()
	w.trail = append(w.trail, image.Pt(int(cx), int(cy)))
	Trail(img, w.trail, w.style)

	path := fmt.Sprintf("%s/frame-%05d.jpg", w.dir, w.frame)
	w.frame++
	if !gocv.IMWrite(path, *img) {
		return fmt.Errorf("render: writing debug frame to %s failed", path)
	}
	return nil
}
