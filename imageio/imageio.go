// Package imageio reads a tracker's input sequence (a video file or a
// numbered image directory) and persists per-frame bounding box results,
// one of spec.md §6.2's external collaborators.
package imageio

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Sequence yields successive video frames as gocv.Mat values.
type Sequence struct {
	capture *gocv.VideoCapture
}

// OpenVideo opens a video file for frame-by-frame reading, matching
// bytetrack.go's bufferVideo but streaming rather than buffering the
// whole file, since a tracking run only ever needs the current frame.
func OpenVideo(path string) (*Sequence, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: opening video %s: %w", path, err)
	}
	return &Sequence{capture: capture}, nil
}

// Next reads the next frame into img, returning false when the sequence
// is exhausted. img is reused across calls; callers must not retain it
// past the next call to Next.
func (s *Sequence) Next(img *gocv.Mat) bool {
	if ok := s.capture.Read(img); !ok {
		return false
	}
	return !img.Empty()
}

// Close releases the underlying capture handle.
func (s *Sequence) Close() error {
	return s.capture.Close()
}
