package render

import (
	"fmt"
	imgcolor "image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ScoreOverlay renders a small strip of confidence-history text using
// golang.org/x/image's font drawer directly onto an RGBA canvas, for
// callers that compose a debug HUD outside of gocv's own text drawing
// (e.g. a headless report renderer that never touches a gocv.Mat).
// Adapted from the teacher's Chinese-text path, which draws through
// image/draw onto an RGBA buffer rather than gocv's Hershey fonts.
func ScoreOverlay(dst draw.Image, scores []float64, x, y int) {
	dr := &font.Drawer{
		Dst:  dst,
		Src:  imgcolor.NewUniform(imgcolor.RGBA{255, 255, 255, 255}),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(y),
		},
	}
	for i, s := range scores {
		text := fmt.Sprintf("%3d: %.3f", i, s)
		dr.Dot.X = fixed.I(x)
		dr.Dot.Y = fixed.I(y + i*13)
		dr.DrawString(text)
	}
}
