package render

import "image/color"

// Color is the pixel type gocv's drawing primitives take.
type Color = color.RGBA

var (
	// trackColors is the palette Trail cycles through, one color per
	// segment of the motion trail.
	trackColors = []Color{
		{R: 255, G: 56, B: 56, A: 255},  // #FF3838
		{R: 255, G: 178, B: 29, A: 255}, // #FFB21D
		{R: 72, G: 249, B: 10, A: 255},  // #48F90A
		{R: 0, G: 212, B: 187, A: 255},  // #00D4BB
		{R: 0, G: 194, B: 255, A: 255},  // #00C2FF
		{R: 132, G: 56, B: 255, A: 255}, // #8438FF
	}

	Black  = Color{R: 0, G: 0, B: 0, A: 255}
	White  = Color{R: 255, G: 255, B: 255, A: 255}
	Yellow = Color{R: 255, G: 255, B: 50, A: 255}
	Pink   = Color{R: 255, G: 0, B: 255, A: 255}
	Green  = Color{R: 72, G: 249, B: 10, A: 255}
	Red    = Color{R: 255, G: 56, B: 56, A: 255}
)

// scoreColor maps a score in [0, 1] to a color on a red-to-green ramp,
// used by TrackedBox to reflect confidence at a glance.
func scoreColor(score float64) Color {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return Color{
		R: uint8(255 * (1 - score)),
		G: uint8(255 * score),
		B: 40,
		A: 255,
	}
}
