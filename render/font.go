package render

import (
	"image/color"

	"gocv.io/x/gocv"
)

// Alignment positions a score label relative to the box it annotates.
// The teacher's equivalent aligned a class-name label the same way;
// here it's always the single tracked box's discriminant score.
type Alignment int

const (
	Left Alignment = iota + 1
	Center
	Right
)

// Font holds the GoCV text-drawing parameters TrackedBox uses to paint
// a score label above the tracked box.
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
	Alignment Alignment
}

// DefaultFont returns the label style TrackedBox uses when a caller
// doesn't need a custom one: small enough not to obscure a tight box,
// left-aligned above it.
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   4,
		RightPad:  4,
		TopPad:    4,
		BottomPad: 6,
		Alignment: Left,
	}
}
