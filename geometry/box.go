// Package geometry provides the axis-aligned bounding box type used
// throughout struck as the structured label y (spec.md §3, "Translation
// label y").
package geometry

import "math"

// Box represents an axis-aligned bounding box in image coordinates using
// (x_min, y_min, width, height), the same representation spec.md §3
// requires for a translation label.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// New creates a Box from its top-left corner and size.
func New(x, y, width, height float64) Box {
	return Box{X: x, Y: y, Width: width, Height: height}
}

// Right returns the box's right edge coordinate.
func (b Box) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the box's bottom edge coordinate.
func (b Box) Bottom() float64 {
	return b.Y + b.Height
}

// Area returns the box's area. A degenerate (zero width or height) box has
// area 0.
func (b Box) Area() float64 {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// Center returns the box's center point.
func (b Box) Center() (x, y float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Diagonal returns the Euclidean length of the box's diagonal, used by the
// fuzzy SVM variant (spec.md §4.1) to scale the discriminant by translation
// magnitude.
func (b Box) Diagonal() float64 {
	return math.Hypot(b.Width, b.Height)
}

// Intersect returns the intersection of two boxes. ok is false when the
// boxes do not overlap, in which case the returned Box is the zero value.
func (b Box) Intersect(other Box) (Box, bool) {
	left := math.Max(b.X, other.X)
	top := math.Max(b.Y, other.Y)
	right := math.Min(b.Right(), other.Right())
	bottom := math.Min(b.Bottom(), other.Bottom())

	if right <= left || bottom <= top {
		return Box{}, false
	}
	return New(left, top, right-left, bottom-top), true
}

// IoU computes the intersection-over-union of two boxes, per spec.md §6.5:
// IoU = intersection_area / (area(A) + area(B) - intersection_area). Two
// boxes that do not intersect have an IoU of 0.
func (b Box) IoU(other Box) float64 {
	inter, ok := b.Intersect(other)
	if !ok {
		return 0
	}

	interArea := inter.Area()
	union := b.Area() + other.Area() - interArea

	if union <= 0 {
		return 0
	}
	return interArea / union
}

// Overlap is an alias for IoU, matching the naming used by the original
// C++ FloatRect::Overlap and by the iou_loss definition in spec.md §4.5.
func (b Box) Overlap(other Box) float64 {
	return b.IoU(other)
}
