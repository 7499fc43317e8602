// Package render draws a tracker's output onto a video frame: the
// tracked bounding box, its confidence score, and a trail of past
// centers (spec.md §6.2, "Renderer"). Adapted from the teacher's
// multi-detection overlay down to the single persistent track a
// structured-output tracker maintains.
package render

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/brobeson/struck/geometry"
)

// boxLabel records the background rectangle, color, text and text
// position of the score label TrackedBox paints above its box.
type boxLabel struct {
	rect    image.Rectangle
	clr     Color
	text    string
	textPos image.Point
}

// TrackedBox draws the tracker's current bounding box, colored by
// confidence via scoreColor, with a "score" label above it.
func TrackedBox(img *gocv.Mat, box geometry.Box, score float64, font Font, lineThickness int) {
	clr := scoreColor(score)
	rect := image.Rect(int(box.X), int(box.Y), int(box.Right()), int(box.Bottom()))
	gocv.Rectangle(img, rect, clr, lineThickness)

	text := fmt.Sprintf("%.3f", score)
	textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

	var centerX int
	switch font.Alignment {
	case Center:
		centerX = (rect.Min.X + rect.Max.X) / 2
	case Right:
		centerX = rect.Max.X - (textSize.X / 2) - font.RightPad + (lineThickness / 2)
	case Left:
		fallthrough
	default:
		centerX = rect.Min.X + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
	}

	label := boxLabel{
		rect: image.Rect(
			centerX-textSize.X/2-font.LeftPad,
			rect.Min.Y-textSize.Y-font.TopPad-font.BottomPad,
			centerX+textSize.X/2+font.RightPad,
			rect.Min.Y,
		),
		clr:     clr,
		text:    text,
		textPos: image.Pt(centerX-textSize.X/2, rect.Min.Y-font.BottomPad),
	}

	gocv.Rectangle(img, label.rect, label.clr, -1)
	gocv.PutTextWithParams(img, label.text, label.textPos, font.Face, font.Scale, font.Color,
		font.Thickness, font.LineType, false)
}

// LostBox draws a dashed marker in place of a box, for frames where the
// tracker's score falls below the caller's confidence threshold. gocv
// has no dashed-rectangle primitive, so this approximates one with
// short segments along each edge.
func LostBox(img *gocv.Mat, box geometry.Box, lineThickness int) {
	rect := image.Rect(int(box.X), int(box.Y), int(box.Right()), int(box.Bottom()))
	const dash = 8
	for x := rect.Min.X; x < rect.Max.X; x += dash * 2 {
		end := min(x+dash, rect.Max.X)
		gocv.Line(img, image.Pt(x, rect.Min.Y), image.Pt(end, rect.Min.Y), Red, lineThickness)
		gocv.Line(img, image.Pt(x, rect.Max.Y), image.Pt(end, rect.Max.Y), Red, lineThickness)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y += dash * 2 {
		end := min(y+dash, rect.Max.Y)
		gocv.Line(img, image.Pt(rect.Min.X, y), image.Pt(rect.Min.X, end), Red, lineThickness)
		gocv.Line(img, image.Pt(rect.Max.X, y), image.Pt(rect.Max.X, end), Red, lineThickness)
	}
}
