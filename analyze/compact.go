package analyze

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/x448/float16"

	"github.com/brobeson/struck/geometry"
)

// WriteCompactBoxes writes boxes in a fixed-width binary form, four
// half-precision floats per box, for archived results where spec.md §9
// prefers a compact on-disk footprint over the human-readable CSV
// format ReadBoxes/WriteBoxes use.
func WriteCompactBoxes(w io.Writer, boxes []geometry.Box) error {
	buf := make([]byte, 8)
	for _, b := range boxes {
		binary.LittleEndian.PutUint16(buf[0:2], float16.Fromfloat32(float32(b.X)).Bits())
		binary.LittleEndian.PutUint16(buf[2:4], float16.Fromfloat32(float32(b.Y)).Bits())
		binary.LittleEndian.PutUint16(buf[4:6], float16.Fromfloat32(float32(b.Width)).Bits())
		binary.LittleEndian.PutUint16(buf[6:8], float16.Fromfloat32(float32(b.Height)).Bits())
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("analyze: writing compact box: %w", err)
		}
	}
	return nil
}

// ReadCompactBoxes reads boxes written by WriteCompactBoxes.
func ReadCompactBoxes(r io.Reader) ([]geometry.Box, error) {
	var boxes []geometry.Box
	buf := make([]byte, 8)
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("analyze: reading compact box: %w", err)
		}
		x := float16.Frombits(binary.LittleEndian.Uint16(buf[0:2])).Float32()
		y := float16.Frombits(binary.LittleEndian.Uint16(buf[2:4])).Float32()
		width := float16.Frombits(binary.LittleEndian.Uint16(buf[4:6])).Float32()
		height := float16.Frombits(binary.LittleEndian.Uint16(buf[6:8])).Float32()
		boxes = append(boxes, geometry.New(float64(x), float64(y), float64(width), float64(height)))
	}
	return boxes, nil
}
