package landsat

import (
	"math"
)

// GeoTransform is a GDAL style affine transform:
//
//	X = t[0] + col*t[1] + row*t[2]
//	Y = t[3] + col*t[4] + row*t[5]
type GeoTransform [6]float64

// Apply maps a pixel position to scene coordinates.
func (t GeoTransform) Apply(col, row float64) (x, y float64) {
	return t[0] + col*t[1] + row*t[2], t[3] + col*t[4] + row*t[5]
}

// Invert maps scene coordinates to a fractional pixel position. ok is false
// for a singular transform.
func (t GeoTransform) Invert(x, y float64) (col, row float64, ok bool) {
	det := t[1]*t[5] - t[2]*t[4]
	if det == 0 {
		return 0, 0, false
	}
	dx, dy := x-t[0], y-t[3]
	col = (t[5]*dx - t[2]*dy) / det
	row = (-t[4]*dx + t[1]*dy) / det
	return col, row, true
}

// PixelAt returns the pixel containing x, y. ok is false when it falls
// outside the scene.
func (m Metadata) PixelAt(x, y float64) (col, row int, ok bool) {
	fc, fr, ok := m.Transform.Invert(x, y)
	if !ok {
		return 0, 0, false
	}
	col, row = int(math.Floor(fc)), int(math.Floor(fr))
	if col < 0 || row < 0 || col >= m.Width || row >= m.Height {
		return col, row, false
	}
	return col, row, true
}

// Contains reports whether x, y falls inside the scene footprint.
func (m Metadata) Contains(x, y float64) bool {
	_, _, ok := m.PixelAt(x, y)
	return ok
}
