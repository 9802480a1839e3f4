package landsat

import (
	"matbm.net/watercolor/imagery/raster"
)

// Mask flags pixels to keep.
type Mask []bool

// Count returns the number of kept pixels.
func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// NormalizedDifference computes (a - b) / (a + b). Pixels where either band
// is missing or the sum is zero are NaN.
func NormalizedDifference(a, b *raster.Band) (*raster.Band, error) {
	if !a.SameSize(b) {
		return nil, &DimensionError{Width: b.Width, Height: b.Height, SceneWidth: a.Width, SceneHeight: a.Height}
	}
	out := raster.NewBand(a.Width, a.Height)
	for i := range out.Data {
		av, bv := a.Data[i], b.Data[i]
		sum := av + bv
		if raster.IsNaN(av) || raster.IsNaN(bv) || sum == 0 {
			out.Data[i] = raster.NaN()
			continue
		}
		out.Data[i] = (av - bv) / sum
	}
	return out, nil
}

// MNDWI is the modified normalized difference water index of green (B3)
// and short wave infrared (B6).
func MNDWI(s *Scene) (*raster.Band, error) {
	green, err := s.Band("B3")
	if err != nil {
		return nil, err
	}
	swir, err := s.Band("B6")
	if err != nil {
		return nil, err
	}
	return NormalizedDifference(green, swir)
}

// WaterMask keeps pixels with MNDWI >= 0.
func WaterMask(s *Scene) (Mask, error) {
	mndwi, err := MNDWI(s)
	if err != nil {
		return nil, err
	}
	mask := make(Mask, mndwi.Len())
	for i, v := range mndwi.Data {
		mask[i] = v >= 0
	}
	return mask, nil
}
