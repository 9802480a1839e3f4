package config

import (
	"image/color"
	"math"
)

// Visualization domain of the water colour ramp, in nm.
const (
	PaletteMin = 471
	PaletteMax = 600
)

// Palette maps dominant wavelengths onto the water colour ramp.
type Palette struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultPalette spans the reference visualization domain.
func DefaultPalette() Palette {
	return Palette{Min: PaletteMin, Max: PaletteMax}
}

// Color returns the ramp colour for a wavelength, clamping to the domain.
// ok is false for NaN wavelengths.
func (p Palette) Color(nm float64) (c color.RGBA, ok bool) {
	if math.IsNaN(nm) {
		return color.RGBA{}, false
	}
	last := len(waterColorPalette) - 1
	if nm <= p.Min {
		return waterColorPalette[0], true
	}
	if nm >= p.Max {
		return waterColorPalette[last], true
	}

	pos := (nm - p.Min) / (p.Max - p.Min) * float64(last)
	idx := int(pos)
	if idx >= last {
		return waterColorPalette[last], true
	}

	p1, p2 := waterColorPalette[idx], waterColorPalette[idx+1]
	t := pos - float64(idx)
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
	}
	return color.RGBA{lerp(p1.R, p2.R), lerp(p1.G, p2.G), lerp(p1.B, p2.B), 255}, true
}

// WaterColor returns the colour of nm on the default ramp.
func WaterColor(nm float64) (color.RGBA, bool) {
	return DefaultPalette().Color(nm)
}

// PaletteSize returns the number of ramp entries.
func PaletteSize() int {
	return len(waterColorPalette)
}
