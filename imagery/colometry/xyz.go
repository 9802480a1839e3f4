package colometry

import (
	"math"
)

type Vec3 [3]float64

type Matrix3x3 [3][3]float64

// Multiply multiplies a Vec3 by a Matrix3x3
func (v Vec3) Multiply(m Matrix3x3) Vec3 {
	return Vec3{
		v[0]*m[0][0] + v[1]*m[0][1] + v[2]*m[0][2],
		v[0]*m[1][0] + v[1]*m[1][1] + v[2]*m[1][2],
		v[0]*m[2][0] + v[1]*m[2][1] + v[2]*m[2][2],
	}
}

// Sum returns the sum of the three components
func (v Vec3) Sum() float64 {
	return v[0] + v[1] + v[2]
}

// XYZ to linear sRGB, D65
var sRGBMatrix = Matrix3x3{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// Tristimulus holds the X, Y, Z values derived from a reflectance tuple.
// The scale is roughly 0-100 for reflectances in 0-1.
type Tristimulus Vec3

// Chromaticity normalizes the tristimulus values by their sum and shifts
// x and y so the white point sits at the origin. A zero sum yields NaN.
func (t Tristimulus) Chromaticity() Vec3 {
	sum := Vec3(t).Sum()
	return Vec3{
		t[0]/sum - whitePointOffset,
		t[1]/sum - whitePointOffset,
		t[2] / sum,
	}
}

// SRGB converts the tristimulus to gamma corrected sRGB components in 0-1.
// Out of gamut values are clamped.
func (t Tristimulus) SRGB() (r, g, b float64) {
	coord := Vec3{t[0] / 100, t[1] / 100, t[2] / 100}
	rgb := coord.Multiply(sRGBMatrix)
	for i := range rgb {
		rgb[i] = min(1, GammaCorrectsRGB(max(0, rgb[i])))
	}
	return rgb[0], rgb[1], rgb[2]
}

// GammaCorrectsRGB From https://stackoverflow.com/a/39446403
func GammaCorrectsRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}

	a := 0.055
	return (1+a)*math.Pow(c, 1/2.4) - a
}
