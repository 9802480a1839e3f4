package colometry

import (
	"math"
	"sync"
)

// whitePointOffset is the literal 1/3 approximation the Lehmann calibration
// was fitted with.
const whitePointOffset = 0.3333

// Reflectance is a surface reflectance tuple. U is the ultra blue / coastal
// band, R, G and B the red, green and blue bands.
type Reflectance struct {
	U, R, G, B float64
}

// Tristimulus maps the reflectances to XYZ with the Lehmann et al. (2018)
// coefficients.
func (r Reflectance) Tristimulus() Tristimulus {
	return Tristimulus{
		34.457*r.R + 51.135*r.G + 6.950*r.B + 11.053*r.U,
		18.034*r.R + 66.023*r.G + 21.053*r.B + 1.320*r.U,
		0.016*r.R + 2.606*r.G + 34.931*r.B + 58.038*r.U,
	}
}

// Hue holds the intermediate hue angles of a classification, in degrees.
type Hue struct {
	// Alpha is atan2(y, x) of the shifted chromaticity.
	Alpha float64
	// Rotated is -Alpha + 90, increasing counterclockwise from x positive.
	Rotated float64
	// A is Rotated / 100, the variable of both correction polynomials.
	A float64
	// Delta is the polynomial correction added to Rotated.
	Delta float64
	// Final is the corrected angle rotated back; used for the table lookup.
	Final float64
}

// Result is the dominant wavelength classification of one pixel.
type Result struct {
	// Wavelength in nm, NaN when the hue is outside the calibration table.
	Wavelength float64
	// Purity is the corrected distance to the white point.
	Purity float64
	Hue    Hue
	// Chromaticity is (x, y, z) with the white point offset applied to x and y.
	Chromaticity Vec3
}

// HasWavelength reports whether the hue fell inside the calibration table.
func (r Result) HasWavelength() bool {
	return !math.IsNaN(r.Wavelength)
}

// Valid reports whether both outputs are finite.
func (r Result) Valid() bool {
	return r.HasWavelength() && !math.IsNaN(r.Purity) && !math.IsInf(r.Purity, 0)
}

var lehmannTable = sync.OnceValue(func() *Interpolator {
	in, err := NewInterpolator(lehmannAlpha[:], lehmannWavelength[:])
	if err != nil {
		panic(err)
	}
	return in
})

// LehmannTable returns the hue angle to dominant wavelength calibration.
func LehmannTable() *Interpolator {
	return lehmannTable()
}

// Classify estimates the dominant wavelength and purity of r. A zero
// tristimulus sum or non finite input yields NaN outputs, it never panics.
func Classify(r Reflectance) Result {
	chroma := r.Tristimulus().Chromaticity()
	x, y := chroma[0], chroma[1]

	hue := Hue{Alpha: math.Atan2(y, x) * 180 / math.Pi}
	hue.Rotated = -hue.Alpha + 90
	hue.A = hue.Rotated / 100
	hue.Delta = alphaCorrection(hue.A)
	hue.Final = -(hue.Rotated + hue.Delta) + 90

	// The purity correction is evaluated at the uncorrected rotated angle.
	purity := math.Sqrt(x*x+y*y) + purityCorrection(hue.A)

	wavelength, _ := lehmannTable().At(hue.Final)
	return Result{
		Wavelength:   wavelength,
		Purity:       purity,
		Hue:          hue,
		Chromaticity: chroma,
	}
}

func alphaCorrection(a float64) float64 {
	return -52.16*math.Pow(a, 5) + 373.81*math.Pow(a, 4) - 981.83*math.Pow(a, 3) +
		1134.19*math.Pow(a, 2) - 533.61*a + 76.72
}

func purityCorrection(a float64) float64 {
	return -0.0099*math.Pow(a, 5) + 0.1199*math.Pow(a, 4) - 0.4594*math.Pow(a, 3) +
		0.7515*math.Pow(a, 2) - 0.5095*a + 0.1222
}
