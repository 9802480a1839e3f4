package colometry

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrTable is returned for malformed interpolation tables.
var ErrTable = errors.New("invalid interpolation table")

// Interpolator is a piecewise linear lookup over a table with strictly
// increasing xs. Inputs outside [xs[0], xs[n-1]] are masked, never
// extrapolated.
type Interpolator struct {
	xs []float64
	ys []float64
}

// NewInterpolator copies xs and ys into a new Interpolator.
func NewInterpolator(xs, ys []float64) (*Interpolator, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d reference values for %d targets", ErrTable, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrTable, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w: reference values not increasing at index %d", ErrTable, i)
		}
	}
	return &Interpolator{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}, nil
}

// Domain returns the smallest and largest reference value.
func (in *Interpolator) Domain() (lo, hi float64) {
	return in.xs[0], in.xs[len(in.xs)-1]
}

// At returns the interpolated value for x. The second return is false, and
// the value NaN, when x is NaN or outside the domain.
func (in *Interpolator) At(x float64) (float64, bool) {
	lo, hi := in.Domain()
	if math.IsNaN(x) || x < lo || x > hi {
		return math.NaN(), false
	}

	i := sort.SearchFloat64s(in.xs, x)
	if in.xs[i] == x {
		return in.ys[i], true
	}

	x0, x1 := in.xs[i-1], in.xs[i]
	t := (x - x0) / (x1 - x0)
	return in.ys[i-1] + t*(in.ys[i]-in.ys[i-1]), true
}

// Len returns the number of table points.
func (in *Interpolator) Len() int {
	return len(in.xs)
}
