package colometry

import (
	"errors"
	"math"
	"testing"
)

func TestLehmannTable(t *testing.T) {
	table := LehmannTable()
	if table.Len() != 320 {
		t.Fatalf("table has %d points, want 320", table.Len())
	}
	lo, hi := table.Domain()
	if lo != -154.377518550783 || hi != 99.0819387805879 {
		t.Fatalf("domain = [%v, %v]", lo, hi)
	}
}

func TestInterpolatorEndpoints(t *testing.T) {
	table := LehmannTable()
	lo, hi := table.Domain()

	if got, ok := table.At(lo); !ok || got != 380 {
		t.Errorf("At(lo) = %v, %v; want 380", got, ok)
	}
	if got, ok := table.At(hi); !ok || got != 699 {
		t.Errorf("At(hi) = %v, %v; want 699", got, ok)
	}
	if got, ok := table.At(lehmannAlpha[100]); !ok || got != lehmannWavelength[100] {
		t.Errorf("At(knot) = %v, %v; want %v", got, ok, lehmannWavelength[100])
	}
}

func TestInterpolatorMasked(t *testing.T) {
	table := LehmannTable()
	lo, hi := table.Domain()
	for _, x := range []float64{
		math.Nextafter(lo, math.Inf(-1)),
		math.Nextafter(hi, math.Inf(1)),
		-392.5,
		1000,
		math.NaN(),
		math.Inf(1),
	} {
		got, ok := table.At(x)
		if ok || !math.IsNaN(got) {
			t.Errorf("At(%v) = %v, %v; want masked", x, got, ok)
		}
	}
}

func TestInterpolatorLinear(t *testing.T) {
	in, err := NewInterpolator([]float64{0, 10, 20}, []float64{100, 200, 400})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct{ x, want float64 }{
		{0, 100},
		{5, 150},
		{10, 200},
		{15, 300},
		{20, 400},
	}
	for _, tt := range tests {
		if got, ok := in.At(tt.x); !ok || math.Abs(got-tt.want) > tolerance {
			t.Errorf("At(%v) = %v, %v; want %v", tt.x, got, ok, tt.want)
		}
	}
}

func TestInterpolatorMonotone(t *testing.T) {
	table := LehmannTable()
	lo, hi := table.Domain()
	prev := math.Inf(-1)
	for i := 0; i <= 10000; i++ {
		x := lo + (hi-lo)*float64(i)/10000
		got, ok := table.At(min(x, hi))
		if !ok {
			t.Fatalf("At(%v) masked inside domain", x)
		}
		if got < prev {
			t.Fatalf("At(%v) = %v decreased from %v", x, got, prev)
		}
		prev = got
	}
}

func TestNewInterpolatorErrors(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
	}{
		{"length mismatch", []float64{0, 1}, []float64{0}},
		{"too short", []float64{0}, []float64{0}},
		{"not increasing", []float64{0, 1, 1}, []float64{0, 1, 2}},
		{"NaN", []float64{0, math.NaN()}, []float64{0, 1}},
	}
	for _, tt := range tests {
		if _, err := NewInterpolator(tt.xs, tt.ys); !errors.Is(err, ErrTable) {
			t.Errorf("%s: err = %v, want ErrTable", tt.name, err)
		}
	}
}

func TestNewInterpolatorCopies(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{5, 6}
	in, err := NewInterpolator(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	ys[0] = 100
	if got, _ := in.At(0); got != 5 {
		t.Fatalf("interpolator shares caller slice, At(0) = %v", got)
	}
}
