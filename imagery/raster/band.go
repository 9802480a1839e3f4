package raster

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnsupported indicates a raster layout or format that cannot be read as a band.
	ErrUnsupported = errors.New("unsupported raster")

	// ErrCorrupt indicates a malformed band file.
	ErrCorrupt = errors.New("corrupt band data")
)

// Band is a single raster band in row major order. Missing pixels are NaN.
type Band struct {
	Width, Height int
	Data          []float32
}

// NewBand allocates a zeroed band.
func NewBand(width, height int) *Band {
	return &Band{
		Width:  width,
		Height: height,
		Data:   make([]float32, width*height),
	}
}

// NewBandFilled allocates a band with every pixel set to v.
func NewBandFilled(width, height int, v float32) *Band {
	b := NewBand(width, height)
	for i := range b.Data {
		b.Data[i] = v
	}
	return b
}

// Len returns the number of pixels.
func (b *Band) Len() int {
	return b.Width * b.Height
}

// At returns the value at column x, row y.
func (b *Band) At(x, y int) float32 {
	return b.Data[y*b.Width+x]
}

// Set sets the value at column x, row y.
func (b *Band) Set(x, y int, v float32) {
	b.Data[y*b.Width+x] = v
}

// In reports whether x, y is inside the band.
func (b *Band) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// SameSize reports whether o has the same dimensions as b.
func (b *Band) SameSize(o *Band) bool {
	return b.Width == o.Width && b.Height == o.Height
}

// Clone returns a deep copy.
func (b *Band) Clone() *Band {
	c := NewBand(b.Width, b.Height)
	copy(c.Data, b.Data)
	return c
}

// Validate checks the pixel buffer matches the dimensions.
func (b *Band) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d band", ErrCorrupt, b.Width, b.Height)
	}
	if len(b.Data) != b.Len() {
		return fmt.Errorf("%w: %d pixels for %dx%d band", ErrCorrupt, len(b.Data), b.Width, b.Height)
	}
	return nil
}

// NaN is the float32 missing value.
func NaN() float32 {
	return float32(math.NaN())
}

// IsNaN reports whether v is the missing value.
func IsNaN(v float32) bool {
	return v != v
}
