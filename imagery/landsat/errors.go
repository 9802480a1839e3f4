package landsat

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingBand indicates a band required by an operation is absent.
	ErrMissingBand = errors.New("missing band")

	// ErrDimension indicates bands of different sizes.
	ErrDimension = errors.New("band dimension mismatch")

	// ErrMetadata indicates scene metadata without a usable footprint.
	ErrMetadata = errors.New("invalid scene metadata")
)

// DimensionError is returned when a band does not match the scene size.
type DimensionError struct {
	Band                    string
	Width, Height           int
	SceneWidth, SceneHeight int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("band %s is %dx%d, scene is %dx%d", e.Band, e.Width, e.Height, e.SceneWidth, e.SceneHeight)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimension
}
