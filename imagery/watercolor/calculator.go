package watercolor

import (
	"context"
	"fmt"
	"math"

	"matbm.net/watercolor/config"
	"matbm.net/watercolor/imagery/colometry"
	"matbm.net/watercolor/imagery/landsat"
	"matbm.net/watercolor/imagery/raster"
)

// Output band names.
const (
	BandWavelength = "dwLehmann"
	BandPurity     = "dist2wp"
)

// Options controls a layer calculation.
type Options struct {
	Bands   config.BandMapping
	Workers int
}

func (o Options) normalize() Options {
	if o.Bands == (config.BandMapping{}) {
		o.Bands = config.Landsat8Bands()
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

// Layer holds the dominant wavelength and purity of every scene pixel.
type Layer struct {
	Width, Height int
	Wavelength    *raster.Band
	Purity        *raster.Band
}

// Stats summarizes a layer calculation.
type Stats struct {
	Pixels int
	// NoData pixels were masked upstream or have a zero tristimulus sum.
	NoData int
	// Unclassified pixels have a hue outside the calibration table.
	Unclassified int
	Classified   int
	Min          float64
	Max          float64
	Mean         float64
}

// Calculate classifies every pixel of s. The four input bands must already
// be in reflectance units.
func Calculate(ctx context.Context, s *landsat.Scene, opt Options) (*Layer, *Stats, error) {
	opt = opt.normalize()

	var bands [4]*raster.Band
	for i, name := range opt.Bands.Names() {
		b, err := s.Band(name)
		if err != nil {
			return nil, nil, err
		}
		bands[i] = b
	}

	pixels := make([]colometry.Reflectance, s.Pixels())
	for i := range pixels {
		pixels[i] = colometry.Reflectance{
			U: float64(bands[0].Data[i]),
			R: float64(bands[1].Data[i]),
			G: float64(bands[2].Data[i]),
			B: float64(bands[3].Data[i]),
		}
	}

	results, batch, err := colometry.ClassifyBatch(ctx, pixels, opt.Workers)
	if err != nil {
		return nil, nil, fmt.Errorf("classification of scene %s interrupted: %w", s.ID, err)
	}

	layer := &Layer{
		Width:      s.Width,
		Height:     s.Height,
		Wavelength: raster.NewBand(s.Width, s.Height),
		Purity:     raster.NewBand(s.Width, s.Height),
	}
	stats := &Stats{
		Pixels:       batch.Pixels,
		NoData:       batch.Degenerate,
		Unclassified: batch.Unclassified,
		Classified:   batch.Classified(),
		Min:          math.NaN(),
		Max:          math.NaN(),
		Mean:         math.NaN(),
	}

	sum := 0.0
	for i, res := range results {
		layer.Wavelength.Data[i] = float32(res.Wavelength)
		layer.Purity.Data[i] = float32(res.Purity)
		if !res.Valid() {
			continue
		}
		if !(res.Wavelength >= stats.Min) {
			stats.Min = res.Wavelength
		}
		if !(res.Wavelength <= stats.Max) {
			stats.Max = res.Wavelength
		}
		sum += res.Wavelength
	}
	if stats.Classified > 0 {
		stats.Mean = sum / float64(stats.Classified)
	}

	return layer, stats, nil
}

// Attach adds the layer to s as the dwLehmann and dist2wp bands.
func Attach(s *landsat.Scene, layer *Layer) error {
	if err := s.AddBand(BandWavelength, layer.Wavelength); err != nil {
		return err
	}
	return s.AddBand(BandPurity, layer.Purity)
}
