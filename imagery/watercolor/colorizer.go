package watercolor

import (
	"context"
	"image"
	"math"
	"sync"

	"matbm.net/watercolor/config"
	"matbm.net/watercolor/imagery/colometry"
	"matbm.net/watercolor/imagery/landsat"
)

// Colorize renders the dominant wavelength with the water colour palette.
// Pixels outside mask, or without a wavelength, are transparent. A nil mask
// keeps every pixel.
func Colorize(layer *Layer, mask landsat.Mask, palette config.Palette, numThreads int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, layer.Width, layer.Height))
	pix := img.Pix
	wavelength := layer.Wavelength.Data

	forChunks(len(wavelength), numThreads, func(start, end int) {
		for i := start; i < end; i++ {
			if mask != nil && !mask[i] {
				continue
			}
			c, ok := palette.Color(float64(wavelength[i]))
			if !ok {
				continue
			}
			idx := i * 4
			pix[idx] = c.R
			pix[idx+1] = c.G
			pix[idx+2] = c.B
			pix[idx+3] = 255
		}
	})

	return img
}

// TrueColor renders the tristimulus values of the classifier inputs as sRGB,
// for visual comparison with the water colour layer. Missing pixels are
// transparent.
func TrueColor(ctx context.Context, s *landsat.Scene, opt Options) (*image.RGBA, error) {
	opt = opt.normalize()

	bands := make([][]float32, 4)
	for i, name := range opt.Bands.Names() {
		b, err := s.Band(name)
		if err != nil {
			return nil, err
		}
		bands[i] = b.Data
	}

	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	pix := img.Pix
	forChunks(s.Pixels(), opt.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			r := colometry.Reflectance{
				U: float64(bands[0][i]),
				R: float64(bands[1][i]),
				G: float64(bands[2][i]),
				B: float64(bands[3][i]),
			}
			red, green, blue := r.Tristimulus().SRGB()
			if math.IsNaN(red) || math.IsNaN(green) || math.IsNaN(blue) {
				continue
			}
			idx := i * 4
			pix[idx] = uint8(math.Round(red * 255))
			pix[idx+1] = uint8(math.Round(green * 255))
			pix[idx+2] = uint8(math.Round(blue * 255))
			pix[idx+3] = 255
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// forChunks splits n items over numWorkers goroutines and waits for them.
func forChunks(n, numWorkers int, fn func(start, end int)) {
	numWorkers = max(1, min(numWorkers, n))
	chunkSize := (n + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, n)

		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
