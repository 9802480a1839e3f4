package landsat

import (
	"math"
	"sync"

	"matbm.net/watercolor/imagery/raster"
)

// DefaultPixelSize is the Landsat ground sample distance in metres.
const DefaultPixelSize = 30

// Sun is the solar position in degrees. Azimuth is clockwise from north.
type Sun struct {
	Azimuth float64
	Zenith  float64
}

// HillShadow computes cast terrain shadows: 1 for illuminated pixels, 0 for
// shadowed, NaN where the elevation is missing. A pixel is shadowed when any
// terrain within neighborhood pixels toward the sun rises above the solar
// elevation angle.
func HillShadow(dem *raster.Band, sun Sun, pixelSize float64, neighborhood, workers int) *raster.Band {
	out := raster.NewBand(dem.Width, dem.Height)
	if sun.Zenith >= 90 {
		return out
	}

	tanElevation := math.Tan((90 - sun.Zenith) * math.Pi / 180)
	az := sun.Azimuth * math.Pi / 180
	// Columns grow east and rows grow south.
	dx, dy := math.Sin(az), -math.Cos(az)

	numWorkers := max(1, min(workers, dem.Height))
	rowsPerWorker := (dem.Height + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, dem.Height)

		go func(startRow, endRow int) {
			defer wg.Done()
			for y := startRow; y < endRow; y++ {
				for x := 0; x < dem.Width; x++ {
					out.Set(x, y, illumination(dem, x, y, dx, dy, pixelSize*tanElevation, neighborhood))
				}
			}
		}(startRow, endRow)
	}
	wg.Wait()

	return out
}

// illumination marches from x, y toward the sun. rise is the height the
// solar ray climbs per pixel travelled.
func illumination(dem *raster.Band, x, y int, dx, dy, rise float64, neighborhood int) float32 {
	h0 := dem.At(x, y)
	if raster.IsNaN(h0) {
		return raster.NaN()
	}
	for k := 1; k <= neighborhood; k++ {
		sx := int(math.Round(float64(x) + float64(k)*dx))
		sy := int(math.Round(float64(y) + float64(k)*dy))
		if !dem.In(sx, sy) {
			break
		}
		h := dem.At(sx, sy)
		if raster.IsNaN(h) {
			continue
		}
		if float64(h-h0) > float64(k)*rise {
			return 0
		}
	}
	return 1
}

// ApplyHillShadow masks every band of s where the terrain casts a shadow,
// using the scene's dem band and solar angles, and adds the hillshadow band.
func ApplyHillShadow(s *Scene, neighborhood, workers int) error {
	dem, err := s.Band(BandDEM)
	if err != nil {
		return err
	}
	pixelSize := s.PixelSize
	if pixelSize <= 0 {
		pixelSize = DefaultPixelSize
	}

	shadow := HillShadow(dem, Sun{Azimuth: s.SolarAzimuth, Zenith: s.SolarZenith}, pixelSize, neighborhood, workers)
	for _, name := range s.BandNames() {
		b := s.bands[name]
		for i, lit := range shadow.Data {
			if lit != 1 {
				b.Data[i] = raster.NaN()
			}
		}
	}
	return s.AddBand(BandHillShadow, shadow)
}
