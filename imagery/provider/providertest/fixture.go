// Package providertest writes scene directories for tests.
package providertest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"matbm.net/watercolor/imagery/landsat"
	"matbm.net/watercolor/imagery/provider"
	"matbm.net/watercolor/imagery/raster"
)

// Origin is the upper left corner of fixture scenes.
var Origin = [2]float64{-113, 42}

// Metadata returns metadata for a width x height scene with 0.1 degree
// pixels starting at Origin.
func Metadata(id string, acquired time.Time, cloudCover float64, width, height int) landsat.Metadata {
	return landsat.Metadata{
		ID:           id,
		Acquired:     acquired,
		CloudCover:   cloudCover,
		SolarAzimuth: 135,
		SolarZenith:  30,
		Width:        width,
		Height:       height,
		Transform:    landsat.GeoTransform{Origin[0], 0.1, 0, Origin[1], 0, -0.1},
		PixelSize:    30,
	}
}

// WriteScene writes scene.json and one snappy tile per band under root/meta.ID.
// Band files are prefixed with the scene id like Landsat product files.
func WriteScene(t testing.TB, root string, meta landsat.Metadata, bands map[string]*raster.Band) string {
	t.Helper()
	dir := filepath.Join(root, meta.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := provider.WriteMetadata(dir, meta); err != nil {
		t.Fatal(err)
	}
	for name, b := range bands {
		path := filepath.Join(dir, meta.ID+"_"+name+raster.SnappyExt)
		if err := (raster.SnappyCodec{}).Write(path, b); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// Filled returns a band with every pixel set to v.
func Filled(width, height int, v float32) *raster.Band {
	return raster.NewBandFilled(width, height, v)
}

// SurfaceReflectance returns clear sky Landsat bands in digital numbers
// whose classification at every pixel is the tuple u, r, g, b (reflectance).
func SurfaceReflectance(width, height int, u, r, g, b float32) map[string]*raster.Band {
	dn := func(v float32) *raster.Band { return Filled(width, height, v*landsat.ReflectanceScale) }
	return map[string]*raster.Band{
		"B1":            dn(u),
		"B2":            dn(b),
		"B3":            dn(g),
		"B4":            dn(r),
		"B6":            dn(g / 2),
		landsat.BandQA:  Filled(width, height, 322),
		landsat.BandDEM: Filled(width, height, 1500),
	}
}
