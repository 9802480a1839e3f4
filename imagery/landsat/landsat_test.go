package landsat

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"matbm.net/watercolor/imagery/raster"
)

func band(w, h int, vals ...float32) *raster.Band {
	b := raster.NewBand(w, h)
	copy(b.Data, vals)
	return b
}

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	s := NewScene(Metadata{
		ID:        "LC08_039031_20190710",
		Acquired:  time.Date(2019, 7, 10, 18, 0, 0, 0, time.UTC),
		Transform: GeoTransform{-113, 0.5, 0, 42, 0, -0.5},
	})
	for name, b := range map[string]*raster.Band{
		"B1":    band(2, 2, 100, 200, 300, 400),
		"B3":    band(2, 2, 1000, 500, 800, 100),
		"B6":    band(2, 2, 500, 1000, 800, 0),
		BandQA:  band(2, 2, 322, float32(QACloud), float32(QASnowIce), float32(QACloudShadow)),
		BandDEM: band(2, 2, 1, 1, 1, 1),
		"notes": band(2, 2),
	} {
		if err := s.AddBand(name, b); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestSceneBands(t *testing.T) {
	s := newTestScene(t)
	if s.Width != 2 || s.Height != 2 || s.Pixels() != 4 {
		t.Fatalf("scene size %dx%d", s.Width, s.Height)
	}
	if _, err := s.Band("B9"); !errors.Is(err, ErrMissingBand) {
		t.Fatalf("err = %v, want ErrMissingBand", err)
	}

	err := s.AddBand("B2", raster.NewBand(3, 2))
	var dimErr *DimensionError
	if !errors.As(err, &dimErr) || !errors.Is(err, ErrDimension) {
		t.Fatalf("err = %v, want DimensionError", err)
	}
	if dimErr.Band != "B2" || dimErr.Width != 3 {
		t.Fatalf("dimension error %+v", dimErr)
	}

	s.RemoveBand("notes")
	if s.HasBand("notes") {
		t.Fatal("band not removed")
	}
	if s.DOY() != 191 {
		t.Fatalf("DOY = %d", s.DOY())
	}
}

func TestIsReflectanceBand(t *testing.T) {
	for name, want := range map[string]bool{
		"B1": true, "B10": true, "B": false, "B1a": false, "pixel_qa": false, "dem": false,
	} {
		if got := IsReflectanceBand(name); got != want {
			t.Errorf("IsReflectanceBand(%q) = %v", name, got)
		}
	}
}

func TestQA(t *testing.T) {
	tests := []struct {
		qa     QA
		cloudy bool
		clear  bool
	}{
		{322, false, true},
		{QACloud, true, false},
		{QACloudShadow, true, false},
		{QASnowIce, false, false},
		{QACloud | QASnowIce, true, false},
	}
	for _, tt := range tests {
		if tt.qa.Cloudy() != tt.cloudy || tt.qa.Clear() != tt.clear {
			t.Errorf("QA %d: cloudy %v clear %v", tt.qa, tt.qa.Cloudy(), tt.qa.Clear())
		}
	}
}

func TestMaskSR(t *testing.T) {
	s := newTestScene(t)
	if err := MaskSR(s); err != nil {
		t.Fatal(err)
	}
	if s.HasBand(BandQA) {
		t.Fatal("pixel_qa still present")
	}

	b1, _ := s.Band("B1")
	opt := cmpopts.EquateNaNs()
	want := []float32{0.01, raster.NaN(), raster.NaN(), raster.NaN()}
	if diff := cmp.Diff(want, b1.Data, opt, cmpopts.EquateApprox(0, 1e-7)); diff != "" {
		t.Fatalf("B1 (-want +got):\n%s", diff)
	}

	cloud, _ := s.Band(BandCloud)
	if diff := cmp.Diff([]float32{0, 1, 0, 1}, cloud.Data); diff != "" {
		t.Fatalf("cloud (-want +got):\n%s", diff)
	}
	snow, _ := s.Band(BandSnowIce)
	if diff := cmp.Diff([]float32{0, 0, 1, 0}, snow.Data); diff != "" {
		t.Fatalf("snowIce (-want +got):\n%s", diff)
	}

	dem, _ := s.Band(BandDEM)
	if dem.Data[1] != 1 {
		t.Fatal("non reflectance band was masked")
	}
}

func TestMaskSRMissingQA(t *testing.T) {
	s := NewScene(Metadata{ID: "x"})
	if err := MaskSR(s); !errors.Is(err, ErrMissingBand) {
		t.Fatalf("err = %v", err)
	}
}

func TestWaterMask(t *testing.T) {
	s := newTestScene(t)
	mask, err := WaterMask(s)
	if err != nil {
		t.Fatal(err)
	}
	// MNDWI: 0.333, -0.333, 0, 1
	if diff := cmp.Diff(Mask{true, false, true, true}, mask); diff != "" {
		t.Fatalf("mask (-want +got):\n%s", diff)
	}
	if mask.Count() != 3 {
		t.Fatalf("count = %d", mask.Count())
	}
}

func TestNormalizedDifference(t *testing.T) {
	a := band(1, 3, 0, raster.NaN(), 3)
	b := band(1, 3, 0, 1, 1)
	nd, err := NormalizedDifference(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !raster.IsNaN(nd.Data[0]) || !raster.IsNaN(nd.Data[1]) || nd.Data[2] != 0.5 {
		t.Fatalf("nd = %v", nd.Data)
	}
	if _, err := NormalizedDifference(a, raster.NewBand(3, 1)); !errors.Is(err, ErrDimension) {
		t.Fatalf("err = %v", err)
	}
}

func TestHillShadow(t *testing.T) {
	// A 12 m ridge in column 3, sun low in the east.
	dem := raster.NewBand(5, 1)
	dem.Data[3] = 12
	dem.Data[4] = raster.NaN()
	sun := Sun{Azimuth: 90, Zenith: 80}

	for _, workers := range []int{1, 4} {
		got := HillShadow(dem, sun, 30, 10, workers)
		want := []float32{1, 0, 0, 1, raster.NaN()}
		// The ray climbs tan(10 deg) * 30 m = 5.3 m per pixel, so the
		// ridge shadows the two pixels west of it.
		if diff := cmp.Diff(want, got.Data, cmpopts.EquateNaNs()); diff != "" {
			t.Fatalf("workers %d: shadow (-want +got):\n%s", workers, diff)
		}
	}

	night := HillShadow(dem, Sun{Azimuth: 90, Zenith: 95}, 30, 10, 1)
	for _, v := range night.Data {
		if v != 0 {
			t.Fatalf("sun below horizon lit a pixel: %v", night.Data)
		}
	}
}

func TestApplyHillShadow(t *testing.T) {
	s := NewScene(Metadata{ID: "x", SolarAzimuth: 90, SolarZenith: 80})
	dem := raster.NewBand(3, 1)
	dem.Data[2] = 100
	if err := s.AddBand(BandDEM, dem); err != nil {
		t.Fatal(err)
	}
	if err := s.AddBand("B1", band(3, 1, 0.1, 0.2, 0.3)); err != nil {
		t.Fatal(err)
	}
	if err := ApplyHillShadow(s, 5, 2); err != nil {
		t.Fatal(err)
	}
	b1, _ := s.Band("B1")
	if !raster.IsNaN(b1.Data[0]) || !raster.IsNaN(b1.Data[1]) || b1.Data[2] != 0.3 {
		t.Fatalf("B1 = %v", b1.Data)
	}
	hs, err := s.Band(BandHillShadow)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float32{0, 0, 1}, hs.Data); diff != "" {
		t.Fatalf("hillshadow (-want +got):\n%s", diff)
	}

	if err := ApplyHillShadow(NewScene(Metadata{}), 5, 1); !errors.Is(err, ErrMissingBand) {
		t.Fatalf("err = %v", err)
	}
}

func TestGeoTransform(t *testing.T) {
	m := Metadata{Width: 4, Height: 2, Transform: GeoTransform{-113, 0.5, 0, 42, 0, -0.5}}
	col, row, ok := m.PixelAt(-112.2, 41.7)
	if !ok || col != 1 || row != 0 {
		t.Fatalf("PixelAt = %d, %d, %v", col, row, ok)
	}
	if m.Contains(-110, 41.7) || m.Contains(-112.2, 43) {
		t.Fatal("point outside footprint reported inside")
	}
	x, y := m.Transform.Apply(2, 1)
	if x != -112 || y != 41.5 {
		t.Fatalf("Apply = %v, %v", x, y)
	}
	c, r, ok := m.Transform.Invert(x, y)
	if !ok || math.Abs(c-2) > 1e-12 || math.Abs(r-1) > 1e-12 {
		t.Fatalf("Invert = %v, %v, %v", c, r, ok)
	}
	if _, _, ok := (GeoTransform{}).Invert(0, 0); ok {
		t.Fatal("singular transform inverted")
	}
}

func TestMetadataDOYIsUTC(t *testing.T) {
	// 23:30 at UTC-5 on 10 July is 04:30 UTC on 11 July.
	acquired := time.Date(2019, 7, 10, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	if doy := (Metadata{Acquired: acquired}).DOY(); doy != 192 {
		t.Fatalf("DOY = %d, want 192", doy)
	}
}

func TestMetadataValidate(t *testing.T) {
	valid := Metadata{ID: "a", Width: 4, Height: 2, Transform: GeoTransform{-113, 0.5, 0, 42, 0, -0.5}}
	if err := valid.Validate(); err != nil {
		t.Fatal(err)
	}

	noSize := valid
	noSize.Width, noSize.Height = 0, 0
	noTransform := valid
	noTransform.Transform = GeoTransform{}
	for name, m := range map[string]Metadata{"size": noSize, "transform": noTransform} {
		if err := m.Validate(); !errors.Is(err, ErrMetadata) {
			t.Errorf("%s: err = %v, want ErrMetadata", name, err)
		}
	}
}
