package watercolor

import (
	"context"
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"matbm.net/watercolor/config"
	"matbm.net/watercolor/imagery/colometry"
	"matbm.net/watercolor/imagery/landsat"
	"matbm.net/watercolor/imagery/raster"
)

// pixels: classified, masked upstream, out of table, classified
var testPixels = []colometry.Reflectance{
	{U: 0.02, R: 0.03, G: 0.06, B: 0.04},
	{U: math.NaN(), R: math.NaN(), G: math.NaN(), B: math.NaN()},
	{U: 0.05, R: 0.04, G: 0.06, B: 0.08},
	{U: 0.5, R: 0.3, G: 0.01, B: 0.01},
}

func testScene(t *testing.T) *landsat.Scene {
	t.Helper()
	s := landsat.NewScene(landsat.Metadata{ID: "test"})
	bands := map[string]*raster.Band{}
	for _, name := range config.Landsat8Bands().Names() {
		bands[name] = raster.NewBand(2, 2)
	}
	for i, p := range testPixels {
		bands["B1"].Data[i] = float32(p.U)
		bands["B4"].Data[i] = float32(p.R)
		bands["B3"].Data[i] = float32(p.G)
		bands["B2"].Data[i] = float32(p.B)
	}
	for _, name := range config.Landsat8Bands().Names() {
		if err := s.AddBand(name, bands[name]); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestCalculate(t *testing.T) {
	s := testScene(t)
	layer, stats, err := Calculate(context.Background(), s, Options{Workers: 3})
	if err != nil {
		t.Fatal(err)
	}

	wantStats := Stats{Pixels: 4, NoData: 1, Unclassified: 1, Classified: 2}
	if diff := cmp.Diff(wantStats, *stats, cmp.FilterPath(func(p cmp.Path) bool {
		name := p.Last().String()
		return name == ".Min" || name == ".Max" || name == ".Mean"
	}, cmp.Ignore())); diff != "" {
		t.Fatalf("stats (-want +got):\n%s", diff)
	}

	// float32 inputs shift the result slightly from the float64 reference.
	if math.Abs(stats.Min-489.5) > 0.1 || math.Abs(stats.Max-585.04) > 0.1 {
		t.Fatalf("wavelength range [%v, %v]", stats.Min, stats.Max)
	}
	if math.Abs(stats.Mean-(stats.Min+stats.Max)/2) > 1e-9 {
		t.Fatalf("mean = %v", stats.Mean)
	}

	if !raster.IsNaN(layer.Wavelength.Data[1]) || !raster.IsNaN(layer.Purity.Data[1]) {
		t.Fatal("masked pixel classified")
	}
	if !raster.IsNaN(layer.Wavelength.Data[2]) || raster.IsNaN(layer.Purity.Data[2]) {
		t.Fatal("out of table pixel must keep purity and mask wavelength")
	}

	if err := Attach(s, layer); err != nil {
		t.Fatal(err)
	}
	if !s.HasBand(BandWavelength) || !s.HasBand(BandPurity) {
		t.Fatal("layer not attached")
	}
}

func TestCalculateMissingBand(t *testing.T) {
	s := testScene(t)
	s.RemoveBand("B2")
	if _, _, err := Calculate(context.Background(), s, Options{}); !errors.Is(err, landsat.ErrMissingBand) {
		t.Fatalf("err = %v", err)
	}
}

func TestCalculateCustomBands(t *testing.T) {
	s := testScene(t)
	bands := config.BandMapping{U: "B1", R: "B4", G: "B3", B: "B4"}
	layer, _, err := Calculate(context.Background(), s, Options{Bands: bands, Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := colometry.Classify(colometry.Reflectance{
		U: float64(float32(0.02)), R: float64(float32(0.03)), G: float64(float32(0.06)), B: float64(float32(0.03)),
	})
	if got := layer.Purity.Data[0]; got != float32(want.Purity) {
		t.Fatalf("purity = %v, want %v", got, want.Purity)
	}
}

func TestCalculateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Calculate(ctx, testScene(t), Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestColorize(t *testing.T) {
	layer := &Layer{Width: 4, Height: 1, Wavelength: raster.NewBand(4, 1)}
	copy(layer.Wavelength.Data, []float32{471, 600, raster.NaN(), 471})
	mask := landsat.Mask{true, true, true, false}

	img := Colorize(layer, mask, config.DefaultPalette(), 2)
	want := []color.RGBA{
		{0x21, 0x58, 0xbc, 0xff},
		{0x9f, 0x4d, 0x04, 0xff},
		{},
		{},
	}
	for x, c := range want {
		if got := img.RGBAAt(x, 0); got != c {
			t.Errorf("pixel %d = %v, want %v", x, got, c)
		}
	}

	all := Colorize(layer, nil, config.DefaultPalette(), 1)
	if got := all.RGBAAt(3, 0); got.A != 0xff {
		t.Errorf("nil mask dropped pixel 3: %v", got)
	}
}

func TestTrueColor(t *testing.T) {
	s := testScene(t)
	img, err := TrueColor(context.Background(), s, Options{Workers: 2})
	if err != nil {
		t.Fatal(err)
	}
	if img.RGBAAt(1, 0).A != 0 {
		t.Fatal("masked pixel rendered")
	}
	if img.RGBAAt(0, 0).A != 0xff {
		t.Fatal("valid pixel transparent")
	}
}
