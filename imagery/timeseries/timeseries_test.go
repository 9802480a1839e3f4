package timeseries

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"matbm.net/watercolor/config"
	"matbm.net/watercolor/imagery/landsat"
	"matbm.net/watercolor/imagery/provider"
	"matbm.net/watercolor/imagery/provider/providertest"
	"matbm.net/watercolor/imagery/watercolor"
)

var point = config.Point{Lon: -112.85, Lat: 41.95}

func day(month time.Month, d int) time.Time {
	return time.Date(2019, month, d, 18, 0, 0, 0, time.UTC)
}

func sceneDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	clean := providertest.SurfaceReflectance(4, 3, 0.02, 0.03, 0.06, 0.04)
	providertest.WriteScene(t, root, providertest.Metadata("LC08_A", day(7, 10), 3, 4, 3), clean)

	cloudy := providertest.SurfaceReflectance(4, 3, 0.02, 0.03, 0.06, 0.04)
	cloudy[landsat.BandQA] = providertest.Filled(4, 3, float32(landsat.QACloud))
	providertest.WriteScene(t, root, providertest.Metadata("LC08_B", day(7, 26), 10, 4, 3), cloudy)

	noDEM := providertest.SurfaceReflectance(4, 3, 0.01, 0.2, 0.05, 0.01)
	delete(noDEM, landsat.BandDEM)
	providertest.WriteScene(t, root, providertest.Metadata("LC08_C", day(8, 11), 1, 4, 3), noDEM)
	return root
}

func TestExtract(t *testing.T) {
	d := provider.NewDirectory(sceneDir(t), provider.DirectoryOptions{})

	var progress [][2]int
	records, err := Extract(context.Background(), d, provider.Query{Point: point, MaxCloudCover: 30}, Options{
		Workers:    2,
		HillShadow: 10,
		Progress:   func(done, total int) { progress = append(progress, [2]int{done, total}) },
	})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([][2]int{{1, 3}, {2, 3}, {3, 3}}, progress); diff != "" {
		t.Errorf("progress (-want +got):\n%s", diff)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	tests := []struct {
		id         string
		doy        int
		wavelength float64
		hillShadow bool
	}{
		{"LC08_A", 191, 585.0370611953408, true},
		{"LC08_C", 223, 563.1080647046523, false},
	}
	for i, tt := range tests {
		rec := records[i]
		if rec.SceneID != tt.id || rec.DOY != tt.doy {
			t.Errorf("record %d = %s doy %d, want %s doy %d", i, rec.SceneID, rec.DOY, tt.id, tt.doy)
		}
		if got := rec.Value(watercolor.BandWavelength); math.Abs(got-tt.wavelength) > 1e-3 {
			t.Errorf("%s wavelength = %v, want %v", tt.id, got, tt.wavelength)
		}
		if got := rec.Value(landsat.BandCloud); got != 0 {
			t.Errorf("%s cloud = %v", tt.id, got)
		}
		if _, ok := rec.Values[landsat.BandHillShadow]; ok != tt.hillShadow {
			t.Errorf("%s has hillshadow band = %v", tt.id, ok)
		}
	}
}

func TestExtractCanceled(t *testing.T) {
	d := provider.NewDirectory(sceneDir(t), provider.DirectoryOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Extract(ctx, d, provider.Query{Point: point}, Options{Workers: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSort(t *testing.T) {
	records := []Record{
		{SceneID: "b", Time: time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC), DOY: 244},
		{SceneID: "c", Time: time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC), DOY: 60},
		{SceneID: "a", Time: time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC), DOY: 152},
	}
	ids := func() []string {
		var out []string
		for _, r := range records {
			out = append(out, r.SceneID)
		}
		return out
	}

	SortByTime(records)
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids()); diff != "" {
		t.Errorf("SortByTime (-want +got):\n%s", diff)
	}
	SortByDOY(records)
	if diff := cmp.Diff([]string{"c", "a", "b"}, ids()); diff != "" {
		t.Errorf("SortByDOY (-want +got):\n%s", diff)
	}
}

func TestWriteCSV(t *testing.T) {
	records := []Record{
		{
			SceneID: "LC08_A",
			Time:    day(7, 10),
			DOY:     191,
			Values:  map[string]float64{"dwLehmann": 585.5, "dist2wp": 0.25},
		},
		{
			SceneID: "LC08_C",
			Time:    day(8, 11),
			DOY:     223,
			Values:  map[string]float64{"dwLehmann": 563},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records, []string{"dwLehmann", "dist2wp"}); err != nil {
		t.Fatal(err)
	}
	want := "scene,time,doy,dwLehmann,dist2wp\n" +
		"LC08_A,2019-07-10T18:00:00Z,191,585.5,0.25\n" +
		"LC08_C,2019-08-11T18:00:00Z,223,563,\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("csv (-want +got):\n%s", diff)
	}
}
