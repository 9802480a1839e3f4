package metrics

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"matbm.net/watercolor/imagery/watercolor"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		num    float64
		length int
		want   string
	}{
		{1.5, 5, "1.500"},
		{12.5, 5, "12.50"},
		{123456, 5, "123456"},
		{99.9, 3, "99"},
		{0, 3, "0.0"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.num, tt.length); got != tt.want {
			t.Errorf("formatNumber(%v, %d) = %q, want %q", tt.num, tt.length, got, tt.want)
		}
	}
}

func TestGetMagnitudeAndUnit(t *testing.T) {
	tests := []struct {
		d    time.Duration
		mag  float64
		unit string
	}{
		{500 * time.Nanosecond, 500, "ns"},
		{1500 * time.Nanosecond, 1.5, "µs"},
		{250 * time.Millisecond, 250, "ms"},
		{2 * time.Second, 2, "s"},
	}
	for _, tt := range tests {
		mag, unit := getMagnitudeAndUnit(tt.d)
		if mag != tt.mag || unit != tt.unit {
			t.Errorf("getMagnitudeAndUnit(%v) = %v %s, want %v %s", tt.d, mag, unit, tt.mag, tt.unit)
		}
	}
}

func TestCollectorAndTable(t *testing.T) {
	c := NewCollector("LC08_039031_20190710", 4)
	c.SetLoadTime(200 * time.Millisecond)
	c.SetMaskTime(50 * time.Millisecond)
	c.SetClassifyMetrics(&watercolor.Stats{Pixels: 12, NoData: 2, Unclassified: 1, Classified: 9, Min: 560, Max: 590, Mean: 575}, 100*time.Millisecond)
	c.SetColorMetrics(7, 25*time.Millisecond)
	c.SetSaveMetrics(2*1024*1024, 125*time.Millisecond)
	c.metrics.TotalTime = 500 * time.Millisecond

	m := c.Metrics()
	if m.Pixels != 12 || m.NoDataPixels != 2 || m.Unclassified != 1 || m.WaterPixels != 7 {
		t.Fatalf("pixel counts %+v", m)
	}
	if m.Wavelength != (WavelengthMetrics{Min: 560, Max: 590, Mean: 575}) {
		t.Fatalf("wavelength %+v", m.Wavelength)
	}

	empty := NewCollector("empty", 1).Metrics()
	empty.Wavelength.Mean = math.NaN()

	var buf bytes.Buffer
	PrintTable(&buf, []*Metrics{m, empty})
	out := buf.String()
	for _, want := range []string{"…31_20190710", "40.00%", "575.00", "12P", "2.000MB", " - "} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestShorten(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"LC08_A", "LC08_A"},
		{"LC08_039031_20190710", "…31_20190710"},
		{"ÖÖÖÖÖÖÖÖÖÖÖÖÖ", "…ÖÖÖÖÖÖÖÖÖÖÖ"},
		{"ÉÉÉÉÉÉÉÉÉÉÉÉ", "ÉÉÉÉÉÉÉÉÉÉÉÉ"},
	}
	for _, tt := range tests {
		got := shorten(tt.in, 12)
		if got != tt.want {
			t.Errorf("shorten(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("shorten(%q) = %q is not valid UTF-8", tt.in, got)
		}
	}
}
