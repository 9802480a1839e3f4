package metrics

import "time"

// Metrics contains the timings and pixel counts of one scene run
type Metrics struct {
	Scene        string
	NumThreads   int
	TotalTime    time.Duration
	LoadTime     time.Duration
	MaskTime     time.Duration
	ClassifyTime time.Duration
	ColorTime    time.Duration
	SaveTime     time.Duration
	Pixels       int
	NoDataPixels int
	Unclassified int
	WaterPixels  int
	Wavelength   WavelengthMetrics
	ImageSize    int64
}

// WavelengthMetrics summarizes the classified dominant wavelengths in nm
type WavelengthMetrics struct {
	Min  float64
	Max  float64
	Mean float64
}
