package metrics

import (
	"time"

	"matbm.net/watercolor/imagery/watercolor"
)

// Collector accumulates the metrics of a scene run
type Collector struct {
	metrics *Metrics
}

// NewCollector creates a new metrics collector
func NewCollector(scene string, numThreads int) *Collector {
	return &Collector{
		metrics: &Metrics{
			Scene:      scene,
			NumThreads: numThreads,
		},
	}
}

// StartTiming starts measuring total time
func (c *Collector) StartTiming() time.Time {
	return time.Now()
}

// StopTiming stops measuring total time
func (c *Collector) StopTiming(start time.Time) {
	c.metrics.TotalTime = time.Since(start)
}

// SetLoadTime sets the time spent reading band files
func (c *Collector) SetLoadTime(d time.Duration) {
	c.metrics.LoadTime = d
}

// SetMaskTime sets the time spent masking clouds and terrain shadow
func (c *Collector) SetMaskTime(d time.Duration) {
	c.metrics.MaskTime = d
}

// SetClassifyMetrics sets metrics related to the wavelength calculation
func (c *Collector) SetClassifyMetrics(stats *watercolor.Stats, d time.Duration) {
	c.metrics.ClassifyTime = d
	c.metrics.Pixels = stats.Pixels
	c.metrics.NoDataPixels = stats.NoData
	c.metrics.Unclassified = stats.Unclassified
	c.metrics.Wavelength = WavelengthMetrics{Min: stats.Min, Max: stats.Max, Mean: stats.Mean}
}

// SetColorMetrics sets metrics related to colorization
func (c *Collector) SetColorMetrics(waterPixels int, d time.Duration) {
	c.metrics.ColorTime = d
	c.metrics.WaterPixels = waterPixels
}

// SetSaveMetrics sets the time spent saving the image and its size
func (c *Collector) SetSaveMetrics(size int64, d time.Duration) {
	c.metrics.SaveTime = d
	c.metrics.ImageSize = size
}

// Metrics returns the collected metrics
func (c *Collector) Metrics() *Metrics {
	return c.metrics
}
