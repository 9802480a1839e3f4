// Package provider supplies georeferenced Landsat scenes to the water colour
// pipeline and reduces scene bands to values at a point.
package provider

import (
	"context"
	"errors"
	"math"
	"time"

	"matbm.net/watercolor/config"
	"matbm.net/watercolor/imagery/landsat"
)

var (
	// ErrNoScenes is returned when a query matches nothing.
	ErrNoScenes = errors.New("no scenes match query")

	// ErrOutside indicates a point outside the scene footprint.
	ErrOutside = errors.New("point outside scene")
)

// Query selects scenes covering a point.
type Query struct {
	Point config.Point
	// MaxCloudCover keeps scenes with cloud cover strictly below it; 0 keeps all.
	MaxCloudCover float64
	// Start and End bound the acquisition time when non zero.
	Start, End time.Time
}

// Match reports whether a scene satisfies the query.
func (q Query) Match(m landsat.Metadata) bool {
	if q.MaxCloudCover > 0 && !(m.CloudCover < q.MaxCloudCover) {
		return false
	}
	if !q.Start.IsZero() && m.Acquired.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && !m.Acquired.Before(q.End) {
		return false
	}
	return m.Contains(q.Point.Lon, q.Point.Lat)
}

// SceneRef identifies a scene a provider can load.
type SceneRef struct {
	Metadata landsat.Metadata
	// Location is provider specific, e.g. a directory.
	Location string
}

// Provider lists and loads scenes.
type Provider interface {
	// Scenes returns the scenes matching q ordered by acquisition time.
	Scenes(ctx context.Context, q Query) ([]SceneRef, error)
	// Load reads every band of a scene.
	Load(ctx context.Context, ref SceneRef) (*landsat.Scene, error)
}

// ReduceFirst returns the value of each band at the pixel containing p.
// Masked (NaN) values are omitted. With no band names every band is read.
func ReduceFirst(s *landsat.Scene, p config.Point, bands ...string) (map[string]float64, error) {
	col, row, ok := s.PixelAt(p.Lon, p.Lat)
	if !ok {
		return nil, ErrOutside
	}
	if len(bands) == 0 {
		bands = s.BandNames()
	}

	values := make(map[string]float64, len(bands))
	for _, name := range bands {
		b, err := s.Band(name)
		if err != nil {
			return nil, err
		}
		v := float64(b.At(col, row))
		if math.IsNaN(v) {
			continue
		}
		values[name] = v
	}
	return values, nil
}
