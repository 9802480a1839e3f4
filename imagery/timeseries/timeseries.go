// Package timeseries extracts water colour values at a point from every
// scene a provider returns.
package timeseries

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"matbm.net/watercolor/config"
	"matbm.net/watercolor/imagery/landsat"
	"matbm.net/watercolor/imagery/provider"
	"matbm.net/watercolor/imagery/watercolor"
)

// Record holds the band values of one scene at the query point.
type Record struct {
	SceneID string
	Time    time.Time
	DOY     int
	Values  map[string]float64
}

// Value returns a band value, NaN when missing.
func (r Record) Value(band string) float64 {
	v, ok := r.Values[band]
	if !ok {
		return math.NaN()
	}
	return v
}

// Options controls an extraction.
type Options struct {
	Bands   config.BandMapping
	Workers int
	// HillShadow is the terrain shadow search distance in pixels; 0 skips it.
	HillShadow int
	// TargetBand must be present and non negative for a record to be kept.
	TargetBand string
	Logger     *zerolog.Logger
	// Progress is called after each scene.
	Progress func(done, total int)
}

// Extract loads every scene matching q, masks clouds and terrain shadow,
// calculates the water colour layer and reduces all bands at q.Point.
// Scenes where the target band is masked or negative are skipped.
func Extract(ctx context.Context, p provider.Provider, q provider.Query, opt Options) ([]Record, error) {
	log := zerolog.Nop()
	if opt.Logger != nil {
		log = *opt.Logger
	}
	if opt.TargetBand == "" {
		opt.TargetBand = watercolor.BandWavelength
	}

	refs, err := p.Scenes(ctx, q)
	if err != nil {
		return nil, err
	}

	var records []Record
	for i, ref := range refs {
		rec, ok, err := extractScene(ctx, p, ref, q.Point, opt, log)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, rec)
		}
		if opt.Progress != nil {
			opt.Progress(i+1, len(refs))
		}
	}

	log.Info().Int("scenes", len(refs)).Int("records", len(records)).Msg("time series extracted")
	return records, nil
}

func extractScene(ctx context.Context, p provider.Provider, ref provider.SceneRef, point config.Point, opt Options, log zerolog.Logger) (Record, bool, error) {
	log = log.With().Str("scene", ref.Metadata.ID).Logger()

	s, err := p.Load(ctx, ref)
	if err != nil {
		return Record{}, false, err
	}
	if err := landsat.MaskSR(s); err != nil {
		return Record{}, false, fmt.Errorf("scene %s: %w", s.ID, err)
	}
	if opt.HillShadow > 0 {
		err := landsat.ApplyHillShadow(s, opt.HillShadow, opt.Workers)
		if errors.Is(err, landsat.ErrMissingBand) {
			log.Warn().Msg("no elevation band, skipping terrain shadow")
		} else if err != nil {
			return Record{}, false, fmt.Errorf("scene %s: %w", s.ID, err)
		}
	}

	layer, stats, err := watercolor.Calculate(ctx, s, watercolor.Options{Bands: opt.Bands, Workers: opt.Workers})
	if err != nil {
		return Record{}, false, err
	}
	if err := watercolor.Attach(s, layer); err != nil {
		return Record{}, false, err
	}
	log.Debug().Int("classified", stats.Classified).Int("no_data", stats.NoData).Msg("layer calculated")

	values, err := provider.ReduceFirst(s, point)
	if err != nil {
		return Record{}, false, fmt.Errorf("scene %s: %w", s.ID, err)
	}
	if v, ok := values[opt.TargetBand]; !ok || v < 0 {
		log.Debug().Str("band", opt.TargetBand).Msg("target band masked at point, dropping scene")
		return Record{}, false, nil
	}

	return Record{
		SceneID: s.ID,
		Time:    s.Acquired,
		DOY:     s.DOY(),
		Values:  values,
	}, true, nil
}

// SortByTime orders records by acquisition time.
func SortByTime(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Time.Before(records[j].Time)
	})
}

// SortByDOY orders records by day of year, folding years together.
func SortByDOY(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DOY < records[j].DOY
	})
}
