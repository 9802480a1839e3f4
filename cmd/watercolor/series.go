package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"matbm.net/watercolor/config"
	"matbm.net/watercolor/imagery/provider"
	"matbm.net/watercolor/imagery/raster"
	"matbm.net/watercolor/imagery/timeseries"
	"matbm.net/watercolor/imagery/watercolor"
)

func runSeries(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("series", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	var (
		dir      = fs.String("dir", "", "Directory with one sub directory per scene")
		point    = fs.String("point", "", "Point as lon,lat, defaults to the config point")
		csvPath  = fs.String("csv", "", "CSV output, defaults to stdout")
		start    = fs.String("start", "", "First acquisition date, YYYY-MM-DD")
		end      = fs.String("end", "", "Acquisition date bound (exclusive), YYYY-MM-DD")
		byDOY    = fs.Bool("doy", false, "Order rows by day of year instead of time")
		progress = fs.Bool("progress", true, "Show a progress bar on stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dir == "" {
		fs.Usage()
		return errors.New("-dir is required")
	}

	cfg, log, err := common.load()
	if err != nil {
		return err
	}
	q := provider.Query{Point: cfg.Point, MaxCloudCover: cfg.MaxCloudCover}
	if *point != "" {
		if q.Point, err = config.ParsePoint(*point); err != nil {
			return err
		}
	}
	if q.Start, err = parseDate(*start); err != nil {
		return err
	}
	if q.End, err = parseDate(*end); err != nil {
		return err
	}

	src := provider.NewDirectory(*dir, provider.DirectoryOptions{
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		Backend:   raster.Backend(cfg.RasterBackend),
		Logger:    &log,
	})

	opt := timeseries.Options{
		Bands:      cfg.Bands,
		Workers:    cfg.Workers,
		TargetBand: cfg.TargetBand,
		Logger:     &log,
	}
	if cfg.HillShadow.Enabled {
		opt.HillShadow = cfg.HillShadow.Neighborhood
	}
	if *progress {
		var bar *progressbar.ProgressBar
		opt.Progress = func(done, total int) {
			if bar == nil {
				bar = progressbar.Default(int64(total), "scenes")
			}
			_ = bar.Set(done)
		}
	}

	records, err := timeseries.Extract(ctx, src, q, opt)
	if err != nil {
		return err
	}
	if *byDOY {
		timeseries.SortByDOY(records)
	} else {
		timeseries.SortByTime(records)
	}

	bands := []string{cfg.TargetBand, watercolor.BandPurity}
	if *csvPath == "" {
		err = timeseries.WriteCSV(out, records, bands)
	} else {
		err = writeSeriesFile(*csvPath, records, bands)
	}
	if err != nil {
		return fmt.Errorf("error writing series: %w", err)
	}
	log.Info().Int("records", len(records)).Str("point", q.Point.String()).Msg("series written")
	return nil
}

// createFile opens CSV outputs.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeSeriesFile writes the series to path. A failed close is reported
// since it can lose buffered rows.
func writeSeriesFile(path string, records []timeseries.Record, bands []string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	if err := timeseries.WriteCSV(f, records, bands); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", path, err)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
