package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"matbm.net/watercolor/config"
	"matbm.net/watercolor/imagery/landsat"
	"matbm.net/watercolor/imagery/metrics"
	"matbm.net/watercolor/imagery/provider"
	"matbm.net/watercolor/imagery/raster"
	"matbm.net/watercolor/imagery/watercolor"
)

type sceneFlags struct {
	dir       string
	out       string
	trueColor string
	cache     string
	threads   string
	allPixels bool
}

func runScene(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("scene", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	var sf sceneFlags
	fs.StringVar(&sf.dir, "dir", "", "Scene directory containing scene.json and band files")
	fs.StringVar(&sf.out, "out", "", "Output image (.png, .tif, .webp, .jpg), defaults to <scene>_watercolor.png")
	fs.StringVar(&sf.trueColor, "preview", "", "Optional true colour preview image")
	fs.StringVar(&sf.cache, "cache", "", "Directory to store the layer as snappy band tiles")
	fs.StringVar(&sf.threads, "threads", "", "Comma-separated list of worker counts to run, e.g. 1,4,8")
	fs.BoolVar(&sf.allPixels, "all", false, "Render every pixel instead of water pixels only")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if sf.dir == "" {
		fs.Usage()
		return errors.New("-dir is required")
	}

	cfg, log, err := common.load()
	if err != nil {
		return err
	}
	threadConfigs, err := parseThreads(sf.threads, cfg.Workers)
	if err != nil {
		return err
	}

	meta, err := provider.ReadMetadata(sf.dir)
	if err != nil {
		return fmt.Errorf("error reading scene metadata: %w", err)
	}
	if sf.out == "" {
		sf.out = meta.ID + "_watercolor.png"
	}

	var runs []*metrics.Metrics
	for i, threads := range threadConfigs {
		log.Info().Str("scene", meta.ID).Int("threads", threads).Msg("processing scene")
		cfg.Workers = threads
		m, err := processScene(ctx, cfg, provider.SceneRef{Metadata: meta, Location: sf.dir}, sf, i == 0, log)
		if err != nil {
			return err
		}
		runs = append(runs, m)
	}

	metrics.PrintTable(out, runs)
	return nil
}

// processScene runs the full layer pipeline once. Side outputs are only
// written when first is set.
func processScene(ctx context.Context, cfg config.Config, ref provider.SceneRef, sf sceneFlags, first bool, log zerolog.Logger) (*metrics.Metrics, error) {
	collector := metrics.NewCollector(ref.Metadata.ID, cfg.Workers)
	start := collector.StartTiming()

	src := provider.NewDirectory(filepath.Dir(ref.Location), provider.DirectoryOptions{
		Backend: raster.Backend(cfg.RasterBackend),
		Logger:  &log,
	})
	s, err := src.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	collector.SetLoadTime(time.Since(start))

	stageStart := time.Now()
	if err := landsat.MaskSR(s); err != nil {
		return nil, err
	}
	if cfg.HillShadow.Enabled {
		err := landsat.ApplyHillShadow(s, cfg.HillShadow.Neighborhood, cfg.Workers)
		if errors.Is(err, landsat.ErrMissingBand) {
			log.Warn().Str("scene", s.ID).Msg("no elevation band, skipping terrain shadow")
		} else if err != nil {
			return nil, err
		}
	}
	collector.SetMaskTime(time.Since(stageStart))

	stageStart = time.Now()
	opt := watercolor.Options{Bands: cfg.Bands, Workers: cfg.Workers}
	layer, stats, err := watercolor.Calculate(ctx, s, opt)
	if err != nil {
		return nil, err
	}
	collector.SetClassifyMetrics(stats, time.Since(stageStart))
	log.Info().
		Int("classified", stats.Classified).
		Int("no_data", stats.NoData).
		Int("unclassified", stats.Unclassified).
		Float64("mean_nm", stats.Mean).
		Msg("layer calculated")

	stageStart = time.Now()
	var mask landsat.Mask
	if !sf.allPixels {
		mask, err = landsat.WaterMask(s)
		if err != nil {
			return nil, fmt.Errorf("water mask: %w", err)
		}
	}
	img := watercolor.Colorize(layer, mask, cfg.Palette, cfg.Workers)
	water := s.Pixels()
	if mask != nil {
		water = mask.Count()
	}
	collector.SetColorMetrics(water, time.Since(stageStart))

	writer := raster.NewWriter(log)
	saveTime, err := writer.Write(img, sf.out)
	if err != nil {
		return nil, err
	}
	var size int64
	if fi, err := os.Stat(sf.out); err == nil {
		size = fi.Size()
	}
	collector.SetSaveMetrics(size, saveTime)

	if first {
		if err := writeSideOutputs(ctx, s, layer, opt, sf, writer); err != nil {
			return nil, err
		}
	}

	collector.StopTiming(start)
	return collector.Metrics(), nil
}

func writeSideOutputs(ctx context.Context, s *landsat.Scene, layer *watercolor.Layer, opt watercolor.Options, sf sceneFlags, writer *raster.Writer) error {
	if sf.trueColor != "" {
		img, err := watercolor.TrueColor(ctx, s, opt)
		if err != nil {
			return err
		}
		if _, err := writer.Write(img, sf.trueColor); err != nil {
			return err
		}
	}
	if sf.cache != "" {
		if err := os.MkdirAll(sf.cache, 0o755); err != nil {
			return err
		}
		if err := provider.WriteMetadata(sf.cache, s.Metadata); err != nil {
			return err
		}
		tiles := map[string]*raster.Band{
			watercolor.BandWavelength: layer.Wavelength,
			watercolor.BandPurity:     layer.Purity,
		}
		for name, band := range tiles {
			path := filepath.Join(sf.cache, name+raster.SnappyExt)
			if err := (raster.SnappyCodec{}).Write(path, band); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseThreads(threadsFlag string, fallback int) ([]int, error) {
	if strings.TrimSpace(threadsFlag) == "" {
		return []int{fallback}, nil
	}
	var threadConfigs []int
	for _, t := range strings.Split(threadsFlag, ",") {
		threads, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil || threads < 1 {
			return nil, fmt.Errorf("invalid thread configuration: %q", t)
		}
		threadConfigs = append(threadConfigs, threads)
	}
	return threadConfigs, nil
}
