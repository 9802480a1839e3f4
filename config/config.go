package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// BandMapping names the scene bands used as the U, R, G and B inputs.
type BandMapping struct {
	U string `json:"u"`
	R string `json:"r"`
	G string `json:"g"`
	B string `json:"b"`
}

// Landsat8Bands is the Landsat 8 OLI mapping: coastal aerosol, red, green, blue.
func Landsat8Bands() BandMapping {
	return BandMapping{U: "B1", R: "B4", G: "B3", B: "B2"}
}

// Names returns the band names in U, R, G, B order.
func (m BandMapping) Names() []string {
	return []string{m.U, m.R, m.G, m.B}
}

// Point is a geographic location in the scene coordinate system.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

func (p Point) String() string {
	return strconv.FormatFloat(p.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat, 'f', -1, 64)
}

// ParsePoint parses "lon,lat".
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("point %q must be lon,lat", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid longitude %q: %w", parts[0], err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid latitude %q: %w", parts[1], err)
	}
	return Point{Lon: lon, Lat: lat}, nil
}

// HillShadow configures terrain shadow masking.
type HillShadow struct {
	Enabled bool `json:"enabled"`
	// Neighborhood is the search distance toward the sun, in pixels.
	Neighborhood int `json:"neighborhood"`
}

// Config is the run configuration.
type Config struct {
	Bands         BandMapping `json:"bands"`
	Workers       int         `json:"workers"`
	MaxCloudCover float64     `json:"max_cloud_cover"`
	Point         Point       `json:"point"`
	// RateLimit caps scene loads per second, 0 disables throttling.
	RateLimit     float64    `json:"rate_limit"`
	RateBurst     int        `json:"rate_burst"`
	HillShadow    HillShadow `json:"hill_shadow"`
	Palette       Palette    `json:"palette"`
	TargetBand    string     `json:"target_band"`
	RasterBackend string     `json:"raster_backend"`
	LogLevel      string     `json:"log_level"`
	LogPretty     bool       `json:"log_pretty"`
}

// Default returns the configuration of the Great Salt Lake water colour workflow.
func Default() Config {
	return Config{
		Bands:         Landsat8Bands(),
		Workers:       runtime.NumCPU(),
		MaxCloudCover: 30,
		Point:         Point{Lon: -112.6674, Lat: 41.2205},
		RateLimit:     0,
		RateBurst:     1,
		HillShadow:    HillShadow{Enabled: true, Neighborhood: 100},
		Palette:       DefaultPalette(),
		TargetBand:    "dwLehmann",
		RasterBackend: "auto",
		LogLevel:      "info",
	}
}

// Load reads a JSON config file on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config JSON: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c Config) Validate() error {
	var errs []error
	for i, name := range c.Bands.Names() {
		if name == "" {
			errs = append(errs, fmt.Errorf("band %c is not mapped", "URGB"[i]))
		}
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.MaxCloudCover < 0 || c.MaxCloudCover > 100 {
		errs = append(errs, fmt.Errorf("max_cloud_cover %v outside 0-100", c.MaxCloudCover))
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate_limit must not be negative"))
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		errs = append(errs, fmt.Errorf("rate_burst must be positive when rate_limit is set"))
	}
	if c.HillShadow.Enabled && c.HillShadow.Neighborhood < 1 {
		errs = append(errs, fmt.Errorf("hill_shadow.neighborhood must be positive"))
	}
	if !(c.Palette.Max > c.Palette.Min) {
		errs = append(errs, fmt.Errorf("palette max %v must exceed min %v", c.Palette.Max, c.Palette.Min))
	}
	if c.TargetBand == "" {
		errs = append(errs, fmt.Errorf("target_band is empty"))
	}
	switch c.RasterBackend {
	case "auto", "vips", "native":
	default:
		errs = append(errs, fmt.Errorf("unknown raster_backend %q", c.RasterBackend))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
