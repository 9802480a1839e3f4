package landsat

import (
	"fmt"
	"slices"
	"time"

	"matbm.net/watercolor/imagery/raster"
)

// Band names used by the pipeline.
const (
	BandQA         = "pixel_qa"
	BandDEM        = "dem"
	BandCloud      = "cloud"
	BandSnowIce    = "snowIce"
	BandHillShadow = "hillshadow"
	BandMNDWI      = "mndwi"
)

// Metadata describes a scene acquisition, as stored in scene.json.
type Metadata struct {
	ID           string       `json:"id"`
	Acquired     time.Time    `json:"acquired"`
	CloudCover   float64      `json:"cloud_cover"`
	SolarAzimuth float64      `json:"solar_azimuth"`
	SolarZenith  float64      `json:"solar_zenith"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	Transform    GeoTransform `json:"geo_transform"`
	// PixelSize is the ground sample distance in metres, used for terrain shadow.
	PixelSize float64 `json:"pixel_size_m"`
}

// DOY returns the UTC day of year of the acquisition.
func (m Metadata) DOY() int {
	return m.Acquired.UTC().YearDay()
}

// Validate checks the footprint fields point queries depend on.
func (m Metadata) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: scene %s has size %dx%d", ErrMetadata, m.ID, m.Width, m.Height)
	}
	if _, _, ok := m.Transform.Invert(0, 0); !ok {
		return fmt.Errorf("%w: scene %s has a singular geo_transform %v", ErrMetadata, m.ID, m.Transform)
	}
	return nil
}

// Scene is a georeferenced acquisition with named bands of equal size.
type Scene struct {
	Metadata
	bands map[string]*raster.Band
	order []string
}

// NewScene creates an empty scene. Width and Height are taken from the
// metadata, or from the first band added when zero.
func NewScene(meta Metadata) *Scene {
	return &Scene{
		Metadata: meta,
		bands:    make(map[string]*raster.Band),
	}
}

// AddBand adds or replaces a band.
func (s *Scene) AddBand(name string, b *raster.Band) error {
	if s.Width == 0 && s.Height == 0 {
		s.Width, s.Height = b.Width, b.Height
	}
	if b.Width != s.Width || b.Height != s.Height {
		return &DimensionError{Band: name, Width: b.Width, Height: b.Height, SceneWidth: s.Width, SceneHeight: s.Height}
	}
	if _, ok := s.bands[name]; !ok {
		s.order = append(s.order, name)
	}
	s.bands[name] = b
	return nil
}

// Band returns the named band.
func (s *Scene) Band(name string) (*raster.Band, error) {
	b, ok := s.bands[name]
	if !ok {
		return nil, fmt.Errorf("%w %q in scene %s", ErrMissingBand, name, s.ID)
	}
	return b, nil
}

// HasBand reports whether the band exists.
func (s *Scene) HasBand(name string) bool {
	_, ok := s.bands[name]
	return ok
}

// RemoveBand drops a band if present.
func (s *Scene) RemoveBand(name string) {
	if _, ok := s.bands[name]; !ok {
		return
	}
	delete(s.bands, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
}

// BandNames returns band names in insertion order.
func (s *Scene) BandNames() []string {
	return slices.Clone(s.order)
}

// Pixels returns the number of pixels per band.
func (s *Scene) Pixels() int {
	return s.Width * s.Height
}

// IsReflectanceBand reports whether name is a numbered optical band (B1, B10...).
func IsReflectanceBand(name string) bool {
	if len(name) < 2 || name[0] != 'B' {
		return false
	}
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
