package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"matbm.net/watercolor/imagery/landsat"
	"matbm.net/watercolor/imagery/raster"
)

// MetadataFile is the per scene metadata file name.
const MetadataFile = "scene.json"

// DirectoryOptions configures a Directory provider.
type DirectoryOptions struct {
	// RateLimit caps scene loads per second; 0 disables throttling.
	RateLimit float64
	RateBurst int
	Backend   raster.Backend
	Logger    *zerolog.Logger
}

// Directory serves scenes stored one per sub directory of a root:
//
//	root/LC08_039031_20190710/scene.json
//	root/LC08_039031_20190710/LC08_039031_20190710_B1.TIF
//	root/LC08_039031_20190710/pixel_qa.tif
//	root/LC08_039031_20190710/dem.snp
//
// Band names are the file names without extension and scene id prefix.
// scene.json must carry width, height and geo_transform; scenes without
// them are skipped with a warning since no point can be located in them.
type Directory struct {
	root    string
	backend raster.Backend
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewDirectory creates a provider rooted at root.
func NewDirectory(root string, opt DirectoryOptions) *Directory {
	d := &Directory{
		root:    root,
		backend: opt.Backend,
		limiter: rate.NewLimiter(rate.Inf, 0),
		log:     zerolog.Nop(),
	}
	if d.backend == "" {
		d.backend = raster.BackendAuto
	}
	if opt.RateLimit > 0 {
		d.limiter = rate.NewLimiter(rate.Limit(opt.RateLimit), max(1, opt.RateBurst))
	}
	if opt.Logger != nil {
		d.log = *opt.Logger
	}
	return d
}

func (d *Directory) Scenes(ctx context.Context, q Query) ([]SceneRef, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("error reading %q directory: %w", d.root, err)
	}

	var refs []SceneRef
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(d.root, e.Name())
		meta, err := ReadMetadata(dir)
		if errors.Is(err, os.ErrNotExist) {
			d.log.Debug().Str("dir", dir).Msg("skipping directory without scene metadata")
			continue
		}
		if errors.Is(err, landsat.ErrMetadata) {
			d.log.Warn().Err(err).Str("dir", dir).Msg("skipping scene without footprint")
			continue
		}
		if err != nil {
			return nil, err
		}
		if !q.Match(meta) {
			continue
		}
		refs = append(refs, SceneRef{Metadata: meta, Location: dir})
	}

	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Metadata.Acquired.Before(refs[j].Metadata.Acquired)
	})
	d.log.Info().Int("scenes", len(refs)).Str("point", q.Point.String()).Msg("scene query")
	if len(refs) == 0 {
		return nil, ErrNoScenes
	}
	return refs, nil
}

func (d *Directory) Load(ctx context.Context, ref SceneRef) (*landsat.Scene, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	files, err := os.ReadDir(ref.Location)
	if err != nil {
		return nil, fmt.Errorf("error reading scene %s: %w", ref.Metadata.ID, err)
	}

	scene := landsat.NewScene(ref.Metadata)
	for _, f := range files {
		if f.IsDir() || !raster.IsBandFile(f.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(ref.Location, f.Name())
		band, err := raster.ReaderFor(path, d.backend).Read(path)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", ref.Metadata.ID, err)
		}
		name := BandName(ref.Metadata.ID, f.Name())
		if err := scene.AddBand(name, band); err != nil {
			return nil, fmt.Errorf("scene %s: %w", ref.Metadata.ID, err)
		}
	}
	d.log.Debug().Str("scene", ref.Metadata.ID).Strs("bands", scene.BandNames()).Msg("scene loaded")
	return scene, nil
}

// BandName derives a band name from a band file name.
func BandName(sceneID, file string) string {
	name := strings.TrimSuffix(file, filepath.Ext(file))
	if sceneID != "" {
		name = strings.TrimPrefix(name, sceneID+"_")
	}
	return name
}

// ReadMetadata reads dir/scene.json. The id defaults to the directory name.
// Metadata without width, height or an invertible geo_transform is
// rejected with landsat.ErrMetadata.
func ReadMetadata(dir string) (landsat.Metadata, error) {
	var meta landsat.Metadata
	data, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("error parsing %s in %q: %w", MetadataFile, dir, err)
	}
	if meta.ID == "" {
		meta.ID = filepath.Base(dir)
	}
	return meta, meta.Validate()
}

// WriteMetadata writes dir/scene.json.
func WriteMetadata(dir string, meta landsat.Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, MetadataFile), data, 0o644)
}
