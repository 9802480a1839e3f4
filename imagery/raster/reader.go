package raster

import (
	"path/filepath"
	"strings"
)

// BandReader reads the first band of a raster file.
type BandReader interface {
	Read(path string) (*Band, error)
}

// Backend selects how non native raster files are decoded.
type Backend string

const (
	// BackendAuto decodes TIFF in pure Go, falling back to libvips for TIFF
	// features the Go decoder lacks, and everything else with libvips.
	BackendAuto Backend = "auto"
	// BackendVips decodes every non snappy file with libvips.
	BackendVips Backend = "vips"
	// BackendNative never uses libvips; only TIFF and snappy tiles are readable.
	BackendNative Backend = "native"
)

// BandExtensions lists the file extensions recognized as band files.
var BandExtensions = []string{".tif", ".tiff", ".snp", ".png", ".jp2", ".jpg", ".jpeg", ".webp"}

// IsBandFile reports whether path has a band file extension.
func IsBandFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range BandExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ReaderFor returns the reader to use for path.
func ReaderFor(path string, backend Backend) BandReader {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == SnappyExt:
		return SnappyCodec{}
	case backend == BackendVips:
		return VipsReader{}
	case backend == BackendNative:
		return TIFFReader{}
	case ext == ".tif" || ext == ".tiff":
		return TIFFReader{Fallback: VipsReader{}}
	default:
		return VipsReader{}
	}
}
