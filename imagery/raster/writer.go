package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/rs/zerolog"
)

// Writer exports RGBA layers with libvips. The format follows the file
// extension: .png, .tif/.tiff, .webp or .jpg/.jpeg.
type Writer struct {
	Logger zerolog.Logger
}

// NewWriter creates a writer logging to logger.
func NewWriter(logger zerolog.Logger) *Writer {
	return &Writer{Logger: logger}
}

// Write encodes img to path and returns the time it took.
func (w *Writer) Write(img *image.RGBA, path string) (time.Duration, error) {
	start := time.Now()
	encoded, err := w.Encode(img, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return 0, fmt.Errorf("failed to encode %q: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %q: %w", path, err)
	}

	elapsed := time.Since(start)
	w.Logger.Debug().Str("path", path).Int("bytes", len(encoded)).Dur("elapsed", elapsed).Msg("layer written")
	return elapsed, nil
}

// Encode returns img encoded in the format of ext.
func (w *Writer) Encode(img *image.RGBA, ext string) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	if ext == ".png" {
		return buf.Bytes(), nil
	}

	StartVips(w.Logger, 0)
	ref, err := vips.NewImageFromBuffer(buf.Bytes())
	if err != nil {
		return nil, err
	}
	defer ref.Close()

	var out []byte
	switch ext {
	case ".tif", ".tiff":
		out, _, err = ref.ExportTiff(vips.NewTiffExportParams())
	case ".webp":
		params := vips.NewWebpExportParams()
		params.Lossless = true
		out, _, err = ref.ExportWebp(params)
	case ".jpg", ".jpeg":
		if err := ref.Flatten(&vips.Color{R: 255, G: 255, B: 255}); err != nil {
			return nil, err
		}
		out, _, err = ref.ExportJpeg(vips.NewJpegExportParams())
	default:
		return nil, fmt.Errorf("%w: output extension %q", ErrUnsupported, ext)
	}
	return out, err
}
