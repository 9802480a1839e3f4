package raster

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/rs/zerolog"
)

var (
	vipsMu      sync.Mutex
	vipsStarted bool

	vipsStartup = func(logger zerolog.Logger, concurrency int) {
		vips.LoggingSettings(vipsLogHandler(logger), vips.LogLevelWarning)
		vips.Startup(&vips.Config{ConcurrencyLevel: concurrency})
	}

	vipsShutdown = vips.Shutdown
)

// StartVips starts libvips once per process and routes its log output to
// logger. Readers and writers call it lazily with a no-op logger when the
// caller has not.
func StartVips(logger zerolog.Logger, concurrency int) {
	vipsMu.Lock()
	defer vipsMu.Unlock()
	if vipsStarted {
		return
	}
	vipsStartup(logger, concurrency)
	vipsStarted = true
}

// ShutdownVips releases libvips. It does nothing when libvips was never started.
func ShutdownVips() {
	vipsMu.Lock()
	defer vipsMu.Unlock()
	if !vipsStarted {
		return
	}
	vipsShutdown()
	vipsStarted = false
}

func vipsLogHandler(logger zerolog.Logger) vips.LoggingHandlerFunction {
	return func(domain string, level vips.LogLevel, message string) {
		var ev *zerolog.Event
		switch level {
		case vips.LogLevelError, vips.LogLevelCritical:
			ev = logger.Error()
		case vips.LogLevelWarning:
			ev = logger.Warn()
		case vips.LogLevelDebug:
			ev = logger.Debug()
		default:
			ev = logger.Info()
		}
		ev.Str("domain", domain).Msg(message)
	}
}

// VipsReader decodes any format libvips understands. Multi band images are
// reduced to their first band and samples are cast to float.
type VipsReader struct{}

func (VipsReader) Read(path string) (*Band, error) {
	StartVips(zerolog.Nop(), 0)

	img, err := vips.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", path, err)
	}
	defer img.Close()

	if img.Bands() > 1 {
		if err := img.ExtractBand(0, 1); err != nil {
			return nil, fmt.Errorf("failed to extract band from %q: %w", path, err)
		}
	}
	if err := img.Cast(vips.BandFormatFloat); err != nil {
		return nil, fmt.Errorf("failed to cast %q to float: %w", path, err)
	}

	raw, err := img.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to read pixels of %q: %w", path, err)
	}

	b := NewBand(img.Width(), img.Height())
	if len(raw) != 4*b.Len() {
		return nil, fmt.Errorf("%w: %q has %d bytes for %dx%d float band", ErrCorrupt, path, len(raw), b.Width, b.Height)
	}
	for i := range b.Data {
		b.Data[i] = math.Float32frombits(binary.NativeEndian.Uint32(raw[4*i:]))
	}
	return b, nil
}
