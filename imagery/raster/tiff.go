package raster

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"os"

	"golang.org/x/image/tiff"
)

const (
	tiffTagSampleFormat = 339
	tiffTypeShort       = 3

	sampleFormatUint = 1
	sampleFormatInt  = 2
)

// TIFFReader decodes single band 8 or 16 bit grayscale TIFFs without libvips.
// Signed 16 bit samples, as in Landsat surface reflectance products, are
// read as int16. Files the decoder does not support are handed to Fallback
// when set.
type TIFFReader struct {
	Fallback BandReader
}

func (r TIFFReader) Read(path string) (*Band, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}

	signed := unsignSampleFormat(data)
	img, err := tiff.Decode(bytes.NewReader(data))
	var unsupported tiff.UnsupportedError
	if errors.As(err, &unsupported) && r.Fallback != nil {
		return r.Fallback.Read(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", path, err)
	}
	return fromImage(img, signed)
}

// unsignSampleFormat rewrites a single signed SampleFormat tag of the first
// IFD to unsigned, in place, and reports whether it did. The decoder then
// yields the raw two's complement samples.
func unsignSampleFormat(data []byte) bool {
	if len(data) < 8 {
		return false
	}
	var order binary.ByteOrder
	switch string(data[:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return false
	}
	if order.Uint16(data[2:]) != 42 {
		return false
	}

	ifd := int64(order.Uint32(data[4:]))
	if ifd+2 > int64(len(data)) {
		return false
	}
	n := int64(order.Uint16(data[ifd:]))
	for i := int64(0); i < n; i++ {
		entry := ifd + 2 + 12*i
		if entry+12 > int64(len(data)) {
			return false
		}
		if order.Uint16(data[entry:]) != tiffTagSampleFormat {
			continue
		}
		if order.Uint16(data[entry+2:]) != tiffTypeShort || order.Uint32(data[entry+4:]) != 1 {
			return false
		}
		if order.Uint16(data[entry+8:]) != sampleFormatInt {
			return false
		}
		order.PutUint16(data[entry+8:], sampleFormatUint)
		return true
	}
	return false
}

// FromImage converts a grayscale image to a band of raw sample values.
func FromImage(img image.Image) (*Band, error) {
	return fromImage(img, false)
}

func fromImage(img image.Image, signed bool) (*Band, error) {
	bounds := img.Bounds()
	b := NewBand(bounds.Dx(), bounds.Dy())

	switch g := img.(type) {
	case *image.Gray16:
		for y := 0; y < b.Height; y++ {
			row := g.Pix[y*g.Stride:]
			for x := 0; x < b.Width; x++ {
				v := uint16(row[2*x])<<8 | uint16(row[2*x+1])
				if signed {
					b.Data[y*b.Width+x] = float32(int16(v))
				} else {
					b.Data[y*b.Width+x] = float32(v)
				}
			}
		}
	case *image.Gray:
		if signed {
			return nil, fmt.Errorf("%w: signed 8 bit samples", ErrUnsupported)
		}
		for y := 0; y < b.Height; y++ {
			row := g.Pix[y*g.Stride:]
			for x := 0; x < b.Width; x++ {
				b.Data[y*b.Width+x] = float32(row[x])
			}
		}
	default:
		return nil, fmt.Errorf("%w: %T is not a single band image", ErrUnsupported, img)
	}
	return b, nil
}
