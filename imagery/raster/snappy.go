package raster

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/golang/snappy"
)

// SnappyExt is the extension of snappy compressed band tiles.
const SnappyExt = ".snp"

var snappyMagic = [4]byte{'W', 'C', 'B', '1'}

const snappyHeader = 12

// SnappyCodec reads and writes band tiles as a snappy block of
// "WCB1", width, height (uint32 LE) followed by float32 LE samples.
type SnappyCodec struct{}

func (SnappyCodec) Read(path string) (*Band, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	b, err := DecodeSnappy(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return b, nil
}

func (SnappyCodec) Write(path string, b *Band) error {
	data, err := EncodeSnappy(b)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

// EncodeSnappy serializes and compresses b.
func EncodeSnappy(b *Band) ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	raw := make([]byte, snappyHeader+4*len(b.Data))
	copy(raw, snappyMagic[:])
	binary.LittleEndian.PutUint32(raw[4:], uint32(b.Width))
	binary.LittleEndian.PutUint32(raw[8:], uint32(b.Height))
	for i, v := range b.Data {
		binary.LittleEndian.PutUint32(raw[snappyHeader+4*i:], math.Float32bits(v))
	}
	return snappy.Encode(nil, raw), nil
}

// DecodeSnappy is the inverse of EncodeSnappy.
func DecodeSnappy(data []byte) (*Band, error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, err)
	}
	if len(raw) < snappyHeader || [4]byte(raw[:4]) != snappyMagic {
		return nil, fmt.Errorf("%w: missing band header", ErrCorrupt)
	}
	width := int(binary.LittleEndian.Uint32(raw[4:]))
	height := int(binary.LittleEndian.Uint32(raw[8:]))
	if len(raw)-snappyHeader != 4*width*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d band", ErrCorrupt, len(raw)-snappyHeader, width, height)
	}

	b := NewBand(width, height)
	for i := range b.Data {
		b.Data[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[snappyHeader+4*i:]))
	}
	return b, nil
}
