package charmap

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Seal prepares a frame for storage. With compress set the frame is
// wrapped in a zstd frame; hex text compresses well.
func Seal(frame string, compress bool) ([]byte, error) {
	if !compress {
		return []byte(frame), nil
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, errors.Wrap(err, "create zstd encoder")
	}
	defer enc.Close()
	return enc.EncodeAll([]byte(frame), nil), nil
}

// Open reverses Seal. Compressed input is recognised by the zstd magic
// number. Surrounding whitespace is dropped.
func Open(data []byte) (string, error) {
	if IsCompressed(data) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return "", errors.Wrap(err, "create zstd decoder")
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return "", errors.Wrap(err, "zstd decompress")
		}
	}
	return string(bytes.TrimSpace(data)), nil
}

// IsCompressed reports whether data holds a zstd compressed frame.
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}
