package charmap

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
)

// Decoder holds a parsed frame header and the unit payload that follows
// it. Both are set once by NewDecoder.
type Decoder struct {
	dataLength int
	data       string
}

// NewDecoder parses the header of frame.
func NewDecoder(frame string) (*Decoder, error) {
	length, payload, err := parseHeader(frame)
	if err != nil {
		return nil, err
	}
	return &Decoder{dataLength: length, data: payload}, nil
}

// DataLength returns the text length recorded in the header.
func (dec *Decoder) DataLength() int {
	return dec.dataLength
}

// Payload returns the bitmap units that follow the header.
func (dec *Decoder) Payload() string {
	return dec.data
}

// Bitmaps splits the payload into units and parses each one.
func (dec *Decoder) Bitmaps() ([]*Bitmap, error) {
	width := UnitWidth(dec.dataLength)
	if len(dec.data)%width != 0 {
		return nil, errors.Wrapf(ErrMalformedPayload,
			"payload length %d is not a multiple of unit width %d", len(dec.data), width)
	}
	if len(dec.data) == 0 && dec.dataLength > 0 {
		return nil, errors.Wrapf(ErrMalformedPayload, "no bitmap units for %d characters", dec.dataLength)
	}

	bitmaps := make([]*Bitmap, 0, len(dec.data)/width)
	for start := 0; start < len(dec.data); start += width {
		bm, err := BitmapFromHex(dec.data[start:start+width], dec.dataLength)
		if err != nil {
			return nil, errors.Wrapf(err, "unit %d", start/width)
		}
		bitmaps = append(bitmaps, bm)
	}
	return bitmaps, nil
}

// DecodeBytes reconstructs the text with one byte per character.
//
// The units are merged position by position: the first unit with a set
// bit at a position supplies its character and later units cannot
// overwrite it. Positions no unit claims keep Placeholder.
func (dec *Decoder) DecodeBytes() ([]byte, error) {
	bitmaps, err := dec.Bitmaps()
	if err != nil {
		return nil, err
	}

	result := bytes.Repeat([]byte{Placeholder}, dec.dataLength)
	claimed, _ := NewBitVector(dec.dataLength)
	for _, bm := range bitmaps {
		n := min(bm.Len(), dec.dataLength)
		for pos := 0; pos < n; pos++ {
			if bm.Bit(pos) == 1 && claimed.GetBit(pos) == 0 {
				result[pos] = bm.character
				claimed.SetBit(pos, 1)
			}
		}
	}
	return result, nil
}

// Decode reconstructs the text, mapping each character code to the rune
// of the same value.
func (dec *Decoder) Decode() (string, error) {
	codes, err := dec.DecodeBytes()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(codes))
	for _, c := range codes {
		sb.WriteRune(rune(c))
	}
	return sb.String(), nil
}
