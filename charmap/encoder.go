package charmap

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Encoder holds the bitmaps of one text, one per distinct character in
// ascending character order. It is built once and not modified afterwards.
type Encoder struct {
	codes   []byte
	bitmaps []*Bitmap
}

// NewEncoder creates an encoder for text, treating each rune as one
// character. Runes above U+00FF cannot be represented.
func NewEncoder(text string) (*Encoder, error) {
	codes := make([]byte, 0, len(text))
	for i, r := range []rune(text) {
		if r > MaxCharacter {
			return nil, errors.Wrapf(ErrCharacterOutOfRange, "U+%04X at position %d", r, i)
		}
		codes = append(codes, byte(r))
	}
	return newEncoder(codes), nil
}

// NewEncoderBytes creates an encoder for data, treating each byte as one
// character.
func NewEncoderBytes(data []byte) *Encoder {
	return newEncoder(slices.Clone(data))
}

func newEncoder(codes []byte) *Encoder {
	enc := &Encoder{codes: codes}
	enc.initializeBitmaps()
	return enc
}

// initializeBitmaps builds one bitmap per distinct character. Map iteration
// order is random, so the characters are sorted to keep the output
// reproducible.
func (enc *Encoder) initializeBitmaps() {
	byCharacter := make(map[byte]*Bitmap)
	for _, c := range enc.codes {
		if _, ok := byCharacter[c]; !ok {
			byCharacter[c] = newBitmap(enc.codes, c)
		}
	}

	characters := make([]byte, 0, len(byCharacter))
	for c := range byCharacter {
		characters = append(characters, c)
	}
	slices.Sort(characters)

	enc.bitmaps = make([]*Bitmap, 0, len(characters))
	for _, c := range characters {
		enc.bitmaps = append(enc.bitmaps, byCharacter[c])
	}
}

// Len returns the text length in characters.
func (enc *Encoder) Len() int {
	return len(enc.codes)
}

// Bitmaps returns the bitmaps in ascending character order.
func (enc *Encoder) Bitmaps() []*Bitmap {
	return slices.Clone(enc.bitmaps)
}

// Encode returns the frame: header followed by every bitmap unit.
func (enc *Encoder) Encode() string {
	var sb strings.Builder
	sb.Grow(4 + len(enc.bitmaps)*UnitWidth(len(enc.codes)))
	sb.WriteString(formatHeader(len(enc.codes)))
	for _, bm := range enc.bitmaps {
		sb.WriteString(bm.Encode())
	}
	return sb.String()
}
