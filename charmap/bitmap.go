package charmap

import (
	"strings"

	"github.com/pkg/errors"
)

// Placeholder fills the positions a bitmap does not own when it is
// decoded on its own.
const Placeholder = '0'

// Bitmap records the positions of one character in a text.
//
// Bit i is set iff the i-th character of the text equals the tracked
// character. A Bitmap is immutable once built.
type Bitmap struct {
	bits      *BitVector
	character byte
}

// NewBitmap builds the position mask of character over text, one bit per
// rune. The character must be in the range 0-255.
func NewBitmap(text string, character rune) (*Bitmap, error) {
	if character < 0 || character > MaxCharacter {
		return nil, errors.Wrapf(ErrCharacterOutOfRange, "U+%04X", character)
	}

	runes := []rune(text)
	bits, _ := NewBitVector(len(runes))
	for i, r := range runes {
		if r == character {
			bits.SetBit(i, 1)
		}
	}
	return &Bitmap{bits: bits, character: byte(character)}, nil
}

// newBitmap builds the position mask of c over a slice of character codes.
func newBitmap(codes []byte, c byte) *Bitmap {
	bits, _ := NewBitVector(len(codes))
	for i, code := range codes {
		if code == c {
			bits.SetBit(i, 1)
		}
	}
	return &Bitmap{bits: bits, character: c}
}

// BitmapFromHex parses one bitmap unit: two hex digits of character code
// followed by the packed bitmap. expectedLength is the text length the
// unit was encoded for; it decides how the final group is trimmed.
func BitmapFromHex(fragment string, expectedLength int) (*Bitmap, error) {
	if len(fragment) < 3 {
		return nil, errors.Wrapf(ErrMalformedPayload, "bitmap fragment %q too short", fragment)
	}
	if expectedLength < 0 {
		return nil, errors.Wrapf(ErrMalformedPayload, "negative bitmap length %d", expectedLength)
	}

	character, err := hexByte(fragment[:2])
	if err != nil {
		return nil, errors.Wrap(err, "bitmap character")
	}
	bits, err := ExpandHex(fragment[2:])
	if err != nil {
		return nil, errors.Wrap(err, "bitmap payload")
	}

	// Every digit expanded to a full group, but the encoder packed the last
	// group with only expectedLength%4 bits.
	bb := NewBitBuffer(len(bits))
	remainder := expectedLength % 4
	switch {
	case remainder == 0:
		bb.AppendGroup(bits)
	case expectedLength < 4:
		bb.AppendGroup(Trim(bits, 4-remainder))
	default:
		last := len(bits) - 4
		bb.AppendGroup(bits[:last])
		bb.AppendGroup(Trim(bits[last:], 4-remainder))
	}

	return &Bitmap{bits: bb.BitVector(), character: character}, nil
}

// Character returns the tracked character.
func (b *Bitmap) Character() rune {
	return rune(b.character)
}

// Len returns the number of positions in the bitmap.
func (b *Bitmap) Len() int {
	return b.bits.Length()
}

// Bit returns 1 if the character occurs at position i, else 0.
func (b *Bitmap) Bit(i int) int {
	return b.bits.GetBit(i)
}

// Count returns the number of occurrences of the character.
func (b *Bitmap) Count() int {
	return b.bits.HammingWeight()
}

// Equal reports whether both bitmaps track the same character at the same
// positions.
func (b *Bitmap) Equal(other *Bitmap) bool {
	return b.character == other.character && b.bits.Equals(other.bits)
}

// ToHex packs the bitmap four bits per hex digit. The final group keeps
// only the bits that remain, so it is written as its literal value.
func (b *Bitmap) ToHex() string {
	br := NewBitReader(b.bits.ToBytes(), b.bits.Length())

	var sb strings.Builder
	sb.Grow((b.bits.Length() + 3) / 4)
	for br.Remaining() > 0 {
		v, _ := br.ReadBits(min(4, br.Remaining()))
		sb.WriteByte(hexDigits[v])
	}
	return sb.String()
}

// Encode returns the bitmap unit: the character code as two hex digits
// followed by ToHex.
func (b *Bitmap) Encode() string {
	return string([]byte{hexDigits[b.character>>4], hexDigits[b.character&0xF]}) + b.ToHex()
}

// Decode expands the bitmap into a string of Len characters holding the
// tracked character where its bit is set and Placeholder elsewhere.
func (b *Bitmap) Decode() string {
	var sb strings.Builder
	sb.Grow(b.Len())
	for i := 0; i < b.Len(); i++ {
		if b.Bit(i) == 1 {
			sb.WriteRune(b.Character())
		} else {
			sb.WriteByte(Placeholder)
		}
	}
	return sb.String()
}
