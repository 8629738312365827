package charmap

import "github.com/pkg/errors"

// ErrEOF is returned when reading past the end of available data.
var ErrEOF = errors.New("no more bits to read")

// BitReader provides sequential bit-level reading from bytes.
//
// Bits are read MSB-first within each byte (matching BitBuffer and
// BitVector.ToBytes output).
type BitReader struct {
	data      []byte
	totalBits int
	position  int
}

// NewBitReader creates a new bit reader over the first numBits bits of
// data. numBits is clamped to the bits actually available.
func NewBitReader(data []byte, numBits int) *BitReader {
	if maxBits := len(data) * 8; numBits > maxBits {
		numBits = maxBits
	}
	return &BitReader{
		data:      data,
		totalBits: numBits,
	}
}

// Remaining returns the number of bits remaining to read.
func (br *BitReader) Remaining() int {
	return br.totalBits - br.position
}

// ReadBit reads and consumes a single bit.
func (br *BitReader) ReadBit() (int, error) {
	if br.position >= br.totalBits {
		return 0, ErrEOF
	}
	bit := (br.data[br.position/8] >> (7 - br.position%8)) & 1
	br.position++
	return int(bit), nil
}

// ReadBits reads and consumes numBits bits as an unsigned integer,
// MSB first.
func (br *BitReader) ReadBits(numBits int) (uint64, error) {
	if numBits > 64 {
		return 0, errors.New("cannot read more than 64 bits at once")
	}
	if numBits > br.Remaining() {
		return 0, errors.Errorf("not enough bits: need %d, have %d", numBits, br.Remaining())
	}

	var result uint64
	for i := 0; i < numBits; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		result = (result << 1) | uint64(bit)
	}
	return result, nil
}
