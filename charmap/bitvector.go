package charmap

import "github.com/pkg/errors"

// BitVector is a fixed-length bit vector using 32-bit word storage.
//
// Bit Numbering:
//   - Bit 0 = MSB of word 0 (first text position)
//   - Bit N-1 = last text position
//
// Word Packing (Big-Endian):
//   - Word[i] holds bytes [4i, 4i+1, 4i+2, 4i+3] of ToBytes
//   - Byte 4i at bits 24-31 (most significant)
type BitVector struct {
	data   []uint32
	length int // Length in bits
}

// NewBitVector creates a zeroed bit vector with the specified length in
// bits. A zero length vector is valid and holds no bits.
func NewBitVector(numBits int) (*BitVector, error) {
	if numBits < 0 {
		return nil, errors.Errorf("numBits must not be negative, got %d", numBits)
	}
	return &BitVector{
		data:   make([]uint32, (numBits+31)/32),
		length: numBits,
	}, nil
}

// Length returns the length of the bit vector in bits.
func (bv *BitVector) Length() int {
	return bv.length
}

// GetBit returns the bit value at the specified position.
// Positions outside the vector read as 0.
func (bv *BitVector) GetBit(pos int) int {
	if pos < 0 || pos >= bv.length {
		return 0
	}
	return int((bv.data[pos/32] >> (31 - pos%32)) & 1)
}

// SetBit sets the bit value at the specified position.
// Positions outside the vector are ignored.
func (bv *BitVector) SetBit(pos int, value int) {
	if pos < 0 || pos >= bv.length {
		return
	}
	mask := uint32(1) << (31 - pos%32)
	if value != 0 {
		bv.data[pos/32] |= mask
	} else {
		bv.data[pos/32] &^= mask
	}
}

// FromBytes loads the bit vector from bytes (big-endian, MSB first).
// Bytes beyond the vector length are ignored.
func (bv *BitVector) FromBytes(data []byte) {
	for i := range bv.data {
		bv.data[i] = 0
	}
	for i, b := range data {
		wordIndex := i / 4
		if wordIndex >= len(bv.data) {
			break
		}
		bv.data[wordIndex] |= uint32(b) << ((3 - i%4) * 8)
	}
	bv.maskTail()
}

// ToBytes converts the bit vector to bytes (big-endian). The final byte is
// zero padded when the length is not a multiple of 8.
func (bv *BitVector) ToBytes() []byte {
	result := make([]byte, (bv.length+7)/8)
	for i := range result {
		result[i] = byte(bv.data[i/4] >> ((3 - i%4) * 8))
	}
	return result
}

// HammingWeight returns the number of 1 bits.
func (bv *BitVector) HammingWeight() int {
	count := 0
	for _, word := range bv.data {
		// Brian Kernighan's algorithm
		for word != 0 {
			word &= word - 1
			count++
		}
	}
	return count
}

// Equals checks if this bit vector equals another.
func (bv *BitVector) Equals(other *BitVector) bool {
	if bv.length != other.length {
		return false
	}
	for i := range bv.data {
		if bv.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// maskTail clears the unused low bits of the last word so that Equals and
// HammingWeight only see bits inside the vector.
func (bv *BitVector) maskTail() {
	if used := bv.length % 32; used != 0 {
		bv.data[len(bv.data)-1] &= ^uint32(0) << (32 - used)
	}
}
