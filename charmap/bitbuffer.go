package charmap

// BitBuffer is a variable-length bit buffer used to assemble a bitmap
// while its hex digits are being expanded.
//
// Bits are appended sequentially using MSB-first ordering:
//   - First bit appended goes to bit position 7
//   - Second bit goes to position 6, etc.
type BitBuffer struct {
	data    []byte
	numBits int
}

// NewBitBuffer creates a new empty bit buffer with room for sizeHint bits.
func NewBitBuffer(sizeHint int) *BitBuffer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &BitBuffer{
		data: make([]byte, 0, (sizeHint+7)/8),
	}
}

// NumBits returns the number of bits in the buffer.
func (bb *BitBuffer) NumBits() int {
	return bb.numBits
}

// AppendBit appends a single bit to the buffer.
func (bb *BitBuffer) AppendBit(bit int) {
	byteIndex := bb.numBits / 8
	if byteIndex >= len(bb.data) {
		bb.data = append(bb.data, 0)
	}
	if bit != 0 {
		bb.data[byteIndex] |= 1 << (7 - bb.numBits%8)
	}
	bb.numBits++
}

// AppendGroup appends a slice of 0/1 values in order.
func (bb *BitBuffer) AppendGroup(group []uint8) {
	for _, bit := range group {
		bb.AppendBit(int(bit))
	}
}

// ToBytes converts buffer contents to bytes.
func (bb *BitBuffer) ToBytes() []byte {
	result := make([]byte, len(bb.data))
	copy(result, bb.data)
	return result
}

// BitVector copies the buffer into a bit vector of exactly NumBits bits.
func (bb *BitBuffer) BitVector() *BitVector {
	bv, _ := NewBitVector(bb.NumBits())
	bv.FromBytes(bb.ToBytes())
	return bv
}
