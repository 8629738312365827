package charmap

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewBitReader(t *testing.T) {
	br := NewBitReader([]byte{0xAB, 0xCD}, 16)
	if br.Remaining() != 16 {
		t.Errorf("Expected 16 bits, got %d", br.Remaining())
	}

	br = NewBitReader([]byte{0xFF, 0xFF}, 12)
	if br.Remaining() != 12 {
		t.Errorf("Expected 12 bits, got %d", br.Remaining())
	}

	// Clamped to the available data
	br = NewBitReader([]byte{0xFF}, 100)
	if br.Remaining() != 8 {
		t.Errorf("Expected 8 bits, got %d", br.Remaining())
	}
}

func TestBitReaderReadBit(t *testing.T) {
	// 0xAA = 10101010
	br := NewBitReader([]byte{0xAA}, 8)

	expected := []int{1, 0, 1, 0, 1, 0, 1, 0}
	for i, exp := range expected {
		bit, err := br.ReadBit()
		if err != nil {
			t.Errorf("ReadBit %d error: %v", i, err)
		}
		if bit != exp {
			t.Errorf("Bit %d: expected %d, got %d", i, exp, bit)
		}
	}

	if _, err := br.ReadBit(); errors.Cause(err) != ErrEOF {
		t.Errorf("Expected ErrEOF, got %v", err)
	}
}

func TestBitReaderReadBits(t *testing.T) {
	// 1001 0111 0001 111(1), read as 4+4+4+3 groups
	br := NewBitReader([]byte{0x97, 0x1F}, 15)

	for _, tc := range []struct {
		n        int
		expected uint64
	}{{4, 0x9}, {4, 0x7}, {4, 0x1}, {3, 0x7}} {
		v, err := br.ReadBits(tc.n)
		if err != nil {
			t.Fatalf("ReadBits(%d) error: %v", tc.n, err)
		}
		if v != tc.expected {
			t.Errorf("ReadBits(%d): expected %d, got %d", tc.n, tc.expected, v)
		}
	}
	if br.Remaining() != 0 {
		t.Errorf("Expected 0 remaining, got %d", br.Remaining())
	}

	// Zero bits is a no-op
	if v, err := br.ReadBits(0); err != nil || v != 0 {
		t.Errorf("ReadBits(0): expected 0, got %d (%v)", v, err)
	}
}

func TestBitReaderReadBitsErrors(t *testing.T) {
	br := NewBitReader([]byte{0xFF}, 8)
	if _, err := br.ReadBits(9); err == nil {
		t.Error("Expected error reading past the end")
	}
	if _, err := br.ReadBits(65); err == nil {
		t.Error("Expected error reading more than 64 bits")
	}
	// Failed reads do not consume anything
	if br.Remaining() != 8 {
		t.Errorf("Expected 8 remaining, got %d", br.Remaining())
	}
}
