package charmap

import "github.com/pkg/errors"

const hexDigits = "0123456789abcdef"

// nibbleGroups maps a nibble value to its 4-bit group, MSB first.
var nibbleGroups = [16][4]uint8{
	{0, 0, 0, 0}, {0, 0, 0, 1}, {0, 0, 1, 0}, {0, 0, 1, 1},
	{0, 1, 0, 0}, {0, 1, 0, 1}, {0, 1, 1, 0}, {0, 1, 1, 1},
	{1, 0, 0, 0}, {1, 0, 0, 1}, {1, 0, 1, 0}, {1, 0, 1, 1},
	{1, 1, 0, 0}, {1, 1, 0, 1}, {1, 1, 1, 0}, {1, 1, 1, 1},
}

// hexNibble returns the value of a single hex digit. Both cases are
// accepted.
func hexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, errors.Wrapf(ErrInvalidHexDigit, "%q", c)
}

// hexByte parses exactly two hex digits.
func hexByte(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, errors.Errorf("need 2 hex digits, got %d", len(s))
	}
	hi, err := hexNibble(s[0])
	if err != nil {
		return 0, err
	}
	lo, err := hexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}

// ExpandHex expands every digit of s into its 4-bit group and returns the
// concatenation, 4*len(s) bits long.
func ExpandHex(s string) ([]uint8, error) {
	bits := make([]uint8, 0, 4*len(s))
	for i := 0; i < len(s); i++ {
		v, err := hexNibble(s[i])
		if err != nil {
			return nil, errors.Wrapf(err, "digit %d", i)
		}
		bits = append(bits, nibbleGroups[v][:]...)
	}
	return bits, nil
}

// Trim removes up to n padding bits from the reconstructed final group of
// a bitmap. A group that starts with 0 loses up to n bits of its leading
// zero run; any other group loses up to n bits of its trailing zero run.
func Trim(bits []uint8, n int) []uint8 {
	if n <= 0 || len(bits) == 0 {
		return bits
	}
	if bits[0] == 0 {
		return bits[min(n, zeroRun(bits, true)):]
	}
	return bits[:len(bits)-min(n, zeroRun(bits, false))]
}

// zeroRun returns the length of the zero run at the front (or back) of bits.
func zeroRun(bits []uint8, front bool) int {
	run := 0
	for i := range bits {
		j := i
		if !front {
			j = len(bits) - 1 - i
		}
		if bits[j] != 0 {
			break
		}
		run++
	}
	return run
}
