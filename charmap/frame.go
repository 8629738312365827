package charmap

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// minFrameLen is the length of the shortest valid frame ("010", an empty
// text with no units).
const minFrameLen = 3

// UnitWidth returns the width in hex digits of one bitmap unit for a text
// of length characters: two digits of character code plus one digit per
// started group of four positions.
func UnitWidth(length int) int {
	return (length+3)/4 + 2
}

// formatHeader returns the frame header for a text of length characters.
func formatHeader(length int) string {
	dataLength := strconv.FormatInt(int64(length), 16)
	return fmt.Sprintf("%02x", len(dataLength)) + dataLength
}

// parseHeader splits a frame into the text length and the unit payload.
func parseHeader(frame string) (int, string, error) {
	if len(frame) < minFrameLen {
		// Two readable header digits and nothing else is a frame without
		// a body; anything shorter is a broken header.
		if _, err := hexByte(frame); err == nil {
			return 0, "", errors.Wrapf(ErrMalformedPayload, "frame %q too short", frame)
		}
		return 0, "", errors.Wrapf(ErrMalformedHeader, "frame %q too short", frame)
	}

	lengthDigits, err := parseHexInt(frame[:2])
	if err != nil {
		return 0, "", errors.Wrap(err, "length of data length")
	}
	if lengthDigits == 0 {
		return 0, "", errors.Wrap(ErrMalformedHeader, "data length has no digits")
	}
	end := 2 + lengthDigits
	if len(frame) < end {
		return 0, "", errors.Wrapf(ErrMalformedHeader,
			"truncated: need %d data length digits, have %d", lengthDigits, len(frame)-2)
	}

	length, err := parseHexInt(frame[2:end])
	if err != nil {
		return 0, "", errors.Wrap(err, "data length")
	}
	if length > math.MaxInt-3 {
		return 0, "", errors.Wrapf(ErrMalformedHeader, "data length %s too large", frame[2:end])
	}
	return length, frame[end:], nil
}

// parseHexInt parses an unsigned hex number into a non-negative int.
func parseHexInt(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		v, err := hexNibble(s[i])
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedHeader, "%q: %v", s, err)
		}
		if n > (math.MaxInt-int(v))/16 {
			return 0, errors.Wrapf(ErrMalformedHeader, "%q overflows", s)
		}
		n = n*16 + int(v)
	}
	return n, nil
}
