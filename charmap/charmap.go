package charmap

import "github.com/pkg/errors"

// Version is the library version.
const Version = "1.0.0"

// MaxCharacter is the largest character code a frame can carry.
const MaxCharacter = 0xFF

var (
	// ErrMalformedHeader is returned when the frame header cannot be parsed.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrMalformedPayload is returned when the bitmap payload does not
	// split into whole units, or a unit is too short to hold a bitmap.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrInvalidHexDigit is returned when a character outside 0-9a-fA-F
	// appears where a hex digit is required.
	ErrInvalidHexDigit = errors.New("invalid hex digit")

	// ErrCharacterOutOfRange is returned when a character code does not
	// fit in one byte.
	ErrCharacterOutOfRange = errors.New("character out of range")
)
