package charmap

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestUnitWidth(t *testing.T) {
	tests := map[int]int{0: 2, 1: 3, 4: 3, 5: 4, 11: 5, 15: 6, 16: 6, 17: 7}
	for length, expected := range tests {
		if got := UnitWidth(length); got != expected {
			t.Errorf("UnitWidth(%d): expected %d, got %d", length, expected, got)
		}
	}
}

func TestFormatHeader(t *testing.T) {
	tests := []struct {
		length   int
		expected string
	}{
		{0, "010"},
		{11, "01b"},
		{15, "01f"},
		{16, "0210"},
		{256, "03100"},
		{41773, "04a32d"},
	}
	for _, tc := range tests {
		if got := formatHeader(tc.length); got != tc.expected {
			t.Errorf("formatHeader(%d): expected %s, got %s", tc.length, tc.expected, got)
		}
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		frame   string
		length  int
		payload string
	}{
		{"04a32d62bbbbbbbb", 41773, "62bbbbbbbb"},
		{"010", 0, ""},
		{"01b2011061e00620e063007", 11, "2011061e00620e063007"},
		{"04A32D", 41773, ""},
	}
	for _, tc := range tests {
		length, payload, err := parseHeader(tc.frame)
		if err != nil {
			t.Errorf("parseHeader(%s) error: %v", tc.frame, err)
			continue
		}
		if length != tc.length || payload != tc.payload {
			t.Errorf("parseHeader(%s): expected (%d, %s), got (%d, %s)",
				tc.frame, tc.length, tc.payload, length, payload)
		}
	}
}

func TestParseHeaderSelfDescribing(t *testing.T) {
	for _, length := range []int{0, 1, 9, 15, 16, 255, 256, 4095, 4096, 1 << 20, 1<<30 + 7} {
		got, payload, err := parseHeader(formatHeader(length))
		if err != nil {
			t.Errorf("Length %d: parse error: %v", length, err)
			continue
		}
		if got != length || payload != "" {
			t.Errorf("Length %d: got (%d, %q)", length, got, payload)
		}
	}
}

func TestParseHeaderErrors(t *testing.T) {
	tests := []struct {
		name     string
		frame    string
		expected error
	}{
		{"empty", "", ErrMalformedHeader},
		{"one digit", "0", ErrMalformedHeader},
		{"short non-hex", "zz", ErrMalformedHeader},
		{"too short", "61", ErrMalformedPayload},
		{"header digits only", "ff", ErrMalformedPayload},
		{"non-hex length of length", "zz0", ErrMalformedHeader},
		{"zero length digits", "00abc", ErrMalformedHeader},
		{"truncated length", "05abc", ErrMalformedHeader},
		{"non-hex length", "02zz61", ErrMalformedHeader},
		{"signed length", "02-1", ErrMalformedHeader},
		{"overflow", "11" + strings.Repeat("f", 17), ErrMalformedHeader},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseHeader(tc.frame)
			if errors.Cause(err) != tc.expected {
				t.Errorf("parseHeader(%q): expected %v, got %v", tc.frame, tc.expected, err)
			}
		})
	}
}
