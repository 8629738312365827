// Package charmap implements a reversible text codec built from
// per-character position bitmaps.
//
// Every distinct character of the input gets a bitmap with one bit per
// text position. Each bitmap is packed into hex nibbles and prefixed with
// the character code; the units are emitted in ascending character order
// behind a length-prefixed header:
//
//	<LL:2 hex><length: LL hex digits><unit>*
//	unit = <code:2 hex digits><bitmap: ceil(length/4) hex digits>
//
// The output is not a compressor: frames are usually larger than the text.
//
// Basic usage:
//
//	// Encode text
//	frame, err := charmap.Encode("aaa bbb ccc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Decode it again
//	text, err := charmap.Decode(frame)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Only characters with codes 0-255 can be represented. The string API
// treats each rune as a character; EncodeBytes and DecodeBytes treat each
// byte as a character so arbitrary binary data round-trips.
package charmap
