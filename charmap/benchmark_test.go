package charmap

import (
	"strings"
	"testing"
)

func benchmarkText() string {
	return strings.Repeat(loremIpsum(), 64)
}

func BenchmarkEncodeLorem(b *testing.B) {
	input := benchmarkText()

	b.ResetTimer()
	b.SetBytes(int64(len(input)))

	for i := 0; i < b.N; i++ {
		if _, err := Encode(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeLorem(b *testing.B) {
	input := benchmarkText()
	frame, err := Encode(input)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.SetBytes(int64(len(input)))

	for i := 0; i < b.N; i++ {
		if _, err := Decode(frame); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSealCompressed(b *testing.B) {
	frame, err := Encode(benchmarkText())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.SetBytes(int64(len(frame)))

	for i := 0; i < b.N; i++ {
		if _, err := Seal(frame, true); err != nil {
			b.Fatal(err)
		}
	}
}
