package charmap

// Encode encodes text into a frame. Each rune is one character and must
// be in the range U+0000 to U+00FF.
func Encode(text string) (string, error) {
	enc, err := NewEncoder(text)
	if err != nil {
		return "", err
	}
	return enc.Encode(), nil
}

// EncodeBytes encodes data into a frame, one character per byte.
func EncodeBytes(data []byte) string {
	return NewEncoderBytes(data).Encode()
}
