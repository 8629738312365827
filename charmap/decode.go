package charmap

// Decode decodes a frame produced by Encode.
func Decode(frame string) (string, error) {
	dec, err := NewDecoder(frame)
	if err != nil {
		return "", err
	}
	return dec.Decode()
}

// DecodeBytes decodes a frame produced by EncodeBytes.
func DecodeBytes(frame string) ([]byte, error) {
	dec, err := NewDecoder(frame)
	if err != nil {
		return nil, err
	}
	return dec.DecodeBytes()
}
