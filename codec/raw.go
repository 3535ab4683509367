package codec

// String stores Go strings as-is, with no structural encoding. Use it when the
// origin already returns a serialized document (HTML, pre-rendered JSON, etc.).
// Decode never fails; any byte sequence is a valid string.
type String struct{}

var _ Codec[string] = String{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }

// Bytes is an identity codec for []byte values.
type Bytes struct{}

var _ Codec[[]byte] = Bytes{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }

// Decode returns a copy so callers can keep the value after the backend reuses its buffer.
func (Bytes) Decode(b []byte) ([]byte, error) {
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
