// Package codec turns cache values into the bytes a backend stores and back.
//
// A Codec must round-trip: Decode(Encode(v)) yields a value equal to v for every
// shape the codec supports. Decode must return an error on malformed input rather
// than a partially filled value; the cache treats such errors as a miss.
package codec

import "errors"

var (
	// ErrEncode wraps failures returned by Encode.
	ErrEncode = errors.New("codec: encode failed")
	// ErrDecode wraps failures returned by Decode.
	ErrDecode = errors.New("codec: decode failed")
)

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

func encodeErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrEncode, err)
}

func decodeErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrDecode, err)
}
