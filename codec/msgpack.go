package codec

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack serializes values with vmihailenco/msgpack/v5. The zero value is ready to use.
// Struct fields follow `msgpack:"name"` tags, not `json` tags.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	b, err := msgpack.Marshal(v)
	return b, encodeErr(err)
}

// Decode rejects input with bytes left over after the first value.
func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v, zero V
	r := bytes.NewReader(b)
	if err := msgpack.NewDecoder(r).Decode(&v); err != nil {
		return zero, decodeErr(err)
	}
	if r.Len() != 0 {
		return zero, decodeErr(fmt.Errorf("msgpack: %d trailing bytes", r.Len()))
	}
	return v, nil
}
