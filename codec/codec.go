// Package codec centralizes cell encoding.
//
// Snapshots record the codec name in their header, so codec selection is a
// breaking-change boundary: bytes written with one codec only decode with the
// same codec.
package codec

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is returned when a value does not implement the
// interface a codec relies on.
var ErrUnsupportedType = errors.New("codec: unsupported type")

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "text":
		return Text{}, true
	case "binary":
		return Binary{}, true
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Names lists the built-in codec names.
func Names() []string {
	return []string{"text", "binary", "json", "go-json"}
}

// Default is the codec used by new snapshots.
var Default Codec = Binary{}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

func unsupported(c Codec, v any, want string) error {
	return fmt.Errorf("%w: %s codec needs %s, got %T", ErrUnsupportedType, c.Name(), want, v)
}
