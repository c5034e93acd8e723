package codec

import "encoding"

// Binary encodes values through encoding.BinaryMarshaler.
//
// For cells this is the versioned, checksummed layout with a validated label
// count. It is the default codec.
type Binary struct{}

// Marshal encodes v, which must implement encoding.BinaryMarshaler.
func (c Binary) Marshal(v any) ([]byte, error) {
	m, ok := v.(encoding.BinaryMarshaler)
	if !ok {
		return nil, unsupported(c, v, "encoding.BinaryMarshaler")
	}
	return m.MarshalBinary()
}

// Unmarshal decodes data into v, which must implement
// encoding.BinaryUnmarshaler.
func (c Binary) Unmarshal(data []byte, v any) error {
	u, ok := v.(encoding.BinaryUnmarshaler)
	if !ok {
		return unsupported(c, v, "encoding.BinaryUnmarshaler")
	}
	return u.UnmarshalBinary(data)
}

// Name returns the unique name of the codec ("binary").
func (Binary) Name() string { return "binary" }
