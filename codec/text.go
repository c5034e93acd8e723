package codec

import "encoding"

// Text encodes values through encoding.TextMarshaler.
//
// For cells this is the "<N> <w0> ... <wN-1>" form understood by older map
// tooling. Decoding is lenient about the count token.
type Text struct{}

// Marshal encodes v, which must implement encoding.TextMarshaler.
func (c Text) Marshal(v any) ([]byte, error) {
	m, ok := v.(encoding.TextMarshaler)
	if !ok {
		return nil, unsupported(c, v, "encoding.TextMarshaler")
	}
	return m.MarshalText()
}

// Unmarshal decodes data into v, which must implement encoding.TextUnmarshaler.
func (c Text) Unmarshal(data []byte, v any) error {
	u, ok := v.(encoding.TextUnmarshaler)
	if !ok {
		return unsupported(c, v, "encoding.TextUnmarshaler")
	}
	return u.UnmarshalText(data)
}

// Name returns the unique name of the codec ("text").
func (Text) Name() string { return "text" }
