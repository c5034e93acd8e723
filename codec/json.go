package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Cells encode as {"labels":N,"histogram":[...]}. Use it when snapshots must
// be readable by tools outside Go; it is larger and slower than Binary.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
