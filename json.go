package labelcell

import (
	gojson "github.com/goccy/go-json"
)

// cellJSON is the JSON form of a cell. Like the other encodings it carries
// only the label distribution.
type cellJSON[W Weight] struct {
	Labels    int `json:"labels"`
	Histogram []W `json:"histogram"`
}

// MarshalJSON implements json.Marshaler.
func (c Cell[W, H]) MarshalJSON() ([]byte, error) {
	v := cellJSON[W]{
		Labels:    len(c.histogram),
		Histogram: make([]W, len(c.histogram)),
	}
	for i := 0; i < len(c.histogram); i++ {
		v.Histogram[i] = c.histogram[i]
	}
	return gojson.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler.
//
// The histogram array must hold exactly Len() weights; the labels field is
// informational. The hidden counter is left untouched.
func (c *Cell[W, H]) UnmarshalJSON(data []byte) error {
	var v cellJSON[W]
	if err := gojson.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v.Histogram) != len(c.histogram) {
		return &ErrLabelCountMismatch{Expected: len(c.histogram), Actual: len(v.Histogram)}
	}
	for i := range v.Histogram {
		c.histogram[i] = v.Histogram[i]
	}
	return nil
}
