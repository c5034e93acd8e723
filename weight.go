package labelcell

import (
	"fmt"
	"strconv"
)

// weightKind is the numeric family of a Weight type.
type weightKind uint8

const (
	kindFloat weightKind = iota
	kindSigned
	kindUnsigned
)

func kindOf[W Weight]() weightKind {
	one := W(1)
	if one/2 != 0 {
		return kindFloat
	}
	var zero W
	if zero-1 > zero {
		return kindUnsigned
	}
	return kindSigned
}

// appendWeight formats w so that float64 values round trip exactly
// (17 significant digits). Integer weights are printed verbatim.
func appendWeight[W Weight](dst []byte, w W) []byte {
	switch kindOf[W]() {
	case kindSigned:
		return strconv.AppendInt(dst, int64(w), 10)
	case kindUnsigned:
		return strconv.AppendUint(dst, uint64(w), 10)
	default:
		return strconv.AppendFloat(dst, float64(w), 'g', 17, 64)
	}
}

// parseWeight reads a numeric token as float64 and narrows it to W. Integer
// weights accept integer tokens exactly before falling back to float parsing.
func parseWeight[W Weight](tok string) (W, error) {
	switch kindOf[W]() {
	case kindSigned:
		if v, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return W(v), nil
		}
	case kindUnsigned:
		if v, err := strconv.ParseUint(tok, 10, 64); err == nil {
			return W(v), nil
		}
	}

	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
	return W(f), nil
}
