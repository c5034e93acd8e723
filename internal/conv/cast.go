package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a value does not fit the target type.
var ErrOverflow = errors.New("integer overflow")

// Unsigned is the set of decoded on-disk widths.
type Unsigned interface {
	~uint16 | ~uint32 | ~uint64
}

// ToInt converts a decoded unsigned count or length to int.
func ToInt[T Unsigned](v T) (int, error) {
	if uint64(v) > math.MaxInt {
		return 0, fmt.Errorf("%w: %d does not fit int", ErrOverflow, uint64(v))
	}
	return int(v), nil
}

// ToUint32 converts a non-negative int to uint32.
func ToUint32(v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOverflow, v)
	}
	return uint32(v), nil
}

// ToUint64 converts a non-negative int to uint64.
func ToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrOverflow, v)
	}
	return uint64(v), nil
}
