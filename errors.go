package labelcell

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedToken is returned when a text token is not a number.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidFormat is returned when binary data does not start with the
	// cell magic or is truncated.
	ErrInvalidFormat = errors.New("invalid cell format")

	// ErrUnsupportedVersion is returned for binary data written by an unknown
	// format version.
	ErrUnsupportedVersion = errors.New("unsupported cell format version")

	// ErrChecksumMismatch is returned when binary data fails its CRC32-C check.
	ErrChecksumMismatch = errors.New("cell checksum mismatch")
)

// ErrLabelOutOfRange is returned by checked accessors for labels outside [0, N).
type ErrLabelOutOfRange struct {
	Label  Label
	Labels int
}

func (e *ErrLabelOutOfRange) Error() string {
	return fmt.Sprintf("label %d out of range [0, %d)", e.Label, e.Labels)
}

// ErrLabelCountMismatch indicates that encoded data declares a different label
// count than the cell type holds.
type ErrLabelCountMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLabelCountMismatch) Error() string {
	return fmt.Sprintf("label count mismatch: expected %d, got %d", e.Expected, e.Actual)
}
