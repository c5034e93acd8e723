package labelcell

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/labelcell/internal/hash"
)

// Binary layout (little endian):
//
//	magic   [2]byte "LH"
//	version uint8
//	kind    uint8   0 float, 1 signed, 2 unsigned
//	count   uint32
//	weights count x 8 bytes (float64 bits, int64 or uint64)
//	crc     uint32  CRC32-C of everything before it
const (
	binaryVersion    = 1
	binaryHeaderSize = 8
	binaryCRCSize    = 4
)

var binaryMagic = [2]byte{'L', 'H'}

// BinarySize returns the encoded size of a cell with n labels.
func BinarySize(n int) int {
	return binaryHeaderSize + 8*n + binaryCRCSize
}

// AppendBinary appends the versioned binary form of the cell to b.
// The hidden counter is not encoded.
func (c Cell[W, H]) AppendBinary(b []byte) ([]byte, error) {
	start := len(b)
	kind := kindOf[W]()

	b = append(b, binaryMagic[0], binaryMagic[1], binaryVersion, byte(kind))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(c.histogram)))
	for i := 0; i < len(c.histogram); i++ {
		var bits uint64
		switch kind {
		case kindSigned:
			bits = uint64(int64(c.histogram[i]))
		case kindUnsigned:
			bits = uint64(c.histogram[i])
		default:
			bits = math.Float64bits(float64(c.histogram[i]))
		}
		b = binary.LittleEndian.AppendUint64(b, bits)
	}
	return binary.LittleEndian.AppendUint32(b, hash.CRC32C(b[start:])), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c Cell[W, H]) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, BinarySize(len(c.histogram))))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Unlike the text form, the label count is validated. Weights stored with a
// different numeric kind are converted to W. The hidden counter is left
// untouched.
func (c *Cell[W, H]) UnmarshalBinary(data []byte) error {
	if len(data) < binaryHeaderSize+binaryCRCSize {
		return fmt.Errorf("%w: %d bytes", ErrInvalidFormat, len(data))
	}
	if data[0] != binaryMagic[0] || data[1] != binaryMagic[1] {
		return fmt.Errorf("%w: bad magic", ErrInvalidFormat)
	}
	if data[2] != binaryVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[2])
	}

	kind := weightKind(data[3])
	if kind > kindUnsigned {
		return fmt.Errorf("%w: weight kind %d", ErrInvalidFormat, kind)
	}

	count := binary.LittleEndian.Uint32(data[4:])
	if n := len(c.histogram); uint64(count) != uint64(n) {
		return &ErrLabelCountMismatch{Expected: n, Actual: int(count)}
	}
	if len(data) != BinarySize(len(c.histogram)) {
		return fmt.Errorf("%w: %d bytes for %d labels", ErrInvalidFormat, len(data), count)
	}

	body := data[:len(data)-binaryCRCSize]
	if hash.CRC32C(body) != binary.LittleEndian.Uint32(data[len(body):]) {
		return ErrChecksumMismatch
	}

	off := binaryHeaderSize
	for i := 0; i < len(c.histogram); i++ {
		bits := binary.LittleEndian.Uint64(data[off:])
		off += 8
		switch kind {
		case kindSigned:
			c.histogram[i] = W(int64(bits))
		case kindUnsigned:
			c.histogram[i] = W(bits)
		default:
			c.histogram[i] = W(math.Float64frombits(bits))
		}
	}
	return nil
}
