package labelcell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryRoundTrip(t *testing.T) {
	src := FromWeights[float64]([4]float64{0.1, math.Inf(1), -0.0, 1e300})
	src.Observe(1, 2)

	data, err := src.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, BinarySize(4))

	var dst Cell[float64, [4]float64]
	require.NoError(t, dst.UnmarshalBinary(data))

	want, got := src.Histogram(), dst.Histogram()
	for i := range want {
		assert.Equal(t, math.Float64bits(want[i]), math.Float64bits(got[i]), "label %d", i)
	}
	assert.Zero(t, dst.HiddenCounter())
}

func TestBinaryIntegerRoundTrip(t *testing.T) {
	src := FromWeights[int64]([3]int64{math.MinInt64, 1<<53 + 1, 0})
	data, err := src.MarshalBinary()
	require.NoError(t, err)

	var dst Cell[int64, [3]int64]
	require.NoError(t, dst.UnmarshalBinary(data))
	assert.Equal(t, src.Histogram(), dst.Histogram())

	u := FromWeights[uint64]([2]uint64{math.MaxUint64, 7})
	data, err = u.MarshalBinary()
	require.NoError(t, err)

	var ud Cell[uint64, [2]uint64]
	require.NoError(t, ud.UnmarshalBinary(data))
	assert.Equal(t, u.Histogram(), ud.Histogram())
}

func TestBinaryConvertsWeightKind(t *testing.T) {
	src := FromWeights[int32]([3]int32{1, -2, 3})
	data, err := src.MarshalBinary()
	require.NoError(t, err)

	var dst Cell[float64, [3]float64]
	require.NoError(t, dst.UnmarshalBinary(data))

	assert.Equal(t, [3]float64{1, -2, 3}, dst.Histogram())
}

func TestBinaryKeepsHiddenCounter(t *testing.T) {
	data, err := FromWeights[float32]([2]float32{1, 2}).MarshalBinary()
	require.NoError(t, err)

	dst := NewObservation[float32, [2]float32](0, 5)
	require.NoError(t, dst.UnmarshalBinary(data))

	assert.Equal(t, [2]float32{1, 2}, dst.Histogram())
	assert.Equal(t, float32(5), dst.HiddenCounter())
}

func TestAppendBinary(t *testing.T) {
	c := FromWeights[uint8]([2]uint8{1, 2})

	out, err := c.AppendBinary([]byte{0xAA})
	require.NoError(t, err)
	require.Len(t, out, 1+BinarySize(2))
	assert.Equal(t, byte(0xAA), out[0])

	var dst Cell[uint8, [2]uint8]
	require.NoError(t, dst.UnmarshalBinary(out[1:]))
	assert.Equal(t, c.Histogram(), dst.Histogram())
}

func TestBinaryErrors(t *testing.T) {
	valid, err := FromWeights[float64]([3]float64{1, 2, 3}).MarshalBinary()
	require.NoError(t, err)

	mutate := func(fn func([]byte)) []byte {
		b := append([]byte(nil), valid...)
		fn(b)
		return b
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrInvalidFormat},
		{"short", valid[:5], ErrInvalidFormat},
		{"bad magic", mutate(func(b []byte) { b[0] = 'X' }), ErrInvalidFormat},
		{"version", mutate(func(b []byte) { b[2] = 9 }), ErrUnsupportedVersion},
		{"weight kind", mutate(func(b []byte) { b[3] = 7 }), ErrInvalidFormat},
		{"truncated", valid[:len(valid)-1], ErrInvalidFormat},
		{"checksum", mutate(func(b []byte) { b[12] ^= 0x01 }), ErrChecksumMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cell[float64, [3]float64]
			assert.ErrorIs(t, c.UnmarshalBinary(tt.data), tt.want)
			assert.Equal(t, [3]float64{}, c.Histogram())
		})
	}
}

func TestBinaryLabelCountMismatch(t *testing.T) {
	data, err := FromWeights[float64]([3]float64{1, 2, 3}).MarshalBinary()
	require.NoError(t, err)

	var c Cell[float64, [4]float64]
	err = c.UnmarshalBinary(data)

	var mismatch *ErrLabelCountMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 4, mismatch.Expected)
	assert.Equal(t, 3, mismatch.Actual)
}
