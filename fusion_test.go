package labelcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// a = [1,2,3] with counter 6, b = [1,0,0] with counter 1.
func mergeOperands() (Cell[int, [3]int], Cell[int, [3]int]) {
	var a Cell[int, [3]int]
	a.Observe(0, 1)
	a.Observe(1, 2)
	a.Observe(2, 3)
	b := NewObservation[int, [3]int](0, 1)
	return a, b
}

func TestMergePerLabelCounter(t *testing.T) {
	a, b := mergeOperands()
	assert.Equal(t, 6, a.HiddenCounter())

	c := a.MergeWith(b, CounterPerLabel)

	assert.Equal(t, [3]int{2, 2, 3}, c.Histogram())
	// 6 + 3*1: the counter is applied once per label
	assert.Equal(t, 9, c.HiddenCounter())
}

func TestMergeOnceCounter(t *testing.T) {
	a, b := mergeOperands()

	c := a.Merge(b)

	assert.Equal(t, [3]int{2, 2, 3}, c.Histogram())
	assert.Equal(t, 7, c.HiddenCounter())
	assert.Equal(t, c, a.MergeWith(b, CounterOnce))
}

func TestMergeDoesNotMutateOperands(t *testing.T) {
	a, b := mergeOperands()
	a0, b0 := a, b

	_ = a.MergeWith(b, CounterPerLabel)
	_ = a.RetractWith(b, CounterPerLabel)

	assert.Equal(t, a0, a)
	assert.Equal(t, b0, b)
}

func TestMergePerLabelIsNotCommutative(t *testing.T) {
	a, b := mergeOperands()

	ab := a.MergeWith(b, CounterPerLabel)
	ba := b.MergeWith(a, CounterPerLabel)

	assert.Equal(t, ab.Histogram(), ba.Histogram())
	assert.Equal(t, 9, ab.HiddenCounter())
	assert.Equal(t, 1+3*6, ba.HiddenCounter())

	assert.Equal(t, a.Merge(b), b.Merge(a))
}

func TestRetractInvertsMergeWithoutUnderflow(t *testing.T) {
	a, b := mergeOperands()

	t.Run("per-label", func(t *testing.T) {
		c := a.MergeWith(b, CounterPerLabel)
		r := c.RetractWith(b, CounterPerLabel)
		assert.Equal(t, a, r)
	})

	t.Run("once", func(t *testing.T) {
		c := a.Merge(b)
		r := c.Retract(b)
		assert.Equal(t, a, r)
	})
}

func TestRetractUnderflowResetsCounter(t *testing.T) {
	a, _ := mergeOperands()
	// c = [2,2,3] with counter 9, b = [3,0,0] with counter 3
	c := a.MergeWith(NewObservation[int, [3]int](0, 1), CounterPerLabel)
	b := NewObservation[int, [3]int](0, 3)

	for _, policy := range []CounterPolicy{CounterPerLabel, CounterOnce} {
		t.Run(policy.String(), func(t *testing.T) {
			r := c.RetractWith(b, policy)
			assert.Equal(t, [3]int{0, 2, 3}, r.Histogram())
			assert.Zero(t, r.HiddenCounter())
		})
	}
}

func TestRetractEqualWeightClamps(t *testing.T) {
	c := FromWeights[float64]([2]float64{2, 5})
	b := FromWeights[float64]([2]float64{2, 1})

	r := c.Retract(b)

	assert.Equal(t, [2]float64{0, 4}, r.Histogram())
}

func TestRetractUnderflowOnLastLabelWipesEarlierDecrements(t *testing.T) {
	var a Cell[float64, [3]float64]
	a.Observe(0, 5)
	a.Observe(1, 5)
	a.Observe(2, 1) // [5,5,1], 11
	var b Cell[float64, [3]float64]
	b.Observe(0, 1)
	b.Observe(1, 1)
	b.Observe(2, 1) // [1,1,1], 3

	r := a.RetractWith(b, CounterPerLabel)

	assert.Equal(t, [3]float64{4, 4, 0}, r.Histogram())
	assert.Zero(t, r.HiddenCounter())
}

func TestRetractCounterSaturates(t *testing.T) {
	a := NewObservation[uint8, [2]uint8](0, 5)
	a.Observe(1, 5) // [5,5], 10
	b := FromWeights[uint8]([2]uint8{1, 1})
	b = b.Merge(NewObservation[uint8, [2]uint8](NoLabel, 4)) // [1,1], 4

	t.Run("per-label", func(t *testing.T) {
		r := a.RetractWith(b, CounterPerLabel)
		assert.Equal(t, [2]uint8{4, 4}, r.Histogram())
		assert.Equal(t, uint8(2), r.HiddenCounter())

		r = r.RetractWith(b, CounterPerLabel)
		assert.Equal(t, [2]uint8{3, 3}, r.Histogram())
		assert.Zero(t, r.HiddenCounter())
	})

	t.Run("once", func(t *testing.T) {
		r := a.Retract(b).Retract(b).Retract(b)
		assert.Equal(t, [2]uint8{2, 2}, r.Histogram())
		assert.Zero(t, r.HiddenCounter())
	})
}

func TestRetractPerLabelCounterGoesNegative(t *testing.T) {
	a := FromWeights[float64]([2]float64{5, 5})
	a.Observe(NoLabel, 1) // [5,5], 1
	b := FromWeights[float64]([2]float64{1, 1})
	b.Observe(NoLabel, 3) // [1,1], 3

	r := a.RetractWith(b, CounterPerLabel)
	assert.Equal(t, [2]float64{4, 4}, r.Histogram())
	assert.Equal(t, -5.0, r.HiddenCounter())

	bi := FromWeights[int16]([2]int16{1, 1})
	bi.Observe(NoLabel, 3)
	ri := FromWeights[int16]([2]int16{5, 5}).RetractWith(bi, CounterPerLabel)
	assert.Equal(t, int16(-6), ri.HiddenCounter())

	once := a.Retract(b)
	assert.Zero(t, once.HiddenCounter())
}

func TestCounterPolicyString(t *testing.T) {
	assert.Equal(t, "once", CounterOnce.String())
	assert.Equal(t, "per-label", CounterPerLabel.String())
	assert.Equal(t, "CounterPolicy(7)", CounterPolicy(7).String())
}
