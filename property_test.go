package labelcell_test

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/labelcell"
	"github.com/hupe1980/labelcell/testutil"
)

type cell21 = labelcell.Cell[float64, [21]float64]

func TestAccumulateMatchesTally(t *testing.T) {
	rng := testutil.NewRNG(42)
	obs := rng.SkewedObservations(5000, 21, 1.2, 1)

	c := testutil.Accumulate[float64, [21]float64](obs)
	h := c.Histogram()

	if diff := cmp.Diff(testutil.Tally(obs, 21), h[:], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("histogram mismatch (-want +got):\n%s", diff)
	}

	var mass float64
	for _, o := range obs {
		mass += o.Weight
	}
	assert.InDelta(t, mass, c.HiddenCounter(), 1e-9)
}

func TestHeavierLabelAgreesWithHeavierWeight(t *testing.T) {
	rng := testutil.NewRNG(7)

	for i := 0; i < 200; i++ {
		c := testutil.RandomCell[float64, [21]float64](rng, 10)

		label := c.HeavierLabel()
		if label == labelcell.NoLabel {
			assert.Zero(t, c.HeavierWeight())
			continue
		}
		assert.Equal(t, c.HeavierWeight(), c.WeightOf(label))
		for l := labelcell.Label(0); l < label; l++ {
			assert.Less(t, c.WeightOf(l), c.HeavierWeight())
		}
	}
}

func TestMergeIsCommutativeInHistogram(t *testing.T) {
	rng := testutil.NewRNG(11)

	for i := 0; i < 100; i++ {
		a := testutil.RandomCell[float64, [21]float64](rng, 5)
		b := testutil.RandomCell[float64, [21]float64](rng, 5)
		a.Observe(labelcell.Label(rng.Intn(21)), 1)
		b.Observe(labelcell.Label(rng.Intn(21)), 2)

		ab, ba := a.Merge(b), b.Merge(a)
		assert.Equal(t, ab.Histogram(), ba.Histogram())
		assert.Equal(t, ab.HiddenCounter(), ba.HiddenCounter())
	}
}

func TestMergeThenRetractPositiveCells(t *testing.T) {
	rng := testutil.NewRNG(13)

	for i := 0; i < 100; i++ {
		var a, b labelcell.Cell[int64, [8]int64]
		for l := labelcell.Label(0); l < 8; l++ {
			a.Observe(l, int64(1+rng.Intn(100)))
			b.Observe(l, int64(1+rng.Intn(100)))
		}

		for _, policy := range []labelcell.CounterPolicy{labelcell.CounterOnce, labelcell.CounterPerLabel} {
			got := a.MergeWith(b, policy).RetractWith(b, policy)
			assert.Equal(t, a.Histogram(), got.Histogram(), "policy %s", policy)
		}
		assert.Equal(t, a.HiddenCounter(), a.Merge(b).Retract(b).HiddenCounter())
	}
}

func TestTextStreamOfRandomCells(t *testing.T) {
	rng := testutil.NewRNG(99)

	cells := make([]cell21, 50)
	var buf bytes.Buffer
	for i := range cells {
		cells[i] = testutil.RandomCell[float64, [21]float64](rng, 1000)
		_, err := cells[i].WriteTo(&buf)
		require.NoError(t, err)
		buf.WriteByte('\n')
	}

	r := bufio.NewReader(&buf)
	for i := range cells {
		var got cell21
		require.NoError(t, got.ReadText(r, labelcell.WithStrictLabelCount()))
		if diff := cmp.Diff(cells[i].Histogram(), got.Histogram()); diff != "" {
			t.Fatalf("cell %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}
