package labelcell

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// HeavierLabel returns the label with the largest strictly positive weight.
//
// Ties resolve to the lowest label. NoLabel is returned when every weight is
// zero or negative.
func (c Cell[W, H]) HeavierLabel() Label {
	var best W
	label := NoLabel
	for i := 0; i < len(c.histogram); i++ {
		if c.histogram[i] > best {
			best = c.histogram[i]
			label = Label(i)
		}
	}
	return label
}

// HeavierWeight returns the largest strictly positive weight, or zero.
func (c Cell[W, H]) HeavierWeight() W {
	var best W
	for i := 0; i < len(c.histogram); i++ {
		if c.histogram[i] > best {
			best = c.histogram[i]
		}
	}
	return best
}

// WeightOf returns the weight of label, or zero when label is out of range.
func (c Cell[W, H]) WeightOf(label Label) W {
	if !validLabel(label, len(c.histogram)) {
		return 0
	}
	return c.histogram[label]
}

// LookupWeight is the checked form of WeightOf.
func (c Cell[W, H]) LookupWeight(label Label) (W, error) {
	if !validLabel(label, len(c.histogram)) {
		return 0, &ErrLabelOutOfRange{Label: label, Labels: len(c.histogram)}
	}
	return c.histogram[label], nil
}

// Total returns the sum of all label weights.
func (c Cell[W, H]) Total() W {
	var sum W
	for i := 0; i < len(c.histogram); i++ {
		sum += c.histogram[i]
	}
	return sum
}

// Distribution returns the histogram normalized to sum to one.
//
// Negative weights count as zero. A cell without positive weight yields nil.
func (c Cell[W, H]) Distribution() []float64 {
	p := make([]float64, len(c.histogram))
	for i := 0; i < len(c.histogram); i++ {
		if c.histogram[i] > 0 {
			p[i] = float64(c.histogram[i])
		}
	}

	sum := floats.Sum(p)
	if sum <= 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return nil
	}
	floats.Scale(1/sum, p)
	return p
}

// Entropy returns the Shannon entropy, in nats, of Distribution.
//
// Zero means all evidence agrees on one label; log(N) means it is spread
// evenly. A cell without positive weight returns zero.
func (c Cell[W, H]) Entropy() float64 {
	p := c.Distribution()
	if p == nil {
		return 0
	}
	return stat.Entropy(p)
}

// Support returns the set of labels carrying strictly positive weight.
func (c Cell[W, H]) Support() *roaring.Bitmap {
	bm := roaring.New()
	for i := 0; i < len(c.histogram); i++ {
		if c.histogram[i] > 0 {
			bm.Add(uint32(i))
		}
	}
	return bm
}
