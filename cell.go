package labelcell

// Weight is the set of scalar types a Cell can accumulate.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Label identifies a discrete category, valid in [0, N).
type Label int32

// NoLabel is returned by HeavierLabel when no label carries positive weight.
const NoLabel Label = -1

// Cell is a per-voxel label histogram with a hidden observation counter.
//
// H fixes the label count N at instantiation (for example [21]float32).
// The zero value is an empty cell ready for use.
type Cell[W Weight, H Histogram[W]] struct {
	histogram     H
	hiddenCounter W
}

// New returns an empty cell.
func New[W Weight, H Histogram[W]]() Cell[W, H] {
	return Cell[W, H]{}
}

// NewObservation returns a cell seeded with a single observation.
//
// The hidden counter is set to weight even when label is out of range and the
// histogram write is dropped.
func NewObservation[W Weight, H Histogram[W]](label Label, weight W) Cell[W, H] {
	c := Cell[W, H]{hiddenCounter: weight}
	if validLabel(label, len(c.histogram)) {
		c.histogram[label] = weight
	}
	return c
}

// Copy returns a cell carrying the histogram of src and a zero hidden counter.
//
// Only the label distribution is copied; observation mass is not. Plain
// assignment copies both.
func Copy[W Weight, H Histogram[W]](src *Cell[W, H]) Cell[W, H] {
	return Cell[W, H]{histogram: src.histogram}
}

// FromWeights returns a cell with the given histogram and a zero hidden counter.
func FromWeights[W Weight, H Histogram[W]](h H) Cell[W, H] {
	return Cell[W, H]{histogram: h}
}

// Len returns the label count N.
func (c Cell[W, H]) Len() int {
	return len(c.histogram)
}

// Histogram returns a copy of the per-label weights.
func (c Cell[W, H]) Histogram() H {
	return c.histogram
}

// HiddenCounter returns the accumulated observation mass.
func (c Cell[W, H]) HiddenCounter() W {
	return c.hiddenCounter
}

// Reset clears every weight and the hidden counter.
func (c *Cell[W, H]) Reset() {
	*c = Cell[W, H]{}
}

// Observe fuses a single observation into c in place.
//
// It is equivalent to c = c.Merge(NewObservation(label, weight)).
func (c *Cell[W, H]) Observe(label Label, weight W) {
	if validLabel(label, len(c.histogram)) {
		c.histogram[label] += weight
	}
	c.hiddenCounter += weight
}

func validLabel(label Label, n int) bool {
	return label >= 0 && int(label) < n
}
