package labelcell

import "fmt"

// CounterPolicy selects how Merge and Retract update the hidden counter.
type CounterPolicy uint8

const (
	// CounterOnce applies the other cell's counter once per operation.
	CounterOnce CounterPolicy = iota

	// CounterPerLabel applies the other cell's counter once per label, so a
	// merge adds N*b.counter. Maps written by older tooling were built with
	// this rule; use it only when their counters must stay comparable.
	CounterPerLabel
)

// String implements fmt.Stringer.
func (p CounterPolicy) String() string {
	switch p {
	case CounterOnce:
		return "once"
	case CounterPerLabel:
		return "per-label"
	default:
		return fmt.Sprintf("CounterPolicy(%d)", uint8(p))
	}
}

// Merge fuses b into a copy of c using CounterOnce.
func (c Cell[W, H]) Merge(b Cell[W, H]) Cell[W, H] {
	return c.MergeWith(b, CounterOnce)
}

// MergeWith fuses b into a copy of c.
//
// Weights are added label by label. The hidden counter becomes
// c.counter + b.counter under CounterOnce, and c.counter + N*b.counter under
// CounterPerLabel.
func (c Cell[W, H]) MergeWith(b Cell[W, H], policy CounterPolicy) Cell[W, H] {
	out := Copy(&c)
	out.hiddenCounter = c.hiddenCounter

	for i := 0; i < len(out.histogram); i++ {
		out.histogram[i] += b.histogram[i]
		if policy == CounterPerLabel {
			out.hiddenCounter += b.hiddenCounter
		}
	}

	if policy != CounterPerLabel {
		out.hiddenCounter += b.hiddenCounter
	}
	return out
}

// Retract removes b from a copy of c using CounterOnce.
func (c Cell[W, H]) Retract(b Cell[W, H]) Cell[W, H] {
	return c.RetractWith(b, CounterOnce)
}

// RetractWith removes b from a copy of c.
//
// A label keeps c[i]-b[i] only while c[i] > b[i]; otherwise it is clamped to
// zero and the hidden counter is reset to zero. Under CounterPerLabel
// b.counter is subtracted once per surviving label, in label order, so a
// reset wipes every decrement before it; the counter may go negative for
// signed and float weights and saturates at zero for unsigned ones. Under
// CounterOnce the result is max(c.counter-b.counter, 0), or zero if any label
// was clamped.
//
// Retraction is lossy: RetractWith(MergeWith(a, b), b) equals a only when no
// label was clamped.
func (c Cell[W, H]) RetractWith(b Cell[W, H], policy CounterPolicy) Cell[W, H] {
	out := Copy(&c)
	out.hiddenCounter = c.hiddenCounter

	clamped := false
	for i := 0; i < len(out.histogram); i++ {
		if out.histogram[i] > b.histogram[i] {
			out.histogram[i] -= b.histogram[i]
			if policy == CounterPerLabel {
				out.hiddenCounter = perLabelSub(out.hiddenCounter, b.hiddenCounter)
			}
			continue
		}

		out.histogram[i] = 0
		out.hiddenCounter = 0
		clamped = true
	}

	if policy != CounterPerLabel {
		if clamped {
			out.hiddenCounter = 0
		} else {
			out.hiddenCounter = saturatingSub(c.hiddenCounter, b.hiddenCounter)
		}
	}
	return out
}

// perLabelSub is the legacy per-label decrement: plain subtraction, except
// that unsigned weights saturate at zero instead of wrapping.
func perLabelSub[W Weight](a, b W) W {
	if kindOf[W]() == kindUnsigned {
		return saturatingSub(a, b)
	}
	return a - b
}

// saturatingSub returns a-b, or zero when the result would be negative.
// Unsigned weights never wrap.
func saturatingSub[W Weight](a, b W) W {
	if b >= a {
		return 0
	}
	return a - b
}
