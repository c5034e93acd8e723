// Package labelcell provides a fixed-capacity label histogram for voxel maps.
//
// A Cell accumulates weighted observations that assign a voxel to one of N
// discrete labels (for example semantic classes). It is a plain value type:
// the histogram is a fixed-length array, copies are deep, and nothing is
// allocated on the heap. The enclosing spatial index owns every cell and is
// responsible for serializing concurrent access.
//
// # Quick Start
//
//	type Voxel = labelcell.Cell[float32, [21]float32]
//
//	v := labelcell.NewObservation[float32, [21]float32](7, 0.8)
//	v = v.Merge(labelcell.NewObservation[float32, [21]float32](7, 0.6))
//	v = v.Merge(labelcell.NewObservation[float32, [21]float32](3, 0.9))
//
//	v.HeavierLabel()  // 7
//	v.HeavierWeight() // 1.4
//	v.WeightOf(3)     // 0.9
//
// # Fusion Algebra
//
// Merge adds histograms label by label. Retract subtracts them and clamps any
// label that would reach zero or below; a clamped label also resets the hidden
// counter, so retraction is only an approximate inverse of Merge.
//
// The hidden counter tracks total observation mass independently of the
// histogram. Two update policies exist:
//
//	c := a.MergeWith(b, labelcell.CounterOnce)     // a.counter + b.counter (default)
//	c := a.MergeWith(b, labelcell.CounterPerLabel) // a.counter + N*b.counter (legacy)
//
// CounterPerLabel reproduces the historical per-iteration update and is kept
// for compatibility with maps built by older tooling.
//
// # Labels
//
// Out-of-range labels never fail: writes are ignored and reads return zero.
// Use LookupWeight when an explicit error is preferred. HeavierLabel returns
// NoLabel when no weight is strictly positive.
//
// # Persistence
//
// The text form is "<N> <w0> <w1> ... <wN-1>" with enough precision to round
// trip float64 weights exactly. The hidden counter is never persisted.
//
//	var buf bytes.Buffer
//	v.WriteTo(&buf)
//
//	var restored Voxel
//	restored.ReadText(bufio.NewReader(&buf))
//
// A versioned, checksummed binary form is available through MarshalBinary,
// and the snapshot package stores whole sequences of cells with optional
// LZ4 or ZSTD compression.
package labelcell

//go:generate go run ./internal/cmd/histgen -n 100 -o histogram_gen.go
