// Package snapshot persists sequences of label cells.
//
// The outer map decides which cells go into a snapshot and in which order;
// this package only frames them. A snapshot is self-describing: its header
// records the label count, the per-cell codec and the body compression, so a
// Reader needs nothing but the cell type.
//
//	err := snapshot.Save(ctx, f, cells,
//	    snapshot.WithCompression(snapshot.CompressionZSTD),
//	    snapshot.WithCodec(codec.Binary{}),
//	)
//
//	cells, err := snapshot.Load[float32, [21]float32](ctx, f)
//
// SaveFile and LoadFile do the same for a file path, replacing the file
// atomically through a temporary sibling.
//
// Hidden counters are never stored; loaded cells start with a zero counter.
// Snapshots with a label count different from the cell type are rejected.
package snapshot
