// Package fs provides the file system seam used by snapshot files.
//
// [LocalFS] is the production implementation; [FaultyFS] injects write, sync,
// close and rename failures so crash-safety of atomic replacement can be
// tested without a real faulty disk:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp", fs.Fault{FailAfterBytes: 1024})
package fs
