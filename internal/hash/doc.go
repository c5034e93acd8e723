// Package hash provides the checksum used by every labelcell persistence format.
//
// Binary cells and snapshot bodies are protected with CRC32-Castagnoli
// (CRC32C), which Go's hash/crc32 accelerates with SSE4.2 on x86 and the CRC
// extension on ARM.
//
// One-shot:
//
//	sum := hash.CRC32C(data)
//
// Streaming:
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	sum := h.Sum32()
package hash
