// Package block frames a byte stream into independently compressed blocks.
//
// Each block is written as
//
//	[uncompressed uint32][compressed uint32][data]
//
// with a compressed size of zero meaning the data is stored as is (used when
// compression saves less than 10%). An all-zero header terminates the stream.
// LZ4 is backed by github.com/pierrec/lz4/v4 and ZSTD by
// github.com/klauspost/compress; zstd encoders and decoders are pooled.
package block
