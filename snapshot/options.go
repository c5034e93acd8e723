package snapshot

import (
	"github.com/hupe1980/labelcell"
	"github.com/hupe1980/labelcell/codec"
	"github.com/hupe1980/labelcell/internal/block"
	"github.com/hupe1980/labelcell/internal/fs"
)

// Compression selects the block compression of a snapshot body.
type Compression = block.Compression

const (
	// CompressionNone stores the body uncompressed.
	CompressionNone = block.None
	// CompressionLZ4 favours speed; the default.
	CompressionLZ4 = block.LZ4
	// CompressionZSTD favours ratio for cold snapshots.
	CompressionZSTD = block.ZSTD
)

// FileSystem is the file system used by SaveFile and LoadFile. Implement it
// to place snapshot files somewhere other than the local disk.
type FileSystem = fs.FileSystem

// File is an open file returned by a FileSystem.
type File = fs.File

// Options configures snapshot writers and readers.
type Options struct {
	// Codec encodes each cell. Readers ignore it and use the codec named in
	// the header.
	Codec codec.Codec

	// Compression applies to the writer only; readers take it from the header.
	Compression Compression

	// BlockSize is the uncompressed block size in bytes.
	BlockSize int

	// MaxCellSize bounds a single encoded cell on read.
	MaxCellSize int

	// FileSystem is used by SaveFile and LoadFile.
	FileSystem FileSystem

	Logger  *labelcell.Logger
	Metrics labelcell.MetricsCollector
}

// DefaultOptions returns the defaults used when no option is given.
func DefaultOptions() Options {
	return Options{
		Codec:       codec.Default,
		Compression: CompressionLZ4,
		BlockSize:   block.DefaultBlockSize,
		MaxCellSize: 1 << 20,
		FileSystem:  fs.Default,
		Logger:      labelcell.NoopLogger(),
		Metrics:     labelcell.NoopMetricsCollector{},
	}
}

// Option configures a Writer or Reader.
type Option func(o *Options)

// WithCodec sets the per-cell codec. If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *Options) {
		if c == nil {
			c = codec.Default
		}
		o.Codec = c
	}
}

// WithCompression sets the body compression.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithBlockSize sets the uncompressed block size.
func WithBlockSize(n int) Option {
	return func(o *Options) {
		o.BlockSize = n
	}
}

// WithMaxCellSize bounds the size of one encoded cell accepted by a Reader.
func WithMaxCellSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxCellSize = n
		}
	}
}

// WithFileSystem sets the file system used by SaveFile and LoadFile.
func WithFileSystem(fsys FileSystem) Option {
	return func(o *Options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.FileSystem = fsys
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *labelcell.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = labelcell.NoopLogger()
		}
		o.Logger = l
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m labelcell.MetricsCollector) Option {
	return func(o *Options) {
		if m == nil {
			m = labelcell.NoopMetricsCollector{}
		}
		o.Metrics = m
	}
}

func newOptions(optFns []Option) Options {
	o := DefaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
