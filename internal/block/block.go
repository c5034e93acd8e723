package block

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the compression algorithm used for a block stream.
type Compression uint8

const (
	// None stores blocks verbatim.
	None Compression = 0
	// LZ4 uses LZ4 block compression (fast, good for hot data).
	LZ4 Compression = 1
	// ZSTD uses ZSTD block compression (better ratio, good for cold data).
	ZSTD Compression = 2
)

// String implements fmt.Stringer.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// Valid reports whether c is a known algorithm.
func (c Compression) Valid() bool {
	return c <= ZSTD
}

// DefaultBlockSize is the uncompressed block size used when none is given.
const DefaultBlockSize = 64 * 1024

// MaxBlockSize bounds the uncompressed size a reader will allocate for.
const MaxBlockSize = 16 * 1024 * 1024

const headerSize = 8

var (
	// ErrCorrupt is returned for block headers or payloads that cannot be valid.
	ErrCorrupt = errors.New("block: corrupt stream")

	// ErrClosed is returned when writing to a closed Writer.
	ErrClosed = errors.New("block: writer closed")
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress returns the compressed form of data, or nil if compression does
// not save at least 10%.
func compress(data []byte, c Compression) ([]byte, error) {
	var out []byte
	switch c {
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		out = buf[:n]
	case ZSTD:
		enc := getZstdEncoder()
		out = enc.EncodeAll(data, nil)
		putZstdEncoder(enc)
	default:
		return nil, nil
	}

	if len(out) == 0 || float64(len(out)) > float64(len(data))*0.9 {
		return nil, nil
	}
	return out, nil
}

func decompress(data []byte, size uint32, c Compression) ([]byte, error) {
	result := make([]byte, size)

	switch c {
	case LZ4:
		n, err := lz4.UncompressBlock(data, result)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint32(n) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return result, nil
	case ZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(data, result[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint32(len(decoded)) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%w: compressed block in %s stream", ErrCorrupt, c)
	}
}

// Writer splits a byte stream into blocks, each framed as
// [uncompressed uint32][compressed uint32][data]. A compressed size of zero
// means the data is stored verbatim. Close writes an all-zero end marker.
type Writer struct {
	w           io.Writer
	compression Compression
	blockSize   int
	buffer      *bytes.Buffer
	written     int64
	closed      bool
}

// NewWriter creates a new block writer.
func NewWriter(w io.Writer, compression Compression, blockSize int) *Writer {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if blockSize > MaxBlockSize {
		blockSize = MaxBlockSize
	}
	return &Writer{
		w:           w,
		compression: compression,
		blockSize:   blockSize,
		buffer:      bytes.NewBuffer(make([]byte, 0, blockSize)),
	}
}

// Write buffers p, flushing full blocks as needed.
func (c *Writer) Write(p []byte) (int, error) {
	if c.closed {
		return 0, ErrClosed
	}

	total := 0
	for len(p) > 0 {
		space := c.blockSize - c.buffer.Len()
		if space <= 0 {
			if err := c.Flush(); err != nil {
				return total, err
			}
			space = c.blockSize
		}

		toWrite := min(len(p), space)
		n, _ := c.buffer.Write(p[:toWrite])
		total += n
		p = p[n:]
	}
	return total, nil
}

// Flush compresses and writes the buffered block, if any.
func (c *Writer) Flush() error {
	if c.buffer.Len() == 0 {
		return nil
	}

	data := c.buffer.Bytes()
	compressed, err := compress(data, c.compression)
	if err != nil {
		return err
	}

	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(len(data)))
	payload := data
	if compressed != nil {
		binary.LittleEndian.PutUint32(hdr[4:], uint32(len(compressed)))
		payload = compressed
	}

	if err := c.write(hdr[:]); err != nil {
		return err
	}
	if err := c.write(payload); err != nil {
		return err
	}
	c.buffer.Reset()
	return nil
}

// Close flushes remaining data and writes the end marker. It does not close
// the underlying writer.
func (c *Writer) Close() error {
	if c.closed {
		return nil
	}
	if err := c.Flush(); err != nil {
		return err
	}
	c.closed = true

	var end [headerSize]byte
	return c.write(end[:])
}

// BytesWritten returns the total framed bytes written to the underlying writer.
func (c *Writer) BytesWritten() int64 {
	return c.written
}

func (c *Writer) write(p []byte) error {
	n, err := c.w.Write(p)
	c.written += int64(n)
	return err
}

// Reader reads a block stream produced by Writer. It returns io.EOF at the
// end marker and never reads past it, so trailing data on the underlying
// reader remains available.
type Reader struct {
	r           io.Reader
	compression Compression
	block       []byte
	done        bool
}

// NewReader creates a reader for a block stream.
func NewReader(r io.Reader, compression Compression) *Reader {
	return &Reader{r: r, compression: compression}
}

// Read implements io.Reader over the decompressed stream.
func (c *Reader) Read(p []byte) (int, error) {
	for len(c.block) == 0 {
		if c.done {
			return 0, io.EOF
		}
		if err := c.next(); err != nil {
			return 0, err
		}
	}

	n := copy(p, c.block)
	c.block = c.block[n:]
	return n, nil
}

func (c *Reader) next() error {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(c.r, hdr[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return err
	}

	size := binary.LittleEndian.Uint32(hdr[0:])
	compressedSize := binary.LittleEndian.Uint32(hdr[4:])

	if size == 0 {
		if compressedSize != 0 {
			return fmt.Errorf("%w: empty block with payload", ErrCorrupt)
		}
		c.done = true
		return nil
	}
	if size > MaxBlockSize || compressedSize > MaxBlockSize {
		return fmt.Errorf("%w: block of %d bytes", ErrCorrupt, size)
	}

	if compressedSize == 0 {
		block := make([]byte, size)
		if _, err := io.ReadFull(c.r, block); err != nil {
			return unexpected(err)
		}
		c.block = block
		return nil
	}

	payload := make([]byte, compressedSize)
	if _, err := io.ReadFull(c.r, payload); err != nil {
		return unexpected(err)
	}
	block, err := decompress(payload, size, c.compression)
	if err != nil {
		return err
	}
	c.block = block
	return nil
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
