package snapshot

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"
	"time"

	"github.com/hupe1980/labelcell"
	"github.com/hupe1980/labelcell/codec"
	"github.com/hupe1980/labelcell/internal/block"
	"github.com/hupe1980/labelcell/internal/conv"
	lchash "github.com/hupe1980/labelcell/internal/hash"
)

// Version is the snapshot format version written by this package.
const Version = 1

const (
	fixedHeaderSize = 12
	footerSize      = 12
)

var magic = [4]byte{'L', 'H', 'S', 'N'}

var (
	// ErrInvalidSnapshot is returned for data that is not a snapshot or is
	// structurally damaged.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrUnknownCodec is returned when the header names a codec this build
	// does not know.
	ErrUnknownCodec = errors.New("unknown snapshot codec")

	// ErrWriterClosed is returned when writing to a closed Writer.
	ErrWriterClosed = errors.New("snapshot writer closed")
)

// Header describes a snapshot.
type Header struct {
	Version     uint16
	Labels      int
	Compression Compression
	Codec       string
}

func labelsOf[W labelcell.Weight, H labelcell.Histogram[W]]() int {
	var h H
	return len(h)
}

func writeHeader(w io.Writer, h Header) error {
	if len(h.Codec) == 0 || len(h.Codec) > 255 {
		return fmt.Errorf("codec name %q must be 1-255 bytes", h.Codec)
	}
	labels, err := conv.ToUint32(h.Labels)
	if err != nil {
		return err
	}

	buf := make([]byte, 0, fixedHeaderSize+len(h.Codec))
	buf = append(buf, magic[:]...)
	buf = binary.LittleEndian.AppendUint16(buf, h.Version)
	buf = binary.LittleEndian.AppendUint32(buf, labels)
	buf = append(buf, byte(h.Compression), byte(len(h.Codec)))
	buf = append(buf, h.Codec...)

	_, err = w.Write(buf)
	return err
}

func readHeader(r io.Reader) (Header, error) {
	var fixed [fixedHeaderSize]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return Header{}, fmt.Errorf("%w: header: %w", ErrInvalidSnapshot, err)
	}
	if [4]byte(fixed[:4]) != magic {
		return Header{}, fmt.Errorf("%w: bad magic", ErrInvalidSnapshot)
	}

	h := Header{
		Version:     binary.LittleEndian.Uint16(fixed[4:]),
		Compression: Compression(fixed[10]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: snapshot version %d", labelcell.ErrUnsupportedVersion, h.Version)
	}
	labels, err := conv.ToInt(binary.LittleEndian.Uint32(fixed[6:]))
	if err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	h.Labels = labels
	if !h.Compression.Valid() {
		return Header{}, fmt.Errorf("%w: compression %s", ErrInvalidSnapshot, h.Compression)
	}

	name := make([]byte, fixed[11])
	if _, err := io.ReadFull(r, name); err != nil {
		return Header{}, fmt.Errorf("%w: codec name: %w", ErrInvalidSnapshot, err)
	}
	h.Codec = string(name)
	return h, nil
}

// Writer streams cells into a snapshot.
//
// A snapshot is a header, a block-framed body holding one
// (uvarint length, encoded cell) record per cell, and a footer with the cell
// count and a CRC32-C of the uncompressed body. Hidden counters are not
// persisted by any codec.
type Writer[W labelcell.Weight, H labelcell.Histogram[W]] struct {
	opts    Options
	ctx     context.Context
	out     *countingWriter
	blocks  *block.Writer
	crc     hash.Hash32
	scratch []byte
	cells   int
	start   time.Time
	closed  bool
}

// NewWriter writes the snapshot header to w and returns a Writer for the
// cells. Close must be called to complete the snapshot; it does not close w.
func NewWriter[W labelcell.Weight, H labelcell.Histogram[W]](w io.Writer, optFns ...Option) (*Writer[W, H], error) {
	opts := newOptions(optFns)
	if !opts.Compression.Valid() {
		return nil, fmt.Errorf("invalid compression %s", opts.Compression)
	}

	out := &countingWriter{w: w}
	hdr := Header{
		Version:     Version,
		Labels:      labelsOf[W, H](),
		Compression: opts.Compression,
		Codec:       opts.Codec.Name(),
	}
	if err := writeHeader(out, hdr); err != nil {
		return nil, err
	}

	return &Writer[W, H]{
		opts:   opts,
		ctx:    context.Background(),
		out:    out,
		blocks: block.NewWriter(out, opts.Compression, opts.BlockSize),
		crc:    lchash.NewCRC32C(),
		start:  time.Now(),
	}, nil
}

// Write appends one cell to the snapshot.
func (w *Writer[W, H]) Write(c labelcell.Cell[W, H]) error {
	if w.closed {
		return ErrWriterClosed
	}

	data, err := w.opts.Codec.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cell %d: %w", w.cells, err)
	}

	w.scratch = binary.AppendUvarint(w.scratch[:0], uint64(len(data)))
	w.scratch = append(w.scratch, data...)
	if _, err := w.blocks.Write(w.scratch); err != nil {
		return err
	}
	_, _ = w.crc.Write(w.scratch)
	w.cells++
	return nil
}

// Len returns the number of cells written so far.
func (w *Writer[W, H]) Len() int {
	return w.cells
}

// Close flushes the body and writes the footer.
func (w *Writer[W, H]) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.finish()
	w.opts.Metrics.RecordSnapshotWrite(w.cells, w.out.n, time.Since(w.start), err)
	w.opts.Logger.WithLabels(labelsOf[W, H]()).WithCodec(w.opts.Codec.Name()).LogSnapshotWrite(w.ctx, w.cells, w.out.n, err)
	return err
}

func (w *Writer[W, H]) finish() error {
	if err := w.blocks.Close(); err != nil {
		return err
	}

	cells, err := conv.ToUint64(w.cells)
	if err != nil {
		return err
	}
	var footer [footerSize]byte
	binary.LittleEndian.PutUint64(footer[0:], cells)
	binary.LittleEndian.PutUint32(footer[8:], w.crc.Sum32())
	_, err = w.out.Write(footer[:])
	return err
}

// Reader streams cells out of a snapshot.
type Reader[W labelcell.Weight, H labelcell.Histogram[W]] struct {
	opts    Options
	ctx     context.Context
	src     io.Reader
	body    *bufio.Reader
	codec   codec.Codec
	header  Header
	crc     hash.Hash32
	scratch []byte
	cells   int
	start   time.Time
	err     error
}

// NewReader reads and validates the snapshot header.
//
// The header's label count must equal the cell type's; the codec and
// compression recorded in the header are used regardless of options.
func NewReader[W labelcell.Weight, H labelcell.Histogram[W]](r io.Reader, optFns ...Option) (*Reader[W, H], error) {
	opts := newOptions(optFns)

	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if n := labelsOf[W, H](); hdr.Labels != n {
		return nil, &labelcell.ErrLabelCountMismatch{Expected: n, Actual: hdr.Labels}
	}
	c, ok := codec.ByName(hdr.Codec)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, hdr.Codec)
	}

	return &Reader[W, H]{
		opts:   opts,
		ctx:    context.Background(),
		src:    r,
		body:   bufio.NewReader(block.NewReader(r, hdr.Compression)),
		codec:  c,
		header: hdr,
		crc:    lchash.NewCRC32C(),
		start:  time.Now(),
	}, nil
}

// Header returns the snapshot header.
func (r *Reader[W, H]) Header() Header {
	return r.header
}

// Next returns the next cell. After the last cell it verifies the footer and
// returns io.EOF. Any other error is sticky.
func (r *Reader[W, H]) Next() (labelcell.Cell[W, H], error) {
	var c labelcell.Cell[W, H]
	if r.err != nil {
		return c, r.err
	}

	size, err := binary.ReadUvarint(r.body)
	if err == io.EOF {
		if err = r.finish(); err == nil {
			err = io.EOF
		}
		return c, r.fail(err)
	}
	if err != nil {
		return c, r.fail(fmt.Errorf("cell %d length: %w", r.cells, err))
	}
	if size > uint64(r.opts.MaxCellSize) {
		return c, r.fail(fmt.Errorf("%w: cell %d is %d bytes", ErrInvalidSnapshot, r.cells, size))
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r.body, data); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return c, r.fail(fmt.Errorf("cell %d: %w", r.cells, err))
	}
	r.scratch = binary.AppendUvarint(r.scratch[:0], size)
	_, _ = r.crc.Write(r.scratch)
	_, _ = r.crc.Write(data)

	if err := r.codec.Unmarshal(data, &c); err != nil {
		return c, r.fail(fmt.Errorf("decode cell %d: %w", r.cells, err))
	}
	r.cells++
	return c, nil
}

func (r *Reader[W, H]) finish() error {
	var footer [footerSize]byte
	if _, err := io.ReadFull(r.src, footer[:]); err != nil {
		return fmt.Errorf("%w: footer: %w", ErrInvalidSnapshot, err)
	}

	cells, err := conv.ToInt(binary.LittleEndian.Uint64(footer[0:]))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if cells != r.cells {
		return fmt.Errorf("%w: footer counts %d cells, read %d", ErrInvalidSnapshot, cells, r.cells)
	}
	if binary.LittleEndian.Uint32(footer[8:]) != r.crc.Sum32() {
		return labelcell.ErrChecksumMismatch
	}
	return nil
}

// fail records err as the terminal state and reports it once.
func (r *Reader[W, H]) fail(err error) error {
	r.err = err
	var reported error
	if err != io.EOF {
		reported = err
	}
	r.opts.Metrics.RecordSnapshotRead(r.cells, time.Since(r.start), reported)
	r.opts.Logger.WithLabels(r.header.Labels).WithCodec(r.header.Codec).LogSnapshotRead(r.ctx, r.cells, reported)
	return err
}

// Save writes cells as a complete snapshot to w.
func Save[W labelcell.Weight, H labelcell.Histogram[W]](ctx context.Context, w io.Writer, cells []labelcell.Cell[W, H], optFns ...Option) error {
	sw, err := NewWriter[W, H](w, optFns...)
	if err != nil {
		return err
	}
	sw.ctx = ctx

	for i := range cells {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sw.Write(cells[i]); err != nil {
			return err
		}
	}
	return sw.Close()
}

// Load reads every cell of the snapshot in r.
func Load[W labelcell.Weight, H labelcell.Histogram[W]](ctx context.Context, r io.Reader, optFns ...Option) ([]labelcell.Cell[W, H], error) {
	sr, err := NewReader[W, H](r, optFns...)
	if err != nil {
		return nil, err
	}
	sr.ctx = ctx

	var cells []labelcell.Cell[W, H]
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := sr.Next()
		if err == io.EOF {
			return cells, nil
		}
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
